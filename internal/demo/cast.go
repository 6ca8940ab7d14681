package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// castHeader is the first line of an asciinema v2 recording.
type castHeader struct {
	Version   int               `json:"version"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Timestamp int64             `json:"timestamp,omitempty"`
	Title     string            `json:"title,omitempty"`
	Env       map[string]string `json:"env,omitempty"`
}

// GenerateASCIICast writes frames as an asciinema v2 cast. Each frame clears
// the screen and redraws; annotations become marker events.
func GenerateASCIICast(w io.Writer, frames []Frame, width, height int) error {
	enc := json.NewEncoder(w)
	header := castHeader{
		Version: 2,
		Width:   width,
		Height:  height,
		Title:   "stave",
		Env:     map[string]string{"TERM": "xterm-256color"},
	}
	if err := enc.Encode(header); err != nil {
		return fmt.Errorf("writing cast header: %w", err)
	}

	var at time.Duration
	for i, f := range frames {
		at += f.Delay
		secs := at.Seconds()
		if f.Annotation != "" {
			if err := enc.Encode([]any{secs, "m", f.Annotation}); err != nil {
				return fmt.Errorf("writing marker %d: %w", i, err)
			}
		}
		screen := "\x1b[H\x1b[2J" + strings.ReplaceAll(f.Content, "\n", "\r\n")
		if err := enc.Encode([]any{secs, "o", screen}); err != nil {
			return fmt.Errorf("writing frame %d: %w", i, err)
		}
	}
	return nil
}
