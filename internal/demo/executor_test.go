package demo

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestScenarioValidate(t *testing.T) {
	s := &Scenario{Name: "x"}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if s.Width != 120 || s.Height != 40 {
		t.Errorf("defaults = %dx%d, want 120x40", s.Width, s.Height)
	}
	if s.Library == nil {
		t.Error("expected seeded library")
	}

	tests := []struct {
		name     string
		scenario *Scenario
	}{
		{"no name", &Scenario{}},
		{"empty key", &Scenario{Name: "x", Steps: []Step{{Type: StepKey}}}},
		{"empty click", &Scenario{Name: "x", Steps: []Step{{Type: StepClick}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.scenario.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestExecutor_Run(t *testing.T) {
	s := &Scenario{
		Name:   "test",
		Width:  120,
		Height: 30,
		Steps: []Step{
			Annotate("start"),
			Capture(),
			Key("tab"),
			Wait(100 * time.Millisecond),
		},
	}
	e := NewExecutor(DefaultExecutorConfig())
	frames, err := e.Run(s)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("captured %d frames, want 3", len(frames))
	}
	if frames[1].Annotation != "start" || frames[2].Annotation != "" {
		t.Errorf("annotations = %q, %q", frames[1].Annotation, frames[2].Annotation)
	}
	first := ansi.Strip(frames[0].Content)
	if !strings.Contains(first, "Bernoulli Numbers") {
		t.Errorf("first frame missing the playing song:\n%s", first)
	}
	last := ansi.Strip(frames[2].Content)
	if !strings.Contains(last, "Ada Lovelace Trio") {
		t.Errorf("directories frame missing artist dir:\n%s", last)
	}
}

func TestExecutor_CaptureEveryStep(t *testing.T) {
	cfg := DefaultExecutorConfig()
	cfg.CaptureEveryStep = true
	s := &Scenario{Name: "typing", Steps: []Step{Key("down"), Type("ab")}}

	frames, err := NewExecutor(cfg).Run(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 4 {
		t.Errorf("captured %d frames, want 4", len(frames))
	}
}

func TestExecutor_ClickTab(t *testing.T) {
	s := &Scenario{Name: "click", Steps: []Step{Click("Playlists"), Capture()}}
	frames, err := NewExecutor(DefaultExecutorConfig()).Run(s)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := ansi.Strip(frames[len(frames)-1].Content); !strings.Contains(got, "Road Trip") {
		t.Errorf("playlists tab not shown:\n%s", got)
	}
}

func TestExecutor_ClickMissingText(t *testing.T) {
	s := &Scenario{Name: "click", Steps: []Step{Click("no such label")}}
	_, err := NewExecutor(DefaultExecutorConfig()).Run(s)
	if err == nil || !strings.Contains(err.Error(), "not on screen") {
		t.Errorf("Run() error = %v", err)
	}
}

func TestGenerateASCIICast(t *testing.T) {
	frames := []Frame{
		{Content: "a\nb", Delay: 500 * time.Millisecond, Annotation: "hello"},
		{Content: "c", Delay: time.Second},
	}
	var buf bytes.Buffer
	if err := GenerateASCIICast(&buf, frames, 80, 24); err != nil {
		t.Fatal(err)
	}

	sc := bufio.NewScanner(&buf)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + marker + 2 frames:\n%s", len(lines), buf.String())
	}

	var header castHeader
	if err := json.Unmarshal([]byte(lines[0]), &header); err != nil {
		t.Fatal(err)
	}
	if header.Version != 2 || header.Width != 80 || header.Height != 24 {
		t.Errorf("header = %+v", header)
	}

	var marker []any
	if err := json.Unmarshal([]byte(lines[1]), &marker); err != nil {
		t.Fatal(err)
	}
	if marker[1] != "m" || marker[2] != "hello" || marker[0].(float64) != 0.5 {
		t.Errorf("marker = %v", marker)
	}

	var last []any
	if err := json.Unmarshal([]byte(lines[3]), &last); err != nil {
		t.Fatal(err)
	}
	if last[0].(float64) != 1.5 || !strings.HasSuffix(last[2].(string), "c") {
		t.Errorf("last event = %v", last)
	}
	var first []any
	if err := json.Unmarshal([]byte(lines[2]), &first); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(first[2].(string), "a\r\nb") {
		t.Errorf("newlines not translated: %q", first[2])
	}
}
