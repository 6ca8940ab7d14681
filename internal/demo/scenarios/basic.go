// Package scenarios contains built-in demo scenarios for stave.
package scenarios

import (
	"time"

	"github.com/zhubert/stave/internal/demo"
)

// Basic demonstrates a listening session:
// - The queue with the first album playing
// - Skipping ahead in the queue
// - Browsing directories
// - Searching the library and queueing a result
var Basic = &demo.Scenario{
	Name:        "basic",
	Description: "Play from the queue, browse, search and queue a song",
	Width:       120,
	Height:      40,
	Steps: []demo.Step{
		// Initial view - the queue with lyrics and album art
		demo.Wait(1 * time.Second),
		demo.Capture(),

		// Play the next song
		demo.Annotate("Pick a song from the queue"),
		demo.KeyWithDesc("down", "Select the second song"),
		demo.KeyWithDesc("enter", "Play it"),
		demo.Wait(2 * time.Second),

		// Browse directories
		demo.Annotate("Browse the library by directory"),
		demo.KeyWithDesc("tab", "Switch to the Directories tab"),
		demo.Capture(),
		demo.KeyWithDesc("enter", "Open the first artist"),
		demo.Wait(500 * time.Millisecond),

		// Search
		demo.Annotate("Search every tag at once"),
		demo.Click("Search"),
		demo.Type("tape"),
		demo.Key("enter"),
		demo.Wait(500 * time.Millisecond),
		demo.KeyWithDesc("enter", "Add the first result to the queue"),
		demo.Wait(1 * time.Second),

		// Back to the queue
		demo.Click("Queue"),
		demo.Wait(1 * time.Second),
	},
}

// All returns all available scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Basic,
		Tour,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
