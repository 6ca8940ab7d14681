package demo

import (
	"time"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait lets playback run for a duration, then captures a frame.
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepClick sends a left click on the first cell showing Text.
	StepClick
	// StepCapture captures the current frame.
	StepCapture
	// StepAnnotate adds an annotation/caption to the next captured frame.
	StepAnnotate
)

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepTypeText and StepClick
	Text string

	// For StepWait
	Duration time.Duration

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 120)
	Height      int // Terminal height (default 40)

	// Library is played by the scenario; nil means the seeded library.
	Library *Library
	Steps   []Step
}

// Validate checks that the scenario is valid.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 120
	}
	if s.Height <= 0 {
		s.Height = 40
	}
	if s.Library == nil {
		s.Library = Seeded()
	}
	for _, step := range s.Steps {
		switch step.Type {
		case StepKey:
			if step.Key == "" {
				return &ValidationError{Field: "Steps", Message: "key step without a key"}
			}
		case StepClick:
			if step.Text == "" {
				return &ValidationError{Field: "Steps", Message: "click step without a target"}
			}
		}
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{
		Type:     StepWait,
		Duration: d,
	}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{
		Type: StepKey,
		Key:  key,
	}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{
		Type:        StepKey,
		Key:         key,
		Description: description,
	}
}

// Type creates a text typing step.
func Type(text string) Step {
	return Step{
		Type: StepTypeText,
		Text: text,
	}
}

// Click creates a step clicking the first cell that shows text.
func Click(text string) Step {
	return Step{
		Type: StepClick,
		Text: text,
	}
}

// Capture creates a capture step.
func Capture() Step {
	return Step{Type: StepCapture}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{
		Type:       StepAnnotate,
		Annotation: text,
	}
}
