package demo

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/stave/internal/app"
	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/logger"
	"github.com/zhubert/stave/internal/mpd"
)

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // Delay before this frame
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every step (default: false)
	CaptureEveryStep bool

	// TypeDelay is the delay between characters when typing (default: 50ms)
	TypeDelay time.Duration

	// KeyDelay is the delay after key presses (default: 100ms)
	KeyDelay time.Duration

	// CommandTimeout bounds how long a command may run before the executor
	// stops waiting for it. Timers outlive it and are skipped.
	CommandTimeout time.Duration

	// Config is the UI configuration; nil means the built-in default.
	Config *config.Config
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false, // Don't capture every step by default for cleaner demos
		TypeDelay:        50 * time.Millisecond,
		KeyDelay:         100 * time.Millisecond,
		CommandTimeout:   50 * time.Millisecond,
	}
}

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config ExecutorConfig
	model  *app.Model
	client *mpd.MemoryClient
	frames []Frame

	currentAnnotation string
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	if cfg.CommandTimeout <= 0 {
		cfg.CommandTimeout = DefaultExecutorConfig().CommandTimeout
	}
	return &Executor{
		config: cfg,
		frames: []Frame{},
	}
}

// Cleanup cancels any work the model still has in flight.
func (e *Executor) Cleanup() {
	if e.model != nil {
		e.model.Close()
	}
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	if err := e.setup(scenario); err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}
	defer e.Cleanup()

	// Capture initial frame
	e.captureFrame(0, 500*time.Millisecond)

	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d failed: %w", i, err)
		}
	}

	logger.WithComponent("demo").Info("scenario finished", "scenario", scenario.Name, "frames", len(e.frames))
	return e.frames, nil
}

// setup initializes the model for the scenario.
func (e *Executor) setup(scenario *Scenario) error {
	client, err := NewClient(scenario.Library)
	if err != nil {
		return err
	}
	e.client = client

	cfg := e.config.Config
	if cfg == nil {
		cfg = config.Default()
	}
	// Demos never pop desktop notifications.
	demoCfg := *cfg
	demoCfg.Notifications = false

	e.model = app.New(&demoCfg, client)
	e.pump(e.model.Init())
	e.send(tea.WindowSizeMsg{Width: scenario.Width, Height: scenario.Height})
	return nil
}

// executeStep executes a single demo step.
func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		e.client.Advance(step.Duration)
		e.send(app.StatusTickMsg(time.Now()))
		e.captureFrame(index, step.Duration)

	case StepKey:
		e.send(keyPress(step.Key))
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepTypeText:
		for _, ch := range step.Text {
			e.send(keyPress(string(ch)))
			if e.config.CaptureEveryStep {
				e.captureFrame(index, e.config.TypeDelay)
			}
		}

	case StepClick:
		x, y, ok := locate(e.model.RenderToString(), step.Text)
		if !ok {
			return fmt.Errorf("%q is not on screen", step.Text)
		}
		e.send(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepAnnotate:
		e.currentAnnotation = step.Annotation
		// Don't capture, annotation applies to next frame

	case StepCapture:
		e.captureFrame(index, 0)
	}

	return nil
}

// captureFrame captures the current view as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	frame := Frame{
		Content:    e.model.RenderANSI(),
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	}
	e.frames = append(e.frames, frame)

	// Clear annotation after use
	e.currentAnnotation = ""
}

// send delivers msg and runs everything it triggers.
func (e *Executor) send(msg tea.Msg) {
	_, cmd := e.model.Update(msg)
	e.pump(cmd)
}

// pump runs cmd and feeds the messages it produces back into the model
// until nothing is left.
func (e *Executor) pump(cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg, ok := e.run(next)
		if !ok {
			continue
		}
		switch msg := msg.(type) {
		case nil, tea.QuitMsg:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			_, cmd := e.model.Update(msg)
			queue = append(queue, cmd)
		}
	}
}

// run executes cmd, giving up after the command timeout.
func (e *Executor) run(cmd tea.Cmd) (tea.Msg, bool) {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg, true
	case <-time.After(e.config.CommandTimeout):
		return nil, false
	}
}

// locate returns the cell where text first appears in a plain frame.
func locate(frame, text string) (int, int, bool) {
	for y, line := range strings.Split(frame, "\n") {
		if i := strings.Index(line, text); i >= 0 {
			return ansi.StringWidth(line[:i]), y, true
		}
	}
	return 0, 0, false
}

// keyPress converts a key string to a tea.KeyPressMsg.
// Duplicated from testutil to avoid import cycle.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "escape", "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "home":
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case "end":
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case "pgup":
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case "pgdown":
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case "ctrl+u":
		return tea.KeyPressMsg{Code: 'u', Mod: tea.ModCtrl}
	case "ctrl+d":
		return tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
