package scenarios

import (
	"testing"

	"github.com/zhubert/stave/internal/demo"
)

func TestAll(t *testing.T) {
	scenarios := All()

	if len(scenarios) != 2 {
		t.Errorf("All() should return 2 scenarios, got %d", len(scenarios))
	}

	seen := make(map[string]bool)
	for _, s := range scenarios {
		if seen[s.Name] {
			t.Errorf("duplicate scenario name %q", s.Name)
		}
		seen[s.Name] = true
		if err := s.Validate(); err != nil {
			t.Errorf("Scenario %q validation failed: %v", s.Name, err)
		}
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		wantFound bool
	}{
		{"basic", true},
		{"tour", true},
		{"nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenario := Get(tt.name)
			found := scenario != nil

			if found != tt.wantFound {
				t.Errorf("Get(%q) found = %v, want %v", tt.name, found, tt.wantFound)
			}
		})
	}
}

func TestScenariosRun(t *testing.T) {
	if testing.Short() {
		t.Skip("runs every scenario")
	}
	for _, s := range All() {
		t.Run(s.Name, func(t *testing.T) {
			frames, err := demo.NewExecutor(demo.DefaultExecutorConfig()).Run(s)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if len(frames) < 2 {
				t.Errorf("captured %d frames", len(frames))
			}
		})
	}
}
