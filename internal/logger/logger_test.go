package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()

	logPath := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	t.Cleanup(Reset)

	return logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestInit_WritesToPath(t *testing.T) {
	logPath := setupTestLogger(t)

	Info("hello %s", "stave")

	if got := Path(); got != logPath {
		t.Errorf("Path() = %q, want %q", got, logPath)
	}
	if !strings.Contains(readLog(t, logPath), "hello stave") {
		t.Error("log file should contain the formatted message")
	}
}

func TestInit_SecondCallIsNoop(t *testing.T) {
	logPath := setupTestLogger(t)

	other := filepath.Join(t.TempDir(), "other.log")
	if err := Init(other); err != nil {
		t.Fatalf("second Init returned error: %v", err)
	}
	if got := Path(); got != logPath {
		t.Errorf("Path() = %q after second Init, want %q", got, logPath)
	}
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	err := Init(filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestDebug_RespectsLevel(t *testing.T) {
	logPath := setupTestLogger(t)

	Debug("hidden-debug-marker")
	SetDebug(true)
	Debug("visible-debug-marker")
	SetDebug(false)

	content := readLog(t, logPath)
	if strings.Contains(content, "hidden-debug-marker") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(content, "visible-debug-marker") {
		t.Error("debug message should be written at debug level")
	}
}

func TestWithComponent(t *testing.T) {
	logPath := setupTestLogger(t)

	WithComponent("layout").Info("split computed", "children", 2)
	WithPane("queue").Warn("selection out of range")

	content := readLog(t, logPath)
	if !strings.Contains(content, "component=layout") {
		t.Errorf("expected component attribute, got:\n%s", content)
	}
	if !strings.Contains(content, "pane=queue") {
		t.Errorf("expected pane attribute, got:\n%s", content)
	}
}

func TestClose_StopsWriting(t *testing.T) {
	logPath := setupTestLogger(t)

	Close()
	Error("after-close-marker")

	if strings.Contains(readLog(t, logPath), "after-close-marker") {
		t.Error("nothing should be written after Close")
	}
}

func TestConcurrentLogging(t *testing.T) {
	setupTestLogger(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				Info("concurrent %d-%d", n, j)
			}
		}(i)
	}
	wg.Wait()
}
