package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewDisabled(t *testing.T) {
	log, err := New("", "nonsense")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if log.Core().Enabled(-1) {
		t.Error("nop logger reports debug enabled")
	}
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "quiz.log")
	log, err := New(path, "info")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debug("hidden")
	log.Info("answered")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"msg":"answered"`) {
		t.Errorf("log missing info entry: %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry written at info level: %s", out)
	}
}

func TestNewBadLevel(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "x.log"), "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
