package app

import (
	"path/filepath"
	"testing"

	"diffagent/display"
)

func TestNewREPL_CreatesAndCloses(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	renderer, err := display.NewRenderer(display.OutputFormatPlain)
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}

	cfg := REPLConfig{
		Renderer:       renderer,
		BannerRenderer: display.NewBannerRenderer(renderer),
	}

	r, err := NewREPL(cfg)
	if err != nil {
		t.Fatalf("NewREPL error: %v", err)
	}
	defer r.Close()

	expected := filepath.Join(tmpHome, ".diffagent_history")
	if r.historyFile != expected {
		t.Fatalf("expected history file %s, got %s", expected, r.historyFile)
	}
}

// processUserMessage has no test in this package: it needs full runner integration.
// The Run tests in app_init_test.go only cover exiting on a canceled context.
