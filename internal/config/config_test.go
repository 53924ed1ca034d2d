package config

import "testing"

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.BaseDir != "/mnt/SDCARD/.allium" {
		t.Fatalf("expected default base dir, got %q", cfg.App.BaseDir)
	}
	if cfg.App.Width != 640 || cfg.App.Height != 480 {
		t.Fatalf("expected 640x480 default, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.App.RetroArchAddr != "127.0.0.1:55355" {
		t.Fatalf("expected default control address, got %q", cfg.App.RetroArchAddr)
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected trace disabled by default")
	}
}

func TestLoadArgsEnvironmentOverride(t *testing.T) {
	environ := []string{
		"ALLIUM_BASE_DIR=/data/allium",
		"ALLIUM_WIDTH=320",
		"ALLIUM_HEIGHT=240",
		"ALLIUM_TRACE=1",
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.BaseDir != "/data/allium" {
		t.Fatalf("expected env base dir, got %q", cfg.App.BaseDir)
	}
	if cfg.App.Width != 320 || cfg.App.Height != 240 {
		t.Fatalf("expected 320x240 from env, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace enabled from env")
	}
}

func TestLoadArgsFlagsBeatEnvironment(t *testing.T) {
	environ := []string{"ALLIUM_WIDTH=320"}
	cfg, err := LoadArgs([]string{"-width", "800"}, environ)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Width != 800 {
		t.Fatalf("expected flag to win, got %d", cfg.App.Width)
	}
}

func TestLoadArgsRejectsBadSize(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "0"}, nil); err == nil {
		t.Fatalf("expected error for zero width")
	}
	if _, err := LoadArgs([]string{"-height", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestLoadArgsHistoryCap(t *testing.T) {
	cfg, err := LoadArgs([]string{"-history-cap", "25"}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.HistoryCapacity != 25 {
		t.Fatalf("expected capacity 25, got %d", cfg.App.HistoryCapacity)
	}
	if _, err := LoadArgs([]string{"-history-cap", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative capacity")
	}
}

func TestLoadArgsBadEnvFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"ALLIUM_WIDTH=wide", "ALLIUM_TRACE=maybe"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Width != 640 {
		t.Fatalf("expected fallback width, got %d", cfg.App.Width)
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected fallback trace=false")
	}
}
