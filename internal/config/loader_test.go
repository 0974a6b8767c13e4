package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(defaultTetrisYAML)
	if err != nil {
		t.Fatalf("parse(embedded) failed: %v", err)
	}
	if cfg != DefaultTetrisConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultTetrisConfig())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  width: 12\ntiming:\n  base_interval_ms: 500\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Board.Width != 12 {
		t.Errorf("Board.Width = %d, expected 12", cfg.Board.Width)
	}
	if cfg.Board.Height != 20 {
		t.Errorf("Board.Height = %d, expected default 20", cfg.Board.Height)
	}
	if cfg.BaseInterval() != 500*time.Millisecond {
		t.Errorf("BaseInterval() = %v, expected 500ms", cfg.BaseInterval())
	}
	if cfg.Scoring.LinePoints != 100 {
		t.Errorf("Scoring.LinePoints = %d, expected default 100", cfg.Scoring.LinePoints)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [1, 2"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  width: 2\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	_, err := Load(invalid)
	if err == nil || !strings.Contains(err.Error(), "board.width") {
		t.Errorf("Load() of invalid config error = %v, expected board.width complaint", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TetrisConfig)
		wantErr string
	}{
		{"defaults", func(*TetrisConfig) {}, ""},
		{"narrow board", func(c *TetrisConfig) { c.Board.Width = 3 }, "board.width"},
		{"short board", func(c *TetrisConfig) { c.Board.Height = 0 }, "board.height"},
		{"zero interval", func(c *TetrisConfig) { c.Timing.BaseIntervalMS = 0 }, "base_interval_ms"},
		{"zero line points", func(c *TetrisConfig) { c.Scoring.LinePoints = 0 }, "line_points"},
		{"zero threshold", func(c *TetrisConfig) { c.Scoring.LevelThreshold = 0 }, "level_threshold"},
		{"negative cap", func(c *TetrisConfig) { c.Autoplay.MaxPieces = -1 }, "max_pieces"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.wantErr)
			}
		})
	}
}
