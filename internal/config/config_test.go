package config

import (
	"testing"
	"time"

	"cascade/internal/search"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/data/puzzles", "/data/puzzles"},
		{"single trailing slash", "/data/puzzles/", "/data/puzzles"},
		{"multiple trailing slashes", "/data/puzzles///", "/data/puzzles"},
		{"root path", "/", "/"},
		{"relative path", "puzzles", "puzzles"},
		{"relative with slash", "puzzles/", "puzzles"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_Strategy(t *testing.T) {
	tests := []struct {
		name     string
		strategy search.Strategy
		wantErr  bool
	}{
		{"astar is valid", search.StrategyAStar, false},
		{"bfs is valid", search.StrategyBFS, false},
		{"iddfs is valid", search.StrategyIDDFS, false},
		{"greedy is valid", search.StrategyGreedy, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "dfs", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Strategy = tt.strategy
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "sometimes", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Timeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timeout = -time.Second
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail for a negative timeout")
	}

	cfg.Timeout = 30 * time.Second
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestValidate_RequiresInputDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail when the input directory is empty")
	}
}

func TestValidate_BlankDriver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DriverCmd = "   "
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail for a blank driver command")
	}

	cfg.DriverCmd = "python3 driver.py"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.InputDir != "." {
		t.Errorf("default InputDir = %q, want %q", cfg.InputDir, ".")
	}
	if cfg.OutputDir != "" {
		t.Errorf("default OutputDir = %q, want empty", cfg.OutputDir)
	}
	if cfg.Strategy != search.StrategyAStar {
		t.Errorf("default Strategy = %q, want %q", cfg.Strategy, search.StrategyAStar)
	}
	if cfg.DriverCmd != "" {
		t.Errorf("default DriverCmd = %q, want empty", cfg.DriverCmd)
	}
	if cfg.Timeout != 0 {
		t.Errorf("default Timeout = %s, want 0", cfg.Timeout)
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("default ColorMode = %q, want %q", cfg.ColorMode, ColorAuto)
	}
	if cfg.SkipExisting {
		t.Error("default SkipExisting should be false; the legacy script always re-solved")
	}
	if cfg.DryRun {
		t.Error("default DryRun should be false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}
