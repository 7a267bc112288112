package config

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CHESS_THEME", "CHESS_DATA_DIR", "CHESS_WINDOW_SCALE",
		"CHESS_FULLSCREEN", "CHESS_SOUND",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if cfg.Theme != "" {
		t.Errorf("Theme = %q, want empty", cfg.Theme)
	}
	if cfg.DataDir != "" {
		t.Errorf("DataDir = %q, want empty", cfg.DataDir)
	}
	if cfg.WindowScale != 1 {
		t.Errorf("WindowScale = %v, want 1", cfg.WindowScale)
	}
	if cfg.Fullscreen {
		t.Error("Fullscreen = true, want false")
	}
	if !cfg.Sound {
		t.Error("Sound = false, want true")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHESS_THEME", "rose")
	t.Setenv("CHESS_DATA_DIR", "/tmp/chess")
	t.Setenv("CHESS_WINDOW_SCALE", "1.5")
	t.Setenv("CHESS_FULLSCREEN", "true")
	t.Setenv("CHESS_SOUND", "false")

	cfg := Load()
	if cfg.Theme != "rose" {
		t.Errorf("Theme = %q, want rose", cfg.Theme)
	}
	if cfg.DataDir != "/tmp/chess" {
		t.Errorf("DataDir = %q, want /tmp/chess", cfg.DataDir)
	}
	if cfg.WindowScale != 1.5 {
		t.Errorf("WindowScale = %v, want 1.5", cfg.WindowScale)
	}
	if !cfg.Fullscreen {
		t.Error("Fullscreen = false, want true")
	}
	if cfg.Sound {
		t.Error("Sound = true, want false")
	}
}

func TestWindowScaleClamped(t *testing.T) {
	tests := []struct {
		value string
		want  float64
	}{
		{"0.1", 0.5},
		{"0.5", 0.5},
		{"2", 2},
		{"3", 3},
		{"10", 3},
		{"-1", 0.5},
		{"not-a-number", 1},
		{" 1.25 ", 1.25},
	}

	for _, tc := range tests {
		clearEnv(t)
		t.Setenv("CHESS_WINDOW_SCALE", tc.value)
		if got := Load().WindowScale; got != tc.want {
			t.Errorf("CHESS_WINDOW_SCALE=%q: WindowScale = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestMalformedBoolsFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHESS_FULLSCREEN", "yes please")
	t.Setenv("CHESS_SOUND", "nope")

	cfg := Load()
	if cfg.Fullscreen {
		t.Error("Fullscreen = true for a malformed value")
	}
	if !cfg.Sound {
		t.Error("Sound = false for a malformed value")
	}
}
