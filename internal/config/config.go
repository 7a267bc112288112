// Package config reads startup settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config carries the process settings. Every field has a usable default
// and Load never fails: malformed values fall back.
type Config struct {
	// Theme overrides the stored board theme when non-empty.
	Theme string
	// DataDir overrides the platform data directory when non-empty.
	DataDir string
	// WindowScale multiplies the initial window size, clamped to [0.5, 3].
	WindowScale float64
	// Fullscreen starts the window fullscreen.
	Fullscreen bool
	// Sound gates audio for the whole process. When false the stored
	// sound preference is ignored.
	Sound bool
}

// Load reads the CHESS_* environment variables.
func Load() Config {
	cfg := Config{
		Theme:       getenv("CHESS_THEME", ""),
		DataDir:     getenv("CHESS_DATA_DIR", ""),
		WindowScale: getfloat("CHESS_WINDOW_SCALE", 1),
		Fullscreen:  getbool("CHESS_FULLSCREEN", false),
		Sound:       getbool("CHESS_SOUND", true),
	}

	if cfg.WindowScale < 0.5 {
		cfg.WindowScale = 0.5
	} else if cfg.WindowScale > 3 {
		cfg.WindowScale = 3
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getbool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getfloat(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
