// Package logx holds the process-wide logger. Code logs through L(), which
// is a no-op until InitFromEnv runs, so importing packages stay silent in
// tests.
package logx

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// L returns the process logger.
func L() *zap.Logger { return logger }

// InitFromEnv builds the logger from LOG_* environment variables:
//
//	LOG_LEVEL       debug, info, warn or error (default info)
//	LOG_FORMAT      console or json (default console)
//	LOG_TO_CONSOLE  default true
//	LOG_TO_FILE     default false
//	LOG_FILE        default logs/clickchess.log
//
// With every sink disabled the logger stays a no-op.
func InitFromEnv() {
	level := parseLevel(getenv("LOG_LEVEL", "info"))
	format := strings.ToLower(getenv("LOG_FORMAT", "console"))
	toConsole := getbool("LOG_TO_CONSOLE", true)
	toFile := getbool("LOG_TO_FILE", false)
	logFile := getenv("LOG_FILE", filepath.Join("logs", "clickchess.log"))

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	newEncoder := func() zapcore.Encoder {
		if format == "json" {
			return zapcore.NewJSONEncoder(encCfg)
		}
		return zapcore.NewConsoleEncoder(encCfg)
	}

	var cores []zapcore.Core
	if toConsole {
		cores = append(cores, zapcore.NewCore(newEncoder(), zapcore.Lock(os.Stderr), level))
	}
	if toFile {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err == nil {
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err == nil {
				cores = append(cores, zapcore.NewCore(newEncoder(), zapcore.Lock(f), level))
			}
		}
	}
	if len(cores) == 0 {
		logger = zap.NewNop()
		return
	}

	logger = zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zapcore.ErrorLevel))
}

// Sync flushes buffered entries. Harmless on the no-op logger.
func Sync() { _ = logger.Sync() }

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
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
