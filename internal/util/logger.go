// internal/util/logger.go
package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig controls the global logger.
type LogConfig struct {
	Level      string // debug|info|warn|error
	File       string // optional rotating file, empty means stdout only
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

var logger *zap.Logger

// InitLogger builds the global JSON logger: stdout always, plus a lumberjack file core when File is set.
func InitLogger(cfg LogConfig) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.MessageKey = "msg"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder

	level := zap.NewAtomicLevelAt(ParseLevel(cfg.Level))
	enc := zapcore.NewJSONEncoder(encoderConfig)
	cores := []zapcore.Core{zapcore.NewCore(enc, zapcore.Lock(os.Stdout), level)}

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "warning: failed to create log directory for %s: %v\n", cfg.File, err)
		} else {
			lw := &lumberjack.Logger{
				Filename:   cfg.File,
				MaxSize:    cfg.MaxSizeMB,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAgeDays,
				Compress:   true,
			}
			cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(lw), level))
		}
	}

	logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	zap.ReplaceGlobals(logger)
	return logger
}

// GetLogger returns the initialized global logger.
func GetLogger() *zap.Logger {
	if logger == nil {
		return InitLogger(LogConfig{})
	}
	return logger
}

// ParseLevel maps a textual level to zap, defaulting to info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
