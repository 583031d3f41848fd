// Package logging builds the structured file logger. Logs never go to the
// terminal, which belongs to the TUI and to command output.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/smileynet/vetprofile/internal/config"
)

// New returns a JSON logger writing to cfg.File with size-based rotation.
// An empty cfg.File yields a no-op logger.
func New(cfg config.Log) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("logging: creating directory: %w", err)
	}

	core := zapcore.NewCore(newEncoder(), newWriter(cfg), level)
	return zap.New(core, zap.AddCaller()), nil
}

// newWriter returns a rotating file writer.
func newWriter(cfg config.Log) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	})
}

func newEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(encoderConfig)
}
