// Package logging sets up the session log. Log output goes to a
// rotating file only; the console is reserved for the interactive
// dialog.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rolodex/rolo/internal/config"
)

// New builds a logger for the given log configuration. An empty
// filename yields a nop logger so call sites never need a nil check.
func New(cfg config.LogConfig) (*zap.SugaredLogger, error) {
	if cfg.File == "" {
		return zap.NewNop().Sugar(), nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	})

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, level)

	return zap.New(core).Sugar(), nil
}
