package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config contains the configurable items for this package
type Config struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func NewDefaultConfig() Config {
	return Config{Level: "info"}
}

type Logger struct {
	*zap.Logger
	name string
}

// New builds a logger writing to stderr. Development switches to the console
// encoder with caller information.
func New(cfg Config) (*Logger, error) {
	level, err := zapcore.ParseLevel(strings.TrimSpace(cfg.Level))
	if err != nil && cfg.Level != "" {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}
	if cfg.Level == "" {
		level = zapcore.InfoLevel
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zl, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return FromZap(zl), nil
}

func NewNop() *Logger {
	return FromZap(zap.NewNop())
}

// FromZap wraps an existing zap logger, e.g. one built on an observer core in
// tests.
func FromZap(zl *zap.Logger) *Logger {
	return &Logger{Logger: zl}
}

func (log *Logger) GetName() string {
	return log.name
}

func (log *Logger) Named(name string) *Logger {
	newName := name
	if log.name != "" {
		newName = fmt.Sprintf("%s.%s", log.name, name)
	}
	return &Logger{
		Logger: log.Logger.Named(name),
		name:   newName,
	}
}

func (log *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{
		Logger: log.Logger.With(fields...),
		name:   log.name,
	}
}

// AtExit flushes the logs before exiting the process. This is meant to be
// used with defer when initializing your logger.
func (log *Logger) AtExit() {
	if log.Logger != nil {
		_ = log.Logger.Sync()
	}
}
