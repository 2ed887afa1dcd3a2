package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config содержит настройки для логгера.
type Config struct {
	Level       string // debug, info, warn, error; пусто - по режиму
	Encoding    string // json или console; пусто - по режиму
	OutputPath  string // пусто - stdout
	Development bool   // caller, stacktrace с warn, console и debug по умолчанию
}

// New создает zap.Logger. Development и production отличаются
// уровнем и форматом по умолчанию, а также наличием caller и stacktrace.
func New(cfg Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(defaultLevel(cfg.Development))
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
			// Логгер еще не создан, пишем в stderr
			fmt.Fprintf(os.Stderr, "Invalid log level '%s', using '%s'. Error: %v\n",
				cfg.Level, defaultLevel(cfg.Development), err)
			level.SetLevel(defaultLevel(cfg.Development))
		}
	}

	encoding := resolveEncoding(cfg.Encoding, cfg.Development)

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if encoding == "console" {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	outputPath := cfg.OutputPath
	if outputPath == "" {
		outputPath = "stdout"
	}

	zapConfig := zap.Config{
		Level:             level,
		Development:       cfg.Development,
		DisableCaller:     !cfg.Development,
		DisableStacktrace: !cfg.Development,
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{outputPath},
		ErrorOutputPaths:  []string{"stderr"},
	}

	// В Development zap сам включает stacktrace начиная с warn
	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

func defaultLevel(development bool) zapcore.Level {
	if development {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

func resolveEncoding(raw string, development bool) string {
	switch encoding := strings.ToLower(raw); encoding {
	case "json", "console":
		return encoding
	}
	if development {
		return "console"
	}
	return "json"
}
