package logging

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger creates a [*zap.Logger] from conf, which is either the name of
// a built-in preset or a path to a JSON configuration file for [zap.Config].
//
// Available presets: console, console-nocolor, console-notime, systemd,
// production, development. The level only applies to the console and systemd
// presets.
func NewZapLogger(conf string, level zapcore.Level) (*zap.Logger, error) {
	var cfg zap.Config
	switch conf {
	case "console", "":
		cfg = consoleConfig(level, true, true)
	case "console-nocolor":
		cfg = consoleConfig(level, false, true)
	case "console-notime":
		cfg = consoleConfig(level, true, false)
	case "systemd":
		cfg = consoleConfig(level, false, false)
	case "production":
		cfg = zap.NewProductionConfig()
	case "development":
		cfg = zap.NewDevelopmentConfig()
	default:
		b, err := os.ReadFile(conf)
		if err != nil {
			return nil, fmt.Errorf("failed to read zap config %s: %w", conf, err)
		}
		if err = json.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse zap config %s: %w", conf, err)
		}
	}
	return cfg.Build()
}

func consoleConfig(level zapcore.Level, color, timestamp bool) zap.Config {
	ec := zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		NameKey:        "N",
		CallerKey:      zapcore.OmitKey,
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "M",
		StacktraceKey:  zapcore.OmitKey,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	if color {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	if !timestamp {
		ec.TimeKey = zapcore.OmitKey
	}
	return zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		DisableCaller:     true,
		DisableStacktrace: true,
		Encoding:          "console",
		EncoderConfig:     ec,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
}
