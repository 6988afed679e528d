// Package logger builds zap loggers from declarative config, for use by
// ConfigFromFile and the examples.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the log level, format and output destination.
type Config struct {
	// Level is one of debug, info, warn, error. Empty disables logging.
	Level string `yaml:"level"`
	// Format is json (default) or console.
	Format string `yaml:"format"`
	// Output is stdout (default) or stderr.
	Output string `yaml:"output"`
	// Development enables caller annotation and colored console levels.
	Development bool `yaml:"development"`
}

// New builds a zap logger from config. The zero config yields a nop logger:
// a library should stay silent unless the caller opts in.
func New(config Config) (*zap.Logger, error) {
	if config == (Config{}) {
		return zap.NewNop(), nil
	}

	level := zap.NewAtomicLevel()
	switch config.Level {
	case "debug":
		level.SetLevel(zapcore.DebugLevel)
	case "warn":
		level.SetLevel(zapcore.WarnLevel)
	case "error":
		level.SetLevel(zapcore.ErrorLevel)
	default:
		level.SetLevel(zapcore.InfoLevel)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "@timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.LevelKey = "log.level"
	encoderConfig.MessageKey = "message"

	if config.Development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var encoder zapcore.Encoder
	if config.Format == "console" {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	var writeSyncer zapcore.WriteSyncer
	if config.Output == "stderr" {
		writeSyncer = zapcore.AddSync(os.Stderr)
	} else {
		writeSyncer = zapcore.AddSync(os.Stdout)
	}

	log := zap.New(zapcore.NewCore(encoder, writeSyncer, level))
	if config.Development {
		log = log.WithOptions(zap.AddCaller())
	}
	return log, nil
}
