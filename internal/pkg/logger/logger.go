package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New создает логгер: JSON в production, цветная консоль для уровня debug.
// Неизвестный уровень трактуется как info.
func New(level string, fields ...zap.Field) (*zap.Logger, error) {
	return build(level, "stdout", fields...)
}

// NewStderr - тот же логгер, но пишет в stderr (CLI, где stdout занят результатом)
func NewStderr(level string, fields ...zap.Field) (*zap.Logger, error) {
	return build(level, "stderr", fields...)
}

func build(level, output string, fields ...zap.Field) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if zapLevel == zapcore.DebugLevel {
		config.Development = true
		config.Encoding = "console"
		config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return config.Build(zap.Fields(fields...))
}
