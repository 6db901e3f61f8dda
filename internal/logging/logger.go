package logging

import (
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// BuildProduction builds a JSON logger on stderr. The level comes from
// ORGSCOPE_LOG_LEVEL when set, otherwise from level.
func BuildProduction(level string) (*zap.Logger, error) {
	if env := os.Getenv("ORGSCOPE_LOG_LEVEL"); env != "" {
		level = env
	}

	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	c.EncoderConfig.StacktraceKey = ""
	c.EncoderConfig.CallerKey = ""
	c.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	log, err := c.Build()
	if err != nil {
		return nil, err
	}
	return log, nil
}

func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}
