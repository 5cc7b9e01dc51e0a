package logger

import (
	"go.uber.org/zap"
)

type LoggerAdapter struct {
	logger *zap.Logger
}

// NewLoggerAdapter builds a zap-backed logger: JSON output in production,
// console output everywhere else.
func NewLoggerAdapter(env string) *LoggerAdapter {
	var zapLogger *zap.Logger
	var err error

	if env == "production" {
		zapLogger, err = zap.NewProduction()
	} else {
		zapLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		zapLogger = zap.NewNop()
	}

	return &LoggerAdapter{logger: zapLogger}
}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() *LoggerAdapter {
	return &LoggerAdapter{logger: zap.NewNop()}
}

func (l *LoggerAdapter) Debug(message string, fields map[string]interface{}) {
	l.logger.Debug(message, zapFields(fields)...)
}

func (l *LoggerAdapter) Info(message string, fields map[string]interface{}) {
	l.logger.Info(message, zapFields(fields)...)
}

func (l *LoggerAdapter) Warn(message string, fields map[string]interface{}) {
	l.logger.Warn(message, zapFields(fields)...)
}

func (l *LoggerAdapter) Error(message string, fields map[string]interface{}) {
	l.logger.Error(message, zapFields(fields)...)
}

func zapFields(fields map[string]interface{}) []zap.Field {
	zf := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		zf = append(zf, zap.Any(key, value))
	}
	return zf
}
