package logger

import (
	"sort"

	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LoggerAdapter struct {
	logger *zap.SugaredLogger
}

var _ ports.LoggerPort = (*LoggerAdapter)(nil)

// NewLoggerAdapter builds a JSON logger; production gets info level and
// sampling, everything else debug level.
func NewLoggerAdapter(env string) *LoggerAdapter {
	var config zap.Config
	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Encoding = "json"

	logger, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewExample()
	}

	return &LoggerAdapter{logger: logger.Sugar()}
}

// NewFromZap wraps an existing zap logger, e.g. zaptest or zap.NewNop.
func NewFromZap(l *zap.Logger) *LoggerAdapter {
	return &LoggerAdapter{logger: l.Sugar()}
}

func (l *LoggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debugw(msg, keysAndValues(fields)...)
}

func (l *LoggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Infow(msg, keysAndValues(fields)...)
}

func (l *LoggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warnw(msg, keysAndValues(fields)...)
}

func (l *LoggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Errorw(msg, keysAndValues(fields)...)
}

func (l *LoggerAdapter) Sync() error {
	return l.logger.Sync()
}

// keysAndValues flattens fields in key order so output is stable.
func keysAndValues(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	kv := make([]interface{}, 0, len(fields)*2)
	for _, k := range keys {
		kv = append(kv, k, fields[k])
	}
	return kv
}
