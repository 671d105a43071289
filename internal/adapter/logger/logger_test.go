package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerAdapterWritesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Info("Component replaced", map[string]interface{}{
		"component_id": "c-1",
		"bike_id":      "b-1",
	})
	l.Warn("Negative install distance", nil)

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Component replaced", entry.Message)
	assert.Equal(t, zapcore.InfoLevel, entry.Level)
	assert.Equal(t, map[string]interface{}{"component_id": "c-1", "bike_id": "b-1"}, entry.ContextMap())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[1].Level)
}

func TestKeysAndValuesSorted(t *testing.T) {
	got := keysAndValues(map[string]interface{}{"b": 2, "a": 1})
	assert.Equal(t, []interface{}{"a", 1, "b", 2}, got)
	assert.Nil(t, keysAndValues(nil))
}
