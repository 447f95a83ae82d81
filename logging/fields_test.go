package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/GriffinCanCode/ufloat"
	"github.com/GriffinCanCode/ufloat/logging"
)

func observe(t *testing.T, fields ...zap.Field) map[string]interface{} {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	zap.New(core).Info("measured", fields...)

	entries := logs.All()
	require.Len(t, entries, 1)
	return entries[0].ContextMap()
}

func TestFields(t *testing.T) {
	a := ufloat.New(2.6, 10.3)
	b := ufloat.New(-1, 0.5)

	t.Run("UFloat", func(t *testing.T) {
		ctx := observe(t, logging.UFloat("value", a))
		assert.Equal(t, map[string]interface{}{"nominal": 2.6, "uncertainty": 10.3}, ctx["value"])
	})

	t.Run("UFloats", func(t *testing.T) {
		ctx := observe(t, logging.UFloats("values", []ufloat.UFloat{a, b}))
		assert.Equal(t, []interface{}{
			map[string]interface{}{"nominal": 2.6, "uncertainty": 10.3},
			map[string]interface{}{"nominal": -1.0, "uncertainty": 0.5},
		}, ctx["values"])
	})

	t.Run("UFloatText", func(t *testing.T) {
		ctx := observe(t, logging.UFloatText("value", a))
		assert.Equal(t, "2.6+/-10.3", ctx["value"])
	})

	t.Run("UFloatTexts", func(t *testing.T) {
		ctx := observe(t, logging.UFloatTexts("values", []ufloat.UFloat{a, b}))
		assert.Equal(t, []interface{}{"2.6+/-10.3", "-1+/-0.5"}, ctx["values"])
	})
}
