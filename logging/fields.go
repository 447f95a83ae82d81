package logging

import (
	"github.com/samber/lo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/GriffinCanCode/ufloat"
)

// UFloat creates a structured field for a single measured value.
func UFloat(key string, v ufloat.UFloat) zap.Field {
	return zap.Object(key, v)
}

// UFloats creates an array field of measured values.
func UFloats(key string, vs []ufloat.UFloat) zap.Field {
	return zap.Objects(key, vs)
}

// UFloatText creates a string field using the "<nominal>+/-<uncertainty>" form.
func UFloatText(key string, v ufloat.UFloat) zap.Field {
	return zap.Stringer(key, v)
}

// UFloatTexts creates a string array field using the text form of each value.
func UFloatTexts(key string, vs []ufloat.UFloat) zap.Field {
	return zap.Strings(key, lo.Map(vs, func(v ufloat.UFloat, _ int) string { return v.String() }))
}

// compile-time check
var _ zapcore.ObjectMarshaler = ufloat.UFloat{}
