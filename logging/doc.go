// Package logging provides uber/zap fields for measured values.
//
// A ufloat.UFloat already implements zapcore.ObjectMarshaler; these helpers
// name the common cases so call sites read the same everywhere:
//
//	logger.Info("calibrated", logging.UFloat("offset", offset))
//	logger.Debug("readings", logging.UFloats("samples", readings))
//
// Each value is encoded as an object with "nominal" and "uncertainty" keys.
package logging
