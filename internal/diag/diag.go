// Package diag defines the advisory diagnostics carried alongside computed
// results. Range violations in the models are recoverable: the computation
// continues with a coerced value and reports what it did through a
// Diagnostic rather than failing. Callers that want strict behaviour can
// inspect the diagnostics and upgrade them to errors themselves.
package diag

import "fmt"

// Code identifies the kind of range violation that was coerced.
type Code string

const (
	// CodeModelFallback: unrecognized critical-area model, RCC used instead.
	CodeModelFallback Code = "model_fallback"
	// CodeNegativeHeight: negative impact height coerced to 0.
	CodeNegativeHeight Code = "negative_height"
	// CodeAngleOutOfRange: glide angle outside [0, 180] replaced with 90.
	CodeAngleOutOfRange Code = "angle_out_of_range"
	// CodeAngleTooShallow: glide angle below 1 degree clamped to 1.
	CodeAngleTooShallow Code = "angle_too_shallow"
)

// Diagnostic is a single advisory produced during a computation.
type Diagnostic struct {
	Code    Code
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Code, d.Message)
}

// Newf builds a Diagnostic with a formatted message.
func Newf(code Code, format string, args ...any) Diagnostic {
	return Diagnostic{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Logger is the pluggable sink the engine reports diagnostics to as they
// occur. Implementations must be safe for reuse across calls.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// NopLogger discards everything. Used when no sink is configured.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}
