package logging

import "github.com/rs/zerolog"

// DiagnosticLogger adapts zerolog.Logger to the diag.Logger interface the
// critical-area engine reports through.
type DiagnosticLogger struct {
	logger zerolog.Logger
}

// NewDiagnosticLogger wraps a zerolog.Logger as a diagnostics sink.
func NewDiagnosticLogger(logger zerolog.Logger) *DiagnosticLogger {
	return &DiagnosticLogger{logger: logger}
}

// Debug logs a debug message with optional key-value pairs.
func (l *DiagnosticLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(toFields(keysAndValues)).Msg(msg)
}

// Warn logs an advisory range-violation with optional key-value pairs.
func (l *DiagnosticLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warn().Fields(toFields(keysAndValues)).Msg(msg)
}

// Error logs an error message with optional key-value pairs.
func (l *DiagnosticLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error().Fields(toFields(keysAndValues)).Msg(msg)
}

// toFields converts key-value pairs to a map for zerolog.
func toFields(keysAndValues []any) map[string]any {
	fields := make(map[string]any, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			fields[key] = keysAndValues[i+1]
		}
	}
	return fields
}
