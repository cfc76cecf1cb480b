package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uasrisk/casex/internal/diag"
)

// Compile-time check: the adapter satisfies the engine's sink interface.
var _ diag.Logger = (*DiagnosticLogger)(nil)

func TestDiagnosticLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	l := NewDiagnosticLogger(zerolog.New(&buf))

	l.Warn("glide angle clamped", "code", diag.CodeAngleTooShallow, "angle", 0.5)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "glide angle clamped", entry["message"])
	assert.Equal(t, string(diag.CodeAngleTooShallow), entry["code"])
	assert.Equal(t, 0.5, entry["angle"])
}

func TestToFields_IgnoresDanglingAndNonStringKeys(t *testing.T) {
	fields := toFields([]any{"a", 1, 2, "ignored-pair", "dangling"})
	assert.Equal(t, map[string]any{"a": 1}, fields)
}
