package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithLevel(t *testing.T) {
	log, err := NewWithLevel("production", "warn")
	require.NoError(t, err)
	assert.False(t, log.SugaredLogger.Desugar().Core().Enabled(-1))

	_, err = NewWithLevel("development", "loud")
	assert.Error(t, err)
}

func TestSanitizeKVs(t *testing.T) {
	out := sanitizeKVs([]interface{}{"email", "ana@example.com", "matricula", "2024-001", "id", 7, "dangling"})
	if !redactionOn() {
		t.Skip("LOG_REDACTION_ENABLED is off")
	}

	require.Len(t, out, 7)
	assert.Equal(t, "[REDACTED]", out[1])
	assert.Contains(t, out[3], "hash:")
	assert.Equal(t, 7, out[5])
	assert.Equal(t, "dangling", out[6])
}
