package envutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTypedLookups(t *testing.T) {
	t.Setenv("ENVUTIL_INT", " 42 ")
	t.Setenv("ENVUTIL_BAD_INT", "forty")
	t.Setenv("ENVUTIL_BOOL", "yes")
	t.Setenv("ENVUTIL_DUR", "15")
	t.Setenv("ENVUTIL_DUR2", "250ms")
	t.Setenv("ENVUTIL_CSV", "a, ,b,")
	t.Setenv("ENVUTIL_FLOAT", "2.5")

	assert.Equal(t, 42, Int("ENVUTIL_INT", 1))
	assert.Equal(t, 1, Int("ENVUTIL_BAD_INT", 1))
	assert.Equal(t, 7, Int("ENVUTIL_MISSING", 7))
	assert.True(t, Bool("ENVUTIL_BOOL", false))
	assert.Equal(t, 15*time.Second, Duration("ENVUTIL_DUR", time.Second))
	assert.Equal(t, 250*time.Millisecond, Duration("ENVUTIL_DUR2", time.Second))
	assert.Equal(t, []string{"a", "b"}, CSV("ENVUTIL_CSV", nil))
	assert.Equal(t, 2.5, Float("ENVUTIL_FLOAT", 0))
	assert.Equal(t, "fallback", String("ENVUTIL_MISSING", "fallback"))
}
