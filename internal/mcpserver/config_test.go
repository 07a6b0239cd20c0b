package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvBool(t *testing.T) {
	t.Run("unset uses fallback", func(t *testing.T) {
		assert.True(t, envBool("ODATATOOLS_TEST_BOOL", true))
		assert.False(t, envBool("ODATATOOLS_TEST_BOOL", false))
	})

	t.Run("valid value", func(t *testing.T) {
		t.Setenv("ODATATOOLS_TEST_BOOL", "true")
		assert.True(t, envBool("ODATATOOLS_TEST_BOOL", false))
	})

	t.Run("invalid value uses fallback", func(t *testing.T) {
		t.Setenv("ODATATOOLS_TEST_BOOL", "not-a-bool")
		assert.True(t, envBool("ODATATOOLS_TEST_BOOL", true))
	})
}

func TestEnvInt(t *testing.T) {
	t.Run("unset uses fallback", func(t *testing.T) {
		assert.Equal(t, 10, envInt("ODATATOOLS_TEST_INT", 10))
	})

	t.Run("valid value", func(t *testing.T) {
		t.Setenv("ODATATOOLS_TEST_INT", "42")
		assert.Equal(t, 42, envInt("ODATATOOLS_TEST_INT", 10))
	})

	t.Run("non-positive value uses fallback", func(t *testing.T) {
		t.Setenv("ODATATOOLS_TEST_INT", "0")
		assert.Equal(t, 10, envInt("ODATATOOLS_TEST_INT", 10))
	})
}

func TestEnvDuration(t *testing.T) {
	t.Run("unset uses fallback", func(t *testing.T) {
		assert.Equal(t, time.Minute, envDuration("ODATATOOLS_TEST_DUR", time.Minute))
	})

	t.Run("valid value", func(t *testing.T) {
		t.Setenv("ODATATOOLS_TEST_DUR", "30s")
		assert.Equal(t, 30*time.Second, envDuration("ODATATOOLS_TEST_DUR", time.Minute))
	})

	t.Run("invalid value uses fallback", func(t *testing.T) {
		t.Setenv("ODATATOOLS_TEST_DUR", "soon")
		assert.Equal(t, time.Minute, envDuration("ODATATOOLS_TEST_DUR", time.Minute))
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	c := loadConfig()
	assert.True(t, c.CacheEnabled)
	assert.False(t, c.ValidateStrict)
	assert.False(t, c.ValidateKeys)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Positive(t, c.MaxInlineSize)
}
