package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestGetEnv tests the getEnv helper function
func TestGetEnv(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_STRING_VAR")
		result := getEnv("TEST_STRING_VAR", "fallback")
		assert.Equal(t, "fallback", result)
	})

	t.Run("returns value from env var", func(t *testing.T) {
		t.Setenv("TEST_STRING_VAR", "configured")
		result := getEnv("TEST_STRING_VAR", "fallback")
		assert.Equal(t, "configured", result)
	})

	t.Run("returns empty string when explicitly set empty", func(t *testing.T) {
		t.Setenv("TEST_STRING_VAR", "")
		result := getEnv("TEST_STRING_VAR", "fallback")
		assert.Equal(t, "", result)
	})
}

// TestGetEnvAsInt tests the getEnvAsInt helper function
func TestGetEnvAsInt(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_INT_VAR")
		result := getEnvAsInt("TEST_INT_VAR", 42)
		assert.Equal(t, 42, result)
	})

	t.Run("parses valid integer from env var", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "100")
		result := getEnvAsInt("TEST_INT_VAR", 42)
		assert.Equal(t, 100, result)
	})

	t.Run("returns default for invalid integer", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "not-a-number")
		result := getEnvAsInt("TEST_INT_VAR", 42)
		assert.Equal(t, 42, result, "Should return default for invalid integer")
	})

	t.Run("parses negative integers", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "-10")
		result := getEnvAsInt("TEST_INT_VAR", 42)
		assert.Equal(t, -10, result)
	})

	t.Run("parses zero", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "0")
		result := getEnvAsInt("TEST_INT_VAR", 42)
		assert.Equal(t, 0, result)
	})

	t.Run("returns default for float values", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "42.5")
		result := getEnvAsInt("TEST_INT_VAR", 10)
		assert.Equal(t, 10, result, "Should return default for float values")
	})

	t.Run("returns default for empty string", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "")
		result := getEnvAsInt("TEST_INT_VAR", 42)
		assert.Equal(t, 42, result)
	})
}

// TestGetEnvAsDuration tests the getEnvAsDuration helper function
func TestGetEnvAsDuration(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_DURATION_VAR")
		result := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		assert.Equal(t, 5*time.Minute, result)
	})

	t.Run("parses valid duration from env var", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "10m")
		result := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		assert.Equal(t, 10*time.Minute, result)
	})

	t.Run("parses complex duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "1h30m45s")
		result := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		expected := 1*time.Hour + 30*time.Minute + 45*time.Second
		assert.Equal(t, expected, result)
	})

	t.Run("returns default for invalid duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "ten minutes")
		result := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		assert.Equal(t, 5*time.Minute, result, "Should return default for invalid duration")
	})

	t.Run("returns default for bare number", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "30")
		result := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		assert.Equal(t, 5*time.Minute, result, "Durations require a unit suffix")
	})
}

// TestGetEnvAsList tests the getEnvAsList helper function
func TestGetEnvAsList(t *testing.T) {
	t.Run("returns nil when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_LIST_VAR")
		result := getEnvAsList("TEST_LIST_VAR")
		assert.Nil(t, result)
	})

	t.Run("returns nil for empty string", func(t *testing.T) {
		t.Setenv("TEST_LIST_VAR", "")
		result := getEnvAsList("TEST_LIST_VAR")
		assert.Nil(t, result)
	})

	t.Run("splits comma-separated values", func(t *testing.T) {
		t.Setenv("TEST_LIST_VAR", "alpha,beta,gamma")
		result := getEnvAsList("TEST_LIST_VAR")
		assert.Equal(t, []string{"alpha", "beta", "gamma"}, result)
	})

	t.Run("trims whitespace around entries", func(t *testing.T) {
		t.Setenv("TEST_LIST_VAR", " alpha , beta ,gamma ")
		result := getEnvAsList("TEST_LIST_VAR")
		assert.Equal(t, []string{"alpha", "beta", "gamma"}, result)
	})

	t.Run("drops empty entries", func(t *testing.T) {
		t.Setenv("TEST_LIST_VAR", "alpha,,beta,")
		result := getEnvAsList("TEST_LIST_VAR")
		assert.Equal(t, []string{"alpha", "beta"}, result)
	})

	t.Run("keeps spaces inside entries", func(t *testing.T) {
		t.Setenv("TEST_LIST_VAR", "Plant A,Plant B")
		result := getEnvAsList("TEST_LIST_VAR")
		assert.Equal(t, []string{"Plant A", "Plant B"}, result)
	})
}
