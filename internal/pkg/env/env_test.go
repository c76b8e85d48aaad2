package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvFallbackOrder(t *testing.T) {
	Env = map[string]string{"FROM_FILE": "file-value"}
	t.Setenv("FROM_OS", "os-value")

	assert.Equal(t, "file-value", GetEnv("FROM_FILE", "default"))
	assert.Equal(t, "os-value", GetEnv("FROM_OS", "default"))
	assert.Equal(t, "default", GetEnv("MISSING_KEY", "default"))
}

func TestGetEnvDuration(t *testing.T) {
	Env = map[string]string{
		"VALID":   "30s",
		"INVALID": "soon",
	}

	assert.Equal(t, 30*time.Second, GetEnvDuration("VALID", time.Minute))
	assert.Equal(t, time.Minute, GetEnvDuration("INVALID", time.Minute))
	assert.Equal(t, time.Minute, GetEnvDuration("MISSING", time.Minute))
}
