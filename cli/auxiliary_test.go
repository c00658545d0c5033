package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOr(t *testing.T) {
	t.Setenv("CRC32_TEST_KEY", "value")
	assert.Equal(t, "value", EnvOr("CRC32_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", EnvOr("CRC32_TEST_UNSET_KEY", "fallback"))

	t.Setenv("CRC32_TEST_EMPTY_KEY", "")
	assert.Equal(t, "fallback", EnvOr("CRC32_TEST_EMPTY_KEY", "fallback"))
}

func TestEnvToBool(t *testing.T) {
	for val, want := range map[string]bool{"1": true, "true": true, "TRUE": true, "0": false, "false": false} {
		t.Setenv("CRC32_TEST_BOOL", val)
		got, err := EnvToBool("CRC32_TEST_BOOL")
		assert.NoError(t, err)
		assert.Equal(t, want, got, "value '%s'", val)
	}

	t.Setenv("CRC32_TEST_BOOL", "maybe")
	_, err := EnvToBool("CRC32_TEST_BOOL")
	assert.Error(t, err)
}
