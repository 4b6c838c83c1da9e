package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/km-arc/go-forge/framework/config"
)

// ── Env / EnvInt / EnvBool ───────────────────────────────────────────────────

func TestEnv_ReturnsValue(t *testing.T) {
	t.Setenv("CUSTOM_KEY", "hello")
	assert.Equal(t, "hello", config.Env("CUSTOM_KEY", "default"))
}

func TestEnv_ReturnsFallback(t *testing.T) {
	os.Unsetenv("MISSING_KEY")
	assert.Equal(t, "fallback", config.Env("MISSING_KEY", "fallback"))
}

func TestEnvInt_ReturnsInt(t *testing.T) {
	t.Setenv("SOME_INT", "42")
	assert.Equal(t, 42, config.EnvInt("SOME_INT", 0))
}

func TestEnvInt_ReturnsFallbackOnInvalid(t *testing.T) {
	t.Setenv("SOME_INT", "notanint")
	assert.Equal(t, 99, config.EnvInt("SOME_INT", 99))
}

func TestEnvBool_True(t *testing.T) {
	for _, val := range []string{"true", "1", "True", "TRUE"} {
		t.Setenv("BOOL_KEY", val)
		assert.True(t, config.EnvBool("BOOL_KEY", false), "expected true for %q", val)
	}
}

func TestEnvBool_False(t *testing.T) {
	t.Setenv("BOOL_KEY", "false")
	assert.False(t, config.EnvBool("BOOL_KEY", true))
}

func TestEnvBool_ReturnsFallbackOnInvalid(t *testing.T) {
	t.Setenv("BOOL_KEY", "notabool")
	assert.True(t, config.EnvBool("BOOL_KEY", true))
}

// ── LoadEnv ──────────────────────────────────────────────────────────────────

func TestLoadEnv_MissingFileIsNonFatal(t *testing.T) {
	assert.NotPanics(t, func() { config.LoadEnv("testdata/does-not-exist.env") })
}

func TestLoadEnv_ReadsFile(t *testing.T) {
	os.Unsetenv("FORGE_ENV_TEST_KEY")
	dir := t.TempDir()
	path := dir + "/.env"
	assert.NoError(t, os.WriteFile(path, []byte("FORGE_ENV_TEST_KEY=loaded\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("FORGE_ENV_TEST_KEY") })

	config.LoadEnv(path)

	assert.Equal(t, "loaded", config.Env("FORGE_ENV_TEST_KEY", ""))
}
