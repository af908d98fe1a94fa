package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PAGEKIT_TEST_LIMIT=42\n"), 0o600))
	t.Setenv("ENV_PATH", path)
	t.Setenv("PAGEKIT_TEST_LIMIT", "")
	require.NoError(t, os.Unsetenv("PAGEKIT_TEST_LIMIT"))

	require.NoError(t, LoadDotEnv("local", "unused"))

	n, err := Int("PAGEKIT_TEST_LIMIT", 1)
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestLoadDotEnv_Missing(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))

	assert.Error(t, LoadDotEnv("local", "unused"))
	assert.NoError(t, LoadDotEnv("production", "unused"))
}

func TestStringAndInt(t *testing.T) {
	t.Setenv("PAGEKIT_TEST_STR", "")
	assert.Equal(t, "fallback", String("PAGEKIT_TEST_STR", "fallback"))

	t.Setenv("PAGEKIT_TEST_STR", "value")
	assert.Equal(t, "value", String("PAGEKIT_TEST_STR", "fallback"))

	t.Setenv("PAGEKIT_TEST_INT", "nope")
	_, err := Int("PAGEKIT_TEST_INT", 3)
	assert.Error(t, err)
}
