package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes into dir for the test and restores the original
// working directory afterwards (t.Chdir needs Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(orig)) })
}

// unsetEnv clears a variable for the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "") // registers restoration of the original value
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadEnvFilesLocalOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("SOURCELIB_ENV_SHARED=base\nSOURCELIB_ENV_BASE_ONLY=base\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"),
		[]byte("SOURCELIB_ENV_SHARED=local\n"), 0o644))

	unsetEnv(t, "SOURCELIB_ENV_SHARED")
	unsetEnv(t, "SOURCELIB_ENV_BASE_ONLY")
	chdir(t, dir)

	loadEnvFiles()

	// godotenv never overwrites set variables, so .env.local must be
	// loaded first for its values to win.
	assert.Equal(t, "local", os.Getenv("SOURCELIB_ENV_SHARED"))
	assert.Equal(t, "base", os.Getenv("SOURCELIB_ENV_BASE_ONLY"))
}

func TestLoadEnvFilesKeepsProcessEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("SOURCELIB_ENV_PRESET=file\n"), 0o644))

	t.Setenv("SOURCELIB_ENV_PRESET", "process")
	chdir(t, dir)

	loadEnvFiles()
	assert.Equal(t, "process", os.Getenv("SOURCELIB_ENV_PRESET"))
}
