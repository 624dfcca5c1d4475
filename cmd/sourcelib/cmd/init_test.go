package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gammasky/sourcelib"
)

func resetInitFlags(t *testing.T) {
	t.Helper()
	title, source := initTitle, initSource
	spectral, spatial := initSpectral, initSpatial
	force := initForce
	t.Cleanup(func() {
		initTitle, initSource = title, source
		initSpectral, initSpatial = spectral, spatial
		initForce = force
	})
}

func TestRunInitScaffoldsLibrary(t *testing.T) {
	resetInitFlags(t)
	path := filepath.Join(t.TempDir(), "models.xml")

	initTitle = "scaffold test"
	initSource = "NewSource"
	initSpectral = "PowerLaw"
	initSpatial = "PointSource"

	require.NoError(t, runInit(nil, []string{path}))

	lib, err := sourcelib.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "scaffold test", lib.Title)
	require.Equal(t, 1, lib.Len())

	model, err := lib.Source("NewSource")
	require.NoError(t, err)
	assert.Equal(t, "PowerLaw", model.Spectral().TypeName())
	assert.Equal(t, "PointSource", model.Spatial().TypeName())
}

func TestRunInitCreatesParentDir(t *testing.T) {
	resetInitFlags(t)
	path := filepath.Join(t.TempDir(), "models", "nested", "models.xml")

	initTitle = "nested test"
	initSource = "NewSource"

	require.NoError(t, runInit(nil, []string{path}))

	lib, err := sourcelib.Read(path)
	require.NoError(t, err)
	require.Equal(t, 1, lib.Len())
}

func TestRunInitAcceptsAliases(t *testing.T) {
	resetInitFlags(t)
	path := filepath.Join(t.TempDir(), "models.yaml")

	initTitle = "alias test"
	initSource = "AliasSource"
	initSpectral = "ExpCutoff"
	initSpatial = "GaussFunction"

	require.NoError(t, runInit(nil, []string{path}))

	lib, err := sourcelib.Read(path)
	require.NoError(t, err)

	model, err := lib.Source("AliasSource")
	require.NoError(t, err)
	assert.Equal(t, "ExponentialCutoffPowerLaw", model.Spectral().TypeName())
	assert.Equal(t, "SkyGaussian", model.Spatial().TypeName())
}

func TestRunInitRejectsUnknownType(t *testing.T) {
	resetInitFlags(t)
	path := filepath.Join(t.TempDir(), "models.xml")

	initSpectral = "ElefantShapedSource"

	err := runInit(nil, []string{path})
	require.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestRunInitRefusesOverwrite(t *testing.T) {
	resetInitFlags(t)
	path := filepath.Join(t.TempDir(), "models.xml")
	require.NoError(t, os.WriteFile(path, []byte("keep me"), 0o644))

	err := runInit(nil, []string{path})
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))

	// --force replaces the file.
	initForce = true
	require.NoError(t, runInit(nil, []string{path}))
	_, err = sourcelib.Read(path)
	require.NoError(t, err)
}
