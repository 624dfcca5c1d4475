package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gammasky/sourcelib/pkg/skymodels"
)

func TestLibraryOptions(t *testing.T) {
	opts, err := libraryOptions("")
	require.NoError(t, err)
	assert.Nil(t, opts)

	opts, err = libraryOptions("yaml")
	require.NoError(t, err)
	assert.Len(t, opts, 1)
}

func TestLoadLibraryByExtension(t *testing.T) {
	lib, err := loadLibrary("testdata/crab.xml", "")
	require.NoError(t, err)

	require.Equal(t, 1, lib.Len())
	assert.Equal(t, "crab field", lib.Title)

	model, err := lib.Source("Crab")
	require.NoError(t, err)
	assert.Equal(t, "PowerLaw", model.Spectral().TypeName())

	index, ok := model.Parameters().Get("index")
	require.True(t, ok)
	assert.Equal(t, 2.39, index.Value)
}

func TestLoadLibraryForcedFormat(t *testing.T) {
	// The fixture is XML, so forcing YAML must fail.
	_, err := loadLibrary("testdata/crab.xml", "yaml")
	require.Error(t, err)
}

func TestLoadLibraryRejectsUnknownFormat(t *testing.T) {
	_, err := loadLibrary("testdata/crab.xml", "toml")
	require.Error(t, err)
}

func TestSpatialFile(t *testing.T) {
	point, err := skymodels.NewSkyModel("P", skymodels.NewPowerLaw(), skymodels.NewSkyPointSource())
	require.NoError(t, err)
	assert.Empty(t, spatialFile(point))

	diffuseMap := skymodels.NewSkyDiffuseMap()
	diffuseMap.Filename = "template.fits"
	diffuse, err := skymodels.NewSkyModel("D", skymodels.NewConstant(), diffuseMap)
	require.NoError(t, err)
	assert.Equal(t, "template.fits", spatialFile(diffuse))
}

func TestParameterRows(t *testing.T) {
	rows := parameterRows(skymodels.NewPowerLaw().Parameters())
	require.Len(t, rows, 3)

	assert.Equal(t, "index", rows[0].Name)
	assert.Equal(t, 2.0, rows[0].Value)
	assert.False(t, rows[0].Frozen)

	assert.Equal(t, "reference", rows[2].Name)
	assert.Equal(t, "MeV", rows[2].Unit)
	assert.True(t, rows[2].Frozen)
}

func TestProblemRows(t *testing.T) {
	rows := problemRows([]skymodels.Problem{
		{Source: "Crab", Field: "spectral.index", Message: "value is not finite"},
	})
	require.Len(t, rows, 1)
	assert.Equal(t, "Crab", rows[0].Source)
	assert.Equal(t, "spectral.index", rows[0].Field)
	assert.Equal(t, "value is not finite", rows[0].Message)
}
