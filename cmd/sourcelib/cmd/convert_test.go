package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gammasky/sourcelib"
)

func resetConvertFlags(t *testing.T) {
	t.Helper()
	from, to, stdout := convertFrom, convertTo, convertStdout
	t.Cleanup(func() {
		convertFrom, convertTo, convertStdout = from, to, stdout
	})
}

func TestRunConvertXMLToYAML(t *testing.T) {
	resetConvertFlags(t)
	out := filepath.Join(t.TempDir(), "crab.yaml")

	require.NoError(t, runConvert(nil, []string{"testdata/crab.xml", out}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: crab field")

	// The conversion must not change the model content.
	original, err := sourcelib.Read("testdata/crab.xml")
	require.NoError(t, err)
	converted, err := sourcelib.Read(out)
	require.NoError(t, err)

	if diff := cmp.Diff(original.String(), converted.String()); diff != "" {
		t.Errorf("library changed in conversion (-original +converted):\n%s", diff)
	}
}

func TestRunConvertRoundTripBack(t *testing.T) {
	resetConvertFlags(t)
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "crab.yaml")
	xmlPath := filepath.Join(dir, "crab.xml")

	require.NoError(t, runConvert(nil, []string{"testdata/crab.xml", yamlPath}))
	require.NoError(t, runConvert(nil, []string{yamlPath, xmlPath}))

	data, err := os.ReadFile(xmlPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<?xml"))

	original, err := sourcelib.Read("testdata/crab.xml")
	require.NoError(t, err)
	back, err := sourcelib.Read(xmlPath)
	require.NoError(t, err)

	if diff := cmp.Diff(original.String(), back.String()); diff != "" {
		t.Errorf("library changed in round trip (-original +back):\n%s", diff)
	}
}

func TestRunConvertForcedFormats(t *testing.T) {
	resetConvertFlags(t)
	dir := t.TempDir()

	// Write YAML into an extensionless file, then convert with explicit flags.
	middle := filepath.Join(dir, "library")
	convertTo = "yaml"
	require.NoError(t, runConvert(nil, []string{"testdata/crab.xml", middle}))

	convertFrom, convertTo = "yaml", "xml"
	out := filepath.Join(dir, "library.out")
	require.NoError(t, runConvert(nil, []string{middle, out}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<source_library title="crab field">`)
}

func TestRunConvertMissingInput(t *testing.T) {
	resetConvertFlags(t)
	out := filepath.Join(t.TempDir(), "out.yaml")
	err := runConvert(nil, []string{filepath.Join(t.TempDir(), "nope.xml"), out})
	require.Error(t, err)
	assert.NoFileExists(t, out)
}
