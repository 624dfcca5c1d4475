package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gammasky/sourcelib"
	"github.com/gammasky/sourcelib/pkg/errors"
	"github.com/gammasky/sourcelib/pkg/skymodels"
)

// buildLibrary assembles one source of every registered model kind.
func buildLibrary(t *testing.T) *sourcelib.SourceLibrary {
	t.Helper()

	entries := []struct {
		name     string
		spectral skymodels.SpectralModel
		spatial  skymodels.SpatialModel
	}{
		{"PointPL", skymodels.NewPowerLaw(), skymodels.NewSkyPointSource()},
		{"GaussECPL", skymodels.NewExponentialCutoffPowerLaw(), skymodels.NewSkyGaussian()},
		{"DiskLP", skymodels.NewLogParabola(), skymodels.NewSkyDisk()},
		{"ShellPL", skymodels.NewPowerLaw(), skymodels.NewSkyShell()},
		{"IsoConst", skymodels.NewConstant(), skymodels.NewSkyDiffuseConstant()},
	}

	lib := sourcelib.NewSourceLibrary("integration library")
	for _, e := range entries {
		model, err := skymodels.NewSkyModel(e.name, e.spectral, e.spatial)
		if err != nil {
			t.Fatalf("Failed to build %s: %v", e.name, err)
		}
		lib.Add(model)
	}

	diffuseMap := skymodels.NewSkyDiffuseMap()
	diffuseMap.Filename = "$GAMMAPY_EXTRA/templates/diffuse.fits"
	diffuse, err := skymodels.NewSkyModel("GalacticDiffuse", skymodels.NewConstant(), diffuseMap)
	if err != nil {
		t.Fatalf("Failed to build diffuse model: %v", err)
	}
	lib.Add(diffuse)

	return lib
}

func TestLibraryFileLifecycle(t *testing.T) {
	tempDir := t.TempDir()
	lib := buildLibrary(t)

	xmlPath := filepath.Join(tempDir, "models.xml")
	if err := sourcelib.Write(lib, xmlPath); err != nil {
		t.Fatalf("Failed to write XML: %v", err)
	}

	loaded, err := sourcelib.Read(xmlPath)
	if err != nil {
		t.Fatalf("Failed to read XML: %v", err)
	}
	if loaded.Len() != lib.Len() {
		t.Fatalf("Expected %d sources, got %d", lib.Len(), loaded.Len())
	}
	if loaded.String() != lib.String() {
		t.Error("Loaded library differs from the written one")
	}

	if problems := loaded.Validate(); len(problems) != 0 {
		t.Errorf("Expected no validation problems, got %v", problems)
	}
}

func TestLibraryCrossFormatConversion(t *testing.T) {
	tempDir := t.TempDir()
	lib := buildLibrary(t)

	yamlPath := filepath.Join(tempDir, "models.yaml")
	if err := sourcelib.Write(lib, yamlPath); err != nil {
		t.Fatalf("Failed to write YAML: %v", err)
	}

	data, err := os.ReadFile(yamlPath)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}
	if strings.HasPrefix(string(data), "<?xml") {
		t.Fatal("Expected YAML output for .yaml extension")
	}

	fromYAML, err := sourcelib.Read(yamlPath)
	if err != nil {
		t.Fatalf("Failed to read YAML: %v", err)
	}

	xmlPath := filepath.Join(tempDir, "models.xml")
	if err := sourcelib.Write(fromYAML, xmlPath); err != nil {
		t.Fatalf("Failed to write XML: %v", err)
	}

	fromXML, err := sourcelib.Read(xmlPath)
	if err != nil {
		t.Fatalf("Failed to read converted XML: %v", err)
	}

	if fromXML.String() != lib.String() {
		t.Error("Library changed across YAML -> XML conversion")
	}
}

func TestLibraryRewriteIsStable(t *testing.T) {
	tempDir := t.TempDir()
	lib := buildLibrary(t)

	first := filepath.Join(tempDir, "first.xml")
	if err := sourcelib.Write(lib, first); err != nil {
		t.Fatalf("Failed to write: %v", err)
	}

	loaded, err := sourcelib.Read(first)
	if err != nil {
		t.Fatalf("Failed to read: %v", err)
	}

	second := filepath.Join(tempDir, "second.xml")
	if err := sourcelib.Write(loaded, second); err != nil {
		t.Fatalf("Failed to rewrite: %v", err)
	}

	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("Rewriting a parsed library changed the document bytes")
	}
}

func TestReadErrors(t *testing.T) {
	tempDir := t.TempDir()

	if _, err := sourcelib.Read(filepath.Join(tempDir, "missing.xml")); err == nil {
		t.Error("Expected error for missing file")
	}

	badPath := filepath.Join(tempDir, "bad.xml")
	if err := os.WriteFile(badPath, []byte("<source_library"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := sourcelib.Read(badPath); !errors.IsInvalidDocument(err) {
		t.Errorf("Expected invalid document error, got %v", err)
	}

	unknownPath := filepath.Join(tempDir, "unknown.xml")
	doc := `<?xml version="1.0"?>
<source_library title="x">
  <source name="Mystery" type="PointSource">
    <spectrum type="ElefantShapedSource"></spectrum>
    <spatialModel type="PointSource"></spatialModel>
  </source>
</source_library>`
	if err := os.WriteFile(unknownPath, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := sourcelib.Read(unknownPath); !errors.IsUnknownModel(err) {
		t.Errorf("Expected unknown model error, got %v", err)
	}
}

func TestPathExpansion(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("SOURCELIB_TEST_DIR", tempDir)

	lib := buildLibrary(t)
	if err := sourcelib.Write(lib, "$SOURCELIB_TEST_DIR/expanded.xml"); err != nil {
		t.Fatalf("Failed to write through env path: %v", err)
	}

	loaded, err := sourcelib.Read("$SOURCELIB_TEST_DIR/expanded.xml")
	if err != nil {
		t.Fatalf("Failed to read through env path: %v", err)
	}
	if loaded.Len() != lib.Len() {
		t.Errorf("Expected %d sources, got %d", lib.Len(), loaded.Len())
	}

	if _, err := os.Stat(filepath.Join(tempDir, "expanded.xml")); err != nil {
		t.Errorf("File not written to expanded location: %v", err)
	}
}
