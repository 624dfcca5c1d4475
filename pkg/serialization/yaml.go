package serialization

import (
	"os"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/gammasky/sourcelib/internal/paths"
	"github.com/gammasky/sourcelib/pkg/constants"
	"github.com/gammasky/sourcelib/pkg/errors"
	"github.com/gammasky/sourcelib/pkg/logging"
	"github.com/gammasky/sourcelib/pkg/skymodels"
)

// The yaml* types define the YAML rendition of a library. Unlike the XML
// schema there is no scale/free legacy: values are physical and frozen is
// stored directly.
type yamlLibrary struct {
	Title   string       `yaml:"title"`
	Sources []yamlSource `yaml:"sources"`
}

type yamlSource struct {
	Name     string    `yaml:"name"`
	Type     string    `yaml:"type,omitempty"`
	Spectral yamlModel `yaml:"spectral"`
	Spatial  yamlModel `yaml:"spatial"`
}

type yamlModel struct {
	Type       string          `yaml:"type"`
	File       string          `yaml:"file,omitempty"`
	Parameters []yamlParameter `yaml:"parameters"`
}

type yamlParameter struct {
	Name   string  `yaml:"name"`
	Value  float64 `yaml:"value"`
	Unit   string  `yaml:"unit,omitempty"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Frozen bool    `yaml:"frozen,omitempty"`
}

// ParseYAML decodes the YAML rendition into a source library, with the
// same resolution and failure semantics as the XML parser.
func ParseYAML(data []byte) (*skymodels.SourceLibrary, error) {
	var doc yamlLibrary
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse(err, formatYAML, "malformed document")
	}

	lib := skymodels.NewSourceLibrary(doc.Title)
	for i := range doc.Sources {
		model, err := mapYAMLSource(&doc.Sources[i])
		if err != nil {
			return nil, err
		}
		lib.Add(model)
	}
	return lib, nil
}

// ReadYAML loads the YAML rendition from a path, expanding environment
// variables and a leading ~ first.
func ReadYAML(path string) (*skymodels.SourceLibrary, error) {
	resolved := paths.Expand(path)
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, errors.WrapIO(err, "read", resolved)
	}

	lib, err := ParseYAML(data)
	if err != nil {
		return nil, err
	}

	logging.Debug().
		Str("path", resolved).
		Int("sources", lib.Len()).
		Msg("Read source library")
	return lib, nil
}

// MarshalYAML serializes a library to the YAML rendition with the same
// determinism guarantees as the XML writer.
func MarshalYAML(lib *skymodels.SourceLibrary) ([]byte, error) {
	if lib == nil {
		return nil, errors.NewValidationError("library", nil, "must not be nil")
	}

	out, err := yaml.MarshalWithOptions(buildYAMLDocument(lib),
		yaml.Indent(constants.YAMLIndent),
		yaml.IndentSequence(false), // keep sequences flush left
	)
	if err != nil {
		return nil, errors.WrapParse(err, formatYAML, "encoding source library")
	}
	return out, nil
}

// WriteYAML serializes the library to a file in the YAML rendition.
func WriteYAML(lib *skymodels.SourceLibrary, path string) error {
	data, err := MarshalYAML(lib)
	if err != nil {
		return err
	}

	resolved := paths.Expand(path)
	if err := os.WriteFile(resolved, data, constants.FilePermissions); err != nil {
		return errors.WrapIO(err, "write", resolved)
	}

	logging.Debug().
		Str("path", resolved).
		Int("sources", lib.Len()).
		Msg("Wrote source library")
	return nil
}

// mapYAMLSource converts one sources entry.
func mapYAMLSource(src *yamlSource) (*skymodels.SkyModel, error) {
	if src.Name == "" {
		return nil, errors.NewParseError(formatYAML, "source", "missing name")
	}

	spectralParams, err := yamlParams(src.Name, "spectral", src.Spectral.Parameters)
	if err != nil {
		return nil, err
	}
	spectral, err := buildSpectral(src.Name, src.Spectral.Type, spectralParams)
	if err != nil {
		return nil, err
	}

	spatialParams, err := yamlParams(src.Name, "spatial", src.Spatial.Parameters)
	if err != nil {
		return nil, err
	}
	spatial, err := buildSpatial(src.Name, src.Spatial.Type, src.Spatial.File, spatialParams)
	if err != nil {
		return nil, err
	}
	return assemble(src.Name, src.Type, spectral, spatial)
}

// yamlParams converts the document parameters, which are already in
// physical units.
func yamlParams(source, section string, raw []yamlParameter) (*skymodels.Parameters, error) {
	params := make([]skymodels.Parameter, 0, len(raw))
	for _, p := range raw {
		params = append(params, skymodels.Parameter{
			Name:   p.Name,
			Value:  p.Value,
			Unit:   p.Unit,
			Min:    p.Min,
			Max:    p.Max,
			Frozen: p.Frozen,
		})
	}

	built, err := skymodels.NewParameters(params...)
	if err != nil {
		return nil, &errors.ParseError{
			Format:  formatYAML,
			Element: "source " + strconv.Quote(source) + ": " + section,
			Message: "invalid parameter set",
			Err:     err,
		}
	}
	return built, nil
}

// buildYAMLDocument lowers the object graph into the YAML schema.
func buildYAMLDocument(lib *skymodels.SourceLibrary) *yamlLibrary {
	doc := &yamlLibrary{Title: lib.Title}
	for _, m := range lib.SkyModels {
		doc.Sources = append(doc.Sources, yamlSource{
			Name:     m.Name(),
			Type:     m.SourceType().String(),
			Spectral: buildYAMLModel(m.Spectral()),
			Spatial:  buildYAMLModel(m.Spatial()),
		})
	}
	return doc
}

// buildYAMLModel lowers one model, normalizing aliases to canonical names.
func buildYAMLModel(model skymodels.Model) yamlModel {
	y := yamlModel{Type: model.TypeName()}
	if dm, ok := model.(*skymodels.SkyDiffuseMap); ok {
		y.File = dm.Filename
	}
	for _, p := range model.Parameters().List() {
		y.Parameters = append(y.Parameters, yamlParameter{
			Name:   p.Name,
			Value:  p.Value,
			Unit:   p.Unit,
			Min:    p.Min,
			Max:    p.Max,
			Frozen: p.Frozen,
		})
	}
	return y
}
