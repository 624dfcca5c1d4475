package serialization

import (
	"encoding/xml"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gammasky/sourcelib/internal/paths"
	"github.com/gammasky/sourcelib/pkg/errors"
	"github.com/gammasky/sourcelib/pkg/logging"
	"github.com/gammasky/sourcelib/pkg/skymodels"
)

// The xml* types mirror the document schema one to one. Attribute values
// stay strings here so that absent and malformed attributes can be told
// apart and reported precisely; conversion to floats and booleans happens
// in the mapping layer below.
type xmlLibrary struct {
	XMLName xml.Name    `xml:"source_library"`
	Title   string      `xml:"title,attr"`
	Sources []xmlSource `xml:"source"`
}

type xmlSource struct {
	Name     string    `xml:"name,attr"`
	Type     string    `xml:"type,attr,omitempty"`
	Spectrum *xmlModel `xml:"spectrum"`
	// SpectrumAlt accepts the alternative element name some tools write.
	SpectrumAlt *xmlModel `xml:"spectralModel"`
	Spatial     *xmlModel `xml:"spatialModel"`
}

type xmlModel struct {
	Type       string         `xml:"type,attr"`
	File       string         `xml:"file,attr,omitempty"`
	Parameters []xmlParameter `xml:"parameter"`
}

type xmlParameter struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
	Scale string `xml:"scale,attr,omitempty"`
	Min   string `xml:"min,attr"`
	Max   string `xml:"max,attr"`
	Free  string `xml:"free,attr"`
	Unit  string `xml:"unit,attr,omitempty"`
}

// Parse decodes an XML document into a source library. The library is
// built fresh; nothing is shared with previous calls. Any unresolvable
// model type surfaces as an UnknownModelError, structural defects as a
// ParseError, and in both cases no partial library is returned.
func Parse(data []byte) (*skymodels.SourceLibrary, error) {
	var doc xmlLibrary
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse(err, formatXML, "malformed document")
	}

	lib := skymodels.NewSourceLibrary(doc.Title)
	for i := range doc.Sources {
		model, err := mapSource(&doc.Sources[i])
		if err != nil {
			return nil, err
		}
		lib.Add(model)
	}
	return lib, nil
}

// Decode reads an XML document from r and parses it.
func Decode(r io.Reader) (*skymodels.SourceLibrary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapIO(err, "read", "stream")
	}
	return Parse(data)
}

// Read loads an XML document from a path. Environment variables and a
// leading ~ in the path are expanded first, so callers can pass paths
// like $GAMMAPY_EXTRA/test_datasets/models/examples.xml directly.
func Read(path string) (*skymodels.SourceLibrary, error) {
	resolved := paths.Expand(path)
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, errors.WrapIO(err, "read", resolved)
	}

	lib, err := Parse(data)
	if err != nil {
		var pe *errors.ParseError
		if stderrors.As(err, &pe) {
			pe.Path = resolved
		}
		return nil, err
	}

	logging.Debug().
		Str("path", resolved).
		Int("sources", lib.Len()).
		Msg("Read source library")
	return lib, nil
}

// mapSource converts one <source> element. Model types are resolved
// through the registry before any structural completeness check so that an
// unknown type is always reported as such, even when the source is missing
// other pieces.
func mapSource(src *xmlSource) (*skymodels.SkyModel, error) {
	spectrum, err := src.spectrumElement()
	if err != nil {
		return nil, err
	}

	var spectral skymodels.SpectralModel
	if spectrum != nil {
		if spectral, err = skymodels.NewSpectralModel(spectrum.Type); err != nil {
			return nil, tagSource(err, src.Name)
		}
	}
	var spatial skymodels.SpatialModel
	if src.Spatial != nil {
		if spatial, err = skymodels.NewSpatialModel(src.Spatial.Type); err != nil {
			return nil, tagSource(err, src.Name)
		}
	}

	if src.Name == "" {
		return nil, errors.NewParseError(formatXML, "source", "missing name attribute")
	}
	if spectrum == nil {
		return nil, errors.NewParseError(formatXML, sourceCtx(src.Name), "missing spectrum element")
	}
	if src.Spatial == nil {
		return nil, errors.NewParseError(formatXML, sourceCtx(src.Name), "missing spatialModel element")
	}

	spectralParams, err := mapParameters(src.Name, "spectrum", spectrum.Parameters)
	if err != nil {
		return nil, err
	}
	spectral.SetParameters(spectralParams)

	spatialParams, err := mapParameters(src.Name, "spatialModel", src.Spatial.Parameters)
	if err != nil {
		return nil, err
	}
	spatial.SetParameters(spatialParams)
	if dm, ok := spatial.(*skymodels.SkyDiffuseMap); ok {
		dm.Filename = src.Spatial.File
	}

	return assemble(src.Name, src.Type, spectral, spatial)
}

// spectrumElement returns the source's spectral element, accepting either
// <spectrum> or <spectralModel> but not both.
func (s *xmlSource) spectrumElement() (*xmlModel, error) {
	if s.Spectrum != nil && s.SpectrumAlt != nil {
		return nil, errors.NewParseError(formatXML, sourceCtx(s.Name),
			"both spectrum and spectralModel elements present")
	}
	if s.Spectrum != nil {
		return s.Spectrum, nil
	}
	return s.SpectrumAlt, nil
}

// mapParameters folds each raw parameter into physical units: value and
// bounds are multiplied by scale, and frozen is the negation of free.
// Bounds are kept exactly as folded; for inverse-scaled quantities min may
// legitimately exceed max.
func mapParameters(source, elem string, raw []xmlParameter) (*skymodels.Parameters, error) {
	params := make([]skymodels.Parameter, 0, len(raw))
	for i := range raw {
		p := &raw[i]
		if p.Name == "" {
			return nil, errors.NewParseError(formatXML,
				fmt.Sprintf("source %q: %s parameter", source, elem), "missing name attribute")
		}
		ctx := fmt.Sprintf("source %q: %s parameter %q", source, elem, p.Name)

		value, err := floatAttr(ctx, "value", p.Value)
		if err != nil {
			return nil, err
		}
		minVal, err := floatAttr(ctx, "min", p.Min)
		if err != nil {
			return nil, err
		}
		maxVal, err := floatAttr(ctx, "max", p.Max)
		if err != nil {
			return nil, err
		}
		scale := 1.0
		if p.Scale != "" {
			if scale, err = floatAttr(ctx, "scale", p.Scale); err != nil {
				return nil, err
			}
		}
		free, err := boolAttr(ctx, "free", p.Free)
		if err != nil {
			return nil, err
		}

		params = append(params, skymodels.Parameter{
			Name:   p.Name,
			Value:  value * scale,
			Unit:   p.Unit,
			Min:    minVal * scale,
			Max:    maxVal * scale,
			Frozen: !free,
		})
	}

	built, err := skymodels.NewParameters(params...)
	if err != nil {
		return nil, &errors.ParseError{
			Format:  formatXML,
			Element: fmt.Sprintf("source %q: %s", source, elem),
			Message: "invalid parameter set",
			Err:     err,
		}
	}
	return built, nil
}

// floatAttr parses a required float attribute.
func floatAttr(ctx, name, raw string) (float64, error) {
	if raw == "" {
		return 0, errors.NewParseError(formatXML, ctx, fmt.Sprintf("missing %s attribute", name))
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.NewParseError(formatXML, ctx, fmt.Sprintf("invalid %s attribute %q", name, raw))
	}
	return v, nil
}

// boolAttr parses a required boolean attribute, accepting "1"/"0" and the
// usual spellings of true and false.
func boolAttr(ctx, name, raw string) (bool, error) {
	if raw == "" {
		return false, errors.NewParseError(formatXML, ctx, fmt.Sprintf("missing %s attribute", name))
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.NewParseError(formatXML, ctx, fmt.Sprintf("invalid %s attribute %q", name, raw))
	}
	return v, nil
}

func sourceCtx(name string) string {
	return fmt.Sprintf("source %q", name)
}
