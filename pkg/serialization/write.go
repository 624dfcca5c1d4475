package serialization

import (
	"encoding/xml"
	"io"
	"os"
	"strconv"

	"github.com/gammasky/sourcelib/internal/paths"
	"github.com/gammasky/sourcelib/pkg/constants"
	"github.com/gammasky/sourcelib/pkg/errors"
	"github.com/gammasky/sourcelib/pkg/logging"
	"github.com/gammasky/sourcelib/pkg/skymodels"
)

// Marshal serializes a library to the XML model-definition format.
//
// Output is deterministic: type names are canonical, attributes appear in
// a fixed order, scale is always written as 1 with physical values inlined,
// floats use the shortest representation that parses back exactly, and the
// unit attribute is present only when non-empty. Bounds are written
// verbatim, including min greater than max for inverse-scaled quantities.
func Marshal(lib *skymodels.SourceLibrary) ([]byte, error) {
	if lib == nil {
		return nil, errors.NewValidationError("library", nil, "must not be nil")
	}

	body, err := xml.MarshalIndent(buildDocument(lib), "", constants.XMLIndent)
	if err != nil {
		return nil, errors.WrapParse(err, formatXML, "encoding source library")
	}

	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}

// Encode serializes the library to w.
func Encode(lib *skymodels.SourceLibrary, w io.Writer) error {
	data, err := Marshal(lib)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.WrapIO(err, "write", "stream")
	}
	return nil
}

// Write serializes the library to a file. Environment variables and a
// leading ~ in the path are expanded first.
func Write(lib *skymodels.SourceLibrary, path string) error {
	data, err := Marshal(lib)
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

// buildDocument lowers the object graph into the document schema.
func buildDocument(lib *skymodels.SourceLibrary) *xmlLibrary {
	doc := &xmlLibrary{Title: lib.Title}
	for _, m := range lib.SkyModels {
		doc.Sources = append(doc.Sources, xmlSource{
			Name:     m.Name(),
			Type:     m.SourceType().String(),
			Spectrum: buildModelElement(m.Spectral()),
			Spatial:  buildModelElement(m.Spatial()),
		})
	}
	return doc
}

// buildModelElement lowers one model into its element, using the canonical
// type name regardless of which alias the model was parsed from.
func buildModelElement(model skymodels.Model) *xmlModel {
	x := &xmlModel{Type: model.TypeName()}
	if dm, ok := model.(*skymodels.SkyDiffuseMap); ok {
		x.File = dm.Filename
	}
	for _, p := range model.Parameters().List() {
		x.Parameters = append(x.Parameters, xmlParameter{
			Name:  p.Name,
			Value: formatFloat(p.Value),
			Scale: "1",
			Min:   formatFloat(p.Min),
			Max:   formatFloat(p.Max),
			Free:  formatFree(p.Frozen),
			Unit:  p.Unit,
		})
	}
	return x
}

// formatFloat renders a float with the shortest representation that
// parses back to the identical value.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatFree renders the free attribute, the negation of frozen.
func formatFree(frozen bool) string {
	if frozen {
		return "0"
	}
	return "1"
}
