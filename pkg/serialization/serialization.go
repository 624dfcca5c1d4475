// Package serialization converts source libraries between their in-memory
// representation and the XML model-definition format used to exchange
// gamma-ray source models, plus an equivalent YAML rendition.
//
// Both directions are single synchronous passes with no state shared
// between calls. Parsing resolves every model type through the registry in
// pkg/skymodels and fails on the first unresolvable type or structural
// defect; no partial library is ever returned. Serialization is
// deterministic: for the same library it produces byte-identical output,
// with canonical type names, fixed attribute order, and shortest
// round-tripping float formatting.
package serialization

import (
	stderrors "errors"

	"github.com/gammasky/sourcelib/pkg/errors"
	"github.com/gammasky/sourcelib/pkg/skymodels"
)

// Document formats
const (
	formatXML  = "xml"
	formatYAML = "yaml"
)

// buildSpectral resolves a spectral type name through the registry and
// installs the document's parameters over the constructor defaults.
func buildSpectral(source, typeName string, params *skymodels.Parameters) (skymodels.SpectralModel, error) {
	model, err := skymodels.NewSpectralModel(typeName)
	if err != nil {
		return nil, tagSource(err, source)
	}
	model.SetParameters(params)
	return model, nil
}

// buildSpatial is the spatial counterpart of buildSpectral. A non-empty
// file path is attached to diffuse map models and ignored for every other
// kind, which has no use for it.
func buildSpatial(source, typeName, file string, params *skymodels.Parameters) (skymodels.SpatialModel, error) {
	model, err := skymodels.NewSpatialModel(typeName)
	if err != nil {
		return nil, tagSource(err, source)
	}
	model.SetParameters(params)
	if dm, ok := model.(*skymodels.SkyDiffuseMap); ok {
		dm.Filename = file
	}
	return model, nil
}

// tagSource records the enclosing source name on an UnknownModelError so
// the failure names both the type and where it occurred.
func tagSource(err error, source string) error {
	var ume *errors.UnknownModelError
	if stderrors.As(err, &ume) {
		ume.Source = source
	}
	return err
}

// assemble pairs the resolved models into a sky model, carrying the
// document's source type attribute verbatim.
func assemble(name, sourceType string, spectral skymodels.SpectralModel, spatial skymodels.SpatialModel) (*skymodels.SkyModel, error) {
	model, err := skymodels.NewSkyModel(name, spectral, spatial)
	if err != nil {
		return nil, err
	}
	model.SetSourceType(skymodels.SourceType(sourceType))
	return model, nil
}
