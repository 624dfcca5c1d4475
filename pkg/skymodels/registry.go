package skymodels

import (
	"sort"

	"github.com/gammasky/sourcelib/pkg/errors"
)

// The model registry maps every accepted document type string to the
// constructor of its variant. Aliases from older tool chains map to the
// same constructors as the canonical names; serialization always writes
// the canonical name, so aliases normalize on a round trip.
//
// Lookup is exact-string and case-sensitive. The maps are the complete
// closed set of supported variants.

var spectralTypes = map[string]func() SpectralModel{
	TypePowerLaw:                  func() SpectralModel { return NewPowerLaw() },
	TypeExponentialCutoffPowerLaw: func() SpectralModel { return NewExponentialCutoffPowerLaw() },
	TypeLogParabola:               func() SpectralModel { return NewLogParabola() },
	TypeConstant:                  func() SpectralModel { return NewConstant() },

	// aliases
	"ExpCutoff":     func() SpectralModel { return NewExponentialCutoffPowerLaw() },
	"ConstantValue": func() SpectralModel { return NewConstant() },
}

var spatialTypes = map[string]func() SpatialModel{
	TypePointSource:        func() SpatialModel { return NewSkyPointSource() },
	TypeSkyGaussian:        func() SpatialModel { return NewSkyGaussian() },
	TypeSkyDisk:            func() SpatialModel { return NewSkyDisk() },
	TypeSkyShell:           func() SpatialModel { return NewSkyShell() },
	TypeSkyDiffuseMap:      func() SpatialModel { return NewSkyDiffuseMap() },
	TypeSkyDiffuseConstant: func() SpatialModel { return NewSkyDiffuseConstant() },

	// aliases
	"SkyDirFunction":  func() SpatialModel { return NewSkyPointSource() },
	"GaussFunction":   func() SpatialModel { return NewSkyGaussian() },
	"RadialGaussian":  func() SpatialModel { return NewSkyGaussian() },
	"RadialDisk":      func() SpatialModel { return NewSkyDisk() },
	"DiskFunction":    func() SpatialModel { return NewSkyDisk() },
	"RadialShell":     func() SpatialModel { return NewSkyShell() },
	"ShellFunction":   func() SpatialModel { return NewSkyShell() },
	"SpatialMap":      func() SpatialModel { return NewSkyDiffuseMap() },
	"MapCubeFunction": func() SpatialModel { return NewSkyDiffuseMap() },
	"DiffuseMap":      func() SpatialModel { return NewSkyDiffuseMap() },
	"ConstantValue":   func() SpatialModel { return NewSkyDiffuseConstant() },
}

// NewSpectralModel constructs the spectral variant registered for typeName
// with its default parameters. Returns an UnknownModelError when typeName
// is not registered.
func NewSpectralModel(typeName string) (SpectralModel, error) {
	ctor, ok := spectralTypes[typeName]
	if !ok {
		return nil, errors.NewUnknownModelError(CategorySpectral.String(), typeName)
	}
	return ctor(), nil
}

// NewSpatialModel constructs the spatial variant registered for typeName
// with its default parameters. Returns an UnknownModelError when typeName
// is not registered.
func NewSpatialModel(typeName string) (SpatialModel, error) {
	ctor, ok := spatialTypes[typeName]
	if !ok {
		return nil, errors.NewUnknownModelError(CategorySpatial.String(), typeName)
	}
	return ctor(), nil
}

// NewModel dispatches to the registry for the given category.
func NewModel(category ModelCategory, typeName string) (Model, error) {
	switch category {
	case CategorySpectral:
		return NewSpectralModel(typeName)
	case CategorySpatial:
		return NewSpatialModel(typeName)
	default:
		return nil, errors.NewValidationError("category", category, "unknown model category")
	}
}

// SpectralTypeNames returns every accepted spectral type string, canonical
// names and aliases alike, in sorted order.
func SpectralTypeNames() []string {
	names := make([]string, 0, len(spectralTypes))
	for name := range spectralTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SpatialTypeNames returns every accepted spatial type string, canonical
// names and aliases alike, in sorted order.
func SpatialTypeNames() []string {
	names := make([]string, 0, len(spatialTypes))
	for name := range spatialTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
