package skymodels

import (
	"fmt"
	"strings"

	"github.com/gammasky/sourcelib/pkg/errors"
)

// SkyModel is one astrophysical source: a named pairing of exactly one
// spectral model and one spatial model.
//
// The two sub-models must not declare parameters with the same name, so
// the merged view returned by Parameters is unambiguous. NewSkyModel
// enforces this at construction.
type SkyModel struct {
	name       string
	sourceType SourceType
	spectral   SpectralModel
	spatial    SpatialModel
}

// NewSkyModel creates a source from its two sub-models. Returns an error
// when either model is nil, the name is empty, or the sub-models'
// parameter names collide.
func NewSkyModel(name string, spectral SpectralModel, spatial SpatialModel) (*SkyModel, error) {
	if name == "" {
		return nil, errors.NewValidationError("source.name", nil, "must not be empty")
	}
	if spectral == nil {
		return nil, errors.NewValidationError("source.spectral", nil, "must not be nil")
	}
	if spatial == nil {
		return nil, errors.NewValidationError("source.spatial", nil, "must not be nil")
	}
	if _, err := spectral.Parameters().Merge(spatial.Parameters()); err != nil {
		return nil, errors.NewValidationError("source.parameters", name,
			fmt.Sprintf("spectral and spatial models share a parameter name: %v", err))
	}
	return &SkyModel{
		name:     name,
		spectral: spectral,
		spatial:  spatial,
	}, nil
}

// Name returns the source name.
func (m *SkyModel) Name() string {
	return m.name
}

// Spectral returns the spectral sub-model.
func (m *SkyModel) Spectral() SpectralModel {
	return m.spectral
}

// Spatial returns the spatial sub-model.
func (m *SkyModel) Spatial() SpatialModel {
	return m.spatial
}

// SourceType returns the source classification. When none was set
// explicitly it is derived from the spatial model kind.
func (m *SkyModel) SourceType() SourceType {
	if m.sourceType != "" {
		return m.sourceType
	}
	switch m.spatial.(type) {
	case *SkyPointSource:
		return SourceTypePoint
	case *SkyDiffuseMap, *SkyDiffuseConstant:
		return SourceTypeDiffuse
	default:
		return SourceTypeExtended
	}
}

// SetSourceType records an explicit source classification, preserved
// verbatim through serialization.
func (m *SkyModel) SetSourceType(t SourceType) {
	m.sourceType = t
}

// Parameters returns the unified view over both sub-models' parameters,
// spectral first, in each model's own order. The returned collection
// aliases the sub-models' parameters, so value updates through it are
// visible to the models.
//
// Panics if the sub-models' parameter names collide; NewSkyModel rules
// that out at construction, so a panic here means a parameter was renamed
// afterwards.
func (m *SkyModel) Parameters() *Parameters {
	merged, err := m.spectral.Parameters().Merge(m.spatial.Parameters())
	if err != nil {
		panic(fmt.Sprintf("skymodels: %s: %v", m.name, err))
	}
	return merged
}

// String returns the canonical multi-line representation used for
// round-trip equality: the source header followed by both sub-model
// representations, indented.
func (m *SkyModel) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)\n", m.name, m.SourceType())
	sb.WriteString(indent(m.spectral.String()))
	sb.WriteString("\n")
	sb.WriteString(indent(m.spatial.String()))
	return sb.String()
}

// indent shifts every line of s right by two spaces.
func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}
