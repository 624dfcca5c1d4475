package skymodels

import (
	"fmt"
	"strings"
)

// ModelCategory separates the two variant families a source combines.
type ModelCategory string

// Model categories
const (
	// CategorySpectral covers flux-versus-energy models
	CategorySpectral ModelCategory = "spectral"

	// CategorySpatial covers sky-morphology models
	CategorySpatial ModelCategory = "spatial"
)

// String returns the category name.
func (c ModelCategory) String() string {
	return string(c)
}

// SourceType is the source classification carried on a <source> element.
type SourceType string

// Known source types
const (
	// SourceTypePoint is a point-like source
	SourceTypePoint SourceType = "PointSource"

	// SourceTypeExtended is a morphologically extended source
	SourceTypeExtended SourceType = "ExtendedSource"

	// SourceTypeDiffuse is a diffuse emission component
	SourceTypeDiffuse SourceType = "DiffuseSource"
)

// String returns the source type name.
func (s SourceType) String() string {
	return string(s)
}

// Model is the behavior shared by all spectral and spatial variants.
type Model interface {
	fmt.Stringer

	// TypeName returns the canonical type string written to documents,
	// e.g. "PowerLaw" or "SkyGaussian".
	TypeName() string

	// Category reports whether the model is spectral or spatial.
	Category() ModelCategory

	// Parameters returns the model's live parameter collection.
	Parameters() *Parameters

	// SetParameters replaces the model's parameter collection wholesale.
	// Deserializers use this to install the document's parameters over
	// the constructor defaults.
	SetParameters(*Parameters)
}

// SpectralModel is a Model describing flux as a function of energy.
// The implementing set is closed; the unexported marker method keeps
// external types out so registry dispatch stays total.
type SpectralModel interface {
	Model
	spectral()
}

// SpatialModel is a Model describing morphology on the sky.
type SpatialModel interface {
	Model
	spatial()
}

// baseModel carries the parameter storage every variant embeds.
type baseModel struct {
	params *Parameters
}

// Parameters returns the live parameter collection.
func (m *baseModel) Parameters() *Parameters {
	return m.params
}

// SetParameters replaces the parameter collection wholesale.
func (m *baseModel) SetParameters(params *Parameters) {
	m.params = params
}

// spectralBase marks a variant as spectral.
type spectralBase struct{ baseModel }

// Category returns CategorySpectral.
func (spectralBase) Category() ModelCategory { return CategorySpectral }

func (spectralBase) spectral() {}

// spatialBase marks a variant as spatial.
type spatialBase struct{ baseModel }

// Category returns CategorySpatial.
func (spatialBase) Category() ModelCategory { return CategorySpatial }

func (spatialBase) spatial() {}

// modelString renders the canonical multi-line representation shared by all
// variants: the type name followed by one indented line per parameter.
// Round-trip equality is defined over this representation.
func modelString(m Model) string {
	var sb strings.Builder
	sb.WriteString(m.TypeName())
	for _, param := range m.Parameters().List() {
		sb.WriteString("\n  ")
		sb.WriteString(param.String())
	}
	return sb.String()
}
