package skymodels

// Canonical spatial type names as written to documents. The point source
// keeps the document name "PointSource" even though the variant is called
// SkyPointSource, matching the established file format.
const (
	TypePointSource        = "PointSource"
	TypeSkyGaussian        = "SkyGaussian"
	TypeSkyDisk            = "SkyDisk"
	TypeSkyShell           = "SkyShell"
	TypeSkyDiffuseMap      = "SkyDiffuseMap"
	TypeSkyDiffuseConstant = "SkyDiffuseConstant"
)

// SkyPointSource is a delta-function morphology at (lon_0, lat_0).
// Position parameters default to frozen since positions are normally held
// fixed while spectra are fit.
type SkyPointSource struct {
	spatialBase
}

// NewSkyPointSource creates a point source with default parameters.
func NewSkyPointSource() *SkyPointSource {
	m := &SkyPointSource{}
	m.params = MustParameters(
		Parameter{Name: "lon_0", Value: 0, Unit: "deg", Min: -360, Max: 360, Frozen: true},
		Parameter{Name: "lat_0", Value: 0, Unit: "deg", Min: -90, Max: 90, Frozen: true},
	)
	return m
}

// TypeName returns the canonical type string.
func (m *SkyPointSource) TypeName() string { return TypePointSource }

// String returns the canonical representation.
func (m *SkyPointSource) String() string { return modelString(m) }

// SkyGaussian is a radially symmetric Gaussian morphology with width sigma.
type SkyGaussian struct {
	spatialBase
}

// NewSkyGaussian creates a Gaussian morphology with default parameters.
func NewSkyGaussian() *SkyGaussian {
	m := &SkyGaussian{}
	m.params = MustParameters(
		Parameter{Name: "lon_0", Value: 0, Unit: "deg", Min: -360, Max: 360, Frozen: true},
		Parameter{Name: "lat_0", Value: 0, Unit: "deg", Min: -90, Max: 90, Frozen: true},
		Parameter{Name: "sigma", Value: 1, Unit: "deg", Min: 0, Max: 10},
	)
	return m
}

// TypeName returns the canonical type string.
func (m *SkyGaussian) TypeName() string { return TypeSkyGaussian }

// String returns the canonical representation.
func (m *SkyGaussian) String() string { return modelString(m) }

// SkyDisk is a uniform disk morphology with radius r_0.
type SkyDisk struct {
	spatialBase
}

// NewSkyDisk creates a disk morphology with default parameters.
func NewSkyDisk() *SkyDisk {
	m := &SkyDisk{}
	m.params = MustParameters(
		Parameter{Name: "lon_0", Value: 0, Unit: "deg", Min: -360, Max: 360, Frozen: true},
		Parameter{Name: "lat_0", Value: 0, Unit: "deg", Min: -90, Max: 90, Frozen: true},
		Parameter{Name: "r_0", Value: 1, Unit: "deg", Min: 0, Max: 10},
	)
	return m
}

// TypeName returns the canonical type string.
func (m *SkyDisk) TypeName() string { return TypeSkyDisk }

// String returns the canonical representation.
func (m *SkyDisk) String() string { return modelString(m) }

// SkyShell is a projected spherical shell morphology with inner radius
// "radius" and thickness "width".
type SkyShell struct {
	spatialBase
}

// NewSkyShell creates a shell morphology with default parameters.
func NewSkyShell() *SkyShell {
	m := &SkyShell{}
	m.params = MustParameters(
		Parameter{Name: "lon_0", Value: 0, Unit: "deg", Min: -360, Max: 360, Frozen: true},
		Parameter{Name: "lat_0", Value: 0, Unit: "deg", Min: -90, Max: 90, Frozen: true},
		Parameter{Name: "radius", Value: 1, Unit: "deg", Min: 0, Max: 10},
		Parameter{Name: "width", Value: 0.2, Unit: "deg", Min: 0, Max: 10},
	)
	return m
}

// TypeName returns the canonical type string.
func (m *SkyShell) TypeName() string { return TypeSkyShell }

// String returns the canonical representation.
func (m *SkyShell) String() string { return modelString(m) }

// SkyDiffuseMap scales a diffuse emission template read from a FITS map.
// Filename records the template path from the document's file attribute.
type SkyDiffuseMap struct {
	spatialBase

	// Filename is the template map path, carried verbatim from the
	// document and written back unchanged.
	Filename string
}

// NewSkyDiffuseMap creates a diffuse map morphology with default parameters.
func NewSkyDiffuseMap() *SkyDiffuseMap {
	m := &SkyDiffuseMap{}
	m.params = MustParameters(
		Parameter{Name: "norm", Value: 1, Min: 0.001, Max: 1000},
	)
	return m
}

// TypeName returns the canonical type string.
func (m *SkyDiffuseMap) TypeName() string { return TypeSkyDiffuseMap }

// String returns the canonical representation including the template path.
func (m *SkyDiffuseMap) String() string {
	s := modelString(m)
	if m.Filename != "" {
		s += "\n  file = " + m.Filename
	}
	return s
}

// SkyDiffuseConstant is an isotropic diffuse emission component.
type SkyDiffuseConstant struct {
	spatialBase
}

// NewSkyDiffuseConstant creates an isotropic component with default
// parameters.
func NewSkyDiffuseConstant() *SkyDiffuseConstant {
	m := &SkyDiffuseConstant{}
	m.params = MustParameters(
		Parameter{Name: "value", Value: 1, Unit: "sr-1", Min: 0.001, Max: 1000},
	)
	return m
}

// TypeName returns the canonical type string.
func (m *SkyDiffuseConstant) TypeName() string { return TypeSkyDiffuseConstant }

// String returns the canonical representation.
func (m *SkyDiffuseConstant) String() string { return modelString(m) }
