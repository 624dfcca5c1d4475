package skymodels

// Canonical spectral type names as written to documents.
const (
	TypePowerLaw                  = "PowerLaw"
	TypeExponentialCutoffPowerLaw = "ExponentialCutoffPowerLaw"
	TypeLogParabola               = "LogParabola"
	TypeConstant                  = "Constant"
)

// PowerLaw models flux as amplitude * (E / reference)^-index.
type PowerLaw struct {
	spectralBase
}

// NewPowerLaw creates a power law with default parameters.
func NewPowerLaw() *PowerLaw {
	m := &PowerLaw{}
	m.params = MustParameters(
		Parameter{Name: "index", Value: 2.0, Min: 0, Max: 5},
		Parameter{Name: "amplitude", Value: 1e-12, Unit: "cm-2 s-1 MeV-1", Min: 1e-15, Max: 1e-5},
		Parameter{Name: "reference", Value: 100, Unit: "MeV", Min: 1, Max: 1e9, Frozen: true},
	)
	return m
}

// TypeName returns the canonical type string.
func (m *PowerLaw) TypeName() string { return TypePowerLaw }

// String returns the canonical representation.
func (m *PowerLaw) String() string { return modelString(m) }

// ExponentialCutoffPowerLaw is a power law damped by exp(-lambda_ * E).
// The cutoff parameter keeps its historical name "lambda_", including the
// trailing underscore, for document compatibility.
type ExponentialCutoffPowerLaw struct {
	spectralBase
}

// NewExponentialCutoffPowerLaw creates an exponential cutoff power law with
// default parameters.
func NewExponentialCutoffPowerLaw() *ExponentialCutoffPowerLaw {
	m := &ExponentialCutoffPowerLaw{}
	m.params = MustParameters(
		Parameter{Name: "index", Value: 2.0, Min: 0, Max: 5},
		Parameter{Name: "amplitude", Value: 1e-12, Unit: "cm-2 s-1 MeV-1", Min: 1e-15, Max: 1e-5},
		Parameter{Name: "reference", Value: 100, Unit: "MeV", Min: 1, Max: 1e9, Frozen: true},
		Parameter{Name: "lambda_", Value: 0.001, Unit: "MeV-1", Min: 0, Max: 1},
	)
	return m
}

// TypeName returns the canonical type string.
func (m *ExponentialCutoffPowerLaw) TypeName() string { return TypeExponentialCutoffPowerLaw }

// String returns the canonical representation.
func (m *ExponentialCutoffPowerLaw) String() string { return modelString(m) }

// LogParabola models flux with an energy-dependent spectral index,
// amplitude * (E / reference)^-(alpha + beta * log(E / reference)).
type LogParabola struct {
	spectralBase
}

// NewLogParabola creates a log parabola with default parameters.
func NewLogParabola() *LogParabola {
	m := &LogParabola{}
	m.params = MustParameters(
		Parameter{Name: "amplitude", Value: 1e-12, Unit: "cm-2 s-1 MeV-1", Min: 1e-15, Max: 1e-5},
		Parameter{Name: "reference", Value: 100, Unit: "MeV", Min: 1, Max: 1e9, Frozen: true},
		Parameter{Name: "alpha", Value: 2.0, Min: 0, Max: 5},
		Parameter{Name: "beta", Value: 0.1, Min: 0, Max: 2},
	)
	return m
}

// TypeName returns the canonical type string.
func (m *LogParabola) TypeName() string { return TypeLogParabola }

// String returns the canonical representation.
func (m *LogParabola) String() string { return modelString(m) }

// Constant models an energy-independent flux.
type Constant struct {
	spectralBase
}

// NewConstant creates a constant spectrum with default parameters.
func NewConstant() *Constant {
	m := &Constant{}
	m.params = MustParameters(
		Parameter{Name: "const", Value: 1e-12, Unit: "cm-2 s-1", Min: 1e-15, Max: 1e-5},
	)
	return m
}

// TypeName returns the canonical type string.
func (m *Constant) TypeName() string { return TypeConstant }

// String returns the canonical representation.
func (m *Constant) String() string { return modelString(m) }
