// Package skymodels provides the typed object graph for astrophysical source
// models: a SourceLibrary of SkyModel entries, each pairing one spectral model
// variant with one spatial model variant, every variant carrying named,
// unit-bearing, bounded parameters.
//
// The set of model variants is closed. New kinds are added here together with
// their registry entry, never discovered dynamically.
package skymodels

import (
	"strconv"
	"strings"
)

// Parameter is one named quantity of a model: its physical value, unit,
// fit bounds, and whether it is frozen during fitting.
//
// Min and Max are not necessarily ordered. Inverse-scaled quantities
// legitimately carry Min > Max and the values are preserved verbatim.
type Parameter struct {
	// Name identifies the parameter within its model, e.g. "index" or "lon_0"
	Name string

	// Value is the physical value (document value multiplied by its scale)
	Value float64

	// Unit is the physical unit, empty when dimensionless
	Unit string

	// Min is the lower fit bound in physical units
	Min float64

	// Max is the upper fit bound in physical units
	Max float64

	// Frozen reports whether the parameter is held fixed during fitting
	Frozen bool
}

// String returns the canonical single-line representation, e.g.
//
//	lon_0 = 0.5 deg [-360, 360] (frozen)
func (p Parameter) String() string {
	var sb strings.Builder
	sb.WriteString(p.Name)
	sb.WriteString(" = ")
	sb.WriteString(formatValue(p.Value))
	if p.Unit != "" {
		sb.WriteString(" ")
		sb.WriteString(p.Unit)
	}
	sb.WriteString(" [")
	sb.WriteString(formatValue(p.Min))
	sb.WriteString(", ")
	sb.WriteString(formatValue(p.Max))
	if p.Frozen {
		sb.WriteString("] (frozen)")
	} else {
		sb.WriteString("] (free)")
	}
	return sb.String()
}

// formatValue renders a float with the shortest representation that
// round-trips exactly through strconv.ParseFloat.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
