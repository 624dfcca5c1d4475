package skymodels

import (
	"fmt"
	"math"
)

// Problem is one non-fatal finding from validation. Problems never stop
// parsing or serialization; they exist so tooling can report suspicious
// documents that are still structurally decodable.
type Problem struct {
	// Source names the sky model the problem belongs to, empty for
	// library-level findings
	Source string

	// Field locates the problem, e.g. "spectral.index"
	Field string

	// Message describes what is wrong
	Message string
}

// String renders the problem as "source: field: message".
func (p Problem) String() string {
	s := ""
	if p.Source != "" {
		s = p.Source + ": "
	}
	if p.Field != "" {
		s += p.Field + ": "
	}
	return s + p.Message
}

// Validate checks the library and every source in it, returning all
// findings. An empty slice means no problems.
func (l *SourceLibrary) Validate() []Problem {
	var problems []Problem

	seen := make(map[string]bool, l.Len())
	for _, m := range l.SkyModels {
		if seen[m.Name()] {
			problems = append(problems, Problem{
				Field:   "source.name",
				Message: fmt.Sprintf("duplicate source name %q", m.Name()),
			})
		}
		seen[m.Name()] = true
		problems = append(problems, m.Validate()...)
	}
	return problems
}

// Validate checks both sub-models against their registered parameter
// layouts and flags non-finite values.
func (m *SkyModel) Validate() []Problem {
	var problems []Problem
	problems = append(problems, validateModel(m.Name(), m.spectral)...)
	problems = append(problems, validateModel(m.Name(), m.spatial)...)

	if dm, ok := m.spatial.(*SkyDiffuseMap); ok && dm.Filename == "" {
		problems = append(problems, Problem{
			Source:  m.Name(),
			Field:   "spatial.file",
			Message: "diffuse map has no template file path",
		})
	}
	return problems
}

// validateModel compares a model's parameters with the defaults of its
// registered type and checks every value is finite.
func validateModel(source string, model Model) []Problem {
	var problems []Problem
	prefix := model.Category().String()

	// The registry is total over TypeName values, so this only fails for
	// a hand-built variant whose TypeName was tampered with.
	expected, err := NewModel(model.Category(), model.TypeName())
	if err != nil {
		problems = append(problems, Problem{
			Source:  source,
			Field:   prefix + ".type",
			Message: fmt.Sprintf("unregistered type %q", model.TypeName()),
		})
		return problems
	}

	for _, name := range expected.Parameters().Names() {
		if _, ok := model.Parameters().Get(name); !ok {
			problems = append(problems, Problem{
				Source:  source,
				Field:   fmt.Sprintf("%s.%s", prefix, name),
				Message: fmt.Sprintf("missing parameter expected by %s", model.TypeName()),
			})
		}
	}

	for _, param := range model.Parameters().List() {
		field := fmt.Sprintf("%s.%s", prefix, param.Name)
		if _, ok := expected.Parameters().Get(param.Name); !ok {
			problems = append(problems, Problem{
				Source:  source,
				Field:   field,
				Message: fmt.Sprintf("parameter not declared by %s", model.TypeName()),
			})
		}
		attrs := []struct {
			name string
			v    float64
		}{{"value", param.Value}, {"min", param.Min}, {"max", param.Max}}
		for _, attr := range attrs {
			if math.IsNaN(attr.v) || math.IsInf(attr.v, 0) {
				problems = append(problems, Problem{
					Source:  source,
					Field:   field,
					Message: fmt.Sprintf("%s is not finite", attr.name),
				})
			}
		}
	}
	return problems
}
