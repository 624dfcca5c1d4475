package skymodels

import (
	"fmt"
	"strings"

	"github.com/gammasky/sourcelib/pkg/errors"
)

// Parameters is an ordered collection of model parameters indexed by name.
// Order is insertion order and is preserved through serialization, so a
// library read from a document writes its parameters back in document order.
type Parameters struct {
	list []*Parameter
}

// NewParameters creates a collection from the given parameters in order.
// Returns an error when two parameters share a name.
func NewParameters(params ...Parameter) (*Parameters, error) {
	p := &Parameters{list: make([]*Parameter, 0, len(params))}
	for i := range params {
		if err := p.Add(params[i]); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// MustParameters is like NewParameters but panics on duplicate names.
// It is intended for the fixed default sets of the model constructors.
func MustParameters(params ...Parameter) *Parameters {
	p, err := NewParameters(params...)
	if err != nil {
		panic(err)
	}
	return p
}

// Add appends a parameter, rejecting duplicate names.
func (p *Parameters) Add(param Parameter) error {
	if param.Name == "" {
		return errors.NewValidationError("parameter.name", nil, "must not be empty")
	}
	if _, ok := p.Get(param.Name); ok {
		return errors.NewValidationError("parameter.name", param.Name, "duplicate parameter name")
	}
	cp := param
	p.list = append(p.list, &cp)
	return nil
}

// Get returns the parameter with the given name, or false when absent.
// The returned pointer aliases the stored parameter, so callers may update
// Value or Frozen in place.
func (p *Parameters) Get(name string) (*Parameter, bool) {
	if p == nil {
		return nil, false
	}
	for _, param := range p.list {
		if param.Name == name {
			return param, true
		}
	}
	return nil, false
}

// Len returns the number of parameters.
func (p *Parameters) Len() int {
	if p == nil {
		return 0
	}
	return len(p.list)
}

// Names returns the parameter names in insertion order.
func (p *Parameters) Names() []string {
	if p == nil {
		return nil
	}
	names := make([]string, len(p.list))
	for i, param := range p.list {
		names[i] = param.Name
	}
	return names
}

// List returns the parameters in insertion order. The slice is a copy but
// the pointers alias the stored parameters.
func (p *Parameters) List() []*Parameter {
	if p == nil {
		return nil
	}
	out := make([]*Parameter, len(p.list))
	copy(out, p.list)
	return out
}

// Merge combines two collections into a new one, this collection's
// parameters first. The merged collection aliases the original parameters
// rather than copying them. Returns an error when a name appears in both.
func (p *Parameters) Merge(other *Parameters) (*Parameters, error) {
	merged := &Parameters{list: make([]*Parameter, 0, p.Len()+other.Len())}
	merged.list = append(merged.list, p.List()...)
	for _, param := range other.List() {
		if _, ok := merged.Get(param.Name); ok {
			return nil, errors.NewValidationError("parameters", param.Name, "parameter name collision")
		}
		merged.list = append(merged.list, param)
	}
	return merged, nil
}

// String lists each parameter on its own line in insertion order.
func (p *Parameters) String() string {
	if p.Len() == 0 {
		return "(no parameters)"
	}
	lines := make([]string, len(p.list))
	for i, param := range p.list {
		lines[i] = param.String()
	}
	return strings.Join(lines, "\n")
}

// GoString makes %#v output readable in test failures.
func (p *Parameters) GoString() string {
	return fmt.Sprintf("skymodels.Parameters{%s}", strings.Join(p.Names(), ", "))
}
