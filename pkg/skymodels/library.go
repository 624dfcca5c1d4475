package skymodels

import (
	"strings"

	"github.com/gammasky/sourcelib/pkg/errors"
)

// SourceLibrary is an ordered collection of sky models. Order always
// matches the document order of the <source> elements it was read from,
// and serialization writes sources back in the same order.
//
// A library is built fresh by each parse and shares no state with other
// libraries.
type SourceLibrary struct {
	// Title is the library title attribute, possibly empty
	Title string

	// SkyModels holds the sources in document order
	SkyModels []*SkyModel
}

// NewSourceLibrary creates a library with the given title and sources.
func NewSourceLibrary(title string, models ...*SkyModel) *SourceLibrary {
	return &SourceLibrary{
		Title:     title,
		SkyModels: models,
	}
}

// Add appends a source, preserving insertion order.
func (l *SourceLibrary) Add(model *SkyModel) {
	l.SkyModels = append(l.SkyModels, model)
}

// Len returns the number of sources.
func (l *SourceLibrary) Len() int {
	if l == nil {
		return 0
	}
	return len(l.SkyModels)
}

// Names returns the source names in library order.
func (l *SourceLibrary) Names() []string {
	names := make([]string, 0, l.Len())
	for _, m := range l.SkyModels {
		names = append(names, m.Name())
	}
	return names
}

// Source returns the first source with the given name.
func (l *SourceLibrary) Source(name string) (*SkyModel, error) {
	for _, m := range l.SkyModels {
		if m.Name() == name {
			return m, nil
		}
	}
	return nil, errors.NewNotFoundError("source", name)
}

// String returns the canonical multi-line representation: the title line
// followed by every source's representation in order. Two libraries that
// render identically are equal for round-trip purposes.
func (l *SourceLibrary) String() string {
	var sb strings.Builder
	sb.WriteString("SourceLibrary: ")
	sb.WriteString(l.Title)
	for _, m := range l.SkyModels {
		sb.WriteString("\n")
		sb.WriteString(m.String())
	}
	return sb.String()
}
