package sourcelib

import (
	"path/filepath"
	"strings"

	"github.com/gammasky/sourcelib/pkg/errors"
)

// Format identifies a document format.
type Format string

// Supported document formats
const (
	// FormatXML is the XML model-definition format
	FormatXML Format = "xml"

	// FormatYAML is the YAML rendition
	FormatYAML Format = "yaml"
)

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// config holds the resolved options for one call.
type config struct {
	format Format // empty means derive from path or default to XML
}

// Option configures a single Read, Parse, Write, or Marshal call.
type Option func(*config) error

// WithFormat forces the document format instead of deriving it from the
// file extension.
func WithFormat(format Format) Option {
	return func(c *config) error {
		switch format {
		case FormatXML, FormatYAML:
			c.format = format
			return nil
		default:
			return errors.NewValidationError("format", format, "must be xml or yaml")
		}
	}
}

// newConfig applies the options to a fresh config.
func newConfig(opts ...Option) (*config, error) {
	c := &config{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// formatFor resolves the effective format for a path: the forced format
// when set, otherwise by extension, defaulting to XML.
func (c *config) formatFor(path string) Format {
	if c.format != "" {
		return c.format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatXML
	}
}
