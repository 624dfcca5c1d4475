// Package constants provides shared constants used throughout the sourcelib
// codebase. This includes file permissions, serialization defaults, and other
// values that should be consistent across the application.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Serialization constants define the canonical document layout
const (
	// XMLIndent is the indentation unit for nested XML elements
	XMLIndent = "  "

	// YAMLIndent is the indentation width for YAML documents
	YAMLIndent = 2

	// DefaultLibraryTitle is used when a source library has no title
	DefaultLibraryTitle = "source library"
)

// Display constants for CLI output
const (
	// MaxNameWidth caps the source name column in table output
	MaxNameWidth = 40
)
