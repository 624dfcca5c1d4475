// Package paths resolves user-supplied document paths. Model files are
// customarily addressed through environment variables such as
// $GAMMAPY_EXTRA/test_datasets/models/examples.xml, so every path accepted
// by the library goes through Expand before it reaches the filesystem.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// Expand replaces $VAR and ${VAR} references with their environment values
// and expands a leading ~ to the user's home directory. References to
// variables that are not set are kept verbatim rather than collapsing to
// an empty string, which would silently redirect the path.
func Expand(path string) string {
	expanded := os.Expand(path, func(name string) string {
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		return "$" + name
	})
	return expandHome(expanded)
}

// expandHome expands a path that may start with ~ to the user's home
// directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
