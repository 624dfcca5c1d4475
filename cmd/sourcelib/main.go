// Package main provides the entry point for the sourcelib CLI tool.
package main

import "github.com/gammasky/sourcelib/cmd/sourcelib/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	cmd.Execute(version, commit, date, builtBy)
}
