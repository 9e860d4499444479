// Package main provides the entry point for the gobytes CLI tool.
package main

import "github.com/ragdata/gobytes/cmd/gobytes/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
