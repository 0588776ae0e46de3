// Package main is the entry point for the webfleet CLI.
//
// webfleet provisions a small multi-region web environment: a resource
// group, a registered domain with a locally generated certificate, three
// hosting plans spread across regions, five web apps and a weighted
// traffic routing profile. It can run as a self-cleaning demo or keep the
// environment around for inspection.
//
// Commands: init, run, up, destroy, version.
//
// For detailed usage information, run:
//
//	webfleet --help
package main

import (
	"fmt"
	"os"

	"github.com/webfleet-dev/webfleet/cmd/webfleet/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
