package main

import (
	"repocheck/internal/cli"
	_ "repocheck/internal/plugins/axioms"
	_ "repocheck/internal/plugins/checks"
	_ "repocheck/internal/plugins/fixers"
)

// These variables are populated by the build via -ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cli.SetBuildInfo(version, commit, date)
	cli.Execute()
}
