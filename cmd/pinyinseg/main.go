// Package main is the entry point for the pinyinseg command.
package main

import (
	"fmt"
	"os"
)

// Build information injected via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	a := newApp()
	root := a.rootCmd()
	root.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	err := root.Execute()
	a.close()
	if err != nil {
		os.Exit(1)
	}
}
