// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --verbose, --registry, --tool, --version

package main

import "flag"

type cliArgs struct {
	verbose  bool
	registry string
	tool     string
	version  bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	flag.StringVar(&args.registry, "registry", "", "Registry API base URL (overrides config)")
	flag.StringVar(&args.tool, "tool", "", "Package manager command (overrides config)")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}

// remaining returns the non-flag command-line arguments.
func (a cliArgs) remaining() []string {
	return flag.Args()
}
