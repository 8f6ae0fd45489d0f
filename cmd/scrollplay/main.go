// Package main provides the scrollplay CLI, which replays scroll
// scenarios through the resolver.
//
// Usage:
//
//	scrollplay run scenario.yaml    Replay a scenario and print each hop
//	scrollplay check scenario.yaml  Validate a scenario without replaying
//	scrollplay help                 Show help
//
// A scenario describes a surface and a list of scroll steps:
//
//	surface:
//	  content:  {width: 4000, height: 6000}
//	  viewport: {width: 800, height: 600}
//	steps:
//	  - to: 50%
//	  - to: {x: "+=100", y: bottom}
//	    mode: append
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `scrollplay - replay scroll scenarios through the resolver

Usage:
  scrollplay <command> [scenario.yaml]

Commands:
  run         Replay a scenario, printing each resolved position
  check       Validate a scenario without replaying it
  version     Print version information
  help        Show this help message

Examples:
  scrollplay run chained.yaml     Replay every step against the surface
  scrollplay check chained.yaml   Parse and resolve without applying
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "run":
		if err := runScenario(args, true); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := runScenario(args, false); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("scrollplay version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
