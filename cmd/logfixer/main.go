// Command logfixer rewrites logger call sites that pass an error as a
// standalone argument, moving it into the metadata object as a shorthand
// property:
//
//	logger.info('Saved record:', error, { component: 'storage' })
//	  -> logger.info('Saved record:', { component: 'storage', error })
//
// Usage:
//
//	logfixer [flags] <file>
//
// Examples:
//
//	# Rewrite a single file in place
//	logfixer src/storage.js
//
//	# Use a custom config file
//	logfixer -config /path/to/.logfixer.yaml src/storage.js
//
//	# Report matches without writing
//	logfixer -dry-run src/storage.js
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Wladim1r/logfixer/internal/config"
	"github.com/Wladim1r/logfixer/internal/rewriter"
)

var (
	configPath = flag.String(
		"config",
		".logfixer.yaml",
		"path to logfixer YAML configuration file",
	)
	dryRun = flag.Bool(
		"dry-run",
		false,
		"report matches without writing the file back",
	)
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		// Usage goes to stdout: the missing argument is a user-facing
		// failure path, not a program fault.
		fmt.Println("Usage: logfixer [flags] <file>")
		os.Exit(1)
	}
	path := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rw, err := rewriter.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rw.SetDryRun(*dryRun)

	res, err := rw.FixFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *dryRun {
		fmt.Printf("Would fix: %s\n", res.Path)
		for _, c := range res.Changes {
			fmt.Printf("  %s: %d\n", c.Rule, c.Count)
		}
		return
	}

	fmt.Printf("Fixed: %s\n", res.Path)
}
