package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

func runSearch(args []string) int {
	fs := flag.NewFlagSet("search", flag.ExitOnError)

	var dbPath string
	fs.StringVar(&dbPath, "db", viper.GetString("db.path"), "DuckDB database path")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Find stored records defining an HGVS variant, across all score sets.

Usage:
  mavecheck search [options] <hgvs>

Arguments:
  <hgvs>  Variant string as validated, e.g. c.1A>G or p.Gly12Val

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  mavecheck search c.1A>G
  mavecheck search p.Gly12Val
`)
	}

	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}
	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: hgvs argument required\n\n")
		fs.Usage()
		return ExitUsage
	}
	hgvs := fs.Arg(0)

	s, ok := openStore(dbPath)
	if !ok {
		return ExitError
	}
	defer s.Close()

	matches, err := s.SearchByHGVS(hgvs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	if len(matches) == 0 {
		fmt.Fprintf(os.Stderr, "No stored records define %s\n", hgvs)
		return ExitSuccess
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(matches); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing matches: %v\n", err)
		return ExitError
	}

	return ExitSuccess
}
