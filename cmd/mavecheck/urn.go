package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/inodb/mavecheck/internal/urn"
)

func runURN(args []string) int {
	fs := flag.NewFlagSet("urn", flag.ExitOnError)

	var generate bool
	fs.BoolVar(&generate, "new", false, "Generate a fresh temporary accession")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Validate and classify MaveDB accessions, or generate temporary ones.

Usage:
  mavecheck urn [options] [<urn>...]

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  mavecheck urn urn:mavedb:00000001-a-1
  mavecheck urn urn:mavedb:00000001-a-1#12 tmp:aAbBcCdDeEfFgGhH
  mavecheck urn --new
`)
	}

	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	if generate {
		fmt.Println(urn.NewTmp())
		return ExitSuccess
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: urn argument required\n\n")
		fs.Usage()
		return ExitUsage
	}

	code := ExitSuccess
	for _, arg := range fs.Args() {
		kind, ok := urn.Classify(arg)
		if !ok {
			fmt.Printf("%s: invalid\n", arg)
			code = ExitError
			continue
		}
		fmt.Printf("%s: %s\n", arg, kind)
	}
	return code
}
