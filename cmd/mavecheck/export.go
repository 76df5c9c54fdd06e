package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/viper"

	"github.com/inodb/mavecheck/internal/duckdb"
	"github.com/inodb/mavecheck/internal/output"
	"github.com/inodb/mavecheck/internal/urn"
)

func runExport(args []string) int {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	var (
		dbPath     string
		outputFile string
	)

	fs.StringVar(&dbPath, "db", viper.GetString("db.path"), "DuckDB database path")
	fs.StringVar(&outputFile, "o", "", "Output file (default: stdout)")
	fs.StringVar(&outputFile, "output", "", "Output file (default: stdout)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Export a score set's stored variant records as JSON.

Usage:
  mavecheck export [options] <urn>

Arguments:
  <urn>  Score set accession, e.g. urn:mavedb:00000001-a-1 or tmp:...

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  mavecheck export urn:mavedb:00000001-a-1
  mavecheck export -o records.json tmp:aAbBcCdDeEfFgGhH
`)
	}

	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}
	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: urn argument required\n\n")
		fs.Usage()
		return ExitUsage
	}
	scoreSetURN := fs.Arg(0)

	if err := urn.ValidateScoreSet(scoreSetURN); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitUsage
	}

	s, ok := openStore(dbPath)
	if !ok {
		return ExitError
	}
	defer s.Close()

	records, err := s.LookupRecords(scoreSetURN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	if len(records) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no records stored for %s\n", scoreSetURN)
		fmt.Fprintf(os.Stderr, "Hint: List ingested score sets with: mavecheck list\n")
		return ExitError
	}

	out := os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			return ExitError
		}
		defer f.Close()
		out = f
	}

	if err := output.WriteRecordsJSON(out, records); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing records: %v\n", err)
		return ExitError
	}

	return ExitSuccess
}

func runList(args []string) int {
	fs := flag.NewFlagSet("list", flag.ExitOnError)

	var dbPath string
	fs.StringVar(&dbPath, "db", viper.GetString("db.path"), "DuckDB database path")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `List ingested score sets.

Usage:
  mavecheck list [options]

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	s, ok := openStore(dbPath)
	if !ok {
		return ExitError
	}
	defer s.Close()

	infos, err := s.ListScoreSets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	if len(infos) == 0 {
		fmt.Println("No score sets ingested.")
		return ExitSuccess
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "URN\tRECORDS\tCREATED\tTARGET\tSCORES FILE")
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			info.URN, info.RecordCount,
			info.CreatedAt.Format("2006-01-02 15:04"),
			info.TargetName, info.ScoresFile.Path)
	}
	w.Flush()

	return ExitSuccess
}

func runDelete(args []string) int {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)

	var dbPath string
	fs.StringVar(&dbPath, "db", viper.GetString("db.path"), "DuckDB database path")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Delete an ingested score set and its records.

Usage:
  mavecheck delete [options] <urn>

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}
	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: urn argument required\n\n")
		fs.Usage()
		return ExitUsage
	}
	scoreSetURN := fs.Arg(0)

	s, ok := openStore(dbPath)
	if !ok {
		return ExitError
	}
	defer s.Close()

	info, err := s.GetScoreSet(scoreSetURN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	if info == nil {
		fmt.Fprintf(os.Stderr, "Error: no score set stored as %s\n", scoreSetURN)
		return ExitError
	}

	if err := s.DeleteScoreSet(scoreSetURN); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	fmt.Printf("Deleted %s (%d records)\n", scoreSetURN, info.RecordCount)
	return ExitSuccess
}

// openStore opens the record store, reporting failures itself.
func openStore(dbPath string) (*duckdb.Store, bool) {
	if dbPath == "" {
		fmt.Fprintf(os.Stderr, "Error: no database path; set --db or db.path in the config\n")
		return nil, false
	}
	s, err := duckdb.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, false
	}
	return s, true
}
