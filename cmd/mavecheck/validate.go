package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/spf13/viper"

	"github.com/inodb/mavecheck/internal/dataset"
	"github.com/inodb/mavecheck/internal/duckdb"
	"github.com/inodb/mavecheck/internal/output"
	"github.com/inodb/mavecheck/internal/target"
	"github.com/inodb/mavecheck/internal/urn"
	"github.com/inodb/mavecheck/internal/variant"
)

func runValidate(args []string) int {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)

	var (
		countsPath      string
		targetArg       string
		targetType      string
		relaxedOrdering bool
		allowDuplicates bool
		outputFormat    string
		outputFile      string
		save            bool
		dbPath          string
		scoreSetURN     string
		verbose         bool
	)

	fs.StringVar(&countsPath, "counts", "", "Counts file validated together with the scores file")
	fs.StringVar(&targetArg, "target", "", "Target: FASTA or YAML file, or a raw sequence")
	fs.StringVar(&targetType, "target-type", "", "Sequence type for a raw --target value: dna or protein")
	fs.BoolVar(&relaxedOrdering, "relaxed-ordering", viper.GetBool("validate.relaxed_ordering"), "Skip the ascending position requirement in multi-variants")
	fs.BoolVar(&allowDuplicates, "allow-duplicates", false, "Allow duplicate variants in the primary HGVS column")
	fs.StringVar(&outputFormat, "f", "report", "Output format: report, json, csv")
	fs.StringVar(&outputFormat, "output-format", "report", "Output format: report, json, csv")
	fs.StringVar(&outputFile, "o", "", "Output file (default: stdout)")
	fs.StringVar(&outputFile, "output", "", "Output file (default: stdout)")
	fs.BoolVar(&save, "save", false, "Ingest built records into the local store")
	fs.StringVar(&dbPath, "db", viper.GetString("db.path"), "DuckDB database path")
	fs.StringVar(&scoreSetURN, "urn", "", "Score set accession to ingest under (default: a fresh tmp accession)")
	fs.BoolVar(&verbose, "verbose", false, "Log pipeline progress")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Validate MAVE score and count files.

Usage:
  mavecheck validate [options] <scores-file>

Arguments:
  <scores-file>  Scores CSV file (use '-' for stdin)

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  mavecheck validate scores.csv
  mavecheck validate --counts counts.csv scores.csv
  mavecheck validate --target target.fa scores.csv
  mavecheck validate --target ATGACCGAA --target-type dna scores.csv
  mavecheck validate -f json -o records.json scores.csv
  mavecheck validate --save --urn urn:mavedb:00000001-a-1 scores.csv
  cat scores.csv | mavecheck validate -
`)
	}

	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: scores file argument required\n\n")
		fs.Usage()
		return ExitUsage
	}
	scoresPath := fs.Arg(0)

	if scoreSetURN != "" {
		if err := urn.ValidateScoreSet(scoreSetURN); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return ExitUsage
		}
	}

	targetSeq, targetName, err := resolveTarget(targetArg, targetType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	scoresFile, err := openInput(scoresPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Hint: Check that the file path is correct\n")
		}
		return ExitError
	}
	defer scoresFile.Close()

	var countsReader io.Reader
	if countsPath != "" {
		countsFile, err := openInput(countsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return ExitError
		}
		defer countsFile.Close()
		countsReader = countsFile
	}

	p := dataset.NewPipeline(newValidator())
	p.SetLogger(newLogger(verbose))

	res, err := p.Run(scoresFile, countsReader, dataset.ValidateOptions{
		TargetSeq:            targetSeq,
		RelaxedOrdering:      relaxedOrdering,
		AllowIndexDuplicates: allowDuplicates,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
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

	switch outputFormat {
	case "report":
		if err := output.NewReportWriter(out).WriteResult(res); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			return ExitError
		}
	case "json", "csv":
		if !res.Valid() {
			// Data formats only carry valid results; the report goes to
			// stderr so the failures are still visible.
			output.NewReportWriter(os.Stderr).WriteResult(res)
			return ExitError
		}
		if outputFormat == "json" {
			err = output.WriteRecordsJSON(out, res.Records)
		} else {
			err = output.WriteDatasetCSV(out, res.Scores)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			return ExitError
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown output format %q\n", outputFormat)
		return ExitError
	}

	if save {
		if !res.Valid() {
			fmt.Fprintf(os.Stderr, "Error: refusing to ingest an invalid dataset\n")
			return ExitError
		}
		if code := saveRecords(res, dbPath, scoreSetURN, targetName, scoresPath, countsPath); code != ExitSuccess {
			return code
		}
	}

	if !res.Valid() {
		return ExitError
	}
	return ExitSuccess
}

// saveRecords ingests the built records under the given accession,
// replacing any earlier ingestion with the same accession.
func saveRecords(res *dataset.Result, dbPath, scoreSetURN, targetName, scoresPath, countsPath string) int {
	if dbPath == "" {
		fmt.Fprintf(os.Stderr, "Error: no database path; set --db or db.path in the config\n")
		return ExitUsage
	}
	if scoreSetURN == "" {
		scoreSetURN = urn.NewTmp()
	}

	s, err := duckdb.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	defer s.Close()

	if err := s.DeleteScoreSet(scoreSetURN); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing previous ingestion: %v\n", err)
		return ExitError
	}
	if err := s.WriteRecords(scoreSetURN, res.Records); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing records: %v\n", err)
		return ExitError
	}

	info := duckdb.NewScoreSetInfo(scoreSetURN, targetName)
	info.RecordCount = int64(len(res.Records))
	if fp, err := duckdb.StatFile(scoresPath); err == nil {
		info.ScoresFile = fp
	}
	if countsPath != "" {
		if fp, err := duckdb.StatFile(countsPath); err == nil {
			info.CountsFile = fp
		}
	}
	if err := s.SaveScoreSet(info); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	fmt.Fprintf(os.Stderr, "Ingested %d records as %s into %s\n",
		len(res.Records), scoreSetURN, dbPath)
	return ExitSuccess
}

// newValidator honors extra null tokens from the config file.
func newValidator() *variant.Validator {
	extra := viper.GetStringSlice("validate.null_values")
	if len(extra) == 0 {
		return variant.NewValidator(nil)
	}
	return variant.NewValidator(variant.NewNullValues(extra))
}

// resolveTarget turns the --target argument into a sequence and a
// display name. File arguments go through the FASTA and YAML loaders;
// anything else is taken as a raw sequence.
func resolveTarget(arg, typeName string) (seq, name string, err error) {
	if arg == "" {
		return "", "", nil
	}

	if _, statErr := os.Stat(arg); statErr == nil {
		tgt, err := target.Load(arg)
		if err != nil {
			return "", "", err
		}
		return tgt.Sequence, tgt.Name, nil
	}

	st := target.TypeInfer
	if typeName != "" {
		st, err = target.ParseSequenceType(typeName)
		if err != nil {
			return "", "", err
		}
	}
	tgt, err := target.New("target", arg, st)
	if err != nil {
		return "", "", err
	}
	return tgt.Sequence, tgt.Name, nil
}

// openInput opens a file argument, with '-' selecting stdin.
func openInput(path string) (*os.File, error) {
	if path == "-" {
		return os.Stdin, nil
	}
	return os.Open(path)
}
