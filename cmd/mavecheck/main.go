// Package main provides the mavecheck command-line tool.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Global flags
	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	// Parse global flags first
	flag.Parse()

	if showVersion {
		fmt.Printf("mavecheck version %s (%s) built %s\n", version, commit, date)
		return ExitSuccess
	}

	initConfig()

	// Check for subcommand
	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		return ExitUsage
	}

	switch args[0] {
	case "validate":
		return runValidate(args[1:])
	case "export":
		return runExport(args[1:])
	case "list":
		return runList(args[1:])
	case "search":
		return runSearch(args[1:])
	case "delete":
		return runDelete(args[1:])
	case "urn":
		return runURN(args[1:])
	case "config":
		return runConfig(args[1:])
	case "help":
		printUsage()
		return ExitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args[0])
		printUsage()
		return ExitUsage
	}
}

// initConfig loads .env and the viper config file. Flags still override
// every configured value.
func initConfig() {
	_ = godotenv.Load()

	viper.SetConfigName(".mavecheck")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("MAVECHECK")
	viper.AutomaticEnv()

	viper.SetDefault("db.path", defaultDBPath())

	// A missing config file is fine
	_ = viper.ReadInConfig()
}

// defaultDBPath returns the default location of the local record store.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "mavecheck.duckdb"
	}
	return filepath.Join(home, ".mavecheck", "records.duckdb")
}

// newLogger returns a development logger when verbose, a no-op logger
// otherwise.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `mavecheck - MAVE score file validator

Usage:
  mavecheck [options] <command> [arguments]

Commands:
  validate    Validate MAVE score and count files
  export      Export stored variant records for a score set
  list        List ingested score sets
  search      Find stored records defining an HGVS variant
  delete      Delete an ingested score set
  urn         Validate, classify, or generate MaveDB accessions
  config      Manage mavecheck configuration
  help        Show this help message

Global Options:
  --version   Show version information

Examples:
  # Validate a scores file on its own
  mavecheck validate scores.csv

  # Validate scores and counts together against a target sequence
  mavecheck validate --counts counts.csv --target target.fa scores.csv

  # Validate and ingest records under a fresh temporary accession
  mavecheck validate --counts counts.csv --save scores.csv

  # Read ingested records back out as JSON
  mavecheck export urn:mavedb:00000001-a-1

For more information on a command, use:
  mavecheck <command> --help
`)
}
