package target

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// FromFASTA reads the first record of a FASTA file. Files ending in .gz
// are decompressed.
func FromFASTA(path string) (*Target, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open FASTA file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip reader: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	targets, err := ParseFASTA(reader)
	if err != nil {
		return nil, err
	}
	return targets[0], nil
}

// ParseFASTA reads every record of a FASTA stream. Record names are the
// first whitespace-delimited token of the header line.
func ParseFASTA(r io.Reader) ([]*Target, error) {
	scanner := bufio.NewScanner(r)
	// Whole chromosomes fit on one line in some exports.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	var targets []*Target
	var name string
	var sequence strings.Builder
	sawHeader := false

	flush := func() error {
		if !sawHeader {
			return nil
		}
		t, err := New(name, sequence.String(), TypeInfer)
		if err != nil {
			return fmt.Errorf("FASTA record '%s': %w", name, err)
		}
		targets = append(targets, t)
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return nil, err
			}
			name = headerName(line)
			sequence.Reset()
			sawHeader = true
			continue
		}
		if !sawHeader {
			return nil, fmt.Errorf("FASTA: sequence data before first header")
		}
		sequence.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan FASTA: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("FASTA: no records found")
	}
	return targets, nil
}

func headerName(header string) string {
	header = strings.TrimSpace(strings.TrimPrefix(header, ">"))
	if idx := strings.IndexAny(header, " \t"); idx != -1 {
		return header[:idx]
	}
	return header
}
