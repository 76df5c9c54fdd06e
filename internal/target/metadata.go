package target

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// metadata is the YAML shape of a target description file:
//
//	name: BRCA1 RING domain
//	type: dna
//	sequence: ATGGATTTATCTGCT...
//
// or, pointing at a FASTA file relative to the metadata file:
//
//	name: BRCA1 RING domain
//	sequence_file: brca1.fa.gz
type metadata struct {
	Name         string `yaml:"name"`
	Type         string `yaml:"type"`
	Sequence     string `yaml:"sequence"`
	SequenceFile string `yaml:"sequence_file"`
}

// FromYAML reads a target metadata file.
func FromYAML(path string) (*Target, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read target metadata: %w", err)
	}

	var md metadata
	if err := yaml.Unmarshal(raw, &md); err != nil {
		return nil, fmt.Errorf("parse target metadata: %w", err)
	}

	st, err := ParseSequenceType(md.Type)
	if err != nil {
		return nil, err
	}
	if md.Sequence != "" && md.SequenceFile != "" {
		return nil, fmt.Errorf("target metadata: sequence and sequence_file are mutually exclusive")
	}

	if md.SequenceFile != "" {
		p := md.SequenceFile
		if !filepath.IsAbs(p) {
			p = filepath.Join(filepath.Dir(path), p)
		}
		t, err := FromFASTA(p)
		if err != nil {
			return nil, err
		}
		name := t.Name
		if md.Name != "" {
			name = md.Name
		}
		return New(name, t.Sequence, st)
	}

	return New(md.Name, md.Sequence, st)
}

// Load reads a target from a file, dispatching on the extension: YAML
// metadata (.yaml, .yml) or FASTA (.fa, .fasta, optionally .gz).
func Load(path string) (*Target, error) {
	name := strings.ToLower(strings.TrimSuffix(path, ".gz"))
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return FromYAML(path)
	case ".fa", ".fasta", ".fna":
		return FromFASTA(path)
	default:
		return nil, fmt.Errorf("unsupported target file format %q", filepath.Ext(path))
	}
}
