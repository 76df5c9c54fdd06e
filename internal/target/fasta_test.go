package target

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFASTA(t *testing.T) {
	content := ">seq1 human BRCA1 fragment\nATGGAT\nTTATCT\n\n>seq2\nMDLSAL\n"

	targets, err := ParseFASTA(strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, targets, 2)

	assert.Equal(t, "seq1", targets[0].Name)
	assert.Equal(t, "ATGGATTTATCT", targets[0].Sequence)
	assert.Equal(t, "seq2", targets[1].Name)
	assert.Equal(t, "MDLSAL", targets[1].Sequence)
}

func TestParseFASTAErrors(t *testing.T) {
	_, err := ParseFASTA(strings.NewReader("ATGGAT\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sequence data before first header")

	_, err = ParseFASTA(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no records found")

	_, err = ParseFASTA(strings.NewReader(">seq1\nAXU!\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FASTA record 'seq1'")
}

func TestFromFASTA(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "target.fa")
	require.NoError(t, os.WriteFile(path, []byte(">wt\nATGGAT\n>other\nATATAT\n"), 0o644))

	tgt, err := FromFASTA(path)
	require.NoError(t, err)
	assert.Equal(t, "wt", tgt.Name)
	assert.Equal(t, "ATGGAT", tgt.Sequence)
}

func TestFromFASTAGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "target.fa.gz")

	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(">wt\nATGGAT\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	tgt, err := FromFASTA(path)
	require.NoError(t, err)
	assert.Equal(t, "ATGGAT", tgt.Sequence)
}
