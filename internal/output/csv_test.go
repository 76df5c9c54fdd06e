package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/mavecheck/internal/dataset"
)

func TestWriteDatasetCSV(t *testing.T) {
	d, err := dataset.ForScores(strings.NewReader(
		"extra,score,hgvs_nt\nx,1.5,c.1A>G\ny,2,c.2C>T\n"))
	require.NoError(t, err)
	d.Validate(dataset.ValidateOptions{})
	require.True(t, d.IsValid())

	var buf bytes.Buffer
	require.NoError(t, WriteDatasetCSV(&buf, d))

	assert.Equal(t, `hgvs_nt,hgvs_splice,hgvs_pro,score,extra
c.1A>G,,,1.5,x
c.2C>T,,,2,y
`, buf.String())
}

func TestWriteDatasetCSVRequiresValid(t *testing.T) {
	d, err := dataset.ForScores(strings.NewReader("hgvs_nt,count\nc.1A>G,5\n"))
	require.NoError(t, err)
	d.Validate(dataset.ValidateOptions{})
	require.False(t, d.IsValid())

	var buf bytes.Buffer
	err = WriteDatasetCSV(&buf, d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be valid")
	assert.Zero(t, buf.Len())
}
