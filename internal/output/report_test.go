package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/mavecheck/internal/dataset"
)

func runPipeline(t *testing.T, scores, counts string) *dataset.Result {
	t.Helper()
	var countsReader *strings.Reader
	p := dataset.NewPipeline(nil)

	if counts == "" {
		res, err := p.Run(strings.NewReader(scores), nil, dataset.ValidateOptions{})
		require.NoError(t, err)
		return res
	}
	countsReader = strings.NewReader(counts)
	res, err := p.Run(strings.NewReader(scores), countsReader, dataset.ValidateOptions{})
	require.NoError(t, err)
	return res
}

func TestWriteResultValid(t *testing.T) {
	res := runPipeline(t,
		"hgvs_nt,score\nc.1A>G,1.0\n",
		"hgvs_nt,count\nc.1A>G,5\n")

	var buf bytes.Buffer
	require.NoError(t, NewReportWriter(&buf).WriteResult(res))

	assert.Equal(t, `scores file: OK (1 rows)
counts file: OK (1 rows)

Validation Summary:
  Scores rows:   1
  Counts rows:   1
  Errors:        0
  Records built: 1
  Result:        VALID
`, buf.String())
}

func TestWriteResultInvalidScores(t *testing.T) {
	res := runPipeline(t, "hgvs_nt,count\nc.1A>G,5\n", "")

	var buf bytes.Buffer
	require.NoError(t, NewReportWriter(&buf).WriteResult(res))

	assert.Equal(t, `scores file: 1 error
  1. Your scores dataset is missing the 'score' column. Columns are case-sensitive and must be comma delimited

Validation Summary:
  Scores rows:   1
  Errors:        1
  Records built: 0
  Result:        INVALID
`, buf.String())
}

func TestWriteResultMismatch(t *testing.T) {
	res := runPipeline(t,
		"hgvs_nt,score\nc.1A>G,1.0\n",
		"hgvs_nt,count\nc.2T>G,5\n")

	var buf bytes.Buffer
	require.NoError(t, NewReportWriter(&buf).WriteResult(res))

	out := buf.String()
	assert.Contains(t, out, "cross-file: 1 error\n  1. Your score and counts files do not define the same variants.")
	assert.Contains(t, out, "Result:        INVALID")
}
