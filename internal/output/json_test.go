package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRecordsJSON(t *testing.T) {
	res := runPipeline(t,
		"hgvs_nt,score\nc.1A>G,1.5\n",
		"hgvs_nt,count\nc.1A>G,5\n")
	require.Len(t, res.Records, 1)

	var buf bytes.Buffer
	require.NoError(t, WriteRecordsJSON(&buf, res.Records))

	assert.JSONEq(t, `[
		{
			"hgvs_nt": "c.1A>G",
			"hgvs_splice": null,
			"hgvs_pro": null,
			"data": {
				"scores": {"score": 1.5},
				"counts": {"count": 5}
			}
		}
	]`, buf.String())
}

func TestWriteRecordsJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecordsJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}
