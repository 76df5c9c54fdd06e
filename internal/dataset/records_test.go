package dataset

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRecords(t *testing.T) {
	scores := scoresFrom(t, "hgvs_nt,hgvs_pro,score,extra\nc.1A>G,p.Ile1Val,1.1,hello\nc.2T>G,,0.0,\n")
	scores.Validate(ValidateOptions{})
	require.True(t, scores.IsValid())

	counts := countsFrom(t, "hgvs_nt,hgvs_pro,count\nc.1A>G,p.Ile1Val,5\nc.2T>G,,6\n")
	counts.Validate(ValidateOptions{})
	require.True(t, counts.IsValid())

	records, err := BuildRecords(scores, counts)
	require.NoError(t, err)
	require.Len(t, records, 2)

	r := records[0]
	require.NotNil(t, r.HGVSNt)
	assert.Equal(t, "c.1A>G", *r.HGVSNt)
	assert.Nil(t, r.HGVSSplice)
	require.NotNil(t, r.HGVSPro)
	assert.Equal(t, "p.Ile1Val", *r.HGVSPro)
	assert.Equal(t, map[string]any{"score": 1.1, "extra": "hello"}, r.Data.Scores)
	assert.Equal(t, map[string]any{"count": 5.0}, r.Data.Counts)

	r = records[1]
	require.NotNil(t, r.HGVSNt)
	assert.Equal(t, "c.2T>G", *r.HGVSNt)
	assert.Nil(t, r.HGVSPro)
	assert.Equal(t, map[string]any{"score": 0.0, "extra": nil}, r.Data.Scores)
	assert.Equal(t, map[string]any{"count": 6.0}, r.Data.Counts)
}

func TestBuildRecordsScoresOnly(t *testing.T) {
	scores := scoresFrom(t, "hgvs_nt,score\nc.1A>G,1.0\n")
	scores.Validate(ValidateOptions{})
	require.True(t, scores.IsValid())

	records, err := BuildRecords(scores, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, map[string]any{"score": 1.0}, records[0].Data.Scores)
	require.NotNil(t, records[0].Data.Counts)
	assert.Empty(t, records[0].Data.Counts)
}

func TestBuildRecordsIdenticalCounts(t *testing.T) {
	content := "hgvs_nt,score\nc.1A>G,1.0\n"

	scores := scoresFrom(t, content)
	scores.Validate(ValidateOptions{})
	counts := countsFrom(t, content)
	counts.Validate(ValidateOptions{})

	records, err := BuildRecords(scores, counts)
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Counts identical to scores carry no information.
	assert.Empty(t, records[0].Data.Counts)
}

func TestBuildRecordsNumericValues(t *testing.T) {
	scores := scoresFrom(t, "hgvs_nt,score,extra\nc.1A>G,5.6e-15,7x\nc.2T>G, 2 ,3.5\n")
	scores.Validate(ValidateOptions{})
	require.True(t, scores.IsValid())

	records, err := BuildRecords(scores, nil)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, map[string]any{"score": 5.6e-15, "extra": "7x"}, records[0].Data.Scores)
	assert.Equal(t, map[string]any{"score": 2.0, "extra": 3.5}, records[1].Data.Scores)
}

func TestBuildRecordsSkipsNullKeys(t *testing.T) {
	scores := scoresFrom(t, "hgvs_nt,hgvs_pro,score\n,,1.0\n,,1.1\n")
	scores.Validate(ValidateOptions{})
	require.True(t, scores.IsValid())

	records, err := BuildRecords(scores, nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestBuildRecordsDuplicateKeys(t *testing.T) {
	opts := ValidateOptions{AllowIndexDuplicates: true}

	scores := scoresFrom(t, "hgvs_nt,score\nc.1A>G,1.0\nc.1A>G,2.0\n")
	scores.Validate(opts)
	require.True(t, scores.IsValid())

	counts := countsFrom(t, "hgvs_nt,count\nc.1A>G,5\nc.1A>G,6\n")
	counts.Validate(opts)
	require.True(t, counts.IsValid())

	records, err := BuildRecords(scores, counts)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, map[string]any{"count": 5.0}, records[0].Data.Counts)
	assert.Equal(t, map[string]any{"count": 6.0}, records[1].Data.Counts)

	mismatched := countsFrom(t, "hgvs_nt,count\nc.1A>G,5\nc.2T>G,6\n")
	mismatched.Validate(opts)
	require.True(t, mismatched.IsValid())

	_, err = BuildRecords(scores, mismatched)
	require.Error(t, err)
	assert.Equal(t, "variant 'c.1A>G' has 2 scores rows but 1 counts rows", err.Error())
}

func TestBuildRecordsRequiresValidation(t *testing.T) {
	scores := scoresFrom(t, "hgvs_nt,score\nc.1A>G,1.0\n")

	_, err := BuildRecords(scores, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scores dataset must be validated")

	scores.Validate(ValidateOptions{})
	counts := countsFrom(t, "hgvs_nt,count\nc.1A>G,5\n")

	_, err = BuildRecords(scores, counts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "counts dataset must be validated")
}

func TestRecordJSON(t *testing.T) {
	scores := scoresFrom(t, "hgvs_nt,score\nc.1A>G,1.5\n")
	scores.Validate(ValidateOptions{})

	records, err := BuildRecords(scores, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)

	out, err := json.Marshal(records[0])
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"hgvs_nt":"c.1A>G","hgvs_splice":null,"hgvs_pro":null,`+
			`"data":{"scores":{"score":1.5},"counts":{}}}`,
		string(out))
}
