package target

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tgt, err := New("BRCA1", "atggat", TypeInfer)
	require.NoError(t, err)
	assert.Equal(t, "BRCA1", tgt.Name)
	assert.Equal(t, "ATGGAT", tgt.Sequence)
	assert.Equal(t, 6, tgt.Len())
	assert.True(t, tgt.IsDNA())
	assert.False(t, tgt.IsProtein())

	tgt, err = New("", "MDLSALRVEE", TypeInfer)
	require.NoError(t, err)
	assert.False(t, tgt.IsDNA())
	assert.True(t, tgt.IsProtein())
}

func TestNewRejectsNullSequence(t *testing.T) {
	for _, s := range []string{"", "  ", "nan", "None"} {
		_, err := New("x", s, TypeInfer)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a valid wild type sequence.")
	}
}

func TestNewTypeConstraints(t *testing.T) {
	// Pure ATCG doubles as a valid protein sequence.
	_, err := New("x", "ATG", TypeProtein)
	require.NoError(t, err)

	_, err = New("x", "MDLS", TypeDNA)
	require.Error(t, err)
	assert.Equal(t, "'MDLS' is not a valid DNA reference sequence.", err.Error())

	_, err = New("x", "MDJLS", TypeProtein)
	require.Error(t, err)
	assert.Equal(t, "'MDJLS' is not a valid protein reference sequence.", err.Error())

	_, err = New("x", "AUG", TypeInfer)
	require.Error(t, err)
	assert.Equal(t, "'AUG' is not a valid DNA or protein reference sequence.", err.Error())
}

func TestParseSequenceType(t *testing.T) {
	for in, want := range map[string]SequenceType{
		"":        TypeInfer,
		"infer":   TypeInfer,
		"dna":     TypeDNA,
		"DNA":     TypeDNA,
		"protein": TypeProtein,
	} {
		st, err := ParseSequenceType(in)
		require.NoError(t, err)
		assert.Equal(t, want, st)
	}

	_, err := ParseSequenceType("rna")
	require.Error(t, err)
	assert.Equal(t, `unknown target sequence type "rna"`, err.Error())
}
