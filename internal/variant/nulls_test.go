package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNull(t *testing.T) {
	nulls := DefaultNullValues()

	nullTokens := []string{
		"", " ", "\t", "  \t ",
		"nan", "NaN", "NAN",
		"na", "NA", "Na",
		"none", "None", "NONE",
		"undefined", "Undefined",
		"n/a", "N/A",
		"null", "NULL",
		"nil", "Nil",
		" none ", "\tnan\t",
	}
	for _, tok := range nullTokens {
		assert.True(t, nulls.IsNull(tok), "expected %q to be null", tok)
	}

	valued := []string{
		"0", "0.0", "c.1A>G", "_wt", "_sy", "score",
		"n/b", "nane", "nulll", "nonsense", "na/n",
	}
	for _, tok := range valued {
		assert.False(t, nulls.IsNull(tok), "expected %q to be a value", tok)
	}
}

func TestNullValuesReadable(t *testing.T) {
	nulls := DefaultNullValues()
	assert.Equal(t, []string{
		"'nan'", "'na'", "'none'", "'undefined'", "'n/a'", "'null'", "'nil'",
		"whitespace",
	}, nulls.Readable())
}

func TestNewNullValuesExtraTokens(t *testing.T) {
	nulls := NewNullValues([]string{"missing", "-", "NA"})

	assert.True(t, nulls.IsNull("missing"))
	assert.True(t, nulls.IsNull("MISSING"))
	assert.True(t, nulls.IsNull("-"))
	assert.False(t, nulls.IsNull("--"))

	readable := nulls.Readable()
	assert.Contains(t, readable, "'missing'")
	assert.Contains(t, readable, "'-'")
	assert.Equal(t, "whitespace", readable[len(readable)-1])
}
