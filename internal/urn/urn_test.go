package urn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		urn  string
		kind Kind
		ok   bool
	}{
		{"urn:mavedb:00000001", KindExperimentSet, true},
		{"urn:mavedb:00000001-a", KindExperiment, true},
		{"urn:mavedb:00000001-aa", KindExperiment, true},
		{"urn:mavedb:00000001-0", KindExperiment, true},
		{"urn:mavedb:00000001-a-1", KindScoreSet, true},
		{"urn:mavedb:00000001-a-1#12345", KindVariant, true},
		{"tmp:aAbBcC0123456789", KindTmp, true},

		{"urn:mavedb:0000001", 0, false},   // seven digits
		{"urn:mavedb:00000001-A", 0, false},
		{"urn:mavedb:00000001-a-", 0, false},
		{"urn:mavedb:00000001-a-1#", 0, false},
		{"urn:otherdb:00000001", 0, false},
		{"tmp:short", 0, false},
		{"tmp:aAbBcC012345678-", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.urn, func(t *testing.T) {
			kind, ok := Classify(tc.urn)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.kind, kind)
		})
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate("urn:mavedb:00000001-a-1"))
	require.NoError(t, Validate("tmp:aAbBcC0123456789"))

	err := Validate("urn:mavedb:1")
	require.Error(t, err)
	assert.Equal(t, "urn:mavedb:1 is not a valid urn.", err.Error())
}

func TestValidateLevels(t *testing.T) {
	// Each level also accepts a temporary accession.
	tmp := "tmp:aAbBcC0123456789"

	require.NoError(t, ValidateExperimentSet("urn:mavedb:00000001"))
	require.NoError(t, ValidateExperimentSet(tmp))
	err := ValidateExperimentSet("urn:mavedb:00000001-a")
	require.Error(t, err)
	assert.Equal(t, "urn:mavedb:00000001-a is not a valid Experiment Set urn.", err.Error())

	require.NoError(t, ValidateExperiment("urn:mavedb:00000001-a"))
	require.NoError(t, ValidateExperiment(tmp))
	require.Error(t, ValidateExperiment("urn:mavedb:00000001-a-1"))

	require.NoError(t, ValidateScoreSet("urn:mavedb:00000001-a-1"))
	require.NoError(t, ValidateScoreSet(tmp))
	err = ValidateScoreSet("urn:mavedb:00000001-a")
	require.Error(t, err)
	assert.Equal(t, "urn:mavedb:00000001-a is not a valid score set urn.", err.Error())

	require.NoError(t, ValidateVariant("urn:mavedb:00000001-a-1#1"))
	require.NoError(t, ValidateVariant(tmp))
	require.Error(t, ValidateVariant("urn:mavedb:00000001-a-1"))
}

func TestIsTmpIsPublic(t *testing.T) {
	assert.True(t, IsTmp("tmp:aAbBcC0123456789"))
	assert.False(t, IsTmp("urn:mavedb:00000001"))

	assert.True(t, IsPublic("urn:mavedb:00000001-a-1#1"))
	assert.False(t, IsPublic("tmp:aAbBcC0123456789"))
	assert.False(t, IsPublic("not-an-urn"))
}

func TestNewTmp(t *testing.T) {
	a := NewTmp()
	b := NewTmp()

	assert.True(t, IsTmp(a), "generated urn %q should be temporary", a)
	assert.True(t, IsTmp(b))
	assert.NotEqual(t, a, b)
	assert.LessOrEqual(t, len(a), MaxLength)
}
