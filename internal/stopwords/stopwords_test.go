package stopwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Snowball(t *testing.T) {
	set, err := Load("snowball")
	require.NoError(t, err)

	for _, w := range []string{"the", "and", "isn't", "themselves"} {
		assert.Contains(t, set, w)
	}
	assert.NotContains(t, set, "fir-tree")
	assert.NotContains(t, set, "")
}

func TestLoad_Smart(t *testing.T) {
	set, err := Load("smart")
	require.NoError(t, err)

	for _, w := range []string{"the", "accordingly", "whereupon"} {
		assert.Contains(t, set, w)
	}
	// SMART is a strict superset of typical function words and much
	// larger than Snowball.
	snowball, err := Load("snowball")
	require.NoError(t, err)
	assert.Greater(t, len(set), len(snowball))
}

func TestLoad_CaseInsensitiveIdentifier(t *testing.T) {
	a, err := Load("Snowball")
	require.NoError(t, err)
	b, err := Load("snowball")
	require.NoError(t, err)
	assert.Equal(t, len(b), len(a))
}

func TestLoad_UnknownSource(t *testing.T) {
	_, err := Load("klingon")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownSource)
}

func TestLoad_Cached(t *testing.T) {
	a, err := Load("snowball")
	require.NoError(t, err)
	b, err := Load("snowball")
	require.NoError(t, err)
	assert.Equal(t, len(a), len(b))
}

func TestSet(t *testing.T) {
	assert.Nil(t, Set(nil))
	set := Set([]string{"and", "the", "and"})
	assert.Len(t, set, 2)
	assert.Contains(t, set, "the")
}

func TestMerge(t *testing.T) {
	a := Set([]string{"and"})
	b := Set([]string{"the", "and"})
	merged := Merge(a, b, nil)
	assert.Len(t, merged, 2)
	// Inputs are untouched.
	assert.Len(t, a, 1)
}
