package smltar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopkg.in/yaml.v3"
)

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"n_min exceeds n", Config{Mode: ModeNgrams, N: 2, NMin: 3}},
		{"negative n", Config{Mode: ModeNgrams, N: -1, NMin: -1}},
		{"zero n with n_min set", Config{Mode: ModeNgrams, N: -2, NMin: 1}},
		{"unknown mode", Config{Mode: "sentences"}},
		{"regex without pattern", Config{Mode: ModeRegex}},
		{"bad pattern", Config{Mode: ModeRegex, Pattern: `[unclosed`}},
		{"bad extract pattern", Config{Mode: ModeWords, Extract: true, Pattern: `(`}},
		{"unknown stopword source", Config{Mode: ModeWords, StopwordSource: "klingon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestNew_ZeroValueConfig(t *testing.T) {
	// The zero config is usable: word mode, no normalization.
	tok, err := New(Config{})
	require.NoError(t, err)
	assert.Equal(t, ModeWords, tok.Config().Mode)

	seq, err := tok.Tokenize("Fir-tree and sons")
	require.NoError(t, err)
	assert.Equal(t, []string{"Fir-tree", "and", "sons"}, seq.Terms())
}

func TestConfig_WidthDefaults(t *testing.T) {
	tok, err := New(Config{Mode: ModeCharacterNgrams})
	require.NoError(t, err)
	cfg := tok.Config()
	assert.Equal(t, 3, cfg.N)
	assert.Equal(t, 3, cfg.NMin)

	tok, err = New(Config{Mode: ModeNgrams, N: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, tok.Config().NMin, "n_min defaults to n")
}

func TestDefaultConfig_Valid(t *testing.T) {
	_, err := New(DefaultConfig())
	assert.NoError(t, err)
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	in := Config{
		Mode:           ModeNgrams,
		Lowercase:      true,
		N:              3,
		NMin:           2,
		Delimiter:      "_",
		StopwordSource: "smart",
		Stopwords:      []string{"fir"},
	}
	data, err := yaml.Marshal(in)
	require.NoError(t, err)

	var out Config
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestConfig_FailFastBeforeProcessing(t *testing.T) {
	// The one-shot entry point must reject config before touching any
	// document: no partial results.
	results, err := Tokenize([]string{"a", "b"}, Config{Mode: ModeNgrams, N: 1, NMin: 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Nil(t, results)
}
