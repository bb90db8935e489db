package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paracheck/internal/categorizer"
	"paracheck/internal/corrector"
	"paracheck/internal/dictionary"
	"paracheck/pkg/options"
)

func TestProcessScenarios(t *testing.T) {
	dict := dictionary.New("the government passed a new election law", "hello world")
	c, err := New(dict)
	require.NoError(t, err)

	res, err := c.Process("helo wrold")
	require.NoError(t, err)
	assert.Equal(t, "hello world", res.Corrected)
	assert.Len(t, res.Corrections, 2)
	assert.Equal(t, categorizer.Uncategorized, res.Category)

	res, err = c.Process("The government passed a new election law")
	require.NoError(t, err)
	assert.Equal(t, "The government passed a new election law", res.Corrected)
	assert.Empty(t, res.Corrections)
	assert.Equal(t, "politics", res.Category)
}

func TestProcessCategorizesCorrectedText(t *testing.T) {
	dict := dictionary.New("the government passed a new election law")
	c, err := New(dict)
	require.NoError(t, err)

	// "goverment" and "electoin" only count once corrected
	res, err := c.Process("The goverment passed a new electoin law.")
	require.NoError(t, err)
	assert.Equal(t, "The government passed a new election law .", res.Corrected)
	require.Len(t, res.Corrections, 2)
	assert.Equal(t, "goverment", res.Corrections[0].Original)
	assert.Equal(t, "electoin", res.Corrections[1].Original)
	assert.Equal(t, "politics", res.Category)
}

func TestProcessDigits(t *testing.T) {
	c, err := New(dictionary.New("xyz"))
	require.NoError(t, err)

	res, err := c.Process("xyz123")
	require.NoError(t, err)
	assert.Equal(t, "xyz123", res.Corrected)
	assert.Empty(t, res.Corrections)
}

func TestProcessEmpty(t *testing.T) {
	c, err := New(dictionary.New("hello"))
	require.NoError(t, err)

	for _, in := range []string{"", "  \n\t"} {
		res, err := c.Process(in)
		require.ErrorIs(t, err, corrector.ErrEmptyInput)
		assert.Nil(t, res)
	}

	res, err := c.Process("  helo  ")
	require.NoError(t, err)
	assert.Equal(t, "helo", res.Original)
	assert.Equal(t, "hello", res.Corrected)
}

func TestNewPropagatesOptionErrors(t *testing.T) {
	_, err := New(dictionary.New("hello"), options.WithMetric("nope"))
	require.Error(t, err)

	_, err = New(nil)
	require.Error(t, err)
}
