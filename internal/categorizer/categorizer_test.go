package categorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"politics", "The government passed a new election law", "politics"},
		{"finance", "The stock market and the bank", "finance"},
		{"technology", "AI software runs on computer hardware", "technology"},
		{"sports", "Tennis and cricket at the olympics", "sports"},
		{"history", "An ancient empire lost the battle", "history"},
		{"science", "Physics research needs an experiment", "science"},
		{"no overlap", "the quick brown fox", Uncategorized},
		{"empty", "", Uncategorized},
		{"punctuation is separated", "money . war , war ! battle", "history"},
		{"attached punctuation does not match", "money, war.", Uncategorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.text))
		})
	}
}

func TestCategorizeTieBreak(t *testing.T) {
	// finance and history both score 1, finance comes first in the table
	for i := 0; i < 10; i++ {
		assert.Equal(t, "finance", Categorize("war money"))
		assert.Equal(t, "finance", Categorize("money war"))
	}
	// science and politics tie at 2
	assert.Equal(t, "science", Categorize("law policy physics biology"))
}

func TestCategorizeSetSemantics(t *testing.T) {
	base := "bank war revolution"
	assert.Equal(t, "history", Categorize(base))
	// repeating a keyword does not raise its category's score
	assert.Equal(t, "history", Categorize(base+" bank bank bank BANK"))
	// order does not matter
	assert.Equal(t, Categorize(base), Categorize("revolution bank war"))
}

func TestScores(t *testing.T) {
	scores := New(DefaultTable).Scores("Money money market war")
	require.Len(t, scores, len(DefaultTable))
	assert.Equal(t, Score{Category: "finance", Count: 2}, scores[0])
	assert.Equal(t, Score{Category: "history", Count: 1}, scores[3])
	assert.Equal(t, 0, scores[5].Count)
}

func TestCustomTable(t *testing.T) {
	c := New([]Category{
		{Name: "pets", Keywords: []string{"Cat", "dog"}},
		{Name: "food", Keywords: []string{"bread"}},
	})
	assert.Equal(t, "pets", c.Categorize("my cat ate bread"))
	assert.Equal(t, "food", c.Categorize("bread bread"))
	assert.Equal(t, Uncategorized, c.Categorize("nothing here"))
	assert.Equal(t, Uncategorized, New(nil).Categorize("cat"))
}
