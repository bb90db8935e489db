// Package categorizer assigns text to one of a fixed set of topics by
// counting distinct keyword overlaps.
package categorizer

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Uncategorized is returned when no category shares a word with the text.
const Uncategorized = "Uncategorized"

// Category is a named keyword set.
type Category struct {
	Name     string
	Keywords []string
}

// DefaultTable is the fixed category table. Order matters: on equal scores
// the earlier category wins.
var DefaultTable = []Category{
	{Name: "finance", Keywords: []string{"money", "economy", "investment", "market", "bank", "stock", "financial"}},
	{Name: "technology", Keywords: []string{"computer", "software", "hardware", "ai", "technology", "internet", "cyber"}},
	{Name: "sports", Keywords: []string{"football", "cricket", "basketball", "tennis", "athlete", "olympics"}},
	{Name: "history", Keywords: []string{"war", "revolution", "historical", "empire", "ancient", "battle"}},
	{Name: "science", Keywords: []string{"physics", "chemistry", "biology", "science", "research", "experiment"}},
	{Name: "politics", Keywords: []string{"government", "election", "policy", "law", "democracy", "political"}},
}

// Score is the number of distinct keywords of a category found in a text.
type Score struct {
	Category string
	Count    int
}

type entry struct {
	name     string
	keywords mapset.Set[string]
}

// Categorizer scores text against an ordered table.
type Categorizer struct {
	table []entry
}

// New builds a Categorizer over table. Keywords are lowercased.
func New(table []Category) *Categorizer {
	c := &Categorizer{table: make([]entry, 0, len(table))}
	for _, cat := range table {
		kw := mapset.NewSet[string]()
		for _, k := range cat.Keywords {
			kw.Add(strings.ToLower(k))
		}
		c.table = append(c.table, entry{name: cat.Name, keywords: kw})
	}
	return c
}

var defaultCategorizer = New(DefaultTable)

// Categorize uses DefaultTable.
func Categorize(text string) string { return defaultCategorizer.Categorize(text) }

// Scores returns the overlap count of every category, in table order.
func (c *Categorizer) Scores(text string) []Score {
	words := mapset.NewSet[string]()
	for _, w := range strings.Fields(strings.ToLower(text)) {
		words.Add(w)
	}
	scores := make([]Score, len(c.table))
	for i, e := range c.table {
		scores[i] = Score{Category: e.name, Count: words.Intersect(e.keywords).Cardinality()}
	}
	return scores
}

// Categorize returns the category with the highest score, the first one in
// table order on ties, or Uncategorized when every score is zero.
func (c *Categorizer) Categorize(text string) string {
	best := Score{Category: Uncategorized}
	for _, s := range c.Scores(text) {
		if s.Count > best.Count {
			best = s
		}
	}
	return best.Category
}
