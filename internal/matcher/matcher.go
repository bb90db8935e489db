// Package matcher ranks dictionary words by similarity to a query word.
package matcher

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/pmezard/go-difflib/difflib"
	errorutil "github.com/projectdiscovery/utils/errors"
)

// Metric selects the similarity function used to score candidates.
type Metric string

const (
	// Ratio is the longest-matching-blocks ratio 2*M/T.
	Ratio Metric = "ratio"
	// Levenshtein is 1 - distance/maxlen over plain edit distance.
	Levenshtein Metric = "levenshtein"
	// OSA is the optimal string alignment (restricted Damerau-Levenshtein) similarity.
	OSA Metric = "osa"
	// JaroWinkler favours shared prefixes.
	JaroWinkler Metric = "jarowinkler"
)

// Metrics lists the supported metrics.
var Metrics = []Metric{Ratio, Levenshtein, OSA, JaroWinkler}

var edlibAlgorithms = map[Metric]edlib.Algorithm{
	Levenshtein: edlib.Levenshtein,
	OSA:         edlib.OSADamerauLevenshtein,
	JaroWinkler: edlib.JaroWinkler,
}

// ParseMetric validates a metric name. The empty string means Ratio.
func ParseMetric(name string) (Metric, error) {
	if name == "" {
		return Ratio, nil
	}
	m := Metric(strings.ToLower(name))
	for _, known := range Metrics {
		if m == known {
			return m, nil
		}
	}
	return "", errorutil.NewWithTag("matcher", "unknown similarity metric %q", name)
}

// Vocabulary is the set of candidate words.
type Vocabulary interface {
	Each(fn func(word string))
}

// Matcher scores words with a fixed metric. It holds no per-call state and
// may be shared.
type Matcher struct {
	metric Metric
}

// New returns a Matcher for metric. Unknown metrics fall back to Ratio.
func New(metric Metric) *Matcher {
	if _, ok := edlibAlgorithms[metric]; !ok {
		metric = Ratio
	}
	return &Matcher{metric: metric}
}

// Metric returns the metric in use.
func (m *Matcher) Metric() Metric { return m.metric }

// Similarity returns a score in [0,1] for a and b.
func (m *Matcher) Similarity(a, b string) float64 {
	if m.metric == Ratio {
		return difflib.NewMatcher(chars(a), chars(b)).Ratio()
	}
	return m.edlibSimilarity(a, b)
}

func (m *Matcher) edlibSimilarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	sim, err := edlib.StringsSimilarity(a, b, edlibAlgorithms[m.metric])
	if err != nil {
		return 0
	}
	return float64(sim)
}

type scored struct {
	word  string
	score float64
}

// CloseMatches returns up to n words from vocab scoring at least cutoff
// against query, best first. Equal scores are ordered by word, descending.
// An empty query or n <= 0 yields no matches.
func (m *Matcher) CloseMatches(query string, vocab Vocabulary, n int, cutoff float64) []string {
	if n <= 0 || query == "" || vocab == nil {
		return nil
	}

	var found []scored
	if m.metric == Ratio {
		found = ratioMatches(query, vocab, cutoff)
	} else {
		vocab.Each(func(w string) {
			if s := m.edlibSimilarity(w, query); s >= cutoff {
				found = append(found, scored{word: w, score: s})
			}
		})
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].score == found[j].score {
			return found[i].word > found[j].word
		}
		return found[i].score > found[j].score
	})
	if len(found) > n {
		found = found[:n]
	}
	out := make([]string, len(found))
	for i, f := range found {
		out[i] = f.word
	}
	return out
}

// ratioMatches keeps the query as the second sequence so its index is built
// once, and rejects candidates with the cheap upper bounds first.
func ratioMatches(query string, vocab Vocabulary, cutoff float64) []scored {
	sm := difflib.NewMatcher(nil, chars(query))
	var found []scored
	vocab.Each(func(w string) {
		sm.SetSeq1(chars(w))
		if sm.RealQuickRatio() >= cutoff && sm.QuickRatio() >= cutoff {
			if r := sm.Ratio(); r >= cutoff {
				found = append(found, scored{word: w, score: r})
			}
		}
	})
	return found
}

func chars(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "")
}
