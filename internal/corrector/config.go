package corrector

import (
	"fmt"
	"strings"

	"paracheck/internal/matcher"
	"paracheck/pkg/options"
)

// NoSuggestions is shown in place of an empty suggestion list.
const NoSuggestions = "No suggestions found"

// autoCorrectLimit is fixed: only the single best match may replace a word.
const autoCorrectLimit = 1

type CorrectorConfig struct {
	SuggestionLimit   int
	SuggestionCutoff  float64
	AutoCorrectCutoff float64
	Metric            matcher.Metric
}

// NewConfig resolves opts over the defaults and validates the result.
func NewConfig(opts ...options.Options) (CorrectorConfig, error) {
	o := options.Resolve(opts...)
	metric, err := matcher.ParseMetric(o.Metric)
	if err != nil {
		return CorrectorConfig{}, err
	}
	cfg := CorrectorConfig{
		SuggestionLimit:   o.SuggestionLimit,
		SuggestionCutoff:  o.SuggestionCutoff,
		AutoCorrectCutoff: o.AutoCorrectCutoff,
		Metric:            metric,
	}
	if cfg.SuggestionLimit <= 0 {
		return CorrectorConfig{}, fmt.Errorf("corrector: suggestion limit must be > 0, got %d", cfg.SuggestionLimit)
	}
	if !validCutoff(cfg.SuggestionCutoff) || !validCutoff(cfg.AutoCorrectCutoff) {
		return CorrectorConfig{}, fmt.Errorf("corrector: cutoffs must be within [0,1], got %v and %v",
			cfg.SuggestionCutoff, cfg.AutoCorrectCutoff)
	}
	return cfg, nil
}

func validCutoff(c float64) bool { return c >= 0 && c <= 1 }

// Correction records one automatic replacement.
type Correction struct {
	Original    string   `json:"original"`
	Corrected   string   `json:"corrected"`
	Suggestions []string `json:"suggestions"`
}

// String renders the correction as a two-line annotation.
func (c Correction) String() string {
	suggestions := NoSuggestions
	if len(c.Suggestions) > 0 {
		suggestions = strings.Join(c.Suggestions, ", ")
	}
	return fmt.Sprintf("Misspelled Word: %s → Auto-corrected to: %s\nSuggestions: %s", c.Original, c.Corrected, suggestions)
}

type CorrectionResult struct {
	Original    string       `json:"original"`
	Corrected   string       `json:"corrected"`
	Corrections []Correction `json:"corrections"`
}
