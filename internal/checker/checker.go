// Package checker runs spell correction and categorization for one
// paragraph at a time.
package checker

import (
	"strings"

	"paracheck/internal/categorizer"
	"paracheck/internal/corrector"
	"paracheck/internal/dictionary"
	"paracheck/pkg/options"
)

// Result bundles the three outputs of a request.
type Result struct {
	Original    string                 `json:"original"`
	Corrected   string                 `json:"corrected"`
	Corrections []corrector.Correction `json:"corrections"`
	Category    string                 `json:"category"`
}

// Checker holds the read-only dictionary shared by all requests.
type Checker struct {
	corrector   *corrector.SpellCorrector
	categorizer *categorizer.Categorizer
}

// New creates a Checker over dict using the default category table.
func New(dict *dictionary.Dictionary, opts ...options.Options) (*Checker, error) {
	sc, err := corrector.NewSpellCorrector(dict, opts...)
	if err != nil {
		return nil, err
	}
	return &Checker{
		corrector:   sc,
		categorizer: categorizer.New(categorizer.DefaultTable),
	}, nil
}

// Process corrects paragraph and categorizes the corrected text. Empty input
// yields corrector.ErrEmptyInput.
func (c *Checker) Process(paragraph string) (*Result, error) {
	paragraph = strings.TrimSpace(paragraph)
	if paragraph == "" {
		return nil, corrector.ErrEmptyInput
	}
	res, err := c.corrector.CorrectText(paragraph)
	if err != nil {
		return nil, err
	}
	return &Result{
		Original:    paragraph,
		Corrected:   res.Corrected,
		Corrections: res.Corrections,
		Category:    c.categorizer.Categorize(res.Corrected),
	}, nil
}
