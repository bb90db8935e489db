package corrector

import (
	"errors"
	"strings"

	"github.com/projectdiscovery/gologger"

	"paracheck/internal/dictionary"
	"paracheck/internal/matcher"
	"paracheck/pkg/options"
)

// ErrEmptyInput is returned for empty or whitespace-only text. It is a
// rejected request, not a failure of the corrector.
var ErrEmptyInput = errors.New("corrector: please enter a paragraph")

type SpellCorrector struct {
	config  CorrectorConfig
	dict    *dictionary.Dictionary
	matcher *matcher.Matcher
}

func NewSpellCorrector(dict *dictionary.Dictionary, opts ...options.Options) (*SpellCorrector, error) {
	if dict == nil {
		return nil, errors.New("corrector: dictionary is nil")
	}
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &SpellCorrector{
		config:  cfg,
		dict:    dict,
		matcher: matcher.New(cfg.Metric),
	}, nil
}

// Config returns the resolved configuration.
func (sc *SpellCorrector) Config() CorrectorConfig { return sc.config }

// Suggest returns up to SuggestionLimit close dictionary words for word.
// The result is never nil.
func (sc *SpellCorrector) Suggest(word string) []string {
	s := sc.matcher.CloseMatches(strings.ToLower(word), sc.dict, sc.config.SuggestionLimit, sc.config.SuggestionCutoff)
	if s == nil {
		return []string{}
	}
	return s
}

// AutoCorrect returns the replacement for word and whether one applies.
// Known words and anything containing a digit are never replaced, and
// neither is a word without a match at AutoCorrectCutoff.
func (sc *SpellCorrector) AutoCorrect(word string) (string, bool) {
	if word == "" || hasDigit(word) || sc.dict.Contains(word) {
		return word, false
	}
	best := sc.matcher.CloseMatches(strings.ToLower(word), sc.dict, autoCorrectLimit, sc.config.AutoCorrectCutoff)
	if len(best) == 0 || best[0] == word {
		return word, false
	}
	return best[0], true
}

// CorrectText replaces likely misspellings in text and joins the resulting
// tokens with single spaces. Every replacement is recorded in Corrections
// in text order.
func (sc *SpellCorrector) CorrectText(text string) (CorrectionResult, error) {
	if strings.TrimSpace(text) == "" {
		return CorrectionResult{}, ErrEmptyInput
	}

	tokens := tokenize(text)
	out := make([]string, len(tokens))
	copy(out, tokens)
	corrections := []Correction{}

	for i, tok := range tokens {
		if !isWord(tok) {
			continue
		}
		clean := cleanWord(tok)
		if clean == "" || !strings.Contains(tok, clean) {
			// apostrophes inside the word: leave contractions alone
			continue
		}
		corrected, ok := sc.AutoCorrect(clean)
		if !ok {
			continue
		}
		out[i], _ = substitute(tok, clean, corrected)
		corrections = append(corrections, Correction{
			Original:    clean,
			Corrected:   corrected,
			Suggestions: sc.Suggest(clean),
		})
		gologger.Debug().Msgf("corrected %q to %q", clean, corrected)
	}

	return CorrectionResult{
		Original:    text,
		Corrected:   strings.Join(out, " "),
		Corrections: corrections,
	}, nil
}
