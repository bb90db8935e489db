package corrector

import (
	"regexp"
	"strings"
)

// A token is either a run of letters, digits and apostrophes or a single
// punctuation mark. Anything else, whitespace included, separates tokens.
var (
	tokenRe = regexp.MustCompile(`[A-Za-z0-9']+|[.,!?;:"()]`)
	wordRe  = regexp.MustCompile(`^[A-Za-z0-9']+$`)
)

func tokenize(text string) []string { return tokenRe.FindAllString(text, -1) }

func isWord(tok string) bool { return wordRe.MatchString(tok) }

// cleanWord drops everything but letters and digits.
func cleanWord(tok string) string {
	return strings.Map(func(r rune) rune {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') {
			return r
		}
		return -1
	}, tok)
}

func hasDigit(s string) bool { return strings.ContainsAny(s, "0123456789") }

// substitute puts corrected in place of clean inside tok. It reports false
// when clean is not a contiguous part of tok, as in contractions.
func substitute(tok, clean, corrected string) (string, bool) {
	i := strings.Index(tok, clean)
	if i < 0 {
		return tok, false
	}
	return tok[:i] + corrected + tok[i+len(clean):], true
}
