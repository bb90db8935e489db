// Package dictionary holds the set of words considered correctly spelled.
package dictionary

import (
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Dictionary is a set of lowercase ASCII words. It is filled once by Load,
// FromReader or New and only read afterwards.
type Dictionary struct {
	words mapset.Set[string]
}

// New builds a dictionary from the letter runs found in words.
func New(words ...string) *Dictionary {
	d := &Dictionary{words: mapset.NewSet[string]()}
	for _, w := range words {
		d.addLine(w)
	}
	return d
}

// addLine inserts every maximal run of ASCII letters in line.
func (d *Dictionary) addLine(line string) int {
	added := 0
	start := -1
	for i := 0; i <= len(line); i++ {
		if i < len(line) && isLetter(line[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			if d.words.Add(strings.ToLower(line[start:i])) {
				added++
			}
			start = -1
		}
	}
	return added
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// Contains reports whether word is known, ignoring case.
func (d *Dictionary) Contains(word string) bool {
	if d == nil || word == "" {
		return false
	}
	return d.words.Contains(strings.ToLower(word))
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return d.words.Cardinality()
}

// Each calls fn for every word in unspecified order.
func (d *Dictionary) Each(fn func(word string)) {
	if d == nil {
		return
	}
	d.words.Each(func(w string) bool {
		fn(w)
		return false
	})
}

// Words returns the words sorted alphabetically.
func (d *Dictionary) Words() []string {
	if d == nil {
		return nil
	}
	out := d.words.ToSlice()
	sort.Strings(out)
	return out
}
