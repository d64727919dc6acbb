// Package quotes holds the fixed smart quote substitution table.
package quotes

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Substitution maps one typographic quote to its ASCII counterpart.
type Substitution struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	From rune   `json:"from" yaml:"from" toml:"from"`
	To   rune   `json:"to" yaml:"to" toml:"to"`
}

// Smart quote code points covered by the table.
const (
	LeftSingle  = '‘'
	RightSingle = '’'
	LeftDouble  = '“'
	RightDouble = '”'
)

var table = []Substitution{
	{Name: "left single quote", From: LeftSingle, To: '\''},
	{Name: "right single quote", From: RightSingle, To: '\''},
	{Name: "left double quote", From: LeftDouble, To: '"'},
	{Name: "right double quote", From: RightDouble, To: '"'},
}

// Table returns a copy of the substitution table in display order.
func Table() []Substitution {
	out := make([]Substitution, len(table))
	copy(out, table)
	return out
}

func mapRune(r rune) rune {
	switch r {
	case LeftSingle, RightSingle:
		return '\''
	case LeftDouble, RightDouble:
		return '"'
	}
	return r
}

// Transformer returns the table as a text transformer. Input is expected to
// be valid UTF-8; invalid bytes are replaced with U+FFFD by runes.Map.
func Transformer() transform.Transformer {
	return runes.Map(mapRune)
}

// Normalize replaces every smart quote in text with its ASCII form.
func Normalize(text string) string {
	out, _, err := transform.String(Transformer(), text)
	if err != nil {
		// runes.Map never fails on in-memory input
		return text
	}
	return out
}

// Counts records how many of each smart quote a text contains.
type Counts map[rune]int

// Total returns the number of smart quotes across all four kinds.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Count tallies the smart quotes in text. Every table entry is present in the
// result, with zero when absent.
func Count(text string) Counts {
	counts := make(Counts, len(table))
	for _, s := range table {
		counts[s.From] = 0
	}
	for _, r := range text {
		if _, ok := counts[r]; ok {
			counts[r]++
		}
	}
	return counts
}
