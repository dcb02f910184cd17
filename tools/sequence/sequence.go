// Package sequence normalizes raw nucleotide input and holds the small
// transformations and composition statistics every other tool builds on.
package sequence

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Sequence is an uppercase nucleotide string that passed Normalize.
type Sequence string

// Mode selects how characters outside A/T/G/C are handled.
type Mode int

const (
	Strict   Mode = iota // only A, T, G, C
	Wildcard             // A, T, G, C plus N as an unknown base
)

// InvalidBase is a rejected character and how often it occurred.
type InvalidBase struct {
	Base  rune
	Count int
}

// Normalize strips whitespace, uppercases and validates raw input.
// An empty result or any character outside the alphabet of mode is
// rejected with ErrInvalidInput; the error lists the offending characters.
func Normalize(raw string, mode Mode) (Sequence, error) {
	var b strings.Builder
	b.Grow(len(raw))
	invalid := make(map[rune]int)

	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue // line breaks and spaces from pasted input
		}
		upper := unicode.ToUpper(r)
		switch upper {
		case 'A', 'T', 'G', 'C':
		case 'N':
			if mode != Wildcard {
				invalid[upper]++
				continue
			}
		default:
			invalid[upper]++
			continue
		}
		b.WriteRune(upper)
	}

	if len(invalid) > 0 {
		return "", fmt.Errorf("%w: sequence contains invalid characters %s", ErrInvalidInput, formatInvalid(invalid))
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("%w: sequence is empty", ErrInvalidInput)
	}
	return Sequence(b.String()), nil
}

// InvalidBases reports every non-alphabet character in raw, sorted by base.
// Whitespace is ignored just as in Normalize.
func InvalidBases(raw string, mode Mode) []InvalidBase {
	counts := make(map[rune]int)
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		upper := unicode.ToUpper(r)
		if !inAlphabet(upper, mode) {
			counts[upper]++
		}
	}
	out := make([]InvalidBase, 0, len(counts))
	for base, n := range counts {
		out = append(out, InvalidBase{Base: base, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Base < out[j].Base })
	return out
}

func inAlphabet(r rune, mode Mode) bool {
	switch r {
	case 'A', 'T', 'G', 'C':
		return true
	case 'N':
		return mode == Wildcard
	}
	return false
}

func formatInvalid(counts map[rune]int) string {
	keys := make([]rune, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%q x%d", k, counts[k])
	}
	return strings.Join(parts, ", ")
}

// String returns the underlying string.
func (s Sequence) String() string { return string(s) }

// Len returns the number of bases.
func (s Sequence) Len() int { return len(s) }

// Match is a located occurrence in a sequence. Start is 0-based and End is
// exclusive, so End doubles as the 1-based inclusive end coordinate.
type Match struct {
	Start int
	End   int
	Text  string
}

// Pos is the 1-based start coordinate used in reports.
func (m Match) Pos() int { return m.Start + 1 }

// Len is the matched length.
func (m Match) Len() int { return m.End - m.Start }
