// Package motif_finder locates motif occurrences in a normalized sequence.
// Literal motifs use the Z-algorithm; motifs carrying IUPAC ambiguity
// codes fall back to a per-position class match.
package motif_finder

import (
	"fmt"
	"sort"
	"strings"

	"biokit_go/tools/sequence"
)

// separator joins motif and sequence in the Z-algorithm input.
const separator = '$'

// CommonMotifs are named regulatory elements, some in degenerate notation.
var CommonMotifs = map[string]string{
	"TATA box":      "TATAAA",
	"GC box":        "GGGCGG",
	"CAAT box":      "CCAAT",
	"BRE":           "SSRCGCC",
	"Inr":           "YYANWYY",
	"Poly-A signal": "AATAAA",
}

// ZArray returns Z where Z[i] is the length of the longest substring
// starting at i that is also a prefix of s. Z[0] is left at 0.
func ZArray(s []byte) []int {
	n := len(s)
	z := make([]int, n)
	l, r := 0, 0
	for i := 1; i < n; i++ {
		if i <= r {
			z[i] = min(r-i+1, z[i-l])
		}
		for i+z[i] < n && s[z[i]] == s[i+z[i]] {
			z[i]++
		}
		if i+z[i]-1 > r {
			l, r = i, i+z[i]-1
		}
	}
	return z
}

// FindMotif returns the 0-based start of every exact occurrence of motif
// in seq, overlapping occurrences included, in increasing order.
// Matching is case-sensitive; callers normalize both strings first.
func FindMotif(seq, motif string) ([]int, error) {
	m := len(motif)
	if m == 0 {
		return nil, fmt.Errorf("%w: motif is empty", sequence.ErrInvalidInput)
	}
	if m > len(seq) {
		return nil, nil
	}

	combined := make([]byte, 0, m+1+len(seq))
	combined = append(combined, motif...)
	combined = append(combined, separator)
	combined = append(combined, seq...)

	z := ZArray(combined)
	var positions []int
	for i := m + 1; i < len(z); i++ {
		// >= rather than == so a separator byte inside seq cannot hide a match
		if z[i] >= m {
			positions = append(positions, i-m-1)
		}
	}
	return positions, nil
}

// Find dispatches to FindMotif for literal motifs and to FindDegenerate
// when motif contains IUPAC ambiguity codes.
func Find(seq, motif string) ([]int, error) {
	if IsDegenerate(motif) {
		return FindDegenerate(seq, motif)
	}
	return FindMotif(seq, motif)
}

// FindNamed looks name up in table and searches for its pattern.
func FindNamed(seq, name string, table map[string]string) (string, []int, error) {
	motif, ok := table[name]
	if !ok {
		return "", nil, fmt.Errorf("%w: motif %q (known: %s)", sequence.ErrUnknownKey, name, strings.Join(Names(table), ", "))
	}
	positions, err := Find(seq, motif)
	return motif, positions, err
}

// Names returns the table keys in sorted order.
func Names(table map[string]string) []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Highlight wraps each occurrence in square brackets. Overlapping or
// touching occurrences share one bracket pair.
func Highlight(seq string, positions []int, motifLen int) string {
	if len(positions) == 0 || motifLen <= 0 {
		return seq
	}
	var b strings.Builder
	last := 0
	for i := 0; i < len(positions); {
		start := positions[i]
		end := start + motifLen
		i++
		for i < len(positions) && positions[i] <= end {
			end = positions[i] + motifLen
			i++
		}
		if end > len(seq) {
			end = len(seq)
		}
		b.WriteString(seq[last:start])
		b.WriteByte('[')
		b.WriteString(seq[start:end])
		b.WriteByte(']')
		last = end
	}
	b.WriteString(seq[last:])
	return b.String()
}
