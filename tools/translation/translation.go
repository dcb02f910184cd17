// Package translation translates DNA to protein and rewrites coding
// sequences with a host's preferred synonymous codons.
package translation

import (
	"fmt"
	"sort"
	"strings"

	"biokit_go/tools/sequence"
)

// Translate reads seq codon by codon in frame 1. Codons outside the genetic
// code (any N) become 'X'. With toStop the protein ends before the first
// stop codon; otherwise stops are kept as '*'. A trailing partial codon is
// ignored.
func Translate(seq string, toStop bool) string {
	var protein strings.Builder
	protein.Grow(len(seq) / 3)
	for i := 0; i+3 <= len(seq); i += 3 {
		aa, ok := GeneticCode[seq[i:i+3]]
		if !ok {
			aa = 'X'
		}
		if aa == '*' && toStop {
			break
		}
		protein.WriteByte(aa)
	}
	return protein.String()
}

// CodonFrequency counts the complete codons of frame 1.
func CodonFrequency(seq string) map[string]int {
	counts := make(map[string]int)
	for i := 0; i+3 <= len(seq); i += 3 {
		counts[seq[i:i+3]]++
	}
	return counts
}

// CodonCount is one row of a codon frequency comparison.
type CodonCount struct {
	Codon     string
	Original  int
	Optimized int
}

// CompareCodons joins two frequency maps over the union of their codons,
// sorted by codon.
func CompareCodons(original, optimized map[string]int) []CodonCount {
	seen := make(map[string]bool)
	for c := range original {
		seen[c] = true
	}
	for c := range optimized {
		seen[c] = true
	}
	rows := make([]CodonCount, 0, len(seen))
	for c := range seen {
		rows = append(rows, CodonCount{Codon: c, Original: original[c], Optimized: optimized[c]})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Codon < rows[j].Codon })
	return rows
}

// Hosts lists the host organisms in tables, sorted.
func Hosts(tables map[string]CodonUsage) []string {
	hosts := make([]string, 0, len(tables))
	for h := range tables {
		hosts = append(hosts, h)
	}
	sort.Strings(hosts)
	return hosts
}

// Optimize replaces every codon of seq with the synonymous codon the host
// uses most. Ties go to the earlier codon in the genetic code listing.
// Codons outside the genetic code are copied unchanged and a trailing
// partial codon is dropped.
func Optimize(seq, host string, tables map[string]CodonUsage) (string, error) {
	usage, ok := tables[host]
	if !ok {
		return "", fmt.Errorf("%w: host %q (known: %s)", sequence.ErrUnknownKey, host, strings.Join(Hosts(tables), ", "))
	}

	var out strings.Builder
	out.Grow(len(seq))
	for i := 0; i+3 <= len(seq); i += 3 {
		codon := seq[i : i+3]
		aa, ok := GeneticCode[codon]
		if !ok {
			out.WriteString(codon)
			continue
		}
		best := ""
		bestUsage := -1.0
		for _, syn := range synonyms[aa] {
			if u := usage[syn]; u > bestUsage {
				best, bestUsage = syn, u
			}
		}
		out.WriteString(best)
	}
	return out.String(), nil
}
