package kmer_analyzer

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"biokit_go/tools/sequence"
)

// AllKmers returns all possible k-length nucleotide strings (k-mers)
// using A, C, G, and T. If includeN is true, 'N' is also included.
func AllKmers(k int, includeN bool) []string {
	nucleotides := []byte{'A', 'C', 'G', 'T'} // Standard nucleotide options
	if includeN {
		nucleotides = append(nucleotides, 'N') // optionally include single ambigious base
	}
	var kmers []string

	// Recursive function to build k-mers one base at a time.
	// Prefix: partial k-mer (built so far)
	// Depth: how many positions remain to reach full k-mer length
	var build func(prefix string, depth int)
	build = func(prefix string, depth int) {
		if depth == 0 { // If k-mer is complete:
			kmers = append(kmers, prefix) // Add it to the result slice
			return
		}
		for _, base := range nucleotides {
			build(prefix+string(base), depth-1) // Recurse with new base and reduced depth
		}
	}
	if k > 0 {
		build("", k)
	}
	return kmers
}

// Count returns k-mer frequencies in seq, along with the total number of k-mers counted.
// If ignoreNs is true, k-mers containing 'N' are excluded.
func Count(seq string, k int, ignoreNs bool) (map[string]int, int) {
	kmerCounts := make(map[string]int)
	total := 0
	if k <= 0 {
		return kmerCounts, 0
	}

	for i := 0; i <= len(seq)-k; i++ { // Slides a window of size k across the sequence
		kmer := seq[i : i+k]
		if ignoreNs && strings.IndexByte(kmer, 'N') >= 0 {
			continue // Skip k-mers with 'N' if requested
		}
		kmerCounts[kmer]++
		total++
	}
	return kmerCounts, total
}

// Diversity is distinct k-mers divided by total k-mers, rounded to four
// decimals. A sequence shorter than k has diversity 0.
func Diversity(seq string, k int) (float64, error) {
	if k < 1 {
		return 0, fmt.Errorf("%w: k must be at least 1, got %d", sequence.ErrInvalidInput, k)
	}
	if len(seq) < k {
		return 0, nil
	}
	counts, total := Count(seq, k, false)
	if total == 0 {
		return 0, nil
	}
	d := float64(len(counts)) / float64(total)
	return math.Round(d*10000) / 10000, nil
}

// Frequency is one row of a k-mer table.
type Frequency struct {
	Kmer   string
	Count  int
	RelPct float64
}

// Frequencies reports the observed k-mers with their counts and share of the
// total, sorted by "alpha" (default) or "freq" (ties alphabetical). With
// includeZero every possible k-mer is listed, so its cost grows as 4^k.
func Frequencies(seq string, k int, ignoreNs, includeZero bool, sortBy string) ([]Frequency, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k must be at least 1, got %d", sequence.ErrInvalidInput, k)
	}
	kmerCounts, total := Count(seq, k, ignoreNs)

	var kmers []string
	if includeZero {
		kmers = AllKmers(k, !ignoreNs && strings.IndexByte(seq, 'N') >= 0)
	} else {
		kmers = make([]string, 0, len(kmerCounts))
		for kmer := range kmerCounts {
			kmers = append(kmers, kmer)
		}
	}

	result := make([]Frequency, 0, len(kmers))
	for _, kmer := range kmers {
		count := kmerCounts[kmer]
		pct := 0.0
		if total > 0 {
			pct = float64(count) / float64(total) * 100
		}
		result = append(result, Frequency{kmer, count, pct})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Kmer < result[j].Kmer
	})
	if sortBy == "freq" {
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Count > result[j].Count
		})
	}
	return result, nil
}
