package sequence

import (
	"math"
	"strings"
)

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['G'] = 'C'
	complement['C'] = 'G'
	complement['N'] = 'N'
}

// ComplementBase maps A<->T and G<->C. N and every unmapped byte become N.
func ComplementBase(b byte) byte {
	c := complement[b]
	if c == 0 {
		return 'N' // ambiguous or invalid character
	}
	return c
}

// Complement returns the base-by-base complement of seq.
func Complement(seq string) string {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		out[i] = ComplementBase(seq[i])
	}
	return string(out)
}

// ReverseComplement returns seq reversed and complemented.
func ReverseComplement(seq string) string {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = ComplementBase(seq[n-1-i])
	}
	return string(out)
}

// Transcribe converts DNA to RNA (T -> U).
func Transcribe(seq string) string {
	return strings.ReplaceAll(seq, "T", "U")
}

// Counts holds per-base tallies.
type Counts struct {
	A, T, G, C, N int
}

// CountNucleotides tallies every base of seq.
func CountNucleotides(seq string) Counts {
	var c Counts
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A':
			c.A++
		case 'T':
			c.T++
		case 'G':
			c.G++
		case 'C':
			c.C++
		case 'N':
			c.N++
		}
	}
	return c
}

// GCContent returns the G+C percentage of seq; 0 for an empty sequence.
func GCContent(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	c := CountNucleotides(seq)
	return float64(c.G+c.C) / float64(len(seq)) * 100
}

// MeltingTemp estimates Tm in Celsius: the Wallace rule below 14 nt,
// the GC formula from 14 nt up. Rounded to two decimals.
func MeltingTemp(seq string) float64 {
	c := CountNucleotides(seq)
	n := len(seq)
	if n == 0 {
		return 0
	}
	var tm float64
	if n < 14 {
		tm = float64(2*(c.A+c.T) + 4*(c.G+c.C))
	} else {
		tm = 64.9 + 41*(float64(c.G+c.C)-16.4)/float64(n)
	}
	return math.Round(tm*100) / 100
}

var nucleotideWeight = map[byte]float64{
	'A': 313.21,
	'T': 304.2,
	'G': 329.21,
	'C': 289.18,
}

// MolecularWeight sums per-nucleotide weights in Daltons. N contributes nothing.
func MolecularWeight(seq string) float64 {
	total := 0.0
	for i := 0; i < len(seq); i++ {
		total += nucleotideWeight[seq[i]]
	}
	return total
}
