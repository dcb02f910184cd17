package seq_generator

import (
	"math/rand"
)

// 20 standard amino acids
var aminoAcids = []byte("ACDEFGHIKLMNPQRSTVWY")

// GenerateProtein returns M, random residues, then a terminal stop.
func GenerateProtein(rng *rand.Rand, length int) string {
	if length < 2 {
		return "M*" // minimal valid peptide
	}
	seq := make([]byte, length)
	seq[0] = 'M'
	for i := 1; i < length-1; i++ {
		seq[i] = aminoAcids[rng.Intn(len(aminoAcids))]
	}
	seq[length-1] = '*'
	return string(seq)
}
