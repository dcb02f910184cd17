package motif_finder

import (
	"fmt"

	"biokit_go/tools/sequence"
)

var iupacMask [256]byte // bit0=A bit1=C bit2=G bit3=T

func init() {
	set := func(c byte, bits byte) { iupacMask[c] = bits }
	set('A', 1)
	set('C', 2)
	set('G', 4)
	set('T', 8)
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', 1|2|4|8) // any (motif side only)
}

// IsDegenerate reports whether motif uses any code besides A, C, G, T.
func IsDegenerate(motif string) bool {
	for i := 0; i < len(motif); i++ {
		switch motif[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return true
		}
	}
	return false
}

// BaseMatch reports whether sequence base g satisfies motif code p.
// A sequence N (or anything outside ACGT) never matches.
func BaseMatch(g, p byte) bool {
	if g != 'A' && g != 'C' && g != 'G' && g != 'T' {
		return false
	}
	return iupacMask[p]&iupacMask[g] != 0
}

// FindDegenerate returns the 0-based start of every window of seq that
// matches motif under the IUPAC class relation.
func FindDegenerate(seq, motif string) ([]int, error) {
	m := len(motif)
	if m == 0 {
		return nil, fmt.Errorf("%w: motif is empty", sequence.ErrInvalidInput)
	}
	for i := 0; i < m; i++ {
		if iupacMask[motif[i]] == 0 {
			return nil, fmt.Errorf("%w: motif has non-IUPAC character %q", sequence.ErrInvalidInput, motif[i])
		}
	}

	var positions []int
	for i := 0; i+m <= len(seq); i++ {
		ok := true
		for j := 0; j < m; j++ {
			if !BaseMatch(seq[i+j], motif[j]) {
				ok = false
				break
			}
		}
		if ok {
			positions = append(positions, i)
		}
	}
	return positions, nil
}
