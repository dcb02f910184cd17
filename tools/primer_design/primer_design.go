// Package primer_design picks a forward/reverse primer pair with matched
// melting temperatures.
package primer_design

import (
	"fmt"
	"math"

	"biokit_go/tools/sequence"
)

// Primer is one oligo of a pair. Start is the 0-based offset of the
// template window it was taken from.
type Primer struct {
	Seq   string
	Start int
	Tm    float64
	GC    float64
}

// Pair is the chosen primer pair.
type Pair struct {
	Forward Primer
	Reverse Primer
}

// TmDiff is the absolute melting temperature difference of the pair.
func (p Pair) TmDiff() float64 { return math.Abs(p.Forward.Tm - p.Reverse.Tm) }

// WallaceTm is 2(A+T) + 4(G+C), applied at every length.
func WallaceTm(seq string) float64 {
	c := sequence.CountNucleotides(seq)
	return float64(2*(c.A+c.T) + 4*(c.G+c.C))
}

// Design tries every forward window [i, i+length) with i < n-2*length and
// every downstream window [j, j+length) with i+length <= j < n-length, the
// reverse primer being the window's reverse complement. The pair with the
// smallest Tm difference within tolerance wins; the earliest pair keeps a
// tie. ok is false when no pair qualifies.
func Design(seq string, length int, tolerance float64) (Pair, bool, error) {
	if length < 1 {
		return Pair{}, false, fmt.Errorf("%w: primer length %d must be at least 1", sequence.ErrInvalidInput, length)
	}
	if tolerance < 0 {
		return Pair{}, false, fmt.Errorf("%w: Tm tolerance %g must not be negative", sequence.ErrInvalidInput, tolerance)
	}

	n := len(seq)
	// Wallace Tm is additive, so every window's Tm is a prefix-sum difference.
	prefix := make([]float64, n+1)
	for i := 0; i < n; i++ {
		w := 2.0
		if seq[i] == 'G' || seq[i] == 'C' {
			w = 4.0
		} else if seq[i] != 'A' && seq[i] != 'T' {
			w = 0
		}
		prefix[i+1] = prefix[i] + w
	}
	tm := func(start int) float64 { return prefix[start+length] - prefix[start] }

	bestI, bestJ := -1, -1
	bestDiff := math.Inf(1)
	for i := 0; i < n-2*length; i++ {
		tmF := tm(i)
		for j := i + length; j < n-length; j++ {
			diff := math.Abs(tmF - tm(j))
			if diff <= tolerance && diff < bestDiff {
				bestI, bestJ, bestDiff = i, j, diff
			}
		}
	}
	if bestI < 0 {
		return Pair{}, false, nil
	}

	fwd := seq[bestI : bestI+length]
	rev := sequence.ReverseComplement(seq[bestJ : bestJ+length])
	return Pair{
		Forward: Primer{Seq: fwd, Start: bestI, Tm: WallaceTm(fwd), GC: sequence.GCContent(fwd)},
		Reverse: Primer{Seq: rev, Start: bestJ, Tm: WallaceTm(rev), GC: sequence.GCContent(rev)},
	}, true, nil
}
