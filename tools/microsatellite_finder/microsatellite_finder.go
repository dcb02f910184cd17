// Package microsatellite_finder detects short tandem repeats (STRs).
package microsatellite_finder

import (
	"fmt"
	"strings"

	"biokit_go/tools/sequence"
)

// Repeat is a maximal run of a repeating unit. Pos() and End give the
// 1-based inclusive span.
type Repeat struct {
	sequence.Match
	Motif   string
	Repeats int
	Strand  string
}

// FindRepeats scans seq left to right. At each position it tries unit
// lengths minUnit..maxUnit in increasing order; the first unit whose run
// reaches minRepeats is recorded at its maximal extent and the scan jumps
// past it. Positions inside a recorded run are never revisited, so a
// repeat starting inside an earlier one is not reported. Units containing
// N are skipped.
func FindRepeats(seq string, minUnit, maxUnit, minRepeats int) ([]Repeat, error) {
	if minUnit < 1 || minUnit > maxUnit {
		return nil, fmt.Errorf("%w: unit length range %d..%d", sequence.ErrInvalidInput, minUnit, maxUnit)
	}
	if minRepeats < 2 {
		return nil, fmt.Errorf("%w: minimum repeat count must be at least 2, got %d", sequence.ErrInvalidInput, minRepeats)
	}

	var out []Repeat
	n := len(seq)
	i := 0
	for i < n {
		found := false
		for unit := minUnit; unit <= maxUnit; unit++ {
			if i+unit*minRepeats > n {
				continue
			}
			motif := seq[i : i+unit]
			if strings.IndexByte(motif, 'N') >= 0 {
				continue
			}

			count := 1
			j := i + unit
			for j+unit <= n && seq[j:j+unit] == motif {
				count++
				j += unit
			}

			if count >= minRepeats {
				out = append(out, Repeat{
					Match:   sequence.Match{Start: i, End: j, Text: seq[i:j]},
					Motif:   motif,
					Repeats: count,
					Strand:  "+",
				})
				i = j
				found = true
				break
			}
		}
		if !found {
			i++
		}
	}
	return out, nil
}
