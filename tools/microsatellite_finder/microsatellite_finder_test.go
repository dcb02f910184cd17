package microsatellite_finder

import (
	"errors"
	"testing"

	"biokit_go/tools/sequence"
)

func TestFindRepeatsDinucleotide(t *testing.T) {
	got, err := FindRepeats("ACACACACAC", 2, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("FindRepeats = %+v, want one repeat", got)
	}
	r := got[0]
	if r.Motif != "AC" || r.Pos() != 1 || r.End != 10 || r.Repeats != 5 || r.Strand != "+" {
		t.Errorf("repeat = motif %s start %d end %d repeats %d", r.Motif, r.Pos(), r.End, r.Repeats)
	}
}

func TestFindRepeatsPrefersShortUnit(t *testing.T) {
	// AAAAAAAA qualifies as unit A x8 and AA x4; the shorter unit wins
	got, err := FindRepeats("AAAAAAAAGC", 1, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Motif != "A" || got[0].Repeats != 8 || got[0].End != 8 {
		t.Errorf("FindRepeats = %+v", got)
	}
}

func TestFindRepeatsClaimsRegion(t *testing.T) {
	// the TA run at index 1 and the T run from index 7 both start inside
	// the claimed AT run; only the unclaimed tail of the T run is reported
	seq := "ATATATATTTTT"
	got, err := FindRepeats(seq, 1, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("FindRepeats = %+v", got)
	}
	if got[0].Motif != "AT" || got[0].Repeats != 4 || got[0].Pos() != 1 || got[0].End != 8 {
		t.Errorf("first repeat = %+v", got[0])
	}
	if got[1].Motif != "T" || got[1].Repeats != 4 || got[1].Pos() != 9 || got[1].End != 12 {
		t.Errorf("second repeat = %+v", got[1])
	}
}

func TestFindRepeatsSkipsN(t *testing.T) {
	got, err := FindRepeats("NNNNNNNN", 1, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("N run reported as repeat: %+v", got)
	}
}

func TestFindRepeatsNone(t *testing.T) {
	got, err := FindRepeats("ACGTACGA", 2, 6, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("FindRepeats = %+v, want none", got)
	}
}

func TestFindRepeatsInvalid(t *testing.T) {
	for _, tc := range []struct{ min, max, reps int }{{0, 2, 3}, {3, 2, 3}, {2, 2, 1}} {
		if _, err := FindRepeats("ACAC", tc.min, tc.max, tc.reps); !errors.Is(err, sequence.ErrInvalidInput) {
			t.Errorf("FindRepeats(%d,%d,%d) error = %v", tc.min, tc.max, tc.reps, err)
		}
	}
}
