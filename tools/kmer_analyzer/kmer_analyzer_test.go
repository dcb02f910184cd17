package kmer_analyzer

import (
	"errors"
	"testing"

	"biokit_go/tools/sequence"
)

func TestAllKmers(t *testing.T) {
	if got := len(AllKmers(2, false)); got != 16 {
		t.Errorf("AllKmers(2) = %d kmers, want 16", got)
	}
	if got := len(AllKmers(2, true)); got != 25 {
		t.Errorf("AllKmers(2, N) = %d kmers, want 25", got)
	}
	if got := AllKmers(0, false); got != nil {
		t.Errorf("AllKmers(0) = %v", got)
	}
}

func TestCount(t *testing.T) {
	counts, total := Count("AANAA", 2, true)
	if total != 2 || counts["AA"] != 2 {
		t.Errorf("Count ignoring N = %v total %d", counts, total)
	}
	counts, total = Count("AANAA", 2, false)
	if total != 4 || counts["AN"] != 1 {
		t.Errorf("Count with N = %v total %d", counts, total)
	}
}

func TestDiversity(t *testing.T) {
	tests := []struct {
		seq  string
		k    int
		want float64
	}{
		{"AAAA", 2, 0.3333},
		{"ATGC", 2, 1},
		{"AT", 3, 0},
		{"ACGTACGT", 3, 0.6667},
	}
	for _, tc := range tests {
		got, err := Diversity(tc.seq, tc.k)
		if err != nil {
			t.Fatalf("Diversity(%q, %d): %v", tc.seq, tc.k, err)
		}
		if got != tc.want {
			t.Errorf("Diversity(%q, %d) = %v, want %v", tc.seq, tc.k, got, tc.want)
		}
	}
	if _, err := Diversity("ATGC", 0); !errors.Is(err, sequence.ErrInvalidInput) {
		t.Errorf("k=0 error = %v", err)
	}
}

func TestFrequencies(t *testing.T) {
	rows, err := Frequencies("AAAT", 2, false, true, "freq")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 16 {
		t.Fatalf("got %d rows, want 16", len(rows))
	}
	if rows[0].Kmer != "AA" || rows[0].Count != 2 {
		t.Errorf("top row = %+v", rows[0])
	}
	if rows[1].Kmer != "AT" || rows[1].Count != 1 {
		t.Errorf("second row = %+v", rows[1])
	}
	total := 0.0
	for _, r := range rows {
		total += r.RelPct
	}
	if total < 99.999 || total > 100.001 {
		t.Errorf("percentages sum to %v", total)
	}
}

func TestFrequenciesObservedOnly(t *testing.T) {
	rows, err := Frequencies("ACGTAC", 3, false, false, "alpha")
	if err != nil {
		t.Fatal(err)
	}
	want := []Frequency{{"ACG", 1, 25}, {"CGT", 1, 25}, {"GTA", 1, 25}, {"TAC", 1, 25}}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d: %+v", len(rows), len(want), rows)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], want[i])
		}
	}

	// A large k on a short sequence stays proportional to the sequence.
	rows, err = Frequencies("ACGT", 40, false, false, "freq")
	if err != nil || len(rows) != 0 {
		t.Errorf("k=40 on 4 bases = %d rows, %v", len(rows), err)
	}
}

func TestFrequenciesFreqTiesAlphabetical(t *testing.T) {
	rows, err := Frequencies("TTGGAA", 1, false, false, "freq")
	if err != nil {
		t.Fatal(err)
	}
	got := ""
	for _, r := range rows {
		got += r.Kmer
	}
	if got != "AGT" {
		t.Errorf("freq order with ties = %q, want AGT", got)
	}
}
