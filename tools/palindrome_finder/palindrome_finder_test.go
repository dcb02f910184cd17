package palindrome_finder

import (
	"errors"
	"math/rand"
	"testing"

	"biokit_go/tools/seq_generator"
	"biokit_go/tools/sequence"
)

func TestFindPalindromes(t *testing.T) {
	got, err := FindPalindromes("GAATTC", 4, 6)
	if err != nil {
		t.Fatal(err)
	}
	want := []sequence.Match{
		{Start: 0, End: 6, Text: "GAATTC"},
		{Start: 1, End: 5, Text: "AATT"},
	}
	if len(got) != len(want) {
		t.Fatalf("FindPalindromes = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i].Match != want[i] {
			t.Errorf("palindrome %d = %+v, want %+v", i, got[i].Match, want[i])
		}
	}
	if got[0].Pos() != 1 || got[0].End != 6 {
		t.Errorf("reported coordinates = %d..%d, want 1..6", got[0].Pos(), got[0].End)
	}
}

func TestFindPalindromesIffReverseComplement(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		seq := seq_generator.GenerateDNA(rng, 60, 0.5)
		got, err := FindPalindromes(seq, 2, 8)
		if err != nil {
			t.Fatal(err)
		}
		found := make(map[[2]int]bool)
		for _, p := range got {
			found[[2]int{p.Start, p.Len()}] = true
		}
		for i := 0; i < len(seq); i++ {
			for l := 2; l <= 8 && i+l <= len(seq); l++ {
				sub := seq[i : i+l]
				want := sub == sequence.ReverseComplement(sub)
				if found[[2]int{i, l}] != want {
					t.Fatalf("seq %s at %d len %d: reported %v, want %v", seq, i, l, !want, want)
				}
			}
		}
	}
}

func TestPalindromeRejectsN(t *testing.T) {
	// ANT equals its reverse complement when N pairs with N, but N never
	// counts toward a palindrome.
	if IsPerfectPalindrome("ANT") {
		t.Error(`IsPerfectPalindrome("ANT") = true`)
	}
	if got, err := FindPalindromes("ANT", 3, 3); err != nil || len(got) != 0 {
		t.Errorf(`FindPalindromes("ANT", 3, 3) = %+v, %v; want none`, got, err)
	}

	got, err := FindPalindromes("NNNNAT", 2, 4)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range got {
		if p.Text != "AT" {
			t.Errorf("unexpected palindrome %q", p.Text)
		}
	}
	if len(got) != 1 {
		t.Errorf("got %d palindromes, want 1", len(got))
	}
}

func TestFindInvertedRepeats(t *testing.T) {
	got, err := FindInvertedRepeats("AAACCCCTTT", 3, 3, 4, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("FindInvertedRepeats = %+v, want one hit", got)
	}
	ir := got[0]
	if ir.Start != 0 || ir.End != 10 || ir.LeftArm != "AAA" || ir.RightArm != "TTT" || ir.Spacer != 4 || ir.Mismatches != 0 {
		t.Errorf("inverted repeat = %+v", ir)
	}
}

func TestFindInvertedRepeatsMismatchBudget(t *testing.T) {
	seq := "AAACCCCTGT"
	strict, err := FindInvertedRepeats(seq, 3, 3, 4, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, ir := range strict {
		if ir.Start == 0 && ir.Spacer == 4 {
			t.Errorf("mismatching arms reported with zero budget: %+v", ir)
		}
	}
	loose, _ := FindInvertedRepeats(seq, 3, 3, 4, 1)
	hit := false
	for _, ir := range loose {
		if ir.Start == 0 && ir.Spacer == 4 {
			hit = ir.Mismatches == 1 && ir.RightArm == "TGT"
		}
		if ir.Mismatches > 1 {
			t.Errorf("candidate over budget: %+v", ir)
		}
	}
	if !hit {
		t.Errorf("expected AAA/TGT with one mismatch in %+v", loose)
	}
}

func TestInvertedRepeatNCountsAsMismatch(t *testing.T) {
	got, _ := FindInvertedRepeats("ANAGGTNT", 3, 3, 2, 0)
	for _, ir := range got {
		t.Errorf("N-containing arms matched: %+v", ir)
	}
}

func TestInvalidRanges(t *testing.T) {
	if _, err := FindPalindromes("ATAT", 6, 4); !errors.Is(err, sequence.ErrInvalidInput) {
		t.Errorf("min > max error = %v", err)
	}
	if _, err := FindPalindromes("ATAT", 0, 4); !errors.Is(err, sequence.ErrInvalidInput) {
		t.Errorf("zero min error = %v", err)
	}
	if _, err := FindInvertedRepeats("ATAT", 2, 3, -1, 0); !errors.Is(err, sequence.ErrInvalidInput) {
		t.Errorf("negative spacer error = %v", err)
	}
}
