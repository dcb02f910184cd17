package sanity_check

import (
	"fmt"
	"io"
	"reflect"

	"biokit_go/config" // Version control file
	"biokit_go/tools/microsatellite_finder"
	"biokit_go/tools/motif_finder"
	"biokit_go/tools/orf_finder"
	"biokit_go/tools/palindrome_finder"
	"biokit_go/tools/sequence"
	"biokit_go/tools/site_locator"
	"biokit_go/tools/window_scan"
)

// Check is one known-answer test of an installed tool.
type Check struct {
	Name string
	Run  func() error
}

func expect(what string, got, want any) error {
	if !reflect.DeepEqual(got, want) {
		return fmt.Errorf("%s = %v, want %v", what, got, want)
	}
	return nil
}

// Checks returns the known-answer tests, one per scanner.
func Checks() []Check {
	return []Check{
		{"normalizer", func() error {
			s, err := sequence.Normalize(" gaat tc\n", sequence.Strict)
			if err != nil {
				return err
			}
			return expect("Normalize", s, sequence.Sequence("GAATTC"))
		}},
		{"reverse complement", func() error {
			return expect("ReverseComplement(GAATTCA)", sequence.ReverseComplement("GAATTCA"), "TGAATTC")
		}},
		{"motif finder", func() error {
			got, err := motif_finder.FindMotif("AAAA", "AA")
			if err != nil {
				return err
			}
			return expect("FindMotif(AAAA, AA)", got, []int{0, 1, 2})
		}},
		{"palindrome finder", func() error {
			got, err := palindrome_finder.FindPalindromes("GAATTC", 6, 6)
			if err != nil {
				return err
			}
			return expect("palindromes in GAATTC", len(got), 1)
		}},
		{"microsatellite finder", func() error {
			got, err := microsatellite_finder.FindRepeats("ACACACACAC", 1, 6, 3)
			if err != nil {
				return err
			}
			if len(got) != 1 {
				return fmt.Errorf("repeats in ACACACACAC = %d, want 1", len(got))
			}
			return expect("ACACACACAC repeat", [2]any{got[0].Motif, got[0].Repeats}, [2]any{"AC", 5})
		}},
		{"window scan", func() error {
			got, err := window_scan.Scan("GCGC", 4, 1, window_scan.GC{})
			if err != nil {
				return err
			}
			return expect("GC of GCGC", got[0].Value, 100.0)
		}},
		{"orf finder", func() error {
			got := orf_finder.FindORFs("ATGAAATAG")
			return expect("ORFs in ATGAAATAG", len(got), 1)
		}},
		{"site locator", func() error {
			got, err := site_locator.FindSites("GAATTCGAATTC", site_locator.DefaultEnzymes, []string{"EcoRI"})
			if err != nil {
				return err
			}
			return expect("EcoRI positions", got[0].Positions, []int{1, 7})
		}},
	}
}

// Run performs a sanity check to ensure biokit is running properly, printing
// each known-answer test and the version number. It fails if any check fails.
func Run(w io.Writer) error {
	failed := 0
	for _, c := range Checks() {
		if err := c.Run(); err != nil {
			failed++
			fmt.Fprintf(w, "FAIL\t%s: %v\n", c.Name, err)
			continue
		}
		fmt.Fprintf(w, "ok\t%s\n", c.Name)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(Checks()))
	}
	fmt.Fprintf(w, "Successfully running biokit! (%s)\n", config.Main_version)
	return nil
}
