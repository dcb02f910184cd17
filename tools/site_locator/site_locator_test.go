package site_locator

import (
	"errors"
	"reflect"
	"testing"

	"biokit_go/tools/sequence"
)

func TestFindSitesTwoEcoRI(t *testing.T) {
	seq := "AAGAATTCTTTTGAATTCAA"
	hits, err := FindSites(seq, DefaultEnzymes, []string{"EcoRI"})
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 {
		t.Fatalf("FindSites = %+v", hits)
	}
	if !reflect.DeepEqual(hits[0].Positions, []int{3, 13}) || hits[0].Count() != 2 || hits[0].Site != "GAATTC" {
		t.Errorf("EcoRI hit = %+v", hits[0])
	}
}

func TestSitePositionsOverlapping(t *testing.T) {
	if got := SitePositions("AAAA", "AA"); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("SitePositions overlapping = %v", got)
	}
	if got := SitePositions("ATGC", ""); got != nil {
		t.Errorf("empty site = %v", got)
	}
}

func TestFindSitesAllAndOrdering(t *testing.T) {
	seq := "GGATCCAAGAATTC"
	hits, err := FindSites(seq, DefaultEnzymes, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 2 || hits[0].Enzyme != "BamHI" || hits[1].Enzyme != "EcoRI" {
		t.Errorf("FindSites all = %+v", hits)
	}
	hits, _ = FindSites(seq, DefaultEnzymes, []string{"EcoRI", "BamHI", "EcoRI"})
	if len(hits) != 2 || hits[0].Enzyme != "BamHI" {
		t.Errorf("duplicate selection = %+v", hits)
	}
}

func TestFindSitesNoResultIsNotError(t *testing.T) {
	hits, err := FindSites("AAAAAAAA", DefaultEnzymes, []string{"NotI"})
	if err != nil || len(hits) != 0 {
		t.Errorf("FindSites = %+v, %v", hits, err)
	}
}

func TestFindSitesUnknownEnzyme(t *testing.T) {
	if _, err := FindSites("GAATTC", DefaultEnzymes, []string{"EcoRI", "FakeI"}); !errors.Is(err, sequence.ErrUnknownKey) {
		t.Errorf("unknown enzyme error = %v, want ErrUnknownKey", err)
	}
}

func TestFindSpliceSites(t *testing.T) {
	donors, acceptors := FindSpliceSites("AGGTAAGT")
	if !reflect.DeepEqual(donors, []int{2, 6}) {
		t.Errorf("donors = %v", donors)
	}
	if !reflect.DeepEqual(acceptors, []int{0, 4}) {
		t.Errorf("acceptors = %v", acceptors)
	}
}
