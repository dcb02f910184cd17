// Package site_locator finds restriction enzyme recognition sites and
// candidate splice donor/acceptor dinucleotides.
package site_locator

import (
	"fmt"
	"sort"
	"strings"

	"biokit_go/tools/sequence"
)

// DefaultEnzymes maps enzyme name to recognition site.
var DefaultEnzymes = map[string]string{
	"EcoRI":   "GAATTC",
	"BamHI":   "GGATCC",
	"HindIII": "AAGCTT",
	"NotI":    "GCGGCCGC",
	"XhoI":    "CTCGAG",
	"PstI":    "CTGCAG",
	"SmaI":    "CCCGGG",
	"KpnI":    "GGTACC",
	"SacI":    "GAGCTC",
	"XbaI":    "TCTAGA",
	"NcoI":    "CCATGG",
	"NdeI":    "CATATG",
	"SalI":    "GTCGAC",
	"EcoRV":   "GATATC",
}

// SiteHit lists the 1-based positions of one enzyme's site.
type SiteHit struct {
	Enzyme    string
	Site      string
	Positions []int
}

// Count is the number of sites found.
func (h SiteHit) Count() int { return len(h.Positions) }

// SitePositions returns every 1-based position of site in seq. The search
// resumes one base after each hit, so overlapping sites are all found.
func SitePositions(seq, site string) []int {
	if site == "" {
		return nil
	}
	var positions []int
	from := 0
	for {
		idx := strings.Index(seq[from:], site)
		if idx < 0 {
			return positions
		}
		positions = append(positions, from+idx+1)
		from += idx + 1
	}
}

// FindSites searches seq for each selected enzyme in table, in name order.
// An empty selection searches every enzyme. Enzymes without a site in seq
// are left out of the result. Unknown names fail with ErrUnknownKey before
// any search runs.
func FindSites(seq string, table map[string]string, selected []string) ([]SiteHit, error) {
	names := selected
	if len(names) == 0 {
		names = make([]string, 0, len(table))
		for name := range table {
			names = append(names, name)
		}
	}
	for _, name := range names {
		if _, ok := table[name]; !ok {
			return nil, fmt.Errorf("%w: enzyme %q", sequence.ErrUnknownKey, name)
		}
	}
	names = dedupeSorted(names)

	var hits []SiteHit
	for _, name := range names {
		site := table[name]
		if positions := SitePositions(seq, site); len(positions) > 0 {
			hits = append(hits, SiteHit{Enzyme: name, Site: site, Positions: positions})
		}
	}
	return hits, nil
}

func dedupeSorted(names []string) []string {
	out := append([]string(nil), names...)
	sort.Strings(out)
	j := 0
	for i, name := range out {
		if i == 0 || name != out[j-1] {
			out[j] = name
			j++
		}
	}
	return out[:j]
}

// FindSpliceSites returns the 0-based index of every GT (donor) and AG
// (acceptor) dinucleotide. The two lists are independent.
func FindSpliceSites(seq string) (donors, acceptors []int) {
	for i := 0; i+2 <= len(seq); i++ {
		switch seq[i : i+2] {
		case "GT":
			donors = append(donors, i)
		case "AG":
			acceptors = append(acceptors, i)
		}
	}
	return donors, acceptors
}
