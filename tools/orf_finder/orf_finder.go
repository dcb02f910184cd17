package orf_finder

import (
	"bufio"
	"fmt"
	"strings"

	"biokit_go/tools/sequence"
)

// ORF is a start-to-stop span. Start is 0-based, End exclusive, both on the
// forward strand even when the ORF was found on the reverse strand.
type ORF struct {
	sequence.Match
	Strand     string
	Frame      int // 1..3 forward, -1..-3 reverse
	StartCodon string
}

// LengthNT is the ORF length in nucleotides, stop codon included.
func (o ORF) LengthNT() int { return o.End - o.Start }

// LengthAA is the number of codons before the stop codon.
func (o ORF) LengthAA() int { return o.LengthNT()/3 - 1 }

// Options widens the default forward-strand ATG scan.
type Options struct {
	Strand      string   // "positive" (default), "negative" or "both"
	StartCodons []string // default ATG
	MinLength   int      // minimum length in nt, stop codon included
}

var stopCodons = map[string]bool{"TAA": true, "TAG": true, "TGA": true}

// FindORFs scans the three forward reading frames for ATG...stop spans.
// After a start codon at i the scan resumes at i+3, so a later in-frame ATG
// that reaches the same stop yields its own ORF. A start codon with no
// in-frame stop before the end of the sequence yields nothing.
// Results are ordered by frame, then start.
func FindORFs(seq string) []ORF {
	return scanStrand(seq, map[string]bool{"ATG": true}, "+")
}

// FindORFsWithOptions runs the same scan with alternate start codons, an
// optional reverse-strand pass and a length filter.
func FindORFsWithOptions(seq string, opts Options) ([]ORF, error) {
	starts := map[string]bool{}
	for _, codon := range opts.StartCodons {
		codon = strings.ToUpper(strings.TrimSpace(codon))
		if len(codon) != 3 || strings.Trim(codon, "ATGC") != "" {
			return nil, fmt.Errorf("%w: start codon %q is not three of A, T, G, C", sequence.ErrInvalidInput, codon)
		}
		starts[codon] = true
	}
	if len(starts) == 0 {
		starts["ATG"] = true
	}

	strand := strings.ToLower(opts.Strand)
	if strand == "" {
		strand = "positive"
	}
	var orfs []ORF
	switch strand {
	case "positive":
		orfs = scanStrand(seq, starts, "+")
	case "negative":
		orfs = scanStrand(seq, starts, "-")
	case "both":
		orfs = append(scanStrand(seq, starts, "+"), scanStrand(seq, starts, "-")...)
	default:
		return nil, fmt.Errorf("%w: strand %q (positive, negative or both)", sequence.ErrInvalidInput, opts.Strand)
	}

	if opts.MinLength <= 0 {
		return orfs, nil
	}
	kept := orfs[:0]
	for _, orf := range orfs {
		if orf.LengthNT() >= opts.MinLength {
			kept = append(kept, orf)
		}
	}
	return kept, nil
}

func scanStrand(seq string, startCodons map[string]bool, strand string) []ORF {
	scan := seq
	if strand == "-" {
		scan = sequence.ReverseComplement(seq) // Compute reverse complement of sequence
	}
	n := len(scan)

	var orfs []ORF
	for f := 0; f < 3; f++ {
		for i := f; i+3 <= n; i += 3 { // Start at the frame offset and end at the last viable codon
			codon := scan[i : i+3]
			if !startCodons[codon] {
				continue
			}
			for j := i + 3; j+3 <= n; j += 3 { // Scan plus 3 each iteration
				if !stopCodons[scan[j:j+3]] {
					continue
				}
				start, end := i, j+3
				frame := f + 1
				if strand == "-" {
					start, end = n-(j+3), n-i // Convert reverse coords to original sequence
					frame = -frame
				}
				orfs = append(orfs, ORF{
					Match:      sequence.Match{Start: start, End: end, Text: scan[i : j+3]},
					Strand:     strand,
					Frame:      frame,
					StartCodon: codon,
				})
				break // Move onto next start codon
			}
		}
	}
	return orfs
}

// WriteGFF3 writes one GFF3 feature line per ORF (1-based coordinates) for
// the named sequence. The caller writes the ##gff-version header once.
func WriteGFF3(w *bufio.Writer, seqID string, orfs []ORF) error {
	for i, orf := range orfs {
		absFrame := orf.Frame
		if absFrame < 0 {
			absFrame = -absFrame
		}
		phase := (absFrame - 1) % 3

		attrs := fmt.Sprintf(
			"ID=orf%d;Length_nt=%d;Length_aa=%d;Frame=%d;StartCodon=%s",
			i+1, orf.LengthNT(), orf.LengthAA(), orf.Frame, orf.StartCodon,
		)
		_, err := fmt.Fprintf(w, "%s\tbiokit\tORF\t%d\t%d\t.\t%s\t%d\t%s\n",
			seqID,
			orf.Pos(), // Convert to 1-based
			orf.End,
			orf.Strand,
			phase,
			attrs,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
