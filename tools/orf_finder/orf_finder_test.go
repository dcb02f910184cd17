package orf_finder

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"biokit_go/tools/sequence"
)

func TestFindORFsSingle(t *testing.T) {
	got := FindORFs("ATGAAATAG")
	if len(got) != 1 {
		t.Fatalf("FindORFs = %+v, want one ORF", got)
	}
	o := got[0]
	if o.Start != 0 || o.End != 9 || o.Text != "ATGAAATAG" || o.Frame != 1 {
		t.Errorf("ORF = %+v", o)
	}
	if o.LengthAA() != 2 {
		t.Errorf("LengthAA = %d, want 2", o.LengthAA())
	}
}

func TestFindORFsNestedStarts(t *testing.T) {
	// both in-frame ATGs reach the same TAA
	got := FindORFs("ATGATGCCCTAA")
	if len(got) != 2 {
		t.Fatalf("FindORFs = %+v", got)
	}
	if got[0].Start != 0 || got[1].Start != 3 || got[0].End != 12 || got[1].End != 12 {
		t.Errorf("nested ORFs = %+v", got)
	}
}

func TestFindORFsFirstStopOnly(t *testing.T) {
	got := FindORFs("ATGTAAGGGTGA")
	if len(got) != 1 || got[0].End != 6 {
		t.Errorf("FindORFs = %+v, want ORF ending at the first stop", got)
	}
}

func TestFindORFsNoStop(t *testing.T) {
	if got := FindORFs("ATGAAAAAA"); got != nil {
		t.Errorf("unterminated ORF reported: %+v", got)
	}
	if got := FindORFs("AT"); got != nil {
		t.Errorf("short sequence reported: %+v", got)
	}
}

func TestFindORFsFrames(t *testing.T) {
	// frame 2 ORF at offset 1
	got := FindORFs("CATGCCCTGAC")
	if len(got) != 1 || got[0].Frame != 2 || got[0].Start != 1 || got[0].End != 10 {
		t.Errorf("FindORFs = %+v", got)
	}
}

func TestFindORFsReverseStrand(t *testing.T) {
	seq := sequence.ReverseComplement("ATGAAATAG") // CTATTTCAT
	got, err := FindORFsWithOptions(seq, Options{Strand: "negative"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("reverse ORFs = %+v", got)
	}
	o := got[0]
	if o.Start != 0 || o.End != 9 || o.Strand != "-" || o.Frame != -1 || o.Text != "ATGAAATAG" {
		t.Errorf("reverse ORF = %+v", o)
	}
	if fwd, _ := FindORFsWithOptions(seq, Options{}); len(fwd) != 0 {
		t.Errorf("forward scan of reverse ORF = %+v", fwd)
	}
}

func TestFindORFsOptions(t *testing.T) {
	seq := "GTGAAATAGATGCCCGGGTTTTAA"
	got, err := FindORFsWithOptions(seq, Options{StartCodons: []string{"atg", "GTG"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].StartCodon != "GTG" {
		t.Errorf("alternate start codons = %+v", got)
	}
	got, _ = FindORFsWithOptions(seq, Options{StartCodons: []string{"GTG", "ATG"}, MinLength: 12})
	if len(got) != 1 || got[0].StartCodon != "ATG" {
		t.Errorf("min length filter = %+v", got)
	}

	if _, err := FindORFsWithOptions(seq, Options{StartCodons: []string{"AT"}}); !errors.Is(err, sequence.ErrInvalidInput) {
		t.Errorf("bad codon error = %v", err)
	}
	if _, err := FindORFsWithOptions(seq, Options{Strand: "sideways"}); !errors.Is(err, sequence.ErrInvalidInput) {
		t.Errorf("bad strand error = %v", err)
	}
}

func TestWriteGFF3(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	if err := WriteGFF3(w, "seq1", FindORFs("CATGAAATAG")); err != nil {
		t.Fatal(err)
	}
	w.Flush()
	fields := strings.Split(strings.TrimSpace(buf.String()), "\t")
	if len(fields) != 9 {
		t.Fatalf("GFF3 line = %q", buf.String())
	}
	if fields[0] != "seq1" || fields[3] != "2" || fields[4] != "10" || fields[6] != "+" || fields[7] != "1" {
		t.Errorf("GFF3 fields = %v", fields)
	}
}
