package common

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStreamFasta(t *testing.T) {
	in := ">seq1 first\nacgt\nGGCC\n\n>seq2\nTTTT\n"
	var ids, seqs []string
	err := StreamFasta(strings.NewReader(in), func(id, seq string) error {
		ids = append(ids, id)
		seqs = append(seqs, seq)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] != "seq1 first" || seqs[0] != "ACGTGGCC" || seqs[1] != "TTTT" {
		t.Errorf("records = %v %v", ids, seqs)
	}
}

func TestStreamFastaBareSequence(t *testing.T) {
	var got string
	StreamFasta(strings.NewReader("atgc\nnnaa\n"), func(id, seq string) error {
		got = seq
		return nil
	})
	if got != "ATGCNNAA" {
		t.Errorf("bare sequence = %q", got)
	}
}

func TestStreamFastaStop(t *testing.T) {
	calls := 0
	err := StreamFasta(strings.NewReader(">a\nA\n>b\nC\n"), func(id, seq string) error {
		calls++
		return ErrStop
	})
	if err != nil || calls != 1 {
		t.Errorf("stop: calls=%d err=%v", calls, err)
	}
}

func TestReadSequencePlainAndGzip(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "in.fa")
	if err := os.WriteFile(plain, []byte(">x\nGAATTC\n>y\nAAAA\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	id, seq, err := ReadSequence(plain)
	if err != nil || id != "x" || seq != "GAATTC" {
		t.Errorf("plain: %q %q %v", id, seq, err)
	}

	gz := filepath.Join(dir, "in.fa.gz")
	f, err := os.Create(gz)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	zw.Write([]byte(">z\nggatcc\n"))
	zw.Close()
	f.Close()

	id, seq, err = ReadSequence(gz)
	if err != nil || id != "z" || seq != "GGATCC" {
		t.Errorf("gzip: %q %q %v", id, seq, err)
	}
}

func TestReadSequenceEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.fa")
	os.WriteFile(path, nil, 0o644)
	if _, _, err := ReadSequence(path); err == nil {
		t.Error("empty file should fail")
	}
	if _, _, err := ReadSequence(filepath.Join(t.TempDir(), "missing.fa")); err == nil {
		t.Error("missing file should fail")
	}
}
