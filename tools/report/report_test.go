package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sample() *Table {
	t := NewTable("Enzyme", "Position", "GC")
	t.Add("EcoRI", 3, 50.0)
	t.Add("BamHI", 12, 66.666)
	return t
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := sample().WriteText(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "Enzyme") || !strings.Contains(lines[2], "66.67") {
		t.Errorf("text table = %q", buf.String())
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := sample().WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}
	want := "Enzyme,Position,GC\nEcoRI,3,50.00\nBamHI,12,66.67\n"
	if buf.String() != want {
		t.Errorf("CSV = %q, want %q", buf.String(), want)
	}
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sites")
	if err := sample().WriteCSVFile(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path + ".csv")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "Enzyme,Position,GC\n") {
		t.Errorf("file contents = %q", data)
	}
}
