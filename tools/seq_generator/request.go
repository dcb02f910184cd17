package seq_generator

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// SequenceRequest describes one record to generate.
type SequenceRequest struct {
	ID     string
	Length int
	GCBias float64
}

// ParseRequest reads the name,length[,gc_bias] form used by --seq.
func ParseRequest(value string) (SequenceRequest, error) {
	parts := strings.Split(value, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return SequenceRequest{}, fmt.Errorf("expected format: name,length[,gc_bias], got %q", value)
	}
	length, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || length < 0 {
		return SequenceRequest{}, fmt.Errorf("invalid length %q", parts[1])
	}
	gc := 0.5
	if len(parts) == 3 {
		gc, err = strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil || gc < 0.0 || gc > 1.0 {
			return SequenceRequest{}, fmt.Errorf("invalid gc_bias %q", parts[2])
		}
	}
	return SequenceRequest{ID: strings.TrimSpace(parts[0]), Length: length, GCBias: gc}, nil
}

// Generate builds a FASTA document for reqs in the given mode
// ("dna", "rna" or "protein"), wrapped at width columns.
func Generate(rng *rand.Rand, mode string, reqs []SequenceRequest, width int) (string, error) {
	switch mode {
	case "dna", "rna", "protein":
	default:
		return "", fmt.Errorf("unknown mode %q (dna, rna or protein)", mode)
	}
	var out strings.Builder
	for _, req := range reqs {
		var seq string
		switch mode {
		case "dna":
			seq = GenerateDNA(rng, req.Length, req.GCBias)
		case "rna":
			seq = GenerateRNA(rng, req.Length, req.GCBias)
		case "protein":
			seq = GenerateProtein(rng, req.Length)
		}
		fmt.Fprintf(&out, ">%s\n%s", req.ID, WrapFasta(seq, width))
	}
	return out.String(), nil
}

// WrapFasta splits seq into lines of at most width characters.
func WrapFasta(seq string, width int) string {
	var out strings.Builder
	for i := 0; i < len(seq); i += width {
		end := i + width
		if end > len(seq) {
			end = len(seq)
		}
		out.WriteString(seq[i:end] + "\n")
	}
	return out.String()
}
