// Package window_scan is the sliding-window engine behind the GC,
// entropy and mutation-density profiles.
package window_scan

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"biokit_go/tools/kmer_analyzer"
	"biokit_go/tools/sequence"
)

// Anchor selects which coordinate labels a window in the output.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMid
)

// Point is one window: [Start, End) plus the labelled position and value.
type Point struct {
	Start    int
	End      int
	Position int
	Value    float64
}

// Metric aggregates one window of a sequence.
type Metric interface {
	Name() string
	Anchor() Anchor
	Value(seq string, start, end int) float64
}

// Scan slides a window of size bases across seq in increments of step.
// Windows start at 0..len(seq)-size; a trailing partial window is dropped.
func Scan(seq string, size, step int, m Metric) ([]Point, error) {
	if size <= 0 || step <= 0 {
		return nil, fmt.Errorf("%w: window size and step must be positive (size=%d, step=%d)", sequence.ErrInvalidInput, size, step)
	}
	var out []Point
	for start := 0; start+size <= len(seq); start += step {
		end := start + size
		pos := start
		if m.Anchor() == AnchorMid {
			pos = start + size/2
		}
		out = append(out, Point{Start: start, End: end, Position: pos, Value: m.Value(seq, start, end)})
	}
	return out, nil
}

// GC is the G+C percentage of each window, labelled by window start.
type GC struct{}

func (GC) Name() string   { return "gc" }
func (GC) Anchor() Anchor { return AnchorStart }

func (GC) Value(seq string, start, end int) float64 {
	gc := 0
	for i := start; i < end; i++ {
		if seq[i] == 'G' || seq[i] == 'C' {
			gc++
		}
	}
	return 100 * float64(gc) / float64(end-start)
}

// Entropy is the Shannon entropy of each window in bits, rounded to four
// decimals and labelled by window midpoint.
type Entropy struct{}

func (Entropy) Name() string   { return "entropy" }
func (Entropy) Anchor() Anchor { return AnchorMid }

func (Entropy) Value(seq string, start, end int) float64 {
	return ShannonEntropy(seq[start:end])
}

// ShannonEntropy is -sum p*log2(p) over the observed symbol frequencies of
// s, rounded to four decimals. The empty string has entropy 0.
func ShannonEntropy(s string) float64 {
	if len(s) == 0 {
		return 0
	}
	var counts [256]int
	for i := 0; i < len(s); i++ {
		counts[s[i]]++
	}
	p := make([]float64, 0, 5)
	for _, c := range counts {
		if c > 0 {
			p = append(p, float64(c)/float64(len(s)))
		}
	}
	h := stat.Entropy(p) / math.Ln2 // nats to bits
	h = math.Round(h*10000) / 10000
	if h <= 0 {
		return 0 // avoid -0 for single-symbol windows
	}
	return h
}

// MutationDensity counts externally supplied mutation positions per window
// from a prefix sum built once, so every window query is O(1).
type MutationDensity struct {
	prefix []int
}

// NewMutationDensity indexes 0-based mutation positions for a sequence of
// the given length. Positions outside [0, length) are ignored; repeated
// positions count once per occurrence.
func NewMutationDensity(positions []int, length int) *MutationDensity {
	if length < 0 {
		length = 0
	}
	prefix := make([]int, length+1)
	for _, pos := range positions {
		if pos >= 0 && pos < length {
			prefix[pos+1]++
		}
	}
	for i := 1; i <= length; i++ {
		prefix[i] += prefix[i-1]
	}
	return &MutationDensity{prefix: prefix}
}

func (*MutationDensity) Name() string   { return "mutation_density" }
func (*MutationDensity) Anchor() Anchor { return AnchorStart }

func (d *MutationDensity) Value(_ string, start, end int) float64 {
	return float64(d.Count(start, end))
}

// Count is the number of mutations in [start, end).
func (d *MutationDensity) Count(start, end int) int {
	return d.prefix[end] - d.prefix[start]
}

// Len is the indexed sequence length.
func (d *MutationDensity) Len() int { return len(d.prefix) - 1 }

// Hotspot is a window whose mutation count reached the threshold.
type Hotspot struct {
	Start int
	End   int
	Count int
}

// Hotspots checks every window start (step 1) over a sequence of length
// bases and returns the windows holding at least threshold mutations.
func Hotspots(positions []int, length, size, threshold int) ([]Hotspot, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: window size must be positive, got %d", sequence.ErrInvalidInput, size)
	}
	if threshold < 1 {
		return nil, fmt.Errorf("%w: threshold must be at least 1, got %d", sequence.ErrInvalidInput, threshold)
	}
	d := NewMutationDensity(positions, length)
	var out []Hotspot
	for start := 0; start+size <= length; start++ {
		end := start + size
		if c := d.Count(start, end); c >= threshold {
			out = append(out, Hotspot{Start: start, End: end, Count: c})
		}
	}
	return out, nil
}

// Summary describes the value distribution of a profile.
type Summary struct {
	Windows int
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64
}

// Summarize computes window count, mean, sample standard deviation and range.
func Summarize(points []Point) Summary {
	if len(points) == 0 {
		return Summary{}
	}
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}
	mean, std := stat.MeanStdDev(values, nil)
	if len(values) < 2 {
		std = 0
	}
	return Summary{
		Windows: len(values),
		Mean:    mean,
		StdDev:  std,
		Min:     floats.Min(values),
		Max:     floats.Max(values),
	}
}

// Complexity is the global (non-windowed) complexity of a sequence.
type Complexity struct {
	Entropy       float64
	KmerDiversity float64
	K             int
}

// EstimateComplexity combines whole-sequence entropy with k-mer diversity.
func EstimateComplexity(seq string, k int) (Complexity, error) {
	div, err := kmer_analyzer.Diversity(seq, k)
	if err != nil {
		return Complexity{}, err
	}
	return Complexity{Entropy: ShannonEntropy(seq), KmerDiversity: div, K: k}, nil
}
