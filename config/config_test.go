package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"biokit_go/tools/sequence"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(viper.New(), "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.Mode != "strict" || c.SeqMode() != sequence.Strict {
		t.Errorf("mode = %q", c.Mode)
	}
	if c.Limits.MaxArmLength != 30 || c.Limits.MaxSpacer != 10 || c.Limits.MaxMismatches != 5 {
		t.Errorf("limits = %+v", c.Limits)
	}
	if c.Repeats != (RepeatConfig{MinUnit: 2, MaxUnit: 6, MinRepeats: 5}) {
		t.Errorf("repeats = %+v", c.Repeats)
	}
	if c.Limits.MaxK != 12 {
		t.Errorf("limits.max-k = %d, want 12", c.Limits.MaxK)
	}
	if c.Primer.Length != 20 || c.Primer.Tolerance != 2 || c.Host != "E_coli" {
		t.Errorf("primer/host = %+v %q", c.Primer, c.Host)
	}
}

func TestLoadOverrides(t *testing.T) {
	c, err := Load(viper.New(), "", []string{"limits.max-arm-length=40", "MODE=wildcard", "primer.tolerance = 1.5"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Limits.MaxArmLength != 40 || c.SeqMode() != sequence.Wildcard || c.Primer.Tolerance != 1.5 {
		t.Errorf("overridden config = %+v", c)
	}
}

func TestLoadOverrideErrors(t *testing.T) {
	if _, err := Load(viper.New(), "", []string{"no.such.key=1"}); !errors.Is(err, sequence.ErrUnknownKey) {
		t.Errorf("unknown key error = %v", err)
	}
	if _, err := Load(viper.New(), "", []string{"kmer"}); !errors.Is(err, sequence.ErrInvalidInput) {
		t.Errorf("missing '=' error = %v", err)
	}
	if _, err := Load(viper.New(), "", []string{"mode=fuzzy"}); !errors.Is(err, sequence.ErrInvalidInput) {
		t.Errorf("bad mode error = %v", err)
	}
	if _, err := Load(viper.New(), "", []string{"limits.max-window=0"}); !errors.Is(err, sequence.ErrInvalidInput) {
		t.Errorf("zero limit error = %v", err)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "biokit.yaml")
	yaml := "window:\n  size: 50\nrepeats:\n  min-repeats: 3\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BIOKIT_KMER", "5")

	c, err := Load(viper.New(), path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.Window.Size != 50 || c.Window.Step != 5 {
		t.Errorf("window = %+v", c.Window)
	}
	if c.Repeats.MinRepeats != 3 || c.Repeats.MaxUnit != 6 {
		t.Errorf("repeats = %+v", c.Repeats)
	}
	if c.Kmer != 5 {
		t.Errorf("kmer from env = %d, want 5", c.Kmer)
	}

	if _, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"), nil); err == nil {
		t.Error("explicit missing config file should fail")
	}
}

func TestValidateMaxK(t *testing.T) {
	if _, err := Load(viper.New(), "", []string{"limits.max-k=0"}); !errors.Is(err, sequence.ErrInvalidInput) {
		t.Errorf("limits.max-k=0 error = %v", err)
	}
}

func TestLimits(t *testing.T) {
	l := Limits{MaxSequenceLength: 10, MaxArmLength: 5, MaxSpacer: 2, MaxMismatches: 1, MaxUnitLength: 4, MaxWindow: 8, MaxPrimerTemplate: 9, MaxK: 6}
	tests := []struct {
		name string
		err  error
	}{
		{"sequence ok", l.CheckSequence(10)},
		{"inverted ok", l.CheckInverted(5, 2, 1)},
		{"unit ok", l.CheckUnit(4)},
		{"window ok", l.CheckWindow(8)},
		{"primer ok", l.CheckPrimerTemplate(9)},
		{"k ok", l.CheckK(6)},
	}
	for _, tc := range tests {
		if tc.err != nil {
			t.Errorf("%s: %v", tc.name, tc.err)
		}
	}
	for name, err := range map[string]error{
		"sequence": l.CheckSequence(11),
		"arm":      l.CheckInverted(6, 0, 0),
		"spacer":   l.CheckInverted(1, 3, 0),
		"mismatch": l.CheckInverted(1, 0, 2),
		"unit":     l.CheckUnit(5),
		"window":   l.CheckWindow(9),
		"primer":   l.CheckPrimerTemplate(10),
		"k":        l.CheckK(7),
	} {
		if !errors.Is(err, sequence.ErrInvalidInput) {
			t.Errorf("%s over limit: %v", name, err)
		}
	}
}

func TestParseOverrides(t *testing.T) {
	got, err := ParseOverrides([]string{"a=1", "b=x=y", "c="})
	if err != nil {
		t.Fatal(err)
	}
	if got["a"] != "1" || got["b"] != "x=y" || got["c"] != "" {
		t.Errorf("ParseOverrides = %v", got)
	}
}
