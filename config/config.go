// Package config holds the version table and the app wide settings that
// are unmarshalled from Viper (see: /cmd).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"biokit_go/tools/sequence"
)

// Limits bound the super-linear scans before they run.
type Limits struct {
	MaxSequenceLength int `mapstructure:"max-sequence-length"`
	MaxArmLength      int `mapstructure:"max-arm-length"`
	MaxSpacer         int `mapstructure:"max-spacer"`
	MaxMismatches     int `mapstructure:"max-mismatches"`
	MaxUnitLength     int `mapstructure:"max-unit-length"`
	MaxWindow         int `mapstructure:"max-window"`
	MaxPrimerTemplate int `mapstructure:"max-primer-template"`
	MaxK              int `mapstructure:"max-k"`
}

// PalindromeConfig is for the palindrome and inverted repeat scans
type PalindromeConfig struct {
	MinLength     int `mapstructure:"min-length"`
	MaxLength     int `mapstructure:"max-length"`
	MaxSpacer     int `mapstructure:"max-spacer"`
	MaxMismatches int `mapstructure:"max-mismatches"`
}

// RepeatConfig is for the microsatellite scan
type RepeatConfig struct {
	MinUnit    int `mapstructure:"min-unit"`
	MaxUnit    int `mapstructure:"max-unit"`
	MinRepeats int `mapstructure:"min-repeats"`
}

// WindowConfig is for the sliding-window profiles
type WindowConfig struct {
	Size      int `mapstructure:"size"`
	Step      int `mapstructure:"step"`
	Threshold int `mapstructure:"threshold"`
}

// PrimerConfig is for primer pair design
type PrimerConfig struct {
	Length    int     `mapstructure:"length"`
	Tolerance float64 `mapstructure:"tolerance"`
}

// Config is the root-level settings struct: biokit.yaml, BIOKIT_*
// environment variables, bound command line flags and --set overrides.
type Config struct {
	// alphabet: "strict" (ATGC) or "wildcard" (ATGCN)
	Mode string `mapstructure:"mode"`
	// suppress warnings on stderr
	Quiet bool `mapstructure:"quiet"`

	Limits     Limits           `mapstructure:"limits"`
	Palindrome PalindromeConfig `mapstructure:"palindrome"`
	Repeats    RepeatConfig     `mapstructure:"repeats"`
	Window     WindowConfig     `mapstructure:"window"`
	Primer     PrimerConfig     `mapstructure:"primer"`
	Kmer       int              `mapstructure:"kmer"`
	Host       string           `mapstructure:"host"`
}

// SetDefaults registers every known key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("mode", "strict")
	v.SetDefault("quiet", false)

	v.SetDefault("limits.max-sequence-length", 1_000_000)
	v.SetDefault("limits.max-arm-length", 30)
	v.SetDefault("limits.max-spacer", 10)
	v.SetDefault("limits.max-mismatches", 5)
	v.SetDefault("limits.max-unit-length", 12)
	v.SetDefault("limits.max-window", 100_000)
	v.SetDefault("limits.max-primer-template", 5_000)
	v.SetDefault("limits.max-k", 12)

	v.SetDefault("palindrome.min-length", 4)
	v.SetDefault("palindrome.max-length", 12)
	v.SetDefault("palindrome.max-spacer", 3)
	v.SetDefault("palindrome.max-mismatches", 1)

	v.SetDefault("repeats.min-unit", 2)
	v.SetDefault("repeats.max-unit", 6)
	v.SetDefault("repeats.min-repeats", 5)

	v.SetDefault("window.size", 30)
	v.SetDefault("window.step", 5)
	v.SetDefault("window.threshold", 3)

	v.SetDefault("primer.length", 20)
	v.SetDefault("primer.tolerance", 2.0)

	v.SetDefault("kmer", 3)
	v.SetDefault("host", "E_coli")
}

// Load reads the optional config file (cfgFile, or biokit.yaml in . or
// $HOME/.biokit), the BIOKIT_ environment and the key=value overrides, in
// increasing precedence, and decodes the result.
func Load(v *viper.Viper, cfgFile string, overrides []string) (Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("biokit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.biokit")
	}
	v.SetEnvPrefix("BIOKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	params, err := ParseOverrides(overrides)
	if err != nil {
		return Config{}, err
	}
	for key, value := range params {
		if !isKnownKey(v, key) {
			return Config{}, fmt.Errorf("%w: setting %q", sequence.ErrUnknownKey, key)
		}
		v.Set(key, value)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func isKnownKey(v *viper.Viper, key string) bool {
	for _, k := range v.AllKeys() {
		if k == key {
			return true
		}
	}
	return false
}

// SeqMode maps the mode setting onto the normalizer's alphabet.
func (c Config) SeqMode() sequence.Mode {
	if c.Mode == "wildcard" {
		return sequence.Wildcard
	}
	return sequence.Strict
}

// Validate rejects settings no scan can run with.
func (c Config) Validate() error {
	if c.Mode != "strict" && c.Mode != "wildcard" {
		return fmt.Errorf("%w: mode %q (strict or wildcard)", sequence.ErrInvalidInput, c.Mode)
	}
	l := c.Limits
	for name, val := range map[string]int{
		"max-sequence-length": l.MaxSequenceLength,
		"max-arm-length":      l.MaxArmLength,
		"max-unit-length":     l.MaxUnitLength,
		"max-window":          l.MaxWindow,
		"max-primer-template": l.MaxPrimerTemplate,
		"max-k":               l.MaxK,
	} {
		if val < 1 {
			return fmt.Errorf("%w: limits.%s must be positive, got %d", sequence.ErrInvalidInput, name, val)
		}
	}
	if l.MaxSpacer < 0 || l.MaxMismatches < 0 {
		return fmt.Errorf("%w: limits.max-spacer and limits.max-mismatches must not be negative", sequence.ErrInvalidInput)
	}
	return nil
}

func exceeds(what string, got, limit int) error {
	return fmt.Errorf("%w: %s %d exceeds the configured limit of %d", sequence.ErrInvalidInput, what, got, limit)
}

// CheckSequence bounds the input length.
func (l Limits) CheckSequence(n int) error {
	if n > l.MaxSequenceLength {
		return exceeds("sequence length", n, l.MaxSequenceLength)
	}
	return nil
}

// CheckInverted bounds the palindrome and inverted repeat parameters.
func (l Limits) CheckInverted(maxArm, maxSpacer, maxMismatches int) error {
	switch {
	case maxArm > l.MaxArmLength:
		return exceeds("arm length", maxArm, l.MaxArmLength)
	case maxSpacer > l.MaxSpacer:
		return exceeds("spacer", maxSpacer, l.MaxSpacer)
	case maxMismatches > l.MaxMismatches:
		return exceeds("mismatches", maxMismatches, l.MaxMismatches)
	}
	return nil
}

// CheckUnit bounds the tandem repeat unit length.
func (l Limits) CheckUnit(maxUnit int) error {
	if maxUnit > l.MaxUnitLength {
		return exceeds("unit length", maxUnit, l.MaxUnitLength)
	}
	return nil
}

// CheckWindow bounds the sliding window size.
func (l Limits) CheckWindow(size int) error {
	if size > l.MaxWindow {
		return exceeds("window size", size, l.MaxWindow)
	}
	return nil
}

// CheckPrimerTemplate bounds the template of the quadratic primer search.
func (l Limits) CheckPrimerTemplate(n int) error {
	if n > l.MaxPrimerTemplate {
		return exceeds("primer template length", n, l.MaxPrimerTemplate)
	}
	return nil
}

// CheckK bounds the k-mer length.
func (l Limits) CheckK(k int) error {
	if k > l.MaxK {
		return exceeds("k", k, l.MaxK)
	}
	return nil
}

// ParseOverrides turns key=value arguments into a map. Keys are lowercased.
func ParseOverrides(args []string) (map[string]string, error) {
	params := make(map[string]string)
	for _, arg := range args {
		kv := splitOption(arg)
		if kv[0] == "" || !strings.Contains(arg, "=") {
			return nil, fmt.Errorf("%w: override %q is not key=value", sequence.ErrInvalidInput, arg)
		}
		params[strings.ToLower(kv[0])] = kv[1]
	}
	return params, nil
}

func splitOption(arg string) [2]string {
	var kv [2]string
	for i, ch := range arg {
		if ch == '=' {
			kv[0] = strings.TrimSpace(arg[:i])
			kv[1] = strings.TrimSpace(arg[i+1:])
			return kv
		}
	}
	kv[0] = arg
	kv[1] = ""
	return kv
}
