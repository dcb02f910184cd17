// Package cmd is for command line interactions with biokit
package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"biokit_go/benchmark"
	"biokit_go/config"
)

// app carries the settings shared by every subcommand of one invocation.
type app struct {
	v         *viper.Viper
	cfg       config.Config
	cfgFile   string
	sets      []string
	benchmark bool
	csvOut    string
}

// NewRootCmd builds the biokit command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "biokit",
		Short: "Scan nucleic-acid sequences for motifs, repeats, ORFs and sites",
		Long: `biokit is a toolkit for short DNA sequences.

Every analysis command reads one sequence, given inline with --seq or from a
FASTA file (optionally gzipped) with --in_file, and prints a table. Settings
come from biokit.yaml, BIOKIT_* environment variables, flags and --set
key=value overrides, in increasing precedence.`,
		Version:       config.Main_version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, a.cfgFile, a.sets)
			if err != nil {
				return err
			}
			a.cfg = cfg
			if a.benchmark && cmd.RunE != nil {
				a.wrapBenchmark(cmd, args)
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./biokit.yaml or $HOME/.biokit/biokit.yaml)")
	flags.StringArrayVar(&a.sets, "set", nil, "override a setting, e.g. --set limits.max-arm-length=20 (repeatable)")
	flags.BoolVar(&a.benchmark, "benchmark", false, "report run time and memory usage of the command")
	flags.StringVar(&a.csvOut, "csv", "", "write the result table to this CSV file instead of the terminal")
	flags.String("mode", "strict", "alphabet: strict (ATGC) or wildcard (ATGCN)")
	flags.Bool("quiet", false, "suppress warnings")

	// Bind the parameters to viper
	a.v.BindPFlag("mode", flags.Lookup("mode"))
	a.v.BindPFlag("quiet", flags.Lookup("quiet"))

	rootCmd.AddCommand(
		a.newStatsCmd(),
		a.newTransformCmd(),
		a.newMotifCmd(),
		a.newPalindromeCmd(),
		a.newInvertedCmd(),
		a.newRepeatsCmd(),
		a.newWindowCmd(),
		a.newHotspotsCmd(),
		a.newComplexityCmd(),
		a.newKmerCmd(),
		a.newORFCmd(),
		a.newSitesCmd(),
		a.newSpliceCmd(),
		a.newOptimizeCmd(),
		a.newPrimersCmd(),
		a.newGenerateCmd(),
		a.newOverviewCmd(),
		a.newCheckCmd(),
		a.newVersionCmd(),
	)
	return rootCmd
}

// wrapBenchmark replaces the command's RunE with a benchmarked call.
func (a *app) wrapBenchmark(cmd *cobra.Command, args []string) {
	run := cmd.RunE
	label := strings.TrimSpace(fmt.Sprintf("%s %s", cmd.CommandPath(), strings.Join(args, " ")))
	cmd.RunE = func(c *cobra.Command, args []string) error {
		_, err := benchmark.Run(c.OutOrStdout(), label, func() error { return run(c, args) })
		return err
	}
}

// warnf writes a warning line to stderr unless warnings are silenced.
func (a *app) warnf(cmd *cobra.Command, format string, args ...any) {
	if a.cfg.Quiet {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Warning: "+format+"\n", args...)
}

// Execute builds the command tree and runs it. This is called by main.main().
func Execute() {
	log.SetPrefix("[biokit] ")
	log.SetFlags(0)
	if err := NewRootCmd().Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
