package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"biokit_go/tools/orf_finder"
	"biokit_go/tools/report"
	"biokit_go/tools/translation"
)

func (a *app) newORFCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orf",
		Short: "Find open reading frames",
		Long: `Find open reading frames: a start codon followed by the first in-frame stop.

By default the three forward frames are scanned for ATG. Every start codon
yields its own ORF, so nested starts sharing one stop are all reported.
Positions are 1-based inclusive on the forward strand.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, seq, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			strand, _ := cmd.Flags().GetString("strand")
			starts, _ := cmd.Flags().GetStringSlice("start_codons")
			minLen, _ := cmd.Flags().GetInt("min_length")

			orfs, err := orf_finder.FindORFsWithOptions(seq.String(), orf_finder.Options{
				Strand:      strand,
				StartCodons: starts,
				MinLength:   minLen,
			})
			if err != nil {
				return err
			}

			if gffPath, _ := cmd.Flags().GetString("gff"); gffPath != "" && len(orfs) > 0 {
				if err := writeGFF(gffPath, id, orfs); err != nil {
					return err
				}
			}

			t := report.NewTable("Start", "End", "Strand", "Frame", "Length_nt", "Length_aa", "Protein")
			for _, o := range orfs {
				t.Add(o.Pos(), o.End, o.Strand, o.Frame, o.LengthNT(), o.LengthAA(), translation.Translate(o.Text, true))
			}
			return a.emit(cmd, t, "No ORFs found.")
		},
	}
	addInputFlags(cmd)
	cmd.Flags().String("strand", "positive", "positive, negative or both")
	cmd.Flags().StringSlice("start_codons", []string{"ATG"}, "start codons, e.g. ATG,GTG,TTG")
	cmd.Flags().Int("min_length", 0, "minimum ORF length in nt, stop codon included")
	cmd.Flags().String("gff", "", "also write the ORFs as GFF3 to this file")
	return cmd
}

func writeGFF(path, seqID string, orfs []orf_finder.ORF) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "##gff-version 3")
	if err := orf_finder.WriteGFF3(w, seqID, orfs); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}
