package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"biokit_go/tools/motif_finder"
	"biokit_go/tools/report"
	"biokit_go/tools/sequence"
)

func (a *app) newMotifCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "motif",
		Short: "Find every occurrence of a motif (IUPAC codes allowed) or a named regulatory element",
		Long: `Find every occurrence of a motif, overlapping occurrences included.

Literal motifs use a linear-time Z-array search. Motifs with IUPAC ambiguity
codes (R, Y, S, W, K, M, B, D, H, V, N) are matched base by base. Use --name to
search one of the built-in regulatory elements and --list to show them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list, _ := cmd.Flags().GetBool("list"); list {
				t := report.NewTable("Name", "Pattern")
				for _, name := range motif_finder.Names(motif_finder.CommonMotifs) {
					t.Add(name, motif_finder.CommonMotifs[name])
				}
				return a.emit(cmd, t, "")
			}

			_, seq, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			motif, _ := cmd.Flags().GetString("motif")
			motif = strings.ToUpper(strings.TrimSpace(motif))
			name, _ := cmd.Flags().GetString("name")

			var positions []int
			switch {
			case name != "" && motif != "":
				return fmt.Errorf("%w: use either --motif or --name", sequence.ErrInvalidInput)
			case name != "":
				motif, positions, err = motif_finder.FindNamed(seq.String(), name, motif_finder.CommonMotifs)
			default:
				positions, err = motif_finder.Find(seq.String(), motif)
			}
			if err != nil {
				return err
			}
			if len(motif) > seq.Len() {
				a.warnf(cmd, "motif (%d nt) is longer than the sequence (%d nt)", len(motif), seq.Len())
			}

			if hl, _ := cmd.Flags().GetBool("highlight"); hl && len(positions) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), motif_finder.Highlight(seq.String(), positions, len(motif)))
			}
			t := report.NewTable("Position", "End", "Match")
			for _, p := range positions {
				t.Add(p+1, p+len(motif), seq.String()[p:p+len(motif)])
			}
			return a.emit(cmd, t, fmt.Sprintf("No occurrences of %s found.", motif))
		},
	}
	addInputFlags(cmd)
	cmd.Flags().StringP("motif", "m", "", "motif to search for")
	cmd.Flags().String("name", "", "built-in motif name, e.g. \"TATA box\"")
	cmd.Flags().Bool("list", false, "list the built-in motifs")
	cmd.Flags().Bool("highlight", false, "print the sequence with matches in brackets")
	return cmd
}
