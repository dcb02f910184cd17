package cmd

import (
	"github.com/spf13/cobra"

	"biokit_go/tools/palindrome_finder"
	"biokit_go/tools/report"
)

func (a *app) newPalindromeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palindrome",
		Short: "Find substrings equal to their own reverse complement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, seq, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			minLen := intSetting(cmd, "min", a.cfg.Palindrome.MinLength)
			maxLen := intSetting(cmd, "max", a.cfg.Palindrome.MaxLength)
			if err := a.cfg.Limits.CheckInverted(maxLen, 0, 0); err != nil {
				return err
			}

			found, err := palindrome_finder.FindPalindromes(seq.String(), minLen, maxLen)
			if err != nil {
				return err
			}
			t := report.NewTable("Start", "End", "Length", "Sequence")
			for _, p := range found {
				t.Add(p.Pos(), p.End, p.Len(), p.Text)
			}
			return a.emit(cmd, t, "No palindromes found.")
		},
	}
	addInputFlags(cmd)
	cmd.Flags().Int("min", 4, "minimum palindrome length")
	cmd.Flags().Int("max", 12, "maximum palindrome length")
	return cmd
}

func (a *app) newInvertedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inverted",
		Short: "Find inverted repeats: arms pairing across a spacer, with mismatches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, seq, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			pc := a.cfg.Palindrome
			minArm := intSetting(cmd, "min", pc.MinLength)
			maxArm := intSetting(cmd, "max", pc.MaxLength)
			spacer := intSetting(cmd, "spacer", pc.MaxSpacer)
			mismatches := intSetting(cmd, "mismatches", pc.MaxMismatches)
			if err := a.cfg.Limits.CheckInverted(maxArm, spacer, mismatches); err != nil {
				return err
			}

			found, err := palindrome_finder.FindInvertedRepeats(seq.String(), minArm, maxArm, spacer, mismatches)
			if err != nil {
				return err
			}
			t := report.NewTable("Start", "End", "Arm", "Spacer", "Mismatches", "Left arm", "Right arm")
			for _, ir := range found {
				t.Add(ir.Pos(), ir.End, ir.ArmLength, ir.Spacer, ir.Mismatches, ir.LeftArm, ir.RightArm)
			}
			return a.emit(cmd, t, "No inverted repeats found.")
		},
	}
	addInputFlags(cmd)
	cmd.Flags().Int("min", 4, "minimum arm length")
	cmd.Flags().Int("max", 12, "maximum arm length")
	cmd.Flags().Int("spacer", 3, "maximum spacer between the arms")
	cmd.Flags().Int("mismatches", 1, "maximum arm mismatches")
	return cmd
}
