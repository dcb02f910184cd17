package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"biokit_go/tools/report"
	"biokit_go/tools/sequence"
	common "biokit_go/utils"
)

// addInputFlags registers --seq and --in_file on an analysis command.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("seq", "s", "", "sequence given inline")
	cmd.Flags().StringP("in_file", "i", "", "FASTA file input (first record is used, gzip detected)")
}

// readInput loads, normalizes and bounds the command's input sequence.
func (a *app) readInput(cmd *cobra.Command) (string, sequence.Sequence, error) {
	raw, _ := cmd.Flags().GetString("seq")
	file, _ := cmd.Flags().GetString("in_file")

	id := "seq"
	switch {
	case raw != "" && file != "":
		return "", "", fmt.Errorf("%w: use either --seq or --in_file, not both", sequence.ErrInvalidInput)
	case file != "":
		recID, recSeq, err := common.ReadSequence(file)
		if err != nil {
			return "", "", err
		}
		if f := strings.Fields(recID); len(f) > 0 {
			id = f[0]
		}
		raw = recSeq
	case raw == "":
		return "", "", fmt.Errorf("%w: one of --seq or --in_file is required", sequence.ErrInvalidInput)
	}

	seq, err := sequence.Normalize(raw, a.cfg.SeqMode())
	if err != nil {
		if errors.Is(err, sequence.ErrInvalidInput) && a.cfg.SeqMode() == sequence.Strict {
			for _, inv := range sequence.InvalidBases(raw, sequence.Strict) {
				if inv.Base == 'N' {
					a.warnf(cmd, "sequence contains N; rerun with --mode wildcard to accept unknown bases")
					break
				}
			}
		}
		return "", "", err
	}
	if err := a.cfg.Limits.CheckSequence(seq.Len()); err != nil {
		return "", "", err
	}
	return id, seq, nil
}

// intSetting returns the flag value when the user set it, else the
// configured value.
func intSetting(cmd *cobra.Command, name string, configured int) int {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetInt(name)
		return v
	}
	return configured
}

func floatSetting(cmd *cobra.Command, name string, configured float64) float64 {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetFloat64(name)
		return v
	}
	return configured
}

func stringSetting(cmd *cobra.Command, name string, configured string) string {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return configured
}

// parsePositions reads comma separated 0-based positions.
func parsePositions(value string) ([]int, error) {
	var positions []int
	for _, field := range strings.Split(value, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		p, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: mutation position %q is not an integer", sequence.ErrInvalidInput, field)
		}
		positions = append(positions, p)
	}
	return positions, nil
}

// emit prints t, or writes it to the --csv file. An empty table prints
// the none message instead.
func (a *app) emit(cmd *cobra.Command, t *report.Table, none string) error {
	if t.Len() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), none)
		return nil
	}
	if a.csvOut != "" {
		if err := t.WriteCSVFile(a.csvOut); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", t.Len(), a.csvOut)
		return nil
	}
	return t.WriteText(cmd.OutOrStdout())
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
