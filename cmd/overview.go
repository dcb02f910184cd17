package cmd

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"biokit_go/tools/microsatellite_finder"
	"biokit_go/tools/orf_finder"
	"biokit_go/tools/palindrome_finder"
	"biokit_go/tools/report"
	"biokit_go/tools/sequence"
	"biokit_go/tools/site_locator"
	"biokit_go/tools/window_scan"
)

// overviewRow is one line of the overview table, filled by its own goroutine.
type overviewRow struct {
	section string
	result  string
	err     error
}

// runOverview runs the independent scans over seq concurrently and returns
// their rows in a fixed order.
func (a *app) runOverview(seq string) ([]overviewRow, error) {
	cfg := a.cfg
	rows := make([]overviewRow, 6)

	var wg sync.WaitGroup
	wg.Add(len(rows)) // Number of concurrent scans

	go func() {
		defer wg.Done()
		c := sequence.CountNucleotides(seq)
		rows[0] = overviewRow{section: "Composition", result: fmt.Sprintf(
			"%d nt, GC %.2f%%, Tm %.2f C, N %d", len(seq), sequence.GCContent(seq), sequence.MeltingTemp(seq), c.N)}
	}()
	go func() {
		defer wg.Done()
		p := cfg.Palindrome
		found, err := palindrome_finder.FindPalindromes(seq, p.MinLength, p.MaxLength)
		rows[1] = overviewRow{section: "Palindromes", result: fmt.Sprintf("%d (length %d-%d)", len(found), p.MinLength, p.MaxLength), err: err}
	}()
	go func() {
		defer wg.Done()
		r := cfg.Repeats
		found, err := microsatellite_finder.FindRepeats(seq, r.MinUnit, r.MaxUnit, r.MinRepeats)
		rows[2] = overviewRow{section: "Microsatellites", result: fmt.Sprintf("%d (unit %d-%d, >= %d copies)", len(found), r.MinUnit, r.MaxUnit, r.MinRepeats), err: err}
	}()
	go func() {
		defer wg.Done()
		found := orf_finder.FindORFs(seq)
		longest := 0
		for _, o := range found {
			if o.LengthNT() > longest {
				longest = o.LengthNT()
			}
		}
		rows[3] = overviewRow{section: "ORFs", result: fmt.Sprintf("%d (longest %d nt)", len(found), longest)}
	}()
	go func() {
		defer wg.Done()
		hits, err := site_locator.FindSites(seq, site_locator.DefaultEnzymes, nil)
		total := 0
		for _, h := range hits {
			total += h.Count()
		}
		rows[4] = overviewRow{section: "Restriction sites", result: fmt.Sprintf("%d sites from %d enzymes", total, len(hits)), err: err}
	}()
	go func() {
		defer wg.Done()
		points, err := window_scan.Scan(seq, cfg.Window.Size, cfg.Window.Step, window_scan.GC{})
		result := "sequence shorter than one window"
		if len(points) > 0 {
			s := window_scan.Summarize(points)
			result = fmt.Sprintf("%d windows, mean %.2f%%, range %.2f-%.2f%%", s.Windows, s.Mean, s.Min, s.Max)
		}
		rows[5] = overviewRow{section: "GC profile", result: result, err: err}
	}()

	wg.Wait()

	var errs []error
	for _, r := range rows {
		if r.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.section, r.err))
		}
	}
	return rows, errors.Join(errs...)
}

func (a *app) newOverviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Run the main scans with configured defaults and summarise them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, seq, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			if err := a.cfg.Limits.CheckInverted(a.cfg.Palindrome.MaxLength, 0, 0); err != nil {
				return err
			}
			if err := a.cfg.Limits.CheckUnit(a.cfg.Repeats.MaxUnit); err != nil {
				return err
			}
			rows, err := a.runOverview(seq.String())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Overview of %s\n\n", id)
			t := report.NewTable("Section", "Result")
			for _, r := range rows {
				t.Add(r.section, r.result)
			}
			return a.emit(cmd, t, "")
		},
	}
	addInputFlags(cmd)
	return cmd
}
