package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"biokit_go/tools/report"
	"biokit_go/tools/sequence"
	"biokit_go/tools/window_scan"
)

func (a *app) newWindowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Sliding-window profile of GC%, Shannon entropy or mutation density",
		Long: `Slide a fixed window along the sequence and report one value per window.

Metrics:
  gc        G+C percentage, positioned at the window start
  entropy   Shannon entropy in bits, positioned at the window midpoint
  density   number of --mutations (0-based positions) in the window

Windows are reported with 0-based Start and exclusive End. A partial window
at the end of the sequence is dropped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, seq, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			size := intSetting(cmd, "size", a.cfg.Window.Size)
			step := intSetting(cmd, "step", a.cfg.Window.Step)
			if err := a.cfg.Limits.CheckWindow(size); err != nil {
				return err
			}
			if size > seq.Len() {
				a.warnf(cmd, "window size %d is longer than the sequence (%d nt)", size, seq.Len())
			}

			metricName, _ := cmd.Flags().GetString("metric")
			plotOpts := window_scan.PlotOptions{Title: "Sliding window " + metricName}
			var metric window_scan.Metric
			switch metricName {
			case "gc":
				metric = window_scan.GC{}
				plotOpts.YLabel, plotOpts.YMax = "GC %", 100
			case "entropy":
				metric = window_scan.Entropy{}
				plotOpts.YLabel, plotOpts.YMax = "Entropy (bits)", 2
			case "density":
				raw, _ := cmd.Flags().GetString("mutations")
				positions, err := parsePositions(raw)
				if err != nil {
					return err
				}
				metric = window_scan.NewMutationDensity(positions, seq.Len())
				plotOpts.YLabel = "Mutations per window"
				plotOpts.Threshold = float64(a.cfg.Window.Threshold)
			default:
				return fmt.Errorf("%w: metric %q (gc, entropy or density)", sequence.ErrUnknownKey, metricName)
			}

			points, err := window_scan.Scan(seq.String(), size, step, metric)
			if err != nil {
				return err
			}

			if svgPath, _ := cmd.Flags().GetString("svg"); svgPath != "" && len(points) > 0 {
				if err := writeSVG(svgPath, points, plotOpts); err != nil {
					return err
				}
			}

			t := report.NewTable("Start", "End", "Position", metric.Name())
			for _, p := range points {
				t.Add(p.Start, p.End, p.Position, fmt.Sprintf("%.4f", p.Value))
			}
			if err := a.emit(cmd, t, "No complete window fits the sequence."); err != nil {
				return err
			}
			if len(points) > 0 && a.csvOut == "" {
				s := window_scan.Summarize(points)
				fmt.Fprintf(cmd.OutOrStdout(), "\n%d windows  mean %.4f  sd %.4f  min %.4f  max %.4f\n",
					s.Windows, s.Mean, s.StdDev, s.Min, s.Max)
			}
			return nil
		},
	}
	addInputFlags(cmd)
	cmd.Flags().String("metric", "gc", "gc, entropy or density")
	cmd.Flags().Int("size", 30, "window size")
	cmd.Flags().Int("step", 5, "step between window starts")
	cmd.Flags().String("mutations", "", "comma separated 0-based mutation positions (density metric)")
	cmd.Flags().String("svg", "", "also write the profile as an SVG plot to this file")
	return cmd
}

func writeSVG(path string, points []window_scan.Point, opts window_scan.PlotOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := window_scan.WriteProfileSVG(f, points, opts); err != nil {
		return fmt.Errorf("plot %s: %w", path, err)
	}
	return f.Close()
}

func (a *app) newHotspotsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hotspots",
		Short: "Windows holding at least --threshold of the given mutation positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, seq, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			raw, _ := cmd.Flags().GetString("mutations")
			positions, err := parsePositions(raw)
			if err != nil {
				return err
			}
			if len(positions) == 0 {
				return fmt.Errorf("%w: --mutations is required", sequence.ErrInvalidInput)
			}
			outside := 0
			for _, p := range positions {
				if p < 0 || p >= seq.Len() {
					outside++
				}
			}
			if outside > 0 {
				a.warnf(cmd, "%d mutation position(s) fall outside the sequence and are ignored", outside)
			}

			size := intSetting(cmd, "size", a.cfg.Window.Size)
			threshold := intSetting(cmd, "threshold", a.cfg.Window.Threshold)
			if err := a.cfg.Limits.CheckWindow(size); err != nil {
				return err
			}
			hot, err := window_scan.Hotspots(positions, seq.Len(), size, threshold)
			if err != nil {
				return err
			}
			t := report.NewTable("Start", "End", "Mutations")
			for _, h := range hot {
				t.Add(h.Start, h.End, h.Count)
			}
			return a.emit(cmd, t, "No hotspot windows found.")
		},
	}
	addInputFlags(cmd)
	cmd.Flags().String("mutations", "", "comma separated 0-based mutation positions")
	cmd.Flags().Int("size", 30, "window size")
	cmd.Flags().Int("threshold", 3, "minimum mutations per window")
	return cmd
}

func (a *app) newComplexityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complexity",
		Short: "Whole-sequence Shannon entropy and k-mer diversity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, seq, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			k := intSetting(cmd, "k", a.cfg.Kmer)
			if err := a.cfg.Limits.CheckK(k); err != nil {
				return err
			}
			c, err := window_scan.EstimateComplexity(seq.String(), k)
			if err != nil {
				return err
			}
			t := report.NewTable("Metric", "Value")
			t.Add("Shannon entropy (bits)", fmt.Sprintf("%.4f", c.Entropy))
			t.Add(fmt.Sprintf("%d-mer diversity", c.K), fmt.Sprintf("%.4f", c.KmerDiversity))
			return a.emit(cmd, t, "")
		},
	}
	addInputFlags(cmd)
	cmd.Flags().Int("k", 3, "k-mer length")
	return cmd
}
