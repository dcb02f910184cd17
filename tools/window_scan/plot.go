package window_scan

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotOptions labels a profile plot. Threshold, when non-zero, is drawn as
// a dashed horizontal line (hotspot cut-off).
type PlotOptions struct {
	Title     string
	YLabel    string
	YMin      float64
	YMax      float64
	Threshold float64
}

// WriteProfileSVG renders points as a line plot and writes it to w as SVG.
func WriteProfileSVG(w io.Writer, points []Point, opts PlotOptions) error {
	if len(points) == 0 {
		return fmt.Errorf("no windows to plot")
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Position (bp)"
	p.Y.Label.Text = opts.YLabel
	if opts.YMax > opts.YMin {
		p.Y.Min = opts.YMin
		p.Y.Max = opts.YMax
	}
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(points))
	for i, pt := range points {
		pts[i].X = float64(pt.Position)
		pts[i].Y = pt.Value
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Color = color.RGBA{G: 140, B: 60, A: 255}
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add(opts.YLabel, line)
	p.Legend.Top = true

	if opts.Threshold != 0 {
		th := opts.Threshold
		cut := plotter.NewFunction(func(float64) float64 { return th })
		cut.Color = color.RGBA{R: 255, G: 100, B: 100, A: 255}
		cut.Width = vg.Points(1.5)
		cut.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(cut)
		p.Legend.Add("Threshold", cut)
	}

	writer, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return err
	}
	_, err = writer.WriteTo(w)
	return err
}
