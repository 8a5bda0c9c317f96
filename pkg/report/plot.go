package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/edp1096/rcnet/pkg/analysis"
)

// PlotAC saves a gain-versus-frequency chart of points to path. The image
// format follows the file extension (.png, .svg, .pdf ...). The frequency
// axis is logarithmic unless a point sits at or below 0 Hz.
func PlotAC(path, title string, points []analysis.ACPoint) error {
	if len(points) == 0 {
		return fmt.Errorf("plot %s: no points", title)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Frequency (Hz)"
	p.Y.Label.Text = "Gain (dB)"
	if logAxis(points) {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = float64(pt.Freq)
		xys[i].Y = pt.Decibel()
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("plot %s: %w", title, err)
	}
	p.Add(line)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving plot %s: %w", path, err)
	}
	return nil
}

func logAxis(points []analysis.ACPoint) bool {
	for _, pt := range points {
		if pt.Freq <= 0 {
			return false
		}
	}
	return true
}
