/*
NAME
  plot.go - waveform plotting for a decoded ADC channel.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package diag

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotChannel renders samples as a PNG line plot at path, labeled title. It
// is an offline inspection aid for one decoded ADC channel; it has no role
// in parsing and is never called from the hot path.
func PlotChannel(samples []uint16, title, path string) error {
	pts := make(plotter.XYs, len(samples))
	for i, s := range samples {
		pts[i].X = float64(i)
		pts[i].Y = float64(s)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "timebin"
	p.Y.Label.Text = "ADC"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("diag: building line plotter: %w", err)
	}
	p.Add(line)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("diag: saving plot to %s: %w", path, err)
	}
	return nil
}
