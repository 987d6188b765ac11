package output

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/rpgo/outcome-sim/internal/domain"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/vg"
)

// Plot dimensions; a negative height lets hplot pick one from the width.
const (
	plotWidth  = 16 * vg.Centimeter
	plotHeight = -1
)

// histogramColor is blue at 0.7 alpha.
var histogramColor = color.NRGBA{R: 0, G: 0, B: 255, A: 179}

// NewHistogramPlot builds the outcome histogram plot. Bin heights are taken
// from the result as-is, so a density histogram keeps unit area.
func NewHistogramPlot(result *domain.SimulationResult) (*hplot.Plot, error) {
	hist := result.Histogram
	if hist.Bins() == 0 {
		return nil, fmt.Errorf("histogram has no bins")
	}

	h := hbook.NewH1D(hist.Bins(), hist.Edges[0], hist.Edges[hist.Bins()])
	for i, v := range hist.Heights() {
		h.Fill((hist.Edges[i]+hist.Edges[i+1])/2, v)
	}

	p := hplot.New()
	p.Title.Text = "Monte Carlo Simulation of Outcome Variable"
	p.X.Label.Text = "Outcome"
	p.Y.Label.Text = "Count"
	if hist.Density {
		p.Y.Label.Text = "Probability Density"
	}

	hh := hplot.NewH1D(h)
	hh.FillColor = histogramColor
	hh.LineStyle.Color = histogramColor
	p.Add(hh, hplot.NewGrid())

	return p, nil
}

// SaveHistogramPlot renders the histogram to path; the extension picks the
// image format (png, svg, pdf, ...).
func SaveHistogramPlot(result *domain.SimulationResult, path string) error {
	p, err := NewHistogramPlot(result)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("failed to save histogram plot %s: %w", path, err)
	}
	return nil
}
