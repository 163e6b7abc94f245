package report

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/linearlab/lda-lab/internal/buffer"
	"github.com/linearlab/lda-lab/internal/dataset"
	xmath "github.com/linearlab/lda-lab/internal/math"
)

const bins = 16

// Histogram renders overlaid per-group histograms of the projection values.
func Histogram(path, title string, projections map[string][]float64, order []string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "projection"
	p.Y.Label.Text = "density"

	for i, label := range order {
		values := projections[label]
		if len(values) == 0 {
			continue
		}
		h, err := plotter.NewHist(plotter.Values(values), bins)
		if err != nil {
			return fmt.Errorf("could not build histogram for '%s': %w", label, err)
		}
		h.Normalize(1)
		h.FillColor = plotutil.Color(i)
		h.LineStyle.Color = plotutil.Color(i)
		p.Add(h)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("could not save histogram '%s': %w", path, err)
	}
	log.Debug().Str("path", path).Msg("saved histogram")
	return nil
}

// Scatter renders the observations of the two given features colored by group,
// with the discriminant axis drawn through the center.
func Scatter(path, title string, t *dataset.Table, xi, yi int, direction, center []float64) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = t.Features()[xi]
	p.Y.Label.Text = t.Features()[yi]

	spread := buffer.NewStatsCollector(2)

	groups := t.Split()
	for i, label := range t.Labels() {
		group := groups[label]
		xys := make(plotter.XYs, group.Len())
		for r, row := range group.Rows() {
			xys[r].X = row[xi]
			xys[r].Y = row[yi]
			spread.Push(row[xi], row[yi])
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("could not build scatter for '%s': %w", label, err)
		}
		s.GlyphStyle.Color = plotutil.Color(i)
		s.GlyphStyle.Radius = vg.Points(2)
		p.Add(s)
		p.Legend.Add(label, s)
	}

	if direction != nil {
		if line, ok := axisLine(spread, direction, center, xi, yi); ok {
			l, err := plotter.NewLine(line)
			if err != nil {
				return fmt.Errorf("could not build axis line: %w", err)
			}
			p.Add(l)
			p.Legend.Add("discriminant axis", l)
		}
	}

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("could not save scatter '%s': %w", path, err)
	}
	log.Debug().Str("path", path).Msg("saved scatter")
	return nil
}

// axisLine stretches the direction vector across the observed spread,
// anchored at the center. A direction orthogonal to the plotted plane
// has no drawable line.
func axisLine(spread *buffer.StatsCollector, direction, center []float64, xi, yi int) (plotter.XYs, bool) {
	dx, dy := direction[xi], direction[yi]
	planar := xmath.Norm([]float64{dx, dy})
	if planar == 0 {
		return nil, false
	}

	cx, cy := 0.0, 0.0
	if center != nil {
		cx, cy = center[xi], center[yi]
	}

	reach := spread.Stats()[0].Range()
	if r := spread.Stats()[1].Range(); r > reach {
		reach = r
	}
	scale := reach / planar

	return plotter.XYs{
		{X: cx - scale*dx, Y: cy - scale*dy},
		{X: cx + scale*dx, Y: cy + scale*dy},
	}, true
}
