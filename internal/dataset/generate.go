package dataset

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// group describes one synthetic group : per-feature normal draws around the
// given means with the given deviations.
type group struct {
	label string
	size  int
	mean  []float64
	sigma []float64
}

// Generator draws labeled observations from per-group normal distributions.
// Determinism is bound to the seed : the same seed produces the same table.
type Generator struct {
	features []string
	groups   []group
	src      rand.Source
}

// NewGenerator creates a generator for the given feature names,
// seeded for reproducibility.
func NewGenerator(seed uint64, features ...string) *Generator {
	return &Generator{
		features: features,
		src:      rand.NewSource(seed),
	}
}

// Add registers a group of the given size with per-feature means and deviations.
// A zero sigma produces a constant measurement for that feature.
func (g *Generator) Add(label string, size int, mean, sigma []float64) *Generator {
	if len(mean) != len(g.features) || len(sigma) != len(g.features) {
		panic(fmt.Sprintf("inconsistent dimensions %d/%d vs %d", len(mean), len(sigma), len(g.features)))
	}
	g.groups = append(g.groups, group{
		label: label,
		size:  size,
		mean:  mean,
		sigma: sigma,
	})
	return g
}

// Generate draws all registered groups into a single table.
// A zero-size group degenerates to an empty group, not an error.
func (g *Generator) Generate() *Table {
	table := New(g.features...)
	for _, gr := range g.groups {
		dists := make([]distuv.Normal, len(g.features))
		for j := range g.features {
			dists[j] = distuv.Normal{
				Mu:    gr.mean[j],
				Sigma: gr.sigma[j],
				Src:   g.src,
			}
		}
		for i := 0; i < gr.size; i++ {
			row := make([]float64, len(g.features))
			for j := range row {
				if gr.sigma[j] == 0 {
					// degenerate measurement, no draw
					row[j] = gr.mean[j]
					continue
				}
				row[j] = dists[j].Rand()
			}
			table.Append(gr.label, row...)
		}
		log.Debug().
			Str("label", gr.label).
			Int("size", gr.size).
			Msg("generated group")
	}
	return table
}
