package dataset

import (
	"gonum.org/v1/gonum/stat"
)

// Scaling is the per-column centering and scaling applied by Standardize.
// It can be replayed on observations outside the fitted table.
type Scaling struct {
	Center []float64 `json:"center"`
	Scale  []float64 `json:"scale"`
}

// Standardize shifts and scales each feature column of the table to
// sample mean 0 and sample standard deviation 1.
// A constant column has no scale : it is centered but left unscaled,
// a boundary condition that the discriminant fit reports on its own.
// Returns the standardized table and the applied scaling.
func Standardize(t *Table) (*Table, Scaling) {
	scaling := Scaling{
		Center: make([]float64, t.Dim()),
		Scale:  make([]float64, t.Dim()),
	}
	for j := 0; j < t.Dim(); j++ {
		col := t.Column(j)
		scaling.Center[j] = stat.Mean(col, nil)
		sd := stat.StdDev(col, nil)
		if sd == 0 {
			sd = 1
		}
		scaling.Scale[j] = sd
	}

	out := New(t.Features()...)
	for i, row := range t.rows {
		out.Append(t.labels[i], scaling.Apply(row)...)
	}
	return out, scaling
}

// Apply replays the scaling on a single observation vector.
func (s Scaling) Apply(x []float64) []float64 {
	z := make([]float64, len(x))
	for j, v := range x {
		z[j] = (v - s.Center[j]) / s.Scale[j]
	}
	return z
}
