package lda

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"github.com/linearlab/lda-lab/internal/dataset"
	xmath "github.com/linearlab/lda-lab/internal/math"
)

// ErrConstantVariable signals that a measurement has no within-group variance.
// The pooled covariance is singular in that case and any discriminant built on
// it would be misleading, so the fit aborts instead.
var ErrConstantVariable = errors.New("variable appears to be constant within groups")

const (
	varTol  = 1e-10
	condTol = 1e12
)

// Model is a fitted linear discriminant.
// It carries one direction column per discriminant axis, the per-group priors
// and feature means, and the pooled within-group covariance.
type Model struct {
	features []string
	labels   []string
	priors   map[string]float64
	means    map[string][]float64
	grand    []float64
	scaling  *mat.Dense
	eigen    []float64
	chol     *mat.Cholesky
}

// Fit builds a linear discriminant over the labeled observations.
// At most K-1 axes are produced for K groups, ordered by decreasing
// between-to-within variance ratio and scaled to unit length.
func Fit(t *dataset.Table) (*Model, error) {
	n := t.Len()
	m := t.Dim()
	labels := t.Labels()
	k := len(labels)

	if k < 2 {
		return nil, fmt.Errorf("need at least 2 groups, got %d", k)
	}
	if n <= k {
		return nil, fmt.Errorf("need more observations than groups: %d vs %d", n, k)
	}

	groups := t.Split()
	means := t.GroupMeans()

	priors := make(map[string]float64, k)
	grand := make([]float64, m)
	for _, label := range labels {
		priors[label] = float64(groups[label].Len()) / float64(n)
		for j, mu := range means[label] {
			grand[j] += priors[label] * mu
		}
	}

	// pooled within-group scatter
	sw := mat.NewDense(m, m, nil)
	for _, label := range labels {
		mu := means[label]
		for _, row := range groups[label].Rows() {
			d := xmath.Sub(row, mu)
			for i := 0; i < m; i++ {
				for j := 0; j < m; j++ {
					sw.Set(i, j, sw.At(i, j)+d[i]*d[j])
				}
			}
		}
	}
	sw.Scale(1/float64(n-k), sw)

	for j := 0; j < m; j++ {
		if sw.At(j, j) < varTol {
			return nil, fmt.Errorf("feature '%s': %w", t.Features()[j], ErrConstantVariable)
		}
	}

	pooled := mat.NewSymDense(m, nil)
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			pooled.SetSym(i, j, sw.At(i, j))
		}
	}

	chol := &mat.Cholesky{}
	if ok := chol.Factorize(pooled); !ok {
		// collinear measurements, same effect as a constant one
		return nil, fmt.Errorf("singular pooled covariance: %w", ErrConstantVariable)
	}
	// the factorization tolerates near-singular input, so collinear
	// measurements have to be caught on the condition number
	if cond := chol.Cond(); cond > condTol {
		return nil, fmt.Errorf("pooled covariance condition %.4g: %w", cond, ErrConstantVariable)
	}

	// between-group scatter
	sb := mat.NewDense(m, m, nil)
	for _, label := range labels {
		d := xmath.Sub(means[label], grand)
		w := float64(groups[label].Len())
		for i := 0; i < m; i++ {
			for j := 0; j < m; j++ {
				sb.Set(i, j, sb.At(i, j)+w*d[i]*d[j])
			}
		}
	}

	// discriminant axes are the leading eigenvectors of Sw^-1 Sb
	prod := mat.NewDense(m, m, nil)
	if err := chol.SolveTo(prod, sb); err != nil {
		return nil, fmt.Errorf("could not solve for discriminant axes: %w", err)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(prod, mat.EigenRight); !ok {
		return nil, fmt.Errorf("could not decompose scatter ratio")
	}
	values := eig.Values(nil)
	var vectors mat.CDense
	eig.VectorsTo(&vectors)

	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return real(values[order[a]]) > real(values[order[b]])
	})

	axes := k - 1
	if axes > m {
		axes = m
	}

	scaling := mat.NewDense(m, axes, nil)
	eigen := make([]float64, axes)
	for a := 0; a < axes; a++ {
		idx := order[a]
		eigen[a] = real(values[idx])
		v := make([]float64, m)
		for i := 0; i < m; i++ {
			v[i] = real(vectors.At(i, idx))
		}
		scaling.SetCol(a, canonical(xmath.Unit(v)))
	}

	log.Debug().
		Int("observations", n).
		Int("features", m).
		Int("groups", k).
		Int("axes", axes).
		Msg("fitted linear discriminant")

	return &Model{
		features: t.Features(),
		labels:   labels,
		priors:   priors,
		means:    means,
		grand:    grand,
		scaling:  scaling,
		eigen:    eigen,
		chol:     chol,
	}, nil
}

// canonical fixes the sign of an axis so that its largest component is positive.
// Eigenvectors are sign-ambiguous and this keeps fits comparable across runs.
func canonical(v []float64) []float64 {
	max := 0.0
	sign := 1.0
	for _, x := range v {
		if math.Abs(x) > max {
			max = math.Abs(x)
			if x < 0 {
				sign = -1
			} else {
				sign = 1
			}
		}
	}
	if sign < 0 {
		for i := range v {
			v[i] = -v[i]
		}
	}
	return v
}

// Axes returns the number of discriminant axes.
func (m *Model) Axes() int {
	_, a := m.scaling.Dims()
	return a
}

// Direction returns the a-th discriminant axis as a unit vector.
func (m *Model) Direction(a int) []float64 {
	rows, _ := m.scaling.Dims()
	v := make([]float64, rows)
	for i := 0; i < rows; i++ {
		v[i] = m.scaling.At(i, a)
	}
	return v
}

// Labels returns the group labels in fit order.
func (m *Model) Labels() []string {
	return m.labels
}

// Prior returns the prior probability of the given group.
func (m *Model) Prior(label string) float64 {
	return m.priors[label]
}

// Mean returns the feature means of the given group.
func (m *Model) Mean(label string) []float64 {
	return m.means[label]
}

// GrandMean returns the prior-weighted overall feature means.
func (m *Model) GrandMean() []float64 {
	return m.grand
}

// Eigen returns the between-to-within variance ratio of the a-th axis.
func (m *Model) Eigen(a int) float64 {
	return m.eigen[a]
}

// Transform projects an observation onto the discriminant axes after
// centering by the grand mean. There is no rescaling involved : the
// projection is a plain dot product against each axis.
func (m *Model) Transform(x []float64) []float64 {
	out := make([]float64, m.Axes())
	for a := range out {
		out[a] = xmath.Project(x, m.grand, m.Direction(a))
	}
	return out
}
