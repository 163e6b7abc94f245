package lda

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/linearlab/lda-lab/internal/dataset"
	xmath "github.com/linearlab/lda-lab/internal/math"
)

// Prediction is the outcome of classifying a single observation.
type Prediction struct {
	Label     string             `json:"label"`
	Posterior map[string]float64 `json:"posterior"`
}

// Predict classifies an observation by its gaussian class density under the
// pooled covariance, weighted by the group priors.
func (m *Model) Predict(x []float64) Prediction {
	scores := make(map[string]float64, len(m.labels))
	best := math.Inf(-1)
	for _, label := range m.labels {
		d := xmath.Sub(x, m.means[label])
		v := mat.NewVecDense(len(d), nil)
		// mahalanobis distance through the cholesky factor
		if err := m.chol.SolveVecTo(v, mat.NewVecDense(len(d), d)); err != nil {
			scores[label] = math.Inf(-1)
			continue
		}
		q := xmath.Dot(d, v.RawVector().Data)
		scores[label] = math.Log(m.priors[label]) - 0.5*q
		if scores[label] > best {
			best = scores[label]
		}
	}

	// normalise to posteriors, guarding the exponent against underflow
	posterior := make(map[string]float64, len(m.labels))
	sum := 0.0
	for label, s := range scores {
		p := math.Exp(s - best)
		posterior[label] = p
		sum += p
	}
	winner := ""
	for _, label := range m.labels {
		posterior[label] /= sum
		if winner == "" || posterior[label] > posterior[winner] {
			winner = label
		}
	}

	return Prediction{
		Label:     winner,
		Posterior: posterior,
	}
}

// Evaluate classifies every observation of the table.
func (m *Model) Evaluate(t *dataset.Table) []Prediction {
	predictions := make([]Prediction, t.Len())
	for i := 0; i < t.Len(); i++ {
		predictions[i] = m.Predict(t.Row(i))
	}
	return predictions
}
