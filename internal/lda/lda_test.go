package lda

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linearlab/lda-lab/internal/dataset"
	"github.com/linearlab/lda-lab/internal/eval"
	xmath "github.com/linearlab/lda-lab/internal/math"
)

func twoGroups(seed uint64, sep float64) *dataset.Table {
	return dataset.NewGenerator(seed, "x", "y").
		Add("a", 200, []float64{-sep, -sep}, []float64{1, 1}).
		Add("b", 200, []float64{sep, sep}, []float64{1, 1}).
		Generate()
}

func TestFit_TwoGroups(t *testing.T) {
	table := twoGroups(42, 2)

	model, err := Fit(table)
	assert.NoError(t, err)
	assert.Equal(t, 1, model.Axes())
	assert.Equal(t, []string{"a", "b"}, model.Labels())
	assert.InDelta(t, 0.5, model.Prior("a"), 1e-12)
	assert.InDelta(t, 0.5, model.Prior("b"), 1e-12)

	// with spherical within-group noise the discriminant axis lines up
	// with the difference of the group means
	manual := xmath.Unit(xmath.Sub(model.Mean("b"), model.Mean("a")))
	direction := model.Direction(0)
	cos := math.Abs(xmath.Dot(manual, direction))
	assert.InDelta(t, 1, cos, 0.05)

	// unit scaled
	assert.InDelta(t, 1, xmath.Norm(direction), 1e-9)
}

func TestFit_SeparatesGroups(t *testing.T) {
	table := twoGroups(7, 3)

	model, err := Fit(table)
	assert.NoError(t, err)

	c := eval.NewConfusion(table.Labels()...)
	for i, p := range model.Evaluate(table) {
		c.Add(table.Label(i), p.Label)
	}
	// 6 sigma between the means, essentially perfect separation
	assert.True(t, c.Accuracy() > 0.99, "accuracy %f", c.Accuracy())
}

func TestFit_OverlappingGroups(t *testing.T) {
	table := twoGroups(7, 0.5)

	model, err := Fit(table)
	assert.NoError(t, err)

	c := eval.NewConfusion(table.Labels()...)
	for i, p := range model.Evaluate(table) {
		c.Add(table.Label(i), p.Label)
	}
	// overlap leaves boundary-adjacent observations misclassified
	assert.True(t, c.Errors() > 0)
	assert.True(t, c.Accuracy() > 0.5)
}

func TestFit_ConstantVariable(t *testing.T) {
	table := dataset.NewGenerator(11, "x", "flat").
		Add("a", 50, []float64{-2, 3}, []float64{1, 0}).
		Add("b", 50, []float64{2, 3}, []float64{1, 0}).
		Generate()

	_, err := Fit(table)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrConstantVariable)
}

func TestFit_CollinearVariables(t *testing.T) {
	table := dataset.New("x", "2x")
	gen := dataset.NewGenerator(5, "x").
		Add("a", 50, []float64{-2}, []float64{1}).
		Add("b", 50, []float64{2}, []float64{1}).
		Generate()
	for i := 0; i < gen.Len(); i++ {
		x := gen.Row(i)[0]
		table.Append(gen.Label(i), x, 2*x)
	}

	_, err := Fit(table)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrConstantVariable)
}

func TestFit_NearCollinearVariables(t *testing.T) {
	// a perturbation this small keeps the factorization alive, only the
	// condition number of the pooled covariance gives the redundancy away
	table := dataset.New("x", "2x")
	gen := dataset.NewGenerator(19, "x", "eps").
		Add("a", 50, []float64{-2, 0}, []float64{1, 1e-9}).
		Add("b", 50, []float64{2, 0}, []float64{1, 1e-9}).
		Generate()
	for i := 0; i < gen.Len(); i++ {
		row := gen.Row(i)
		table.Append(gen.Label(i), row[0], 2*row[0]+row[1])
	}

	_, err := Fit(table)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrConstantVariable)
}

func TestFit_DegenerateInputs(t *testing.T) {
	single := dataset.New("x")
	for i := 0; i < 10; i++ {
		single.Append("a", float64(i))
	}
	_, err := Fit(single)
	assert.Error(t, err)

	tiny := dataset.New("x")
	tiny.Append("a", 1)
	tiny.Append("b", 2)
	_, err = Fit(tiny)
	assert.Error(t, err)
}

func TestModel_TransformCentering(t *testing.T) {
	table := twoGroups(13, 2)

	model, err := Fit(table)
	assert.NoError(t, err)

	direction := model.Direction(0)
	grand := model.GrandMean()
	shift := xmath.Dot(grand, direction)

	// transform equals the raw projection shifted by the projection
	// of the grand mean : centering without rescaling
	for _, row := range table.Rows() {
		raw := xmath.Project(row, nil, direction)
		assert.InDelta(t, raw-shift, model.Transform(row)[0], 1e-9)
	}
}

func TestModel_Posterior(t *testing.T) {
	table := twoGroups(17, 3)

	model, err := Fit(table)
	assert.NoError(t, err)

	p := model.Predict([]float64{-3, -3})
	assert.Equal(t, "a", p.Label)
	assert.True(t, p.Posterior["a"] > 0.99)

	sum := 0.0
	for _, v := range p.Posterior {
		sum += v
	}
	assert.InDelta(t, 1, sum, 1e-12)

	// equidistant point splits the posterior under equal priors,
	// up to the sampling noise of the estimated means
	q := model.Predict([]float64{0, 0})
	assert.InDelta(t, 0.5, q.Posterior["a"], 0.35)
}

func TestFit_UnequalPriors(t *testing.T) {
	table := dataset.NewGenerator(23, "x", "y").
		Add("a", 300, []float64{-1, 0}, []float64{1, 1}).
		Add("b", 100, []float64{1, 0}, []float64{1, 1}).
		Generate()

	model, err := Fit(table)
	assert.NoError(t, err)
	assert.InDelta(t, 0.75, model.Prior("a"), 1e-12)
	assert.InDelta(t, 0.25, model.Prior("b"), 1e-12)

	// the prior pulls the midpoint towards the minority group
	p := model.Predict([]float64{0, 0})
	assert.Equal(t, "a", p.Label)
}

func TestFit_MultiGroup(t *testing.T) {
	table := dataset.NewGenerator(31, "x", "y").
		Add("a", 150, []float64{-4, 0}, []float64{1, 1}).
		Add("b", 150, []float64{4, 0}, []float64{1, 1}).
		Add("c", 150, []float64{0, 5}, []float64{1, 1}).
		Generate()

	model, err := Fit(table)
	assert.NoError(t, err)
	assert.Equal(t, 2, model.Axes())
	assert.True(t, model.Eigen(0) >= model.Eigen(1))

	c := eval.NewConfusion(table.Labels()...)
	for i, p := range model.Evaluate(table) {
		c.Add(table.Label(i), p.Label)
	}
	assert.True(t, c.Accuracy() > 0.98, "accuracy %f", c.Accuracy())
}

func TestFit_StandardizationInvariance(t *testing.T) {
	// a wildly rescaled measurement does not change the confusion table
	// once the inputs are standardized
	raw := dataset.NewGenerator(3, "x", "y").
		Add("a", 200, []float64{-200, -2}, []float64{100, 1}).
		Add("b", 200, []float64{200, 2}, []float64{100, 1}).
		Generate()

	std, _ := dataset.Standardize(raw)

	fit := func(t_ *dataset.Table) *eval.Confusion {
		model, err := Fit(t_)
		assert.NoError(t, err)
		c := eval.NewConfusion(t_.Labels()...)
		for i, p := range model.Evaluate(t_) {
			c.Add(t_.Label(i), p.Label)
		}
		return c
	}

	assert.Equal(t, fit(raw).Counts(), fit(std).Counts())
}
