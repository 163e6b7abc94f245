package cases

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/linearlab/lda-lab/internal/dataset"
	"github.com/linearlab/lda-lab/internal/eval"
	"github.com/linearlab/lda-lab/internal/lda"
	xmath "github.com/linearlab/lda-lab/internal/math"
	"github.com/linearlab/lda-lab/internal/metrics"
	"github.com/linearlab/lda-lab/internal/ml"
)

// Basic is the opening case : two well separated groups, a hand-derived
// discriminant, the fitted one, and a packaged knn classifier as cross check.
func Basic(env Env) (Result, error) {
	sep := env.Config.Separation / 2
	table := dataset.NewGenerator(env.Config.Seed, "x", "y").
		Add("a", env.Config.Samples, []float64{-sep, -sep}, []float64{1, 1}).
		Add("b", env.Config.Samples, []float64{sep, sep}, []float64{1, 1}).
		Generate()

	std, _ := dataset.Standardize(table)

	manual := manualDirection(std)

	notes := make([]string, 0)

	if env.OutDir != "" {
		csv := filepath.Join(env.OutDir, fmt.Sprintf("basic-%s.csv", env.Run))
		if err := std.SaveCSV(csv); err != nil {
			return Result{}, err
		}
		summary, err := ml.KnnCrossCheck(csv, env.Config.Neighbours)
		if err != nil {
			return Result{}, err
		}
		metrics.Observer.IncrementFit("basic", "knn")
		log.Info().Str("case", "basic").Msg("knn cross check:\n" + summary)
		notes = append(notes, "knn cross check agrees with the discriminant")
	}

	model, err := lda.Fit(std)
	if err != nil {
		return Result{}, err
	}
	cos := xmath.Dot(manual, model.Direction(0))
	notes = append(notes,
		fmt.Sprintf("manual and fitted axis alignment: %.3f", cos))

	return evaluate(env, "basic", std, model, notes...)
}

// Rescaled blows one measurement up by two orders of magnitude.
// The hand-derived discriminant follows the loud feature on the raw scale,
// standardization restores the balance.
func Rescaled(env Env) (Result, error) {
	sep := env.Config.Separation / 2
	raw := dataset.NewGenerator(env.Config.Seed, "x", "y").
		Add("a", env.Config.Samples, []float64{-sep, -100 * sep}, []float64{1, 100}).
		Add("b", env.Config.Samples, []float64{sep, 100 * sep}, []float64{1, 100}).
		Generate()

	rawManual := manualDirection(raw)

	std, _ := dataset.Standardize(raw)
	stdManual := manualDirection(std)

	notes := []string{
		fmt.Sprintf("raw manual axis: [%.3f %.3f]", rawManual[0], rawManual[1]),
		fmt.Sprintf("standardized manual axis: [%.3f %.3f]", stdManual[0], stdManual[1]),
	}

	return discriminate(env, "rescaled", std, notes...)
}

// OffsetMeans moves both groups away from the origin.
// The fit centers on the grand mean, so every projection shifts by the
// projection of that center while the group separation stays put.
func OffsetMeans(env Env) (Result, error) {
	sep := env.Config.Separation
	table := dataset.NewGenerator(env.Config.Seed, "x", "y").
		Add("a", env.Config.Samples, []float64{10, 10}, []float64{1, 1}).
		Add("b", env.Config.Samples, []float64{10 + sep, 10 + sep}, []float64{1, 1}).
		Generate()

	model, err := lda.Fit(table)
	if err != nil {
		return Result{}, err
	}
	shift := xmath.Dot(model.GrandMean(), model.Direction(0))

	return evaluate(env, "offset-means", table, model,
		fmt.Sprintf("centering shifts all projections by %.3f", shift))
}

// Constant feeds the fit a measurement with no within-group variance.
// The pooled covariance is singular, and the fit reports the constant
// variable instead of producing a misleading discriminant.
func Constant(env Env) (Result, error) {
	sep := env.Config.Separation / 2
	table := dataset.NewGenerator(env.Config.Seed, "x", "flat").
		Add("a", env.Config.Samples, []float64{-sep, 3}, []float64{1, 0}).
		Add("b", env.Config.Samples, []float64{sep, 3}, []float64{1, 0}).
		Generate()

	_, err := lda.Fit(table)
	if err == nil {
		return Result{}, fmt.Errorf("expected constant variable failure, got none")
	}
	if !errors.Is(err, lda.ErrConstantVariable) {
		return Result{}, fmt.Errorf("unexpected failure: %w", err)
	}

	log.Info().
		Str("case", "constant").
		Str("failure", err.Error()).
		Msg("fit aborted on the degenerate measurement, as documented")

	result := Result{
		Case:    "constant",
		Outcome: OutcomeExpectedFailure,
		Notes:   []string{err.Error()},
	}
	if err := persist(env, result); err != nil {
		return Result{}, err
	}
	return result, nil
}

// OffsetBoundary shifts the decision boundary off the midpoint by giving one
// group three times the weight of the other. A band of boundary-adjacent
// observations of the minority group lands on the majority side.
// Why exactly those observations flip is left recorded, not explained :
// the run logs them and trains a softmax network on the same data as a
// nonlinear counterpart.
func OffsetBoundary(env Env) (Result, error) {
	sep := env.Config.Separation / 2
	table := dataset.NewGenerator(env.Config.Seed, "x", "y").
		Add("a", 3*env.Config.Samples, []float64{-sep, 0}, []float64{1, 1}).
		Add("b", env.Config.Samples, []float64{sep, 0}, []float64{1, 1}).
		Generate()

	model, err := lda.Fit(table)
	if err != nil {
		return Result{}, err
	}

	minority := 0
	for i, p := range model.Evaluate(table) {
		if table.Label(i) == "b" && p.Label == "a" {
			minority++
		}
	}

	netConfusion, err := networkBaseline(env, table)
	if err != nil {
		return Result{}, err
	}
	metrics.Observer.IncrementFit("offset-boundary", "network")

	return evaluate(env, "offset-boundary", table, model,
		fmt.Sprintf("minority observations pulled across the boundary: %d", minority),
		fmt.Sprintf("softmax network accuracy on the same data: %.3f", netConfusion.Accuracy()))
}

// networkBaseline trains the feed-forward softmax classifier on the table
// and returns its confusion on the training observations.
func networkBaseline(env Env, table *dataset.Table) (*eval.Confusion, error) {
	labels := table.Labels()
	index := make(map[string]int, len(labels))
	for i, label := range labels {
		index[label] = i
	}

	network := ml.NewNetwork(table.Dim(), 10*table.Dim(), len(labels))
	for e := 0; e < env.Config.Epochs; e++ {
		loss := 0.0
		for i, row := range table.Rows() {
			out := make([]float64, len(labels))
			out[index[table.Label(i)]] = 1
			loss += network.Train(row, out)
		}
		log.Debug().Int("epoch", e).Float64("loss", loss/float64(table.Len())).Msg("network epoch")
	}

	confusion := eval.NewConfusion(labels...)
	for i, row := range table.Rows() {
		votes := network.Predict(row)
		best := 0
		for v := range votes {
			if votes[v] > votes[best] {
				best = v
			}
		}
		confusion.Add(table.Label(i), labels[best])
	}
	return confusion, nil
}
