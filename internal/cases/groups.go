package cases

import (
	"fmt"

	"github.com/linearlab/lda-lab/internal/dataset"
	"github.com/linearlab/lda-lab/internal/metrics"
	"github.com/linearlab/lda-lab/internal/ml"
)

// Categorical replaces one numeric measurement with a categorical one.
// The category is indicator-encoded before the fit, so the discriminant
// still only ever sees numbers.
func Categorical(env Env) (Result, error) {
	sep := env.Config.Separation / 2
	latent := dataset.NewGenerator(env.Config.Seed, "x", "z").
		Add("a", env.Config.Samples, []float64{-sep, -1}, []float64{1, 1}).
		Add("b", env.Config.Samples, []float64{sep, 1}, []float64{1, 1}).
		Generate()

	// threshold the latent draw into a categorical dose
	doses := make([]string, latent.Len())
	for i := 0; i < latent.Len(); i++ {
		if latent.Row(i)[1] < 0 {
			doses[i] = "low"
		} else {
			doses[i] = "high"
		}
	}

	numeric := dataset.New("x")
	for i := 0; i < latent.Len(); i++ {
		numeric.Append(latent.Label(i), latent.Row(i)[0])
	}

	names, columns := dataset.Indicators("dose", doses)
	table := numeric.WithColumns(names, columns)

	// a random forest takes the indicator features as they are,
	// a natural counterpart for categorical predictors
	forest := ml.NewForest(env.Config.Trees)
	rowLabels := make([]string, table.Len())
	for i := range rowLabels {
		rowLabels[i] = table.Label(i)
	}
	importance := forest.Train(table.Rows(), rowLabels)
	metrics.Observer.IncrementFit("categorical", "forest")

	forestErrors := 0
	for i, row := range table.Rows() {
		label, err := forest.Predict(row)
		if err != nil {
			return Result{}, fmt.Errorf("could not run forest baseline: %w", err)
		}
		if label != table.Label(i) {
			forestErrors++
		}
	}

	return discriminate(env, "categorical", table,
		fmt.Sprintf("encoded levels: %v", names),
		fmt.Sprintf("forest feature importance: %v", importance),
		fmt.Sprintf("forest training errors: %d", forestErrors))
}

// MultiGroup fits three groups at once : two discriminant axes, and an
// unsupervised k-means pass over the same observations to see how far the
// groups are recoverable without labels.
func MultiGroup(env Env) (Result, error) {
	sep := env.Config.Separation
	table := dataset.NewGenerator(env.Config.Seed, "x", "y").
		Add("a", env.Config.Samples, []float64{-sep, 0}, []float64{1, 1}).
		Add("b", env.Config.Samples, []float64{sep, 0}, []float64{1, 1}).
		Add("c", env.Config.Samples, []float64{0, sep * 1.5}, []float64{1, 1}).
		Generate()

	labels := table.Labels()
	index := make(map[string]int, len(labels))
	for i, label := range labels {
		index[label] = i
	}
	groupIdx := make([]int, table.Len())
	for i := 0; i < table.Len(); i++ {
		groupIdx[i] = index[table.Label(i)]
	}

	notes := make([]string, 0)
	if env.Store != nil {
		km := ml.NewKMeans("multi-group", env.Run, len(labels), env.Config.Iterations, env.Store)
		stats, err := km.Train(table.Rows(), groupIdx)
		if err != nil {
			return Result{}, fmt.Errorf("could not run k-means comparison: %w", err)
		}
		metrics.Observer.IncrementFit("multi-group", "kmeans")
		for c, st := range stats {
			notes = append(notes, fmt.Sprintf("cluster %d: size %d, group avg %.2f", c, st.Size, st.Avg))
		}
	}

	return discriminate(env, "multi-group", table, notes...)
}
