package cases

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/linearlab/lda-lab/internal/buffer"
	"github.com/linearlab/lda-lab/internal/dataset"
	"github.com/linearlab/lda-lab/internal/eval"
	"github.com/linearlab/lda-lab/internal/lda"
	xmath "github.com/linearlab/lda-lab/internal/math"
	"github.com/linearlab/lda-lab/internal/metrics"
	"github.com/linearlab/lda-lab/internal/report"
	"github.com/linearlab/lda-lab/internal/storage"
)

// Config carries the generation and model parameters shared by the cases.
type Config struct {
	Seed       uint64  `json:"seed"`
	Samples    int     `json:"samples"`
	Separation float64 `json:"separation"`
	Neighbours int     `json:"neighbours"`
	Trees      int     `json:"trees"`
	Iterations int     `json:"iterations"`
	Epochs     int     `json:"epochs"`
}

// Env is the execution environment of a case run.
type Env struct {
	Config Config
	Store  storage.Persistence
	Run    string
	OutDir string
}

// Result is the recorded outcome of one case.
type Result struct {
	Case     string   `json:"case"`
	Outcome  string   `json:"outcome"`
	Accuracy float64  `json:"accuracy"`
	Errors   int      `json:"errors"`
	Axes     int      `json:"axes"`
	Notes    []string `json:"notes"`

	confusion *eval.Confusion
}

const (
	OutcomeOK              = "ok"
	OutcomeExpectedFailure = "expected-failure"
)

// Confusion returns the confusion table of the run, nil for failure cases.
func (r Result) Confusion() *eval.Confusion {
	return r.confusion
}

// Case is one self-contained walkthrough scenario.
type Case struct {
	Name string
	Run  func(env Env) (Result, error)
}

// All returns the walkthrough cases in presentation order.
func All() []Case {
	return []Case{
		{Name: "basic", Run: Basic},
		{Name: "rescaled", Run: Rescaled},
		{Name: "offset-means", Run: OffsetMeans},
		{Name: "constant", Run: Constant},
		{Name: "offset-boundary", Run: OffsetBoundary},
		{Name: "categorical", Run: Categorical},
		{Name: "multi-group", Run: MultiGroup},
	}
}

// discriminate fits the discriminant and hands over to evaluate.
// Cases that need the model beforehand fit it once and call evaluate directly.
func discriminate(env Env, name string, table *dataset.Table, notes ...string) (Result, error) {
	model, err := lda.Fit(table)
	if err != nil {
		return Result{}, fmt.Errorf("could not fit '%s': %w", name, err)
	}
	return evaluate(env, name, table, model, notes...)
}

// evaluate is the shared spine of the cases : classify the table, project
// onto the first axis, render the figures and persist the recorded outcome.
func evaluate(env Env, name string, table *dataset.Table, model *lda.Model, notes ...string) (Result, error) {
	metrics.Observer.IncrementFit(name, "lda")

	confusion := eval.NewConfusion(table.Labels()...)
	grouped := buffer.NewGrouped()
	direction := model.Direction(0)
	projections := make(map[string][]float64)
	for i, p := range model.Evaluate(table) {
		label := table.Label(i)
		confusion.Add(label, p.Label)
		value := model.Transform(table.Row(i))[0]
		grouped.Push(label, value)
		projections[label] = append(projections[label], value)
	}

	if env.OutDir != "" {
		hist := filepath.Join(env.OutDir, fmt.Sprintf("%s-%s-hist.png", name, env.Run))
		if err := report.Histogram(hist, fmt.Sprintf("%s : discriminant projections", name), projections, table.Labels()); err != nil {
			return Result{}, err
		}
		if table.Dim() >= 2 {
			scatter := filepath.Join(env.OutDir, fmt.Sprintf("%s-%s-scatter.png", name, env.Run))
			if err := report.Scatter(scatter, name, table, 0, 1, direction, model.GrandMean()); err != nil {
				return Result{}, err
			}
		}
		summary, err := os.Create(filepath.Join(env.OutDir, fmt.Sprintf("%s-%s-summary.txt", name, env.Run)))
		if err != nil {
			return Result{}, fmt.Errorf("could not create summary for '%s': %w", name, err)
		}
		report.Summary(summary, grouped)
		summary.Close()
	}

	labels := table.Labels()
	if len(labels) == 2 {
		notes = append(notes, fmt.Sprintf("projected group separation: %.3f",
			grouped.Separation(labels[0], labels[1])))
	}

	result := Result{
		Case:      name,
		Outcome:   OutcomeOK,
		Accuracy:  confusion.Accuracy(),
		Errors:    confusion.Errors(),
		Axes:      model.Axes(),
		Notes:     notes,
		confusion: confusion,
	}

	if err := persist(env, result); err != nil {
		return Result{}, err
	}

	log.Info().
		Str("case", name).
		Float64("accuracy", result.Accuracy).
		Int("errors", result.Errors).
		Int("axes", result.Axes).
		Msg("case complete")

	return result, nil
}

func persist(env Env, result Result) error {
	if env.Store == nil {
		return nil
	}
	record := struct {
		Result
		Counts map[string]map[string]int `json:"counts"`
	}{
		Result: result,
	}
	if result.confusion != nil {
		record.Counts = result.confusion.Counts()
	}
	key := storage.Key{
		Case:  result.Case,
		Run:   env.Run,
		Label: "result",
	}
	if err := env.Store.Store(key, record); err != nil {
		return fmt.Errorf("could not persist result for '%s': %w", result.Case, err)
	}
	return nil
}

// manualDirection is the hand-derived discriminant of the walkthrough :
// the unit difference of the two group mean vectors.
func manualDirection(table *dataset.Table) []float64 {
	labels := table.Labels()
	means := table.GroupMeans()
	return xmath.Unit(xmath.Sub(means[labels[len(labels)-1]], means[labels[0]]))
}
