package ml

import (
	"fmt"

	randomforest "github.com/malaschitz/randomForest"
)

// Forest is a random forest baseline over labeled observations.
// It maps group labels to class indices and classifies by majority vote.
type Forest struct {
	trees  int
	labels []string
	index  map[string]int
	forest *randomforest.Forest
}

// NewForest creates a forest baseline of the given size.
func NewForest(trees int) *Forest {
	return &Forest{
		trees: trees,
		index: make(map[string]int),
	}
}

// Train fits the forest on the observations and returns the per-feature importance.
func (f *Forest) Train(xData [][]float64, labels []string) []float64 {
	yData := make([]int, len(labels))
	for i, label := range labels {
		if _, ok := f.index[label]; !ok {
			f.index[label] = len(f.labels)
			f.labels = append(f.labels, label)
		}
		yData[i] = f.index[label]
	}

	forest := &randomforest.Forest{}
	forest.Data = randomforest.ForestData{X: xData, Class: yData}
	forest.Train(f.trees)
	f.forest = forest
	return forest.FeatureImportance
}

// Predict returns the label with the strongest vote for the observation.
func (f *Forest) Predict(x []float64) (string, error) {
	if f.forest == nil {
		return "", fmt.Errorf("no model present")
	}
	votes := f.forest.Vote(x)
	best := 0
	for i := range votes {
		if votes[i] > votes[best] {
			best = i
		}
	}
	if best >= len(f.labels) {
		return "", fmt.Errorf("vote outside known labels: %d vs %d", best, len(f.labels))
	}
	return f.labels[best], nil
}
