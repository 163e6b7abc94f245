package ml

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/evaluation"
	"github.com/sjwhitworth/golearn/knn"
)

// KnnCrossCheck fits a packaged knn classifier on the exported observation
// csv (label-last, no header) and returns its confusion matrix summary.
// It is the independent cross check for the discriminant fits.
func KnnCrossCheck(file string, neighbours int) (string, error) {
	rawData, err := base.ParseCSVToInstances(file, false)
	if err != nil {
		return "", fmt.Errorf("could not parse instances from '%s': %w", file, err)
	}

	cls := knn.NewKnnClassifier("euclidean", "linear", neighbours)

	trainData, testData := base.InstancesTrainTestSplit(rawData, 0.50)
	err = cls.Fit(trainData)
	if err != nil {
		log.Error().Err(err).Msg("could not train knn model")
		return "", fmt.Errorf("could not train knn model: %w", err)
	}

	predictions, err := cls.Predict(testData)
	if err != nil {
		log.Error().Err(err).Msg("could not predict on knn model")
		return "", fmt.Errorf("could not predict on knn model: %w", err)
	}

	confusionMat, err := evaluation.GetConfusionMatrix(testData, predictions)
	if err != nil {
		log.Error().Err(err).Msg("could not get confusion matrix")
		return "", fmt.Errorf("could not get confusion matrix: %w", err)
	}
	return evaluation.GetSummary(confusionMat), nil
}
