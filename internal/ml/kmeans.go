package ml

import (
	"fmt"
	"math"

	"github.com/cdipaolo/goml/cluster"
	"github.com/rs/zerolog/log"

	"github.com/linearlab/lda-lab/internal/buffer"
	"github.com/linearlab/lda-lab/internal/storage"
)

// KMeans is the unsupervised comparison for the multi-group case : it clusters
// the observations without seeing the labels and reports how well the found
// clusters line up with the actual groups.
// Training data and assignments are persisted so repeated runs are comparable.
type KMeans struct {
	dataKey    storage.Key
	resultsKey storage.Key
	k          int
	iterations int
	model      *cluster.KMeans
	stats      map[int]*buffer.Stats
	store      storage.Persistence
}

// NewKMeans creates a clustering comparison for the given case run.
func NewKMeans(caseName, run string, k, iterations int, store storage.Persistence) *KMeans {
	return &KMeans{
		dataKey: storage.Key{
			Case:  caseName,
			Run:   run,
			Label: "kmeans-data",
		},
		resultsKey: storage.Key{
			Case:  caseName,
			Run:   run,
			Label: "kmeans-assignments",
		},
		k:          k,
		iterations: iterations,
		stats:      make(map[int]*buffer.Stats),
		store:      store,
	}
}

// Stats describes how one found cluster relates to the actual group indices.
type Stats struct {
	Size int     `json:"size"`
	Avg  float64 `json:"avg"`
}

func transform(stats map[int]*buffer.Stats) map[int]Stats {
	newStats := make(map[int]Stats)
	for g, st := range stats {
		newStats[g] = Stats{
			Size: st.Count(),
			Avg:  st.Avg(),
		}
	}
	return newStats
}

// Train clusters the observations and scores each cluster by the average
// actual group index of its members. groupIdx carries the actual group of
// each observation, in row order.
func (k *KMeans) Train(data [][]float64, groupIdx []int) (map[int]Stats, error) {
	stats := make(map[int]Stats)
	if len(data) != len(groupIdx) {
		return stats, fmt.Errorf("could not align groups with data [ %d | %d ]", len(groupIdx), len(data))
	}
	if len(data) < k.k {
		return stats, fmt.Errorf("not enough observations for %d clusters: %d", k.k, len(data))
	}

	if err := k.store.Store(k.dataKey, data); err != nil {
		log.Error().
			Err(err).
			Str("key", fmt.Sprintf("%+v", k.dataKey)).
			Int("data", len(data)).
			Msg("could not store data set for k-means")
		return stats, fmt.Errorf("could not store data set: %w", err)
	}

	k.model = cluster.NewKMeans(k.k, k.iterations, data)
	if err := k.model.Learn(); err != nil {
		log.Error().
			Err(err).
			Str("key", fmt.Sprintf("%+v", k.dataKey)).
			Msg("error during training on k-means")
		return stats, fmt.Errorf("could not train: %w", err)
	}

	guesses := k.model.Guesses()
	if len(guesses) != len(groupIdx) {
		return stats, fmt.Errorf("could not align groups with assignments [ %d | %d ]", len(groupIdx), len(guesses))
	}

	if err := k.store.Store(k.resultsKey, guesses); err != nil {
		log.Error().
			Err(err).
			Str("key", fmt.Sprintf("%+v", k.resultsKey)).
			Int("assignments", len(guesses)).
			Msg("could not store assignments for k-means")
		return stats, fmt.Errorf("could not store assignments: %w", err)
	}

	// score each cluster by the actual groups of its members
	k.stats = make(map[int]*buffer.Stats, k.k)
	for i := 0; i < len(guesses); i++ {
		g := guesses[i]
		if _, ok := k.stats[g]; !ok {
			k.stats[g] = buffer.NewStats()
		}
		k.stats[g].Push(float64(groupIdx[i]))
	}
	return transform(k.stats), nil
}

// Predict assigns the observation to a cluster and returns the cluster score.
func (k *KMeans) Predict(x []float64) (int, float64, error) {
	if k.model == nil {
		return 0, 0, fmt.Errorf("no model present")
	}
	guess, err := k.model.Predict(x)
	if err != nil {
		log.Error().
			Err(err).
			Str("key", fmt.Sprintf("%+v", k.dataKey)).
			Msg("could not predict for k-means")
		return 0, 0, fmt.Errorf("could not predict: %w", err)
	}

	f := int(math.Round(guess[0]))
	score := 0.0
	if st, ok := k.stats[f]; ok {
		score = st.Avg()
	}
	return f, score, nil
}
