package buffer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_Push(t *testing.T) {

	l := 1001

	type test struct {
		transform func(i int) float64
		avg       float64
		count     int
		rng       float64
		stDev     float64
		variance  float64
		sum       float64
	}

	tests := map[string]test{
		"monotonically-increasing-+": {
			transform: func(i int) float64 {
				return float64(i)
			},
			avg:      float64(l / 2),
			count:    l,
			sum:      float64(l) * 500,
			rng:      float64(l) - 1,
			stDev:    289,
			variance: 83500,
		},
		"monotonically-increasing-0": {
			transform: func(i int) float64 {
				return float64(-1*l/2) + float64(i)
			},
			avg:   0,
			count: l,
			sum:   0,
			// NOTE : these are the same as the one above
			rng:      float64(l) - 1,
			stDev:    289,
			variance: 83500,
		},
		"monotonically-decreasing--": {
			transform: func(i int) float64 {
				return -1 * float64(i)
			},
			avg:      -1 * float64(l/2),
			count:    l,
			sum:      -1 * float64(l) * 500,
			rng:      float64(l) - 1,
			stDev:    289,
			variance: 83500,
		},
		"abs-+": {
			transform: func(i int) float64 {
				return math.Abs(-1*float64(l/2) + float64(i))
			},
			avg:   float64(l / 4),
			count: l,
			sum:   250500,
			rng:   float64(l / 2),
			// NOTE : these are half of the monotonical case
			stDev:    289 / 2,
			variance: 83500 / 4,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stats := NewStats()
			for i := 0; i < l; i++ {
				v := tt.transform(i)
				stats.Push(v)
			}
			assert.Equal(t, tt.avg, math.Round(stats.Avg()))
			assert.Equal(t, tt.count, stats.Count())
			assert.Equal(t, tt.sum, math.Round(stats.Sum()))
			assert.Equal(t, tt.rng, math.Round(stats.Range()))
			assert.Equal(t, tt.stDev, math.Round(stats.StDev()))
			assert.Equal(t, tt.variance, math.Round(stats.Variance()))
		})
	}
}

func TestStatsCollector(t *testing.T) {
	sc := NewStatsCollector(2)
	for i := 0; i < 10; i++ {
		sc.Push(float64(i), float64(2*i))
	}
	assert.Equal(t, 10, sc.Size())
	assert.Equal(t, 4.5, sc.Stats()[0].Avg())
	assert.Equal(t, 9.0, sc.Stats()[1].Avg())

	assert.Panics(t, func() {
		sc.Push(1.0)
	})
}

func TestGrouped(t *testing.T) {
	g := NewGrouped()
	for i := 0; i < 100; i++ {
		g.Push("a", 1.0)
		g.Push("b", 5.0)
	}
	assert.Equal(t, []string{"a", "b"}, g.Labels())
	assert.Equal(t, 100, g.Get("a").Count())
	assert.Equal(t, -4.0, g.Separation("a", "b"))
	assert.Equal(t, 0.0, g.Separation("a", "unknown"))
	assert.Nil(t, g.Get("unknown"))
}
