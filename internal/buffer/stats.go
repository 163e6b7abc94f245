package buffer

import (
	"fmt"
	"math"
)

// Stats is a set of streaming statistical properties of a set of numbers.
type Stats struct {
	count          int
	sum            float64
	min, max       float64
	mean, dSquared float64
}

// NewStats creates a new Stats.
func NewStats() *Stats {
	return &Stats{
		min: math.MaxFloat64,
		max: -math.MaxFloat64,
	}
}

// Push adds another element to the set.
func (s *Stats) Push(v float64) {
	s.count++
	s.sum += v
	diff := (v - s.mean) / float64(s.count)
	mean := s.mean + diff
	squaredDiff := (v - mean) * (v - s.mean)
	s.dSquared += squaredDiff
	s.mean = mean

	if s.min > v {
		s.min = v
	}

	if s.max < v {
		s.max = v
	}
}

// Avg returns the average value of the set.
func (s Stats) Avg() float64 {
	return s.mean
}

// Sum returns the sum of all elements of the set.
func (s Stats) Sum() float64 {
	return s.sum
}

// Count returns the number of elements.
func (s Stats) Count() int {
	return s.count
}

// Min returns the smallest element of the set.
func (s Stats) Min() float64 {
	return s.min
}

// Max returns the largest element of the set.
func (s Stats) Max() float64 {
	return s.max
}

// Range returns the difference of max and min.
func (s Stats) Range() float64 {
	return s.max - s.min
}

// Variance is the mathematical variance of the set.
func (s Stats) Variance() float64 {
	return s.dSquared / float64(s.count)
}

// StDev is the standard deviation of the set.
func (s Stats) StDev() float64 {
	return math.Sqrt(s.Variance())
}

// SampleVariance is the sample variance of the set.
func (s Stats) SampleVariance() float64 {
	return s.dSquared / float64(s.count-1)
}

// SampleStDev is the sample standard deviation of the set.
func (s Stats) SampleStDev() float64 {
	return math.Sqrt(s.SampleVariance())
}

// StatsCollector is a collection of Stats variables, one per feature dimension.
// This enables multi-dimensional tracking.
type StatsCollector struct {
	dim   int
	stats []*Stats
}

// NewStatsCollector creates a new Stats collector of the given dimension.
func NewStatsCollector(dim int) *StatsCollector {
	stats := make([]*Stats, dim)
	for i := 0; i < dim; i++ {
		stats[i] = NewStats()
	}
	return &StatsCollector{
		dim:   dim,
		stats: stats,
	}
}

// Push pushes each value to the corresponding dimension.
func (sc *StatsCollector) Push(v ...float64) {
	if len(v) != sc.dim {
		panic(fmt.Sprintf("inconsistent dimensions %d vs %d", len(v), sc.dim))
	}
	for i := 0; i < len(sc.stats); i++ {
		sc.stats[i].Push(v[i])
	}
}

// Stats returns the per-dimension stats.
func (sc StatsCollector) Stats() []*Stats {
	return sc.stats
}

// Size returns the number of pushed elements.
func (sc *StatsCollector) Size() int {
	// we expect all dimensions to have the same size
	return sc.stats[0].count
}

// Grouped tracks one Stats per group label.
// It backs the per-group projection summaries of the discriminant reports.
type Grouped struct {
	order []string
	stats map[string]*Stats
}

// NewGrouped creates a new per-group stats tracker.
func NewGrouped() *Grouped {
	return &Grouped{
		stats: make(map[string]*Stats),
	}
}

// Push adds a value for the given group label.
func (g *Grouped) Push(label string, v float64) {
	if _, ok := g.stats[label]; !ok {
		g.stats[label] = NewStats()
		g.order = append(g.order, label)
	}
	g.stats[label].Push(v)
}

// Labels returns the group labels in first-seen order.
func (g *Grouped) Labels() []string {
	return g.order
}

// Get returns the stats for the given group label, nil if the group is unknown.
func (g *Grouped) Get(label string) *Stats {
	return g.stats[label]
}

// Separation returns the difference of the group mean values for the two given labels.
func (g *Grouped) Separation(a, b string) float64 {
	sa, sb := g.stats[a], g.stats[b]
	if sa == nil || sb == nil {
		return 0
	}
	return sa.Avg() - sb.Avg()
}
