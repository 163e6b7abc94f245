package eval

// Confusion cross-tabulates actual versus predicted group membership.
type Confusion struct {
	labels []string
	counts map[string]map[string]int
	total  int
}

// NewConfusion creates an empty confusion table over the given label set.
// Labels observed later through Add extend the set.
func NewConfusion(labels ...string) *Confusion {
	c := &Confusion{
		counts: make(map[string]map[string]int),
	}
	for _, l := range labels {
		c.track(l)
	}
	return c
}

func (c *Confusion) track(label string) {
	if _, ok := c.counts[label]; ok {
		return
	}
	c.counts[label] = make(map[string]int)
	c.labels = append(c.labels, label)
}

// Add records one (actual, predicted) pair.
func (c *Confusion) Add(actual, predicted string) {
	c.track(actual)
	c.track(predicted)
	c.counts[actual][predicted]++
	c.total++
}

// Labels returns the label set in registration order.
func (c *Confusion) Labels() []string {
	return c.labels
}

// Count returns the number of observations of the given actual group
// classified as the given predicted group.
func (c *Confusion) Count(actual, predicted string) int {
	if row, ok := c.counts[actual]; ok {
		return row[predicted]
	}
	return 0
}

// Total returns the number of recorded observations.
func (c *Confusion) Total() int {
	return c.total
}

// Correct returns the number of observations on the diagonal.
func (c *Confusion) Correct() int {
	correct := 0
	for _, l := range c.labels {
		correct += c.counts[l][l]
	}
	return correct
}

// Errors returns the number of misclassified observations.
func (c *Confusion) Errors() int {
	return c.total - c.Correct()
}

// Accuracy returns the fraction of correctly classified observations.
func (c *Confusion) Accuracy() float64 {
	if c.total == 0 {
		return 0
	}
	return float64(c.Correct()) / float64(c.total)
}

// Counts exports the table as nested maps, for persistence.
func (c *Confusion) Counts() map[string]map[string]int {
	out := make(map[string]map[string]int, len(c.counts))
	for actual, row := range c.counts {
		out[actual] = make(map[string]int, len(row))
		for predicted, n := range row {
			out[actual][predicted] = n
		}
	}
	return out
}
