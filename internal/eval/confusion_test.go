package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfusion(t *testing.T) {

	type pair struct {
		actual    string
		predicted string
	}

	type test struct {
		pairs    []pair
		accuracy float64
		errors   int
	}

	tests := map[string]test{
		"perfect": {
			pairs: []pair{
				{"a", "a"}, {"a", "a"}, {"b", "b"},
			},
			accuracy: 1,
			errors:   0,
		},
		"mixed": {
			pairs: []pair{
				{"a", "a"}, {"a", "b"}, {"b", "b"}, {"b", "a"},
			},
			accuracy: 0.5,
			errors:   2,
		},
		"all-wrong": {
			pairs: []pair{
				{"a", "b"}, {"b", "a"},
			},
			accuracy: 0,
			errors:   2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewConfusion("a", "b")
			for _, p := range tt.pairs {
				c.Add(p.actual, p.predicted)
			}
			assert.Equal(t, tt.accuracy, c.Accuracy())
			assert.Equal(t, tt.errors, c.Errors())
			assert.Equal(t, len(tt.pairs), c.Total())
		})
	}
}

func TestConfusion_Counts(t *testing.T) {
	c := NewConfusion()
	c.Add("a", "b")
	c.Add("a", "b")
	c.Add("c", "c")

	assert.Equal(t, []string{"a", "b", "c"}, c.Labels())
	assert.Equal(t, 2, c.Count("a", "b"))
	assert.Equal(t, 0, c.Count("b", "a"))
	assert.Equal(t, 0, c.Count("unknown", "a"))

	counts := c.Counts()
	assert.Equal(t, 2, counts["a"]["b"])
	assert.Equal(t, 1, counts["c"]["c"])
}

func TestConfusion_Empty(t *testing.T) {
	c := NewConfusion("a", "b")
	assert.Equal(t, 0.0, c.Accuracy())
	assert.Equal(t, 0, c.Total())
}
