package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDot(t *testing.T) {

	type test struct {
		a, b []float64
		dot  float64
	}

	tests := map[string]test{
		"orthogonal": {
			a:   []float64{1, 0},
			b:   []float64{0, 1},
			dot: 0,
		},
		"parallel": {
			a:   []float64{1, 2},
			b:   []float64{2, 4},
			dot: 10,
		},
		"opposite": {
			a:   []float64{1, 1},
			b:   []float64{-1, -1},
			dot: -2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.dot, Dot(tt.a, tt.b))
		})
	}

	assert.Panics(t, func() {
		Dot([]float64{1}, []float64{1, 2})
	})
}

func TestUnit(t *testing.T) {
	u := Unit([]float64{3, 4})
	assert.InDelta(t, 1.0, Norm(u), 1e-12)
	assert.InDelta(t, 0.6, u[0], 1e-12)
	assert.InDelta(t, 0.8, u[1], 1e-12)

	// the zero vector defines no direction and stays unchanged
	z := Unit([]float64{0, 0, 0})
	assert.Equal(t, []float64{0, 0, 0}, z)
}

func TestProject_Linearity(t *testing.T) {
	direction := []float64{0.3, -1.2, 2.5}
	a := []float64{1, 2, 3}
	b := []float64{-4, 0.5, 7}

	sum := make([]float64, len(a))
	for i := range a {
		sum[i] = a[i] + b[i]
	}

	assert.InDelta(t, Project(a, nil, direction)+Project(b, nil, direction),
		Project(sum, nil, direction), 1e-12)
}

func TestProject_ZeroVector(t *testing.T) {
	for _, direction := range [][]float64{
		{1, 2},
		{-5, 0},
		{0, 0},
	} {
		assert.Equal(t, 0.0, Project([]float64{0, 0}, nil, direction))
	}
}

func TestProject_ZeroDirection(t *testing.T) {
	// a zero direction degenerates every projection to zero
	zero := []float64{0, 0}
	assert.Equal(t, 0.0, Project([]float64{3, -7}, nil, zero))
	assert.Equal(t, 0.0, Project([]float64{3, -7}, []float64{1, 1}, zero))
}

func TestProject_CenteringShift(t *testing.T) {
	direction := []float64{1.5, -0.5}
	center := []float64{2, 3}

	groupA := [][]float64{{1, 1}, {2, 0}, {0, 2}}
	groupB := [][]float64{{5, 5}, {6, 4}, {4, 6}}

	shift := Dot(center, direction)

	separation := func(center []float64) float64 {
		avg := func(rows [][]float64) float64 {
			s := 0.0
			for _, r := range rows {
				s += Project(r, center, direction)
			}
			return s / float64(len(rows))
		}
		return avg(groupA) - avg(groupB)
	}

	// centering shifts each projection by dot(center, direction)
	for _, x := range append(groupA, groupB...) {
		assert.InDelta(t, Project(x, nil, direction)-shift, Project(x, center, direction), 1e-12)
	}
	// and leaves the group separation unchanged
	assert.InDelta(t, separation(nil), separation(center), 1e-12)
}

func TestProjectRows(t *testing.T) {
	rows := [][]float64{{1, 0}, {0, 1}, {1, 1}}
	pp := ProjectRows(rows, nil, []float64{2, 3})
	assert.Equal(t, []float64{2, 3, 5}, pp)

	assert.InDelta(t, math.Sqrt(2), Norm([]float64{1, 1}), 1e-12)
}
