package math

import (
	"fmt"
	"math"
)

// Dot returns the dot product of the two vectors.
// Inconsistent dimensions are a programming error.
func Dot(a, b []float64) float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("inconsistent dimensions %d vs %d", len(a), len(b)))
	}
	d := 0.0
	for i := range a {
		d += a[i] * b[i]
	}
	return d
}

// Norm returns the euclidean length of the vector.
func Norm(v []float64) float64 {
	return math.Sqrt(Dot(v, v))
}

// Unit scales the vector to unit length.
// The zero vector is returned unchanged, as it defines no direction.
func Unit(v []float64) []float64 {
	n := Norm(v)
	u := make([]float64, len(v))
	if n == 0 {
		copy(u, v)
		return u
	}
	for i := range v {
		u[i] = v[i] / n
	}
	return u
}

// Sub returns a - b.
func Sub(a, b []float64) []float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("inconsistent dimensions %d vs %d", len(a), len(b)))
	}
	c := make([]float64, len(a))
	for i := range a {
		c[i] = a[i] - b[i]
	}
	return c
}

// Project returns the scalar projection of x onto the given direction,
// optionally centered first : dot(x - center, direction).
// A nil center means no centering.
// A zero direction degenerates all projections to zero. This is a boundary
// condition of the discriminant, not an error.
func Project(x, center, direction []float64) float64 {
	if center == nil {
		return Dot(x, direction)
	}
	return Dot(Sub(x, center), direction)
}

// ProjectRows projects each row onto the given direction, optionally centered.
func ProjectRows(rows [][]float64, center, direction []float64) []float64 {
	pp := make([]float64, len(rows))
	for i, row := range rows {
		pp[i] = Project(row, center, direction)
	}
	return pp
}
