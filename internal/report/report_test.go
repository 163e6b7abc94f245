package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linearlab/lda-lab/internal/buffer"
	"github.com/linearlab/lda-lab/internal/dataset"
	"github.com/linearlab/lda-lab/internal/eval"
)

func TestConfusion_Render(t *testing.T) {
	c := eval.NewConfusion("a", "b")
	c.Add("a", "a")
	c.Add("a", "b")
	c.Add("b", "b")

	var buf bytes.Buffer
	Confusion(&buf, c)

	out := buf.String()
	assert.Contains(t, out, "ACTUAL / PREDICTED")
	assert.Contains(t, out, "0.667")
}

func TestSummary_Render(t *testing.T) {
	g := buffer.NewGrouped()
	for i := 0; i < 10; i++ {
		g.Push("a", float64(i))
		g.Push("b", float64(-i))
	}

	var buf bytes.Buffer
	Summary(&buf, g)

	out := buf.String()
	assert.Contains(t, out, "GROUP")
	assert.Contains(t, out, "4.500")
	assert.Contains(t, out, "-4.500")
}

func TestHistogram(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hist.png")

	projections := map[string][]float64{
		"a": {-1, -1.5, -0.5, -1.2, -0.8},
		"b": {1, 1.5, 0.5, 1.2, 0.8},
	}
	err := Histogram(path, "projections", projections, []string{"a", "b"})
	assert.NoError(t, err)

	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.True(t, info.Size() > 0)
}

func TestScatter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scatter.png")

	table := dataset.NewGenerator(1, "x", "y").
		Add("a", 20, []float64{-2, -2}, []float64{1, 1}).
		Add("b", 20, []float64{2, 2}, []float64{1, 1}).
		Generate()

	err := Scatter(path, "observations", table, 0, 1, []float64{1, 1}, []float64{0, 0})
	assert.NoError(t, err)

	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.True(t, info.Size() > 0)
}
