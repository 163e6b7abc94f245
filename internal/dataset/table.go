package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Table is an ordered set of labeled observations.
// Each row holds one numeric value per feature and a group label.
type Table struct {
	features []string
	rows     [][]float64
	labels   []string
}

// New creates an empty table for the given feature names.
func New(features ...string) *Table {
	return &Table{
		features: features,
	}
}

// Append adds an observation for the given group label.
func (t *Table) Append(label string, values ...float64) {
	if len(values) != len(t.features) {
		panic(fmt.Sprintf("inconsistent dimensions %d vs %d", len(values), len(t.features)))
	}
	row := make([]float64, len(values))
	copy(row, values)
	t.rows = append(t.rows, row)
	t.labels = append(t.labels, label)
}

// Len returns the number of observations.
func (t *Table) Len() int {
	return len(t.rows)
}

// Dim returns the number of features.
func (t *Table) Dim() int {
	return len(t.features)
}

// Features returns the feature names.
func (t *Table) Features() []string {
	return t.features
}

// Row returns the i-th observation vector.
func (t *Table) Row(i int) []float64 {
	return t.rows[i]
}

// Label returns the group label of the i-th observation.
func (t *Table) Label(i int) string {
	return t.labels[i]
}

// Rows returns all observation vectors.
func (t *Table) Rows() [][]float64 {
	return t.rows
}

// Labels returns the distinct group labels in first-seen order.
func (t *Table) Labels() []string {
	seen := make(map[string]struct{})
	labels := make([]string, 0)
	for _, l := range t.labels {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			labels = append(labels, l)
		}
	}
	return labels
}

// Column returns a copy of the j-th feature column.
func (t *Table) Column(j int) []float64 {
	col := make([]float64, len(t.rows))
	for i, row := range t.rows {
		col[i] = row[j]
	}
	return col
}

// Matrix returns the observations as a dense N x M matrix.
func (t *Table) Matrix() *mat.Dense {
	m := mat.NewDense(len(t.rows), len(t.features), nil)
	for i, row := range t.rows {
		m.SetRow(i, row)
	}
	return m
}

// Split partitions the table by group label, preserving row order.
func (t *Table) Split() map[string]*Table {
	groups := make(map[string]*Table)
	for i, row := range t.rows {
		label := t.labels[i]
		if _, ok := groups[label]; !ok {
			groups[label] = New(t.features...)
		}
		groups[label].Append(label, row...)
	}
	return groups
}

// GroupMeans returns the per-group feature mean vectors.
func (t *Table) GroupMeans() map[string][]float64 {
	sums := make(map[string][]float64)
	counts := make(map[string]int)
	for i, row := range t.rows {
		label := t.labels[i]
		if _, ok := sums[label]; !ok {
			sums[label] = make([]float64, len(t.features))
		}
		for j, v := range row {
			sums[label][j] += v
		}
		counts[label]++
	}
	for label, sum := range sums {
		for j := range sum {
			sum[j] /= float64(counts[label])
		}
	}
	return sums
}

// WriteCSV writes the observations in label-last csv form, without a header.
// This is the layout the packaged classifiers parse.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	record := make([]string, len(t.features)+1)
	for i, row := range t.rows {
		for j, v := range row {
			record[j] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		record[len(t.features)] = t.labels[i]
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("could not write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the observations to the given file.
func (t *Table) SaveCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create file '%s': %w", path, err)
	}
	defer f.Close()
	return t.WriteCSV(f)
}
