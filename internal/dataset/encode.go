package dataset

import "fmt"

// Indicators encodes a categorical column into 0/1 indicator features,
// dropping the first-seen level as the reference level so that the
// encoded columns stay linearly independent within the fit.
// Returns the indicator feature names and one column per kept level.
func Indicators(name string, values []string) ([]string, [][]float64) {
	seen := make(map[string]int)
	levels := make([]string, 0)
	for _, v := range values {
		if _, ok := seen[v]; !ok {
			seen[v] = len(levels)
			levels = append(levels, v)
		}
	}

	kept := levels[1:]
	names := make([]string, len(kept))
	columns := make([][]float64, len(kept))
	for k, level := range kept {
		names[k] = fmt.Sprintf("%s=%s", name, level)
		col := make([]float64, len(values))
		for i, v := range values {
			if v == level {
				col[i] = 1
			}
		}
		columns[k] = col
	}
	return names, columns
}

// WithColumns returns a copy of the table extended by the given feature columns.
func (t *Table) WithColumns(names []string, columns [][]float64) *Table {
	features := append(append([]string{}, t.features...), names...)
	out := New(features...)
	for i, row := range t.rows {
		values := append([]float64{}, row...)
		for _, col := range columns {
			values = append(values, col[i])
		}
		out.Append(t.labels[i], values...)
	}
	return out
}
