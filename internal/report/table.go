package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/linearlab/lda-lab/internal/buffer"
	"github.com/linearlab/lda-lab/internal/eval"
)

// Confusion renders the confusion table as text, actual groups as rows.
func Confusion(w io.Writer, c *eval.Confusion) {
	labels := c.Labels()

	table := tablewriter.NewWriter(w)
	header := append([]string{"actual / predicted"}, labels...)
	table.SetHeader(append(header, "total"))

	for _, actual := range labels {
		row := []string{actual}
		total := 0
		for _, predicted := range labels {
			n := c.Count(actual, predicted)
			row = append(row, strconv.Itoa(n))
			total += n
		}
		table.Append(append(row, strconv.Itoa(total)))
	}
	table.SetFooter(append(make([]string, len(labels)),
		"accuracy", fmt.Sprintf("%.3f", c.Accuracy())))
	table.Render()
}

// Summary renders the per-group projection summaries as text.
func Summary(w io.Writer, g *buffer.Grouped) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"group", "count", "mean", "stdev", "min", "max"})
	for _, label := range g.Labels() {
		s := g.Get(label)
		table.Append([]string{
			label,
			strconv.Itoa(s.Count()),
			fmt.Sprintf("%.3f", s.Avg()),
			fmt.Sprintf("%.3f", s.SampleStDev()),
			fmt.Sprintf("%.3f", s.Min()),
			fmt.Sprintf("%.3f", s.Max()),
		})
	}
	table.Render()
}
