// Package summary aggregates relativized values into per-column statistics
// for human-readable output.
package summary

import (
	"fmt"
	"io"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"
)

// ColumnStat holds the spread of one measurement column's ratios.
type ColumnStat struct {
	Name   string
	Min    float64
	Mean   float64
	Median float64
	Max    float64
}

// Compute builds one ColumnStat per measurement column. header is the output
// header (identifier first, measurement names after), ratios one slice per
// data row in the same column order. Columns with no values are skipped.
func Compute(header []string, ratios [][]float64) ([]ColumnStat, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("empty header")
	}
	out := make([]ColumnStat, 0, len(header)-1)
	for col, name := range header[1:] {
		var values []float64
		for _, row := range ratios {
			if col < len(row) {
				values = append(values, row[col])
			}
		}
		if len(values) == 0 {
			continue
		}
		cs := ColumnStat{Name: name}
		var err error
		if cs.Min, err = stats.Min(values); err != nil {
			return nil, err
		}
		if cs.Mean, err = stats.Mean(values); err != nil {
			return nil, err
		}
		if cs.Median, err = stats.Median(values); err != nil {
			return nil, err
		}
		if cs.Max, err = stats.Max(values); err != nil {
			return nil, err
		}
		out = append(out, cs)
	}
	return out, nil
}

// Render writes the statistics as a text table to w.
func Render(w io.Writer, cols []ColumnStat) {
	tableString := &strings.Builder{}
	table := tablewriter.NewWriter(tableString)
	table.Header([]string{"Column", "Min", "Mean", "Median", "Max"})
	for _, c := range cols {
		table.Append([]string{
			c.Name,
			fmt.Sprintf("%.4g", c.Min),
			fmt.Sprintf("%.4g", c.Mean),
			fmt.Sprintf("%.4g", c.Median),
			fmt.Sprintf("%.4g", c.Max),
		})
	}
	table.Render()
	fmt.Fprintln(w, tableString.String())
}
