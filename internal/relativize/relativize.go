// Package relativize rewrites a CSV of absolute measurements as ratios to a
// single baseline value taken from the first data row.
package relativize

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dev-shimada/csv-relativize-tool/internal/csv"
)

// baselineColumn holds the reference value. It is consumed for the baseline
// and dropped from every output row, the header included.
const baselineColumn = 1

// Result describes a completed run: the emitted header and the numeric
// ratios of every data row, in output column order.
type Result struct {
	Header []string
	Ratios [][]float64
}

// Run streams the relativized form of c to w. The header goes out first with
// the baseline column removed. Every data row keeps its identifier field,
// loses the baseline column and has each remaining field divided by the
// baseline of the first data row. Lines are written as they are produced, so
// output already emitted before a failing row stays in place.
func Run(c *csv.CSV, w io.Writer) (*Result, error) {
	if len(c.Header) < 2 {
		return nil, &MalformedRowError{Row: 1, Fields: len(c.Header)}
	}
	header := dropBaseline(c.Header)
	if err := writeLine(w, header); err != nil {
		return nil, err
	}

	res := &Result{Header: header}
	var baseline float64
	for i, row := range c.Body {
		rowNum := i + 2 // 1-based, the header is row 1
		if len(row) < 2 {
			return res, &MalformedRowError{Row: rowNum, Fields: len(row)}
		}

		// The baseline column is validated on every row; only the first
		// row's value becomes the baseline.
		v, err := strconv.ParseFloat(row[baselineColumn], 64)
		if err != nil {
			return res, &NumericFormatError{Row: rowNum, Column: baselineColumn + 1, Value: row[baselineColumn], Err: err}
		}
		if i == 0 {
			baseline = v
		}

		out := make([]string, 0, len(row)-1)
		out = append(out, row[0])
		ratios := make([]float64, 0, len(row)-2)
		for j, field := range row[baselineColumn+1:] {
			m, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return res, &NumericFormatError{Row: rowNum, Column: baselineColumn + 2 + j, Value: field, Err: err}
			}
			r := m / baseline
			ratios = append(ratios, r)
			out = append(out, formatFloat(r))
		}
		if err := writeLine(w, out); err != nil {
			return res, err
		}
		res.Ratios = append(res.Ratios, ratios)
	}
	return res, nil
}

func dropBaseline(fields []string) []string {
	out := make([]string, 0, len(fields)-1)
	out = append(out, fields[:baselineColumn]...)
	return append(out, fields[baselineColumn+1:]...)
}

// Fields carry no quoting, so a literal comma join is the whole format.
func writeLine(w io.Writer, fields []string) error {
	_, err := fmt.Fprintln(w, strings.Join(fields, ","))
	return err
}
