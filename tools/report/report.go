// Package report renders tool results as aligned terminal tables or CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// Table is a header row plus string cells.
type Table struct {
	Headers []string
	Rows    [][]string
}

// NewTable starts a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{Headers: headers}
}

// Add appends a row. Values are formatted with %v, floats with two decimals
// unless already formatted by the caller.
func (t *Table) Add(values ...any) {
	row := make([]string, len(values))
	for i, v := range values {
		switch x := v.(type) {
		case string:
			row[i] = x
		case float64:
			row[i] = fmt.Sprintf("%.2f", x)
		default:
			row[i] = fmt.Sprint(x)
		}
	}
	t.Rows = append(t.Rows, row)
}

// Len is the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// WriteText writes the table as tab-aligned columns.
func (t *Table) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// WriteCSV writes the header and every row as CSV.
func (t *Table) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Headers); err != nil {
		return err
	}
	if err := writer.WriteAll(t.Rows); err != nil {
		return err
	}
	return writer.Error()
}

// WriteCSVFile creates filename (adding .csv when missing) and writes the
// table to it.
func (t *Table) WriteCSVFile(filename string) error {
	if !strings.HasSuffix(filename, ".csv") {
		filename += ".csv"
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := t.WriteCSV(f); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return f.Close()
}
