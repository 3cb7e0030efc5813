// Package dataset loads tabular files into an immutable, column-oriented
// Dataset and splits its columns into numeric and non-numeric kinds.
package dataset

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrEmpty indicates the input has no header row.
	ErrEmpty = errors.New("dataset has no header row")
	// ErrDuplicateColumn indicates two header cells share a name.
	ErrDuplicateColumn = errors.New("duplicate column name")
)

// Kind is the inferred type of a column.
type Kind string

const (
	KindNumeric Kind = "numeric"
	KindOther   Kind = "other"
)

// Column is a named sequence of cells.
type Column struct {
	Name string
	Kind Kind

	cells []string
	nums  []float64 // parsed values for numeric columns; NaN marks a missing cell
}

// Len returns the number of cells.
func (c *Column) Len() int { return len(c.cells) }

// Cell returns the raw text of row i.
func (c *Column) Cell(i int) string { return c.cells[i] }

// Float returns the parsed value of row i and whether it is present.
func (c *Column) Float(i int) (float64, bool) {
	if c.Kind != KindNumeric || math.IsNaN(c.nums[i]) {
		return 0, false
	}
	return c.nums[i], true
}

// Values returns a fresh copy of the cells: float64 for numeric columns
// (nil where missing), string otherwise.
func (c *Column) Values() []any {
	out := make([]any, len(c.cells))
	for i := range c.cells {
		if c.Kind == KindNumeric {
			if v, ok := c.Float(i); ok {
				out[i] = v
			}
			continue
		}
		out[i] = c.cells[i]
	}
	return out
}

// Dataset is an ordered set of equally long columns. It is never modified after
// construction.
type Dataset struct {
	Name string
	// TotalRows counts every data row seen, including rows past Options.MaxRows.
	TotalRows int
	Warnings  []string

	cols  []*Column
	index map[string]int
	rows  int
}

// New builds a Dataset from a header and data records. Records shorter than the
// header are padded with empty cells; extra cells are ignored. Blank header cells
// are named "Unnamed: <i>", with a ".1", ".2" suffix if the file already uses
// that name. Repeated non-blank names fail with ErrDuplicateColumn.
func New(name string, header []string, records [][]string, opt Options) (*Dataset, error) {
	if len(header) == 0 {
		return nil, ErrEmpty
	}
	ds := &Dataset{
		Name:      name,
		TotalRows: len(records),
		index:     make(map[string]int, len(header)),
	}
	if opt.MaxRows > 0 && len(records) > opt.MaxRows {
		ds.Warnings = append(ds.Warnings, fmt.Sprintf("loaded only %d/%d rows due to MaxRows", opt.MaxRows, len(records)))
		records = records[:opt.MaxRows]
	}
	ds.rows = len(records)

	names, err := columnNames(header)
	if err != nil {
		return nil, err
	}
	for i, colName := range names {
		ds.index[colName] = i

		c := &Column{Name: colName, cells: make([]string, len(records))}
		for r, rec := range records {
			if i < len(rec) {
				c.cells[r] = strings.TrimSpace(rec[i])
			}
		}
		classify(c, opt)
		ds.cols = append(ds.cols, c)
	}
	return ds, nil
}

func columnNames(header []string) ([]string, error) {
	names := make([]string, len(header))
	taken := make(map[string]bool, len(header))
	for i, h := range header {
		n := strings.TrimSpace(h)
		if n == "" {
			continue
		}
		if taken[n] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, n)
		}
		taken[n] = true
		names[i] = n
	}
	for i, n := range names {
		if n != "" {
			continue
		}
		base := fmt.Sprintf("Unnamed: %d", i)
		n = base
		for k := 1; taken[n]; k++ {
			n = fmt.Sprintf("%s.%d", base, k)
		}
		taken[n] = true
		names[i] = n
	}
	return names, nil
}

// classify marks c numeric when it has at least one value and every present
// cell parses as a number.
func classify(c *Column, opt Options) {
	nums := make([]float64, len(c.cells))
	present := 0
	for i, v := range c.cells {
		if isMissing(v) {
			nums[i] = math.NaN()
			continue
		}
		x, ok := parseNumeric(v, opt)
		if !ok {
			c.Kind = KindOther
			return
		}
		nums[i] = x
		present++
	}
	if present == 0 {
		c.Kind = KindOther
		return
	}
	c.Kind = KindNumeric
	c.nums = nums
}

// Rows returns the number of loaded data rows.
func (d *Dataset) Rows() int { return d.rows }

// Columns returns the columns in file order.
func (d *Dataset) Columns() []*Column {
	return append([]*Column(nil), d.cols...)
}

// Column looks a column up by name.
func (d *Dataset) Column(name string) (*Column, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.cols[i], true
}

// Names returns column names in file order.
func (d *Dataset) Names() []string {
	out := make([]string, len(d.cols))
	for i, c := range d.cols {
		out[i] = c.Name
	}
	return out
}

// IsNumeric reports whether the named column exists and is numeric.
func (d *Dataset) IsNumeric(name string) bool {
	c, ok := d.Column(name)
	return ok && c.Kind == KindNumeric
}

// Values returns a copy of the named column's cells.
func (d *Dataset) Values(name string) ([]any, bool) {
	c, ok := d.Column(name)
	if !ok {
		return nil, false
	}
	return c.Values(), true
}

// Head returns up to n rows of raw cells.
func (d *Dataset) Head(n int) [][]string {
	if n > d.rows || n < 0 {
		n = d.rows
	}
	out := make([][]string, n)
	for r := 0; r < n; r++ {
		row := make([]string, len(d.cols))
		for j, c := range d.cols {
			row[j] = c.cells[r]
		}
		out[r] = row
	}
	return out
}
