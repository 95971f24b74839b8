// core/table/table.go
package table

import (
	"fmt"

	"covtable-core/regions"
)

// Column is one track's signal vector with its derived name.
type Column struct {
	Name   string
	Values []float64
}

// Table is the region-by-track signal matrix. Labels index the rows in
// region order; Names and Cols hold the columns in assembly order.
type Table struct {
	Labels []string
	Names  []string
	Cols   [][]float64
}

// Assemble builds a Table from the canonical region sequence and one column
// per track. Column names must be unique and every vector must have exactly
// one value per region.
func Assemble(regs []regions.Region, cols []Column) (*Table, error) {
	labels := make([]string, len(regs))
	for i, r := range regs {
		labels[i] = r.Label()
	}

	t := &Table{Labels: labels}
	seen := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("duplicate track name %q after extension stripping", c.Name)
		}
		seen[c.Name] = struct{}{}
		if len(c.Values) != len(regs) {
			return nil, fmt.Errorf("track %q: %d values for %d regions", c.Name, len(c.Values), len(regs))
		}
		t.Names = append(t.Names, c.Name)
		t.Cols = append(t.Cols, c.Values)
	}
	return t, nil
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return len(t.Labels) }

// Row returns the values of row i across all columns, in column order.
func (t *Table) Row(i int) []float64 {
	vals := make([]float64, len(t.Cols))
	for j, col := range t.Cols {
		vals[j] = col[i]
	}
	return vals
}
