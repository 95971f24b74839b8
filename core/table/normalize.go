// core/table/normalize.go
package table

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Log1p replaces every cell v with ln(1+v). Signal values are coverage
// summaries and assumed non-negative; a cell with 1+v <= 0 is a computation
// error.
func (t *Table) Log1p() error {
	for j, col := range t.Cols {
		for i, v := range col {
			if 1+v <= 0 {
				return fmt.Errorf("log transform: value %g at %s/%s is out of domain",
					v, t.Labels[i], t.Names[j])
			}
			col[i] = math.Log1p(v)
		}
	}
	return nil
}

// Standardize rescales each column to zero mean and unit variance using
// population moments. A zero-variance column has no defined scaling and is
// reported as a computation error.
func (t *Table) Standardize() error {
	for j, col := range t.Cols {
		m := stat.Mean(col, nil)
		sd := stat.PopStdDev(col, nil)
		if sd == 0 || math.IsNaN(sd) {
			return fmt.Errorf("standardize: column %q has zero variance", t.Names[j])
		}
		for i := range col {
			col[i] = (col[i] - m) / sd
		}
	}
	return nil
}
