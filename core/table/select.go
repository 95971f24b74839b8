// core/table/select.go
package table

import (
	"fmt"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Row-selection methods for Select.
const (
	MethodVar    = "var"
	MethodStd    = "std"
	MethodMean   = "mean"
	MethodRandom = "random"
)

// ValidMethod reports whether m names a known selection method.
func ValidMethod(m string) bool {
	switch m {
	case MethodVar, MethodStd, MethodMean, MethodRandom:
		return true
	}
	return false
}

// Select reduces the table to top rows in place. Ranking methods keep the
// rows with the highest row statistic; ties follow a stable ascending sort
// of the key, so equal-valued rows keep source order. "random" draws an
// unweighted seeded sample without replacement. top <= 0 is a no-op; top
// beyond the row count keeps every row.
func (t *Table) Select(top int, method string, seed int64) error {
	if !ValidMethod(method) {
		return fmt.Errorf("unknown selection method %q (want var, std, mean or random)", method)
	}
	n := t.Rows()
	if top <= 0 || top >= n {
		return nil
	}

	var keep []int
	if method == MethodRandom {
		keep = rand.New(rand.NewSource(seed)).Perm(n)[:top]
	} else {
		keys := make([]float64, n)
		for i := 0; i < n; i++ {
			row := t.Row(i)
			switch method {
			case MethodVar:
				keys[i] = stat.PopVariance(row, nil)
			case MethodStd:
				keys[i] = stat.PopStdDev(row, nil)
			case MethodMean:
				keys[i] = stat.Mean(row, nil)
			}
		}
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool { return keys[order[a]] < keys[order[b]] })
		keep = order[n-top:]
	}

	t.subset(keep)
	return nil
}

// subset rewrites the table to the given row indices, in the given order.
func (t *Table) subset(idx []int) {
	labels := make([]string, len(idx))
	for k, i := range idx {
		labels[k] = t.Labels[i]
	}
	cols := make([][]float64, len(t.Cols))
	for j, col := range t.Cols {
		sub := make([]float64, len(idx))
		for k, i := range idx {
			sub[k] = col[i]
		}
		cols[j] = sub
	}
	t.Labels = labels
	t.Cols = cols
}
