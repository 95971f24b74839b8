// core/regions/regions.go
package regions

import "fmt"

// Region is a half-open genomic interval [Start, End) on a chromosome.
// The first position on a chromosome is numbered 0.
type Region struct {
	Chrom string
	Start int
	End   int
}

// Label renders the canonical row identifier for a region.
func (r Region) Label() string {
	return fmt.Sprintf("%s:%d-%d", r.Chrom, r.Start, r.End)
}

// Center returns the midpoint of the region.
func (r Region) Center() int {
	return (r.Start + r.End) / 2
}

// Window returns a size-wide interval split evenly around the region center,
// clamped at position 0. A window smaller than 2 collapses to the single
// base at the center.
func (r Region) Window(size int) (from, to int) {
	c := r.Center()
	from = c - size/2
	to = c + (size - size/2)
	if from < 0 {
		from = 0
	}
	if to <= from {
		to = from + 1
	}
	return from, to
}
