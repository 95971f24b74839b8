// core/sigio/profile.go
package sigio

import "sort"

// Run is a constant-valued stretch of signal over the half-open interval
// [From, To). Positions are 0-based.
type Run struct {
	From  int
	To    int
	Value float64
}

// Profile holds the signal runs of one track file, grouped by chromosome.
// Runs within a chromosome are kept sorted by From.
type Profile struct {
	runs map[string][]Run
}

func NewProfile() *Profile {
	return &Profile{runs: make(map[string][]Run)}
}

func (p *Profile) add(chrom string, r Run) {
	p.runs[chrom] = append(p.runs[chrom], r)
}

// sortRuns restores the per-chromosome ordering invariant after a bulk load.
func (p *Profile) sortRuns() {
	for _, rs := range p.runs {
		sort.Slice(rs, func(i, j int) bool { return rs[i].From < rs[j].From })
	}
}

// Runs returns the runs recorded for chrom, in ascending From order.
func (p *Profile) Runs(chrom string) []Run {
	return p.runs[chrom]
}

// Chroms returns the number of chromosomes with recorded signal.
func (p *Profile) Chroms() int {
	return len(p.runs)
}

// Mean returns the average signal over [from, to). Bases not covered by any
// run contribute zero; an empty interval yields zero.
func (p *Profile) Mean(chrom string, from, to int) float64 {
	if to <= from {
		return 0
	}
	rs := p.runs[chrom]
	i := sort.Search(len(rs), func(k int) bool { return rs[k].To > from })
	sum := 0.0
	for ; i < len(rs) && rs[i].From < to; i++ {
		lo, hi := rs[i].From, rs[i].To
		if lo < from {
			lo = from
		}
		if hi > to {
			hi = to
		}
		if hi > lo {
			sum += rs[i].Value * float64(hi-lo)
		}
	}
	return sum / float64(to-from)
}
