// internal/loader/loader.go
package loader

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"covtable-core/regions"
	"covtable-core/signal"
	"covtable-core/table"
	"covtable/internal/apperr"
)

// Config controls one table load.
type Config struct {
	PeaksFile  string
	TrackFiles []string
	Options    signal.Options
	Workers    int
	Log        zerolog.Logger
}

// Result is the loader output: the canonical region sequence plus one named
// signal column per track, in input order.
type Result struct {
	Regions []regions.Region
	Columns []table.Column
}

type trackJob struct {
	path string
	ext  signal.Extractor
}

type trackResult struct {
	regs []regions.Region
	vals []float64
}

// Load runs the full extraction: preflight checks, index creation, parallel
// extraction with sequential fallback, and region-order validation.
func Load(ctx context.Context, cfg Config) (*Result, error) {
	return load(ctx, cfg, parallelRunner{workers: cfg.Workers}, sequentialRunner{})
}

func load(ctx context.Context, cfg Config, par, seq runner) (*Result, error) {
	jobs, err := preflight(cfg)
	if err != nil {
		return nil, err
	}

	run := func(r runner) ([]trackResult, error) {
		// fresh state per attempt; a fallback re-runs every track
		cfg.Log.Debug().Str("strategy", r.Name()).Int("tracks", len(jobs)).Msg("dispatching extraction")
		res := make([]trackResult, len(jobs))
		err := r.Run(ctx, len(jobs), func(ctx context.Context, i int) error {
			j := jobs[i]
			regs, vals, err := j.ext.Extract(ctx, cfg.PeaksFile, j.path, cfg.Options)
			if err != nil {
				return apperr.ExtractError{Track: j.path, Cause: err}
			}
			cfg.Log.Debug().Str("track", j.path).Int("regions", len(regs)).Msg("extracted")
			res[i] = trackResult{regs: regs, vals: vals}
			return nil
		})
		return res, err
	}

	results, err := run(par)
	if errors.Is(err, ErrDispatch) {
		cfg.Log.Warn().Err(err).Str("fallback", seq.Name()).Msg("extraction dispatch failed")
		results, err = run(seq)
	}
	if err != nil {
		return nil, err
	}

	// canonical region order comes from the first track; the rest must agree
	canonical := results[0].regs
	for i := 1; i < len(results); i++ {
		if err := sameRegions(canonical, results[i].regs); err != nil {
			return nil, apperr.ExtractError{Track: jobs[i].path, Cause: err}
		}
	}

	out := &Result{Regions: canonical}
	for i, j := range jobs {
		out.Columns = append(out.Columns, table.Column{
			Name:   signal.TrackName(j.path),
			Values: results[i].vals,
		})
	}
	return out, nil
}

// preflight validates every input path and ensures track indexes before any
// extraction starts. A missing file aborts the run here.
func preflight(cfg Config) ([]trackJob, error) {
	if len(cfg.TrackFiles) == 0 {
		return nil, apperr.Config("no track files given")
	}
	if _, err := os.Stat(cfg.PeaksFile); err != nil {
		return nil, apperr.Config("peaks file %s: %v", cfg.PeaksFile, err)
	}
	// validate every path before touching any track
	jobs := make([]trackJob, 0, len(cfg.TrackFiles))
	for _, path := range cfg.TrackFiles {
		if _, err := os.Stat(path); err != nil {
			return nil, apperr.Config("track file %s: %v", path, err)
		}
		ext, err := signal.ForPath(path)
		if err != nil {
			return nil, apperr.Config("%v", err)
		}
		jobs = append(jobs, trackJob{path: path, ext: ext})
	}
	for _, j := range jobs {
		if err := j.ext.EnsureIndex(j.path); err != nil {
			return nil, apperr.ExtractError{Track: j.path, Cause: err}
		}
	}
	return jobs, nil
}

func sameRegions(a, b []regions.Region) error {
	if len(a) != len(b) {
		return fmt.Errorf("region count disagrees with first track: %d vs %d", len(b), len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			return fmt.Errorf("region order disagrees with first track at %s", a[i].Label())
		}
	}
	return nil
}
