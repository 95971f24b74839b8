// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"covtable-core/signal"
	"covtable-core/table"
	"covtable/internal/apperr"
	"covtable/internal/cli"
	"covtable/internal/cmdutil"
	"covtable/internal/loader"
	"covtable/internal/output"
	"covtable/internal/version"
	"covtable/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("covtable")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return apperr.ExitOK
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return apperr.ExitRuntime
			}
			return apperr.ExitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		_ = outw.Flush()
		return apperr.ExitConfig
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "covtable version %s\n", version.Version)
		if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
			_, _ = fmt.Fprintln(stderr, e)
			return apperr.ExitRuntime
		}
		return apperr.ExitOK
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet)

	res, err := loader.Load(parent, loader.Config{
		PeaksFile:  opts.PeaksFile,
		TrackFiles: opts.TrackFiles,
		Options: signal.Options{
			Window:    opts.Window,
			RmDup:     opts.RmDup,
			RmRepeats: opts.RmRepeats,
		},
		Workers: opts.Threads,
		Log:     log,
	})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return apperr.ExitCode(err)
	}
	log.Info().
		Int("regions", len(res.Regions)).
		Int("tracks", len(res.Columns)).
		Msg("extraction complete")

	tab, err := table.Assemble(res.Regions, res.Columns)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return apperr.ExitRuntime
	}

	if opts.Log {
		if err := tab.Log1p(); err != nil {
			err = apperr.ComputeError{Cause: err}
			_, _ = fmt.Fprintln(stderr, err)
			return apperr.ExitCode(err)
		}
	}
	if opts.Scale {
		if err := tab.Standardize(); err != nil {
			err = apperr.ComputeError{Cause: err}
			_, _ = fmt.Fprintln(stderr, err)
			return apperr.ExitCode(err)
		}
	}
	if opts.Top > 0 {
		if err := tab.Select(opts.Top, opts.TopMethod, opts.Seed); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return apperr.ExitConfig
		}
	}

	inCh, writeErr := writers.StartTableWriter(outw, output.Meta{
		Version:    version.Version,
		PeaksFile:  opts.PeaksFile,
		TrackFiles: opts.TrackFiles,
		Window:     opts.Window,
		RmDup:      opts.RmDup,
		RmRepeats:  opts.RmRepeats,
		Log:        opts.Log,
		Scale:      opts.Scale,
		Top:        opts.Top,
		TopMethod:  opts.TopMethod,
	})
	inCh <- tab
	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return apperr.ExitOK
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return apperr.ExitRuntime
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return apperr.ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return apperr.ExitRuntime
	}
	return apperr.ExitOK
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
