// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"covtable-core/table"
	"covtable/internal/config"
	"covtable/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Inputs
	PeaksFile  string
	TrackFiles []string

	// Extraction
	Window    int
	RmDup     bool
	RmRepeats bool

	// Normalization
	Log   bool
	Scale bool

	// Row selection
	Top       int
	TopMethod string
	Seed      int64

	// Performance
	Threads int

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: per-region coverage table across signal tracks

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Environment overrides (COVTABLE_*) supply defaults for threads, seed and
// quiet; an explicit flag always wins.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	env, err := config.Load()
	if err != nil {
		return Options{}, err
	}

	var opt Options
	var help bool

	// Inputs
	fs.StringVar(&opt.PeaksFile, "peaks", "", "BED file with regions of interest [*]")
	var data stringSlice
	fs.Var(&data, "data", "signal track file (repeatable) [*]")

	// Extraction
	fs.IntVar(&opt.Window, "window", 200, "window size centered on each region (bp) [200]")
	fs.BoolVar(&opt.RmDup, "rmdup", true, "remove duplicate reads [true]")
	fs.BoolVar(&opt.RmRepeats, "rmrepeats", true, "remove low-quality reads [true]")

	// Normalization
	fs.BoolVar(&opt.Log, "log", false, "log(1+x) transform all values [false]")
	fs.BoolVar(&opt.Scale, "scale", false, "standardize each column to mean 0, sd 1 [false]")

	// Row selection
	fs.IntVar(&opt.Top, "top", 0, "keep only the top N regions (0 = all) [0]")
	fs.StringVar(&opt.TopMethod, "topmethod", table.MethodVar,
		"ranking for -top: var | std | mean | random ["+table.MethodVar+"]")
	fs.Int64Var(&opt.Seed, "seed", config.Int64Default(env.Seed, 42),
		"seed for random region selection [42]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", config.IntDefault(env.Threads, 12),
		"number of parallel extraction workers [12]")

	fs.BoolVar(&opt.Quiet, "quiet", config.BoolDefault(env.Quiet, false),
		"suppress progress output [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.TrackFiles = data

	// Validation
	if opt.PeaksFile == "" {
		return opt, errors.New("-peaks is required")
	}
	if len(opt.TrackFiles) == 0 {
		return opt, errors.New("at least one -data file is required")
	}
	if opt.Window <= 0 {
		return opt, errors.New("-window must be > 0")
	}
	if opt.Top < 0 {
		return opt, errors.New("-top must be ≥ 0")
	}
	if !table.ValidMethod(opt.TopMethod) {
		return opt, fmt.Errorf("invalid -topmethod %q (want var, std, mean or random)", opt.TopMethod)
	}
	if opt.Threads < 1 {
		return opt, errors.New("-threads must be ≥ 1")
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
