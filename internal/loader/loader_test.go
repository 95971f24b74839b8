package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"covtable-core/regions"
	"covtable-core/signal"
)

func write(t *testing.T, dir, name, data string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return fn
}

func testInputs(t *testing.T) (string, []string) {
	t.Helper()
	dir := t.TempDir()
	bed := write(t, dir, "peaks.bed", "chr1\t100\t300\nchr1\t500\t700\nchr2\t0\t200\n")
	t1 := write(t, dir, "one.bedgraph",
		"chr1\t0\t1000\t1\nchr2\t0\t1000\t2\n")
	t2 := write(t, dir, "two.bedgraph",
		"chr1\t0\t1000\t4\nchr2\t0\t1000\t5\n")
	return bed, []string{t1, t2}
}

func testConfig(bed string, tracks []string) Config {
	return Config{
		PeaksFile:  bed,
		TrackFiles: tracks,
		Options:    signal.DefaultOptions(),
		Workers:    4,
		Log:        zerolog.Nop(),
	}
}

func TestLoad(t *testing.T) {
	bed, tracks := testInputs(t)
	res, err := Load(context.Background(), testConfig(bed, tracks))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(res.Regions) != 3 {
		t.Fatalf("regions = %d, want 3", len(res.Regions))
	}
	if len(res.Columns) != 2 {
		t.Fatalf("columns = %d, want 2", len(res.Columns))
	}
	if res.Columns[0].Name != "one" || res.Columns[1].Name != "two" {
		t.Errorf("names = %q, %q", res.Columns[0].Name, res.Columns[1].Name)
	}
	if !reflect.DeepEqual(res.Columns[0].Values, []float64{1, 1, 2}) {
		t.Errorf("col one = %v", res.Columns[0].Values)
	}
	if !reflect.DeepEqual(res.Columns[1].Values, []float64{4, 4, 5}) {
		t.Errorf("col two = %v", res.Columns[1].Values)
	}
}

func TestLoadParallelMatchesSequential(t *testing.T) {
	bed, tracks := testInputs(t)
	cfg := testConfig(bed, tracks)

	par, err := load(context.Background(), cfg, parallelRunner{workers: 4}, sequentialRunner{})
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}
	seq, err := load(context.Background(), cfg, sequentialRunner{}, sequentialRunner{})
	if err != nil {
		t.Fatalf("sequential: %v", err)
	}
	if !reflect.DeepEqual(par, seq) {
		t.Error("parallel and sequential loads differ")
	}
}

func TestLoadMissingTrackFailsBeforeExtraction(t *testing.T) {
	bed, tracks := testInputs(t)
	tracks = append(tracks, filepath.Join(t.TempDir(), "missing.bedgraph"))
	_, err := Load(context.Background(), testConfig(bed, tracks))
	if err == nil {
		t.Fatal("expected error for missing track")
	}
	// preflight must fail before any extraction: the good tracks keep
	// their directory free of sidecar indexes
	if _, serr := os.Stat(tracks[0] + ".cix"); serr == nil {
		t.Error("extraction side effects found despite failed preflight")
	}
}

func TestLoadUnknownFormat(t *testing.T) {
	bed, tracks := testInputs(t)
	bad := write(t, t.TempDir(), "t.xyz", "chr1\t0\t10\t1\n")
	_, err := Load(context.Background(), testConfig(bed, append(tracks, bad)))
	if err == nil {
		t.Fatal("expected error for unknown track format")
	}
}

// failing runner for fallback tests
type brokenRunner struct{}

func (brokenRunner) Name() string { return "broken" }
func (brokenRunner) Run(context.Context, int, func(context.Context, int) error) error {
	return fmt.Errorf("%w: pool exploded", ErrDispatch)
}

func TestLoadFallsBackOnDispatchFailure(t *testing.T) {
	bed, tracks := testInputs(t)
	cfg := testConfig(bed, tracks)

	res, err := load(context.Background(), cfg, brokenRunner{}, sequentialRunner{})
	if err != nil {
		t.Fatalf("fallback load: %v", err)
	}
	if len(res.Columns) != 2 {
		t.Fatalf("columns = %d, want 2", len(res.Columns))
	}
}

func TestLoadInvalidWorkerCountFallsBack(t *testing.T) {
	bed, tracks := testInputs(t)
	cfg := testConfig(bed, tracks)
	cfg.Workers = 0 // dispatch-level misconfiguration, not a task error

	if _, err := Load(context.Background(), cfg); err != nil {
		t.Fatalf("expected sequential fallback to succeed, got %v", err)
	}
}

func TestLoadTrackErrorAborts(t *testing.T) {
	bed, tracks := testInputs(t)
	corrupt := write(t, filepath.Dir(tracks[0]), "bad.bedgraph", "chr1\tnot\ta\tnumber\n")
	_, err := Load(context.Background(), testConfig(bed, append(tracks, corrupt)))
	if err == nil {
		t.Fatal("expected extraction error to abort the load")
	}
	if errors.Is(err, ErrDispatch) {
		t.Error("task error must not be reported as dispatch failure")
	}
}

func TestSameRegions(t *testing.T) {
	bed, tracks := testInputs(t)
	res, err := Load(context.Background(), testConfig(bed, tracks))
	if err != nil {
		t.Fatal(err)
	}
	// canonical order comes from the first track
	if res.Regions[0].Label() != "chr1:100-300" {
		t.Errorf("canonical order broken: %v", res.Regions[0].Label())
	}

	a := res.Regions
	if err := sameRegions(a, a[:2]); err == nil {
		t.Error("expected count mismatch error")
	}
	b := append([]regions.Region(nil), a...)
	b[0], b[1] = b[1], b[0]
	if err := sameRegions(a, b); err == nil {
		t.Error("expected order mismatch error")
	}
}
