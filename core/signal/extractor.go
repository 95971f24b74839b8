// core/signal/extractor.go
package signal

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"covtable-core/regions"
)

// Options controls per-region signal extraction.
type Options struct {
	Window    int  // bp summarized around each region center
	RmDup     bool // drop duplicate reads (alignment-backed extractors)
	RmRepeats bool // drop low-quality reads (alignment-backed extractors)
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Window: 200, RmDup: true, RmRepeats: true}
}

// Extractor computes one scalar signal value per region for a single track
// file. Implementations must report regions in the order of the region file
// and return exactly one value per region.
type Extractor interface {
	// Extract reads the region file and the track file and returns the
	// ordered regions plus one mean-signal value per region.
	Extract(ctx context.Context, bedPath, trackPath string, opt Options) ([]regions.Region, []float64, error)

	// EnsureIndex creates the track's index file next to it if the format
	// is indexed and the index is missing. Idempotent.
	EnsureIndex(trackPath string) error
}

// recognized track extensions, compression suffix excluded
var trackExts = []string{".bedgraph", ".bdg", ".bg", ".wig"}

func splitTrackExt(path string) (base, ext string) {
	base = filepath.Base(path)
	if strings.HasSuffix(strings.ToLower(base), ".gz") {
		base = base[:len(base)-len(".gz")]
	}
	for _, e := range trackExts {
		if strings.HasSuffix(strings.ToLower(base), e) {
			return base[:len(base)-len(e)], e
		}
	}
	return strings.TrimSuffix(base, filepath.Ext(base)), strings.ToLower(filepath.Ext(base))
}

// TrackName derives the column name for a track file: the base name with the
// recognized extension (and any .gz suffix) stripped.
func TrackName(path string) string {
	base, _ := splitTrackExt(path)
	return base
}

// ForPath returns the extractor responsible for a track file, chosen by
// file extension.
func ForPath(path string) (Extractor, error) {
	_, ext := splitTrackExt(path)
	switch ext {
	case ".bedgraph", ".bdg", ".bg":
		return BedGraph{}, nil
	case ".wig":
		return Wiggle{}, nil
	default:
		return nil, fmt.Errorf("unsupported track format %q (%s)", ext, path)
	}
}

func readRegions(ctx context.Context, bedPath string) ([]regions.Region, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	regs, err := regions.ReadBED(bedPath)
	if err != nil {
		return nil, err
	}
	return regs, nil
}
