// core/signal/wiggle.go
package signal

import (
	"context"

	"covtable-core/regions"
	"covtable-core/sigio"
)

// Wiggle extracts mean window signal from fixedStep/variableStep wiggle
// tracks. The format has no sidecar index; files are scanned whole.
type Wiggle struct{}

func (Wiggle) EnsureIndex(string) error { return nil }

func (Wiggle) Extract(ctx context.Context, bedPath, trackPath string, opt Options) ([]regions.Region, []float64, error) {
	regs, err := readRegions(ctx, bedPath)
	if err != nil {
		return nil, nil, err
	}
	prof, err := sigio.ReadWig(trackPath)
	if err != nil {
		return nil, nil, err
	}
	return regs, windowMeans(prof, regs, opt.Window), nil
}
