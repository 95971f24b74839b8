package apperr

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestExitCode(t *testing.T) {
	if got := ExitCode(nil); got != ExitOK {
		t.Errorf("nil = %d", got)
	}
	if got := ExitCode(Config("bad flag")); got != ExitConfig {
		t.Errorf("config = %d", got)
	}
	wrapped := fmt.Errorf("while loading: %w", Config("missing file"))
	if got := ExitCode(wrapped); got != ExitConfig {
		t.Errorf("wrapped config = %d", got)
	}
	if got := ExitCode(ExtractError{Track: "a.bedgraph", Cause: errors.New("corrupt")}); got != ExitRuntime {
		t.Errorf("extract = %d", got)
	}
	if got := ExitCode(context.Canceled); got != ExitCanceled {
		t.Errorf("canceled = %d", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	if !errors.Is(ExtractError{Track: "t", Cause: cause}, cause) {
		t.Error("ExtractError must unwrap to its cause")
	}
	if !errors.Is(ComputeError{Cause: cause}, cause) {
		t.Error("ComputeError must unwrap to its cause")
	}
}
