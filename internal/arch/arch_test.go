// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// TestImportBoundaries keeps the layering honest: domain and output layers
// must not reach up into orchestration or the CLI.
func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"covtable/internal/loader": {
			"covtable/internal/app", "covtable/internal/cli",
			"covtable/internal/writers", "covtable/internal/output", "covtable/cmd/",
		},
		"covtable/internal/output": {
			"covtable/internal/app", "covtable/internal/cli",
			"covtable/internal/loader", "covtable/cmd/",
		},
		"covtable/internal/writers": {
			"covtable/internal/app", "covtable/internal/cli",
			"covtable/internal/loader", "covtable/cmd/",
		},
		"covtable/internal/cli": {
			"covtable/internal/app", "covtable/internal/loader", "covtable/cmd/",
		},
		"covtable/internal/apperr": {
			"covtable/internal/",
		},
	}

	for {
		var p pkg
		if err := dec.Decode(&p); err != nil {
			if err == io.EOF {
				break
			}
			t.Fatalf("decode: %v", err)
		}
		if p.Standard {
			continue
		}
		banned, ok := bans[p.ImportPath]
		if !ok {
			continue
		}
		for _, imp := range p.Imports {
			for _, b := range banned {
				if imp == b || (strings.HasSuffix(b, "/") && strings.HasPrefix(imp, b)) {
					t.Errorf("%s must not import %s", p.ImportPath, imp)
				}
			}
		}
	}
}
