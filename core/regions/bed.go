// core/regions/bed.go
package regions

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// ReadBED reads tab-delimited genomic intervals from a BED-like file
// (gzip and "-" for stdin are handled). Only the first three columns are
// consumed; extra columns are ignored. Comment, track and browser lines
// are skipped. Order is preserved.
func ReadBED(path string) ([]Region, error) {
	rc, err := OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	var out []Region
	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "#") ||
			strings.HasPrefix(line, "track") || strings.HasPrefix(line, "browser") {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) < 3 {
			return nil, fmt.Errorf("%s:%d: expected at least 3 tab-delimited columns", path, ln)
		}
		start, err := strconv.Atoi(f[1])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad start %q: %v", path, ln, f[1], err)
		}
		end, err := strconv.Atoi(f[2])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad end %q: %v", path, ln, f[2], err)
		}
		if end < start {
			return nil, fmt.Errorf("%s:%d: end %d before start %d", path, ln, end, start)
		}
		out = append(out, Region{Chrom: f[0], Start: start, End: end})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %v", path, err)
	}
	return out, nil
}
