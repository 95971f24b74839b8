// core/sigio/bedgraph.go
package sigio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"covtable-core/regions"
)

// parseBedGraphLine parses "chrom<TAB>from<TAB>to<TAB>value".
func parseBedGraphLine(line string) (string, Run, error) {
	f := strings.Split(line, "\t")
	if len(f) < 4 {
		return "", Run{}, fmt.Errorf("expected 4 tab-delimited columns, got %d", len(f))
	}
	from, err := strconv.Atoi(f[1])
	if err != nil {
		return "", Run{}, fmt.Errorf("bad start %q: %v", f[1], err)
	}
	to, err := strconv.Atoi(f[2])
	if err != nil {
		return "", Run{}, fmt.Errorf("bad end %q: %v", f[2], err)
	}
	v, err := strconv.ParseFloat(f[3], 64)
	if err != nil {
		return "", Run{}, fmt.Errorf("bad value %q: %v", f[3], err)
	}
	return f[0], Run{From: from, To: to, Value: v}, nil
}

func skippable(line string) bool {
	return line == "" || strings.HasPrefix(line, "#") ||
		strings.HasPrefix(line, "track") || strings.HasPrefix(line, "browser")
}

// ReadBedGraph scans a whole bedGraph file (gzip-aware) into a Profile.
func ReadBedGraph(path string) (*Profile, error) {
	rc, err := regions.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return scanBedGraph(rc, path)
}

func scanBedGraph(r io.Reader, path string) (*Profile, error) {
	p := NewProfile()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r")
		if skippable(line) {
			continue
		}
		chrom, run, err := parseBedGraphLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %v", path, ln, err)
		}
		p.add(chrom, run)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %v", path, err)
	}
	p.sortRuns()
	return p, nil
}

// ReadBedGraphChroms loads only the named chromosomes using a sidecar index
// to seek directly to each chromosome's block. Falls back to a full scan when
// the index is unusable: nil (e.g. gzip input, which cannot be seeked) or
// marked non-seekable because chromosome blocks are interleaved.
func ReadBedGraphChroms(path string, idx *Index, chroms []string) (*Profile, error) {
	if !idx.Seekable() {
		return ReadBedGraph(path)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	p := NewProfile()
	seen := make(map[string]struct{}, len(chroms))
	for _, chrom := range chroms {
		if _, dup := seen[chrom]; dup {
			continue
		}
		seen[chrom] = struct{}{}
		off, ok := idx.Offsets[chrom]
		if !ok {
			continue // no signal on this chromosome
		}
		if _, err := fh.Seek(off, io.SeekStart); err != nil {
			return nil, fmt.Errorf("seek %s: %v", path, err)
		}
		sc := bufio.NewScanner(fh)
		sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
		for sc.Scan() {
			line := strings.TrimRight(sc.Text(), "\r")
			if skippable(line) {
				continue
			}
			c, run, err := parseBedGraphLine(line)
			if err != nil {
				return nil, fmt.Errorf("%s: %v", path, err)
			}
			if c != chrom {
				break // left this chromosome's block
			}
			p.add(chrom, run)
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read %s: %v", path, err)
		}
	}
	p.sortRuns()
	return p, nil
}
