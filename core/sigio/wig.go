// core/sigio/wig.go
package sigio

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"covtable-core/regions"
)

// wiggle declaration state; positions in wiggle files are 1-based.
type wigState struct {
	variable bool
	chrom    string
	pos      int // next 0-based start for fixedStep
	step     int
	span     int
}

func parseWigDecl(line string) (wigState, error) {
	st := wigState{step: 1, span: 1}
	fields := strings.Fields(line)
	st.variable = fields[0] == "variableStep"
	for _, f := range fields[1:] {
		k, v, ok := strings.Cut(f, "=")
		if !ok {
			return st, fmt.Errorf("bad declaration field %q", f)
		}
		switch k {
		case "chrom":
			st.chrom = v
		case "start":
			n, err := strconv.Atoi(v)
			if err != nil {
				return st, fmt.Errorf("bad start %q: %v", v, err)
			}
			st.pos = n - 1
		case "step":
			n, err := strconv.Atoi(v)
			if err != nil {
				return st, fmt.Errorf("bad step %q: %v", v, err)
			}
			st.step = n
		case "span":
			n, err := strconv.Atoi(v)
			if err != nil {
				return st, fmt.Errorf("bad span %q: %v", v, err)
			}
			st.span = n
		}
	}
	if st.chrom == "" {
		return st, fmt.Errorf("declaration missing chrom")
	}
	return st, nil
}

// ReadWig scans a wiggle file (fixedStep/variableStep, gzip-aware) into a
// Profile. track and comment lines are skipped.
func ReadWig(path string) (*Profile, error) {
	rc, err := regions.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	p := NewProfile()
	var st wigState
	inBlock := false

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r")
		if skippable(line) {
			continue
		}
		if strings.HasPrefix(line, "fixedStep") || strings.HasPrefix(line, "variableStep") {
			st, err = parseWigDecl(line)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %v", path, ln, err)
			}
			inBlock = true
			continue
		}
		if !inBlock {
			return nil, fmt.Errorf("%s:%d: data before step declaration", path, ln)
		}
		if st.variable {
			f := strings.Fields(line)
			if len(f) != 2 {
				return nil, fmt.Errorf("%s:%d: expected position and value", path, ln)
			}
			pos, err := strconv.Atoi(f[0])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad position %q: %v", path, ln, f[0], err)
			}
			v, err := strconv.ParseFloat(f[1], 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad value %q: %v", path, ln, f[1], err)
			}
			p.add(st.chrom, Run{From: pos - 1, To: pos - 1 + st.span, Value: v})
		} else {
			v, err := strconv.ParseFloat(line, 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad value %q: %v", path, ln, line, err)
			}
			p.add(st.chrom, Run{From: st.pos, To: st.pos + st.span, Value: v})
			st.pos += st.step
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %v", path, err)
	}
	p.sortRuns()
	return p, nil
}
