// core/sigio/index.go
package sigio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Index is a sidecar chromosome index for a plain-text bedGraph file: the
// byte offset of the first data line of each chromosome block. It lets a
// loader seek straight to the chromosomes it needs. Offsets are only valid
// when each chromosome's lines form one contiguous block; a file with
// interleaved blocks is recorded as non-seekable and read by full scan.
type Index struct {
	Offsets     map[string]int64 `json:"offsets,omitempty"`
	Interleaved bool             `json:"interleaved,omitempty"`
}

// Seekable reports whether the per-chromosome offsets may be used.
func (idx *Index) Seekable() bool {
	return idx != nil && !idx.Interleaved
}

// IndexPath returns the sidecar path for a signal file.
func IndexPath(path string) string { return path + ".cix" }

// BuildIndex scans path once and records each chromosome's first offset.
func BuildIndex(path string) (*Index, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	idx := &Index{Offsets: make(map[string]int64)}
	br := bufio.NewReader(fh)
	var off int64
	last := ""
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			trimmed := strings.TrimRight(line, "\r\n")
			if !skippable(trimmed) {
				chrom, _, found := strings.Cut(trimmed, "\t")
				if found {
					if _, ok := idx.Offsets[chrom]; !ok {
						idx.Offsets[chrom] = off
					} else if chrom != last {
						// chromosome reappears after another block:
						// offsets cannot bound the blocks, so seeking
						// would silently drop the later lines
						return &Index{Interleaved: true}, nil
					}
					last = chrom
				}
			}
			off += int64(len(line))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("index %s: %v", path, err)
		}
	}
	return idx, nil
}

// ReadIndex loads a sidecar index.
func ReadIndex(path string) (*Index, error) {
	data, err := os.ReadFile(IndexPath(path))
	if err != nil {
		return nil, err
	}
	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parse %s: %v", IndexPath(path), err)
	}
	return &idx, nil
}

// WriteIndex persists idx next to the signal file.
func WriteIndex(path string, idx *Index) error {
	data, err := json.Marshal(idx)
	if err != nil {
		return err
	}
	return os.WriteFile(IndexPath(path), data, 0o644)
}

// EnsureIndex returns the sidecar index for path, building and persisting it
// when missing or stale. A sidecar older than its track file holds offsets
// for content that no longer exists, so it is rebuilt rather than trusted;
// an unreadable sidecar is rebuilt the same way. Building is idempotent and
// local to the one track file.
func EnsureIndex(path string) (*Index, error) {
	ti, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if si, err := os.Stat(IndexPath(path)); err == nil && !si.ModTime().Before(ti.ModTime()) {
		if idx, err := ReadIndex(path); err == nil {
			return idx, nil
		}
	} else if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	idx, err := BuildIndex(path)
	if err != nil {
		return nil, err
	}
	if err := WriteIndex(path, idx); err != nil {
		return nil, err
	}
	return idx, nil
}
