// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"covtable-core/table"
)

// Meta is the run description written as the commented header.
type Meta struct {
	Version    string
	PeaksFile  string
	TrackFiles []string
	Window     int
	RmDup      bool
	RmRepeats  bool
	Log        bool
	Scale      bool
	Top        int
	TopMethod  string
}

// WriteTable renders the metadata header, the track-name header row and one
// line per region, values fixed at 5 decimal places.
func WriteTable(w io.Writer, meta Meta, tab *table.Table) error {
	if err := writeMeta(w, meta); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "region"); err != nil {
		return err
	}
	for _, name := range tab.Names {
		if _, err := fmt.Fprintf(w, "\t%s", name); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for i, label := range tab.Labels {
		if _, err := fmt.Fprint(w, label); err != nil {
			return err
		}
		for _, col := range tab.Cols {
			if _, err := fmt.Fprintf(w, "\t%.5f", col[i]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func writeMeta(w io.Writer, m Meta) error {
	if _, err := fmt.Fprintf(w, "# covtable v%s\n# peaks: %s\n", m.Version, m.PeaksFile); err != nil {
		return err
	}
	for _, f := range m.TrackFiles {
		if _, err := fmt.Fprintf(w, "# data: %s\n", f); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "# window: %d\n# rmdup: %t\n# rmrepeats: %t\n# log: %t\n# scale: %t\n",
		m.Window, m.RmDup, m.RmRepeats, m.Log, m.Scale)
	if err != nil {
		return err
	}
	if m.Top > 0 {
		if _, err := fmt.Fprintf(w, "# top: %d (method: %s)\n", m.Top, m.TopMethod); err != nil {
			return err
		}
	}
	return nil
}
