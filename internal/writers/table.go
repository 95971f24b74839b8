// internal/writers/table.go
package writers

import (
	"io"

	"covtable-core/table"
	"covtable/internal/output"
)

// StartTableWriter spins up a writer goroutine for the finished table. The
// caller sends the table (at most one is expected), closes the channel and
// reads the final error.
func StartTableWriter(out io.Writer, meta output.Meta) (chan<- *table.Table, <-chan error) {
	in := make(chan *table.Table, 1)
	errCh := make(chan error, 1)

	go func() {
		var err error
		for tab := range in {
			if err == nil {
				err = output.WriteTable(out, meta, tab)
			}
		}
		errCh <- err
	}()

	return in, errCh
}
