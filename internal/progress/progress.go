// Package progress reports percentage completion of batch work to a sink.
package progress

import (
	"fmt"
	"io"
)

// Counter emits the percentage of completed work units to a writer, one
// carriage-return-terminated figure per completed unit. It decouples the
// pipeline's loops from console output: the loops call Step, the owner of
// the writer decides where the text goes.
//
// Counter is not safe for concurrent use; the pipeline steps it from a
// single goroutine.
type Counter struct {
	total int
	done  int
	w     io.Writer
}

// NewCounter creates a counter over total units writing to w. A nil writer
// discards the output.
func NewCounter(total int, w io.Writer) *Counter {
	if w == nil {
		w = io.Discard
	}
	return &Counter{total: total, w: w}
}

// Step records one completed unit and emits the updated percentage.
// Stepping a zero-total counter is a no-op.
func (c *Counter) Step() {
	if c.total <= 0 {
		return
	}
	c.done++
	fmt.Fprintf(c.w, "%d%%\r", 100*c.done/c.total)
}
