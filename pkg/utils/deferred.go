// Package utils holds small helpers shared by the CLI entry point.
package utils

import (
	"io"
	"sync"
)

// DeferredWriter buffers writes until Flush is called. Each Write is kept as a
// separate record so line oriented consumers such as zerolog.ConsoleWriter
// receive one event per call when replayed.
type DeferredWriter struct {
	mu      sync.Mutex
	records [][]byte
}

// Write stores a copy of p.
func (d *DeferredWriter) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	rec := make([]byte, len(p))
	copy(rec, p)
	d.records = append(d.records, rec)
	return len(p), nil
}

// Len returns the number of buffered records.
func (d *DeferredWriter) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.records)
}

// Flush replays the buffered records to w in order and clears the buffer.
func (d *DeferredWriter) Flush(w io.Writer) error {
	d.mu.Lock()
	records := d.records
	d.records = nil
	d.mu.Unlock()

	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
