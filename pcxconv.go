/*
Package pcxconv converts between 8-bit PCX images and ordinary RGBA raster
formats, either one file at a time or in batches.
*/
package pcxconv

import (
	"io"
	"log"
	"runtime"
)

// Converter performs file and batch conversions
type Converter struct {
	logger  *log.Logger
	workers int
}

// New returns a Converter that logs to logger and runs up to workers
// conversions in parallel. A nil logger discards all output and a
// non-positive worker count uses one worker per CPU.
func New(logger *log.Logger, workers int) *Converter {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Converter{
		logger:  logger,
		workers: workers,
	}
}
