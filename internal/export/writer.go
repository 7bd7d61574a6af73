// Package export writes finished runs as SVG, CSV or JSON.
package export

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// Writer wraps w in a zstd encoder when compress is set. Close flushes the
// encoder but never closes w.
func Writer(w io.Writer, compress bool) (io.WriteCloser, error) {
	if !compress {
		return nopCloser{w}, nil
	}
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return nil, err
	}
	return enc, nil
}
