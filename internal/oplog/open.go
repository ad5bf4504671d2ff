package oplog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// logReader closes the decompressor and the underlying file together.
type logReader struct {
	io.Reader
	closers []func() error
}

func (r *logReader) Close() error {
	var first error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// openLog opens path for reading. Rotated logs ending in .gz or .zst are
// decompressed on the fly.
func openLog(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", path, err)
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		gzReader, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("gzip log %s: %w", path, err)
		}
		return &logReader{Reader: gzReader, closers: []func() error{file.Close, gzReader.Close}}, nil
	case strings.HasSuffix(path, ".zst"):
		zstdReader, err := zstd.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("zstd log %s: %w", path, err)
		}
		release := func() error {
			zstdReader.Close()
			return nil
		}
		return &logReader{Reader: zstdReader, closers: []func() error{file.Close, release}}, nil
	default:
		return file, nil
	}
}
