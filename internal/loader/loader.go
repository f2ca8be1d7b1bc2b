// Package loader reads a whole PDF into memory.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var ErrNilReader = errors.New("nil reader")

// Load reads the file at path to completion.
func Load(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	data, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// Read consumes r until EOF. Streams that report a short length up front
// are still read in full.
func Read(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	return io.ReadAll(r)
}
