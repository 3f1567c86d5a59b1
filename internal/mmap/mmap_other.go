//go:build !unix

package mmap

import (
	"fmt"
	"os"
)

// Open falls back to reading the whole file into memory on platforms
// without a usable mmap. Access semantics match the mapped variant; only
// the residency behavior differs.
func Open(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	if len(data) == 0 {
		data = nil
	}
	return &Mapping{data: data}, nil
}

// Close releases the buffered payload. Calling it again is a no-op.
func (m *Mapping) Close() error {
	m.data = nil
	return nil
}
