//go:build unix

package mmap

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Open maps path read-only and advises the kernel that access will be
// random, which discourages read-ahead for scattered window fetches.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open payload: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat payload: %w", err)
	}

	size := info.Size()
	if size == 0 {
		// Mapping a zero-length file is an error on most platforms.
		return &Mapping{f: f}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap payload: %w", err)
	}

	// Best effort; reads work the same without the advice.
	_ = unix.Madvise(data, unix.MADV_RANDOM)

	return &Mapping{data: data, f: f}, nil
}

// Close unmaps the region and closes the file handle. Calling it again is a
// no-op.
func (m *Mapping) Close() error {
	var first error
	if m.data != nil {
		if err := unix.Munmap(m.data); err != nil {
			first = err
		}
		m.data = nil
	}
	if m.f != nil {
		if err := m.f.Close(); err != nil && first == nil {
			first = err
		}
		m.f = nil
	}
	return first
}
