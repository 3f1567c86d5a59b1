// Package mmap provides a scoped, read-only memory mapping of a file.
//
// A Mapping owns its file handle and mapped region exclusively and must
// never be duplicated. Close releases both and is idempotent; Open releases
// any partially acquired resource before returning an error, so a failed
// construction never leaks a descriptor or a mapping.
package mmap

import "os"

// Mapping is a read-only view of a whole file.
type Mapping struct {
	data []byte
	f    *os.File
}

// Data returns the mapped bytes. The slice is valid until Close and must
// not be written to. It is nil for an empty file or after Close.
func (m *Mapping) Data() []byte { return m.data }

// Len returns the mapped length in bytes.
func (m *Mapping) Len() int { return len(m.data) }
