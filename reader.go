package geoslice

import (
	"fmt"

	"github.com/aweris/geoslice/internal/mmap"
)

// Reader provides zero-copy windowed access to a memory-mapped raster
// payload. It owns its mapping and file handle exclusively.
//
// A Reader is safe for concurrent GetWindow calls once constructed: the
// mapping is read-only and never mutated. Close must not race with reads;
// the caller serializes it against all window access. A page fault on first
// touch of a mapped region may transparently block on I/O.
type Reader struct {
	meta Metadata
	m    *mmap.Mapping
}

// Open loads the dataset at base, reading base.json and mapping base.bin.
// It fails if either file is missing or unreadable, if the descriptor's
// dimensions are nonpositive, or if the payload is shorter than the
// descriptor implies (disable the last check with WithoutSizeCheck). No
// resources are leaked on a failed Open.
func Open(base string, opts ...Option) (*Reader, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	meta, err := LoadMetadata(base + ".json")
	if err != nil {
		return nil, err
	}
	if options.StrictMeta {
		if err := meta.validate(); err != nil {
			return nil, err
		}
	}
	if meta.Count <= 0 || meta.Height <= 0 || meta.Width <= 0 {
		return nil, fmt.Errorf("%w: dimensions count=%d height=%d width=%d",
			ErrBadMetadata, meta.Count, meta.Height, meta.Width)
	}

	m, err := mmap.Open(base + ".bin")
	if err != nil {
		return nil, err
	}
	if options.SizeCheck {
		if want, got := meta.TotalBytes(), int64(m.Len()); got < want {
			m.Close()
			return nil, fmt.Errorf("%w: payload is %d bytes, descriptor implies %d",
				ErrTruncated, got, want)
		}
	}

	return &Reader{meta: meta, m: m}, nil
}

// Metadata returns the dataset descriptor.
func (r *Reader) Metadata() Metadata { return r.meta }

// Width returns the raster width in pixels.
func (r *Reader) Width() int { return r.meta.Width }

// Height returns the raster height in pixels.
func (r *Reader) Height() int { return r.meta.Height }

// Bands returns the band count.
func (r *Reader) Bands() int { return r.meta.Count }

// IsValidWindow reports whether the window lies fully inside the raster.
func (r *Reader) IsValidWindow(x, y, w, h int) bool {
	return x >= 0 && y >= 0 && w > 0 && h > 0 &&
		x+w <= r.meta.Width && y+h <= r.meta.Height
}

// GetWindow returns a zero-copy view of the requested window. It fails with
// ErrOutOfRange if the window violates the bounds invariant; the Reader
// stays fully usable afterwards. The returned view is valid until Close.
func (r *Reader) GetWindow(x, y, w, h int) (WindowView, error) {
	data := r.m.Data()
	if data == nil {
		return WindowView{}, ErrClosed
	}
	if !r.IsValidWindow(x, y, w, h) {
		return WindowView{}, fmt.Errorf("%w: (%d,%d %dx%d) in %dx%d raster",
			ErrOutOfRange, x, y, w, h, r.meta.Width, r.meta.Height)
	}

	psize := r.meta.PixelSize()
	strideRow := r.meta.Width * psize
	strideBand := r.meta.Height * strideRow

	return WindowView{
		Data:       data[y*strideRow+x*psize:],
		Bands:      r.meta.Count,
		Height:     h,
		Width:      w,
		StrideBand: strideBand,
		StrideRow:  strideRow,
		PixelSize:  psize,
	}, nil
}

// Close unmaps the payload and closes its file handle. Every WindowView the
// Reader issued is invalid afterwards. Close is idempotent.
func (r *Reader) Close() error { return r.m.Close() }
