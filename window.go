package geoslice

import (
	"encoding/binary"
	"math"
)

// WindowView is a non-owning, read-only strided view into a Reader's
// mapping. The layout is band-sequential: each band of the full raster is a
// contiguous height*width*PixelSize block, rows contiguous within a band,
// pixels little-endian.
//
// The view borrows mapped memory and becomes invalid once the Reader that
// issued it is closed. Offsets into the view are computed directly from the
// strides; the bounds check performed at GetWindow time is the sole safety
// boundary.
type WindowView struct {
	Data       []byte
	Bands      int
	Height     int
	Width      int
	StrideBand int
	StrideRow  int
	PixelSize  int
}

// At returns the raw bytes of the pixel at (band, row, col).
func (v WindowView) At(band, row, col int) []byte {
	off := band*v.StrideBand + row*v.StrideRow + col*v.PixelSize
	return v.Data[off : off+v.PixelSize]
}

// Band returns the bytes of one band, spanning the window's first pixel
// through its last. The slice includes the inter-row stride gaps.
func (v WindowView) Band(band int) []byte {
	off := band * v.StrideBand
	return v.Data[off : off+(v.Height-1)*v.StrideRow+v.Width*v.PixelSize]
}

// Uint8At returns the pixel at (band, row, col) as a uint8.
func (v WindowView) Uint8At(band, row, col int) uint8 {
	return v.At(band, row, col)[0]
}

// Uint16At returns the pixel at (band, row, col) as a uint16.
func (v WindowView) Uint16At(band, row, col int) uint16 {
	return binary.LittleEndian.Uint16(v.At(band, row, col))
}

// Int16At returns the pixel at (band, row, col) as an int16.
func (v WindowView) Int16At(band, row, col int) int16 {
	return int16(binary.LittleEndian.Uint16(v.At(band, row, col)))
}

// Uint32At returns the pixel at (band, row, col) as a uint32.
func (v WindowView) Uint32At(band, row, col int) uint32 {
	return binary.LittleEndian.Uint32(v.At(band, row, col))
}

// Int32At returns the pixel at (band, row, col) as an int32.
func (v WindowView) Int32At(band, row, col int) int32 {
	return int32(binary.LittleEndian.Uint32(v.At(band, row, col)))
}

// Float32At returns the pixel at (band, row, col) as a float32.
func (v WindowView) Float32At(band, row, col int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(v.At(band, row, col)))
}

// Float64At returns the pixel at (band, row, col) as a float64.
func (v WindowView) Float64At(band, row, col int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(v.At(band, row, col)))
}

// Bytes returns an owned, densely packed copy of the window: bands in
// order, rows contiguous, no inter-row gaps. The copy is safe to retain
// past the Reader's lifetime and is what a Cache stores.
func (v WindowView) Bytes() []byte {
	rowBytes := v.Width * v.PixelSize
	out := make([]byte, 0, v.Bands*v.Height*rowBytes)
	for b := 0; b < v.Bands; b++ {
		for y := 0; y < v.Height; y++ {
			off := b*v.StrideBand + y*v.StrideRow
			out = append(out, v.Data[off:off+rowBytes]...)
		}
	}
	return out
}
