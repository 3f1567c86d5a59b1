package geoslice

import (
	"encoding/json"
	"fmt"
	"os"
)

// DType identifies the pixel datatype of a raster payload.
type DType string

const (
	Uint8   DType = "uint8"
	Uint16  DType = "uint16"
	Int16   DType = "int16"
	Uint32  DType = "uint32"
	Int32   DType = "int32"
	Float32 DType = "float32"
	Float64 DType = "float64"
)

// Size returns the width of one pixel in bytes. Unrecognized dtypes fall
// back to 1 byte; this is the descriptor format's documented behavior, not
// an error. Use WithStrictMeta to reject unknown dtypes at load time.
func (d DType) Size() int {
	switch d {
	case Uint8:
		return 1
	case Uint16, Int16:
		return 2
	case Uint32, Int32, Float32:
		return 4
	case Float64:
		return 8
	default:
		return 1
	}
}

func (d DType) known() bool {
	switch d {
	case Uint8, Uint16, Int16, Uint32, Int32, Float32, Float64:
		return true
	}
	return false
}

// Metadata describes a dataset's shape and geocoding. It is parsed once at
// load time and immutable afterwards; the Reader that owns it keeps it for
// its whole lifetime.
//
// Transform is the affine six-tuple (scaleX, rotX, originX, rotY, scaleY,
// originY) mapping pixel indices to projected coordinates. CRS is an opaque
// label; nothing here interprets it.
type Metadata struct {
	DType     DType      `json:"dtype"`
	Count     int        `json:"count"`
	Height    int        `json:"height"`
	Width     int        `json:"width"`
	Transform [6]float64 `json:"transform"`
	CRS       string     `json:"crs"`
}

// PixelSize returns the byte width of one pixel.
func (m Metadata) PixelSize() int { return m.DType.Size() }

// TotalBytes returns the payload length the descriptor implies:
// count * height * width * PixelSize.
func (m Metadata) TotalBytes() int64 {
	return int64(m.Count) * int64(m.Height) * int64(m.Width) * int64(m.PixelSize())
}

// LoadMetadata reads and parses the descriptor file at path. Parsing is
// lenient: absent fields decode to zero values, and callers must treat them
// as "unspecified" rather than validated zeros.
func LoadMetadata(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("read descriptor: %w", err)
	}
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return Metadata{}, fmt.Errorf("parse descriptor %s: %w", path, err)
	}
	return m, nil
}

func (m Metadata) validate() error {
	if !m.DType.known() {
		return fmt.Errorf("%w: unknown dtype %q", ErrBadMetadata, m.DType)
	}
	if m.Count <= 0 || m.Height <= 0 || m.Width <= 0 {
		return fmt.Errorf("%w: dimensions count=%d height=%d width=%d",
			ErrBadMetadata, m.Count, m.Height, m.Width)
	}
	return nil
}
