package geoslice

import (
	"math"

	"github.com/aweris/geoslice/internal/utm"
)

// Transform converts between geodetic coordinates and pixel indices for a
// north-up raster (image rows increase southward). It combines a dataset's
// affine transform with a UTM zone. The zone is never inferred from the
// coordinates supplied; conversions far from the configured zone's central
// meridian lose accuracy.
//
// A Transform is immutable after construction and safe for unsynchronized
// concurrent use.
type Transform struct {
	pixelSizeX float64
	pixelSizeY float64
	originX    float64
	originY    float64
	zone       int
}

// NewTransform builds a Transform from an affine six-tuple
// (scaleX, rotX, originX, rotY, scaleY, originY) and a UTM zone.
func NewTransform(transform [6]float64, zone int) *Transform {
	return &Transform{
		pixelSizeX: transform[0],
		pixelSizeY: math.Abs(transform[4]),
		originX:    transform[2],
		originY:    transform[5],
		zone:       zone,
	}
}

// LatLonToPixel converts geodetic degrees to pixel indices.
func (t *Transform) LatLonToPixel(lat, lon float64) (px, py int) {
	x, y := utm.Forward(lat, lon, t.zone)
	// Truncation coincides with floor everywhere on the raster interior and
	// keeps the pixel-origin round trip exact under series error.
	px = int((x - t.originX) / t.pixelSizeX)
	py = int((t.originY - y) / t.pixelSizeY)
	return px, py
}

// PixelToLatLon converts pixel indices back to geodetic degrees.
func (t *Transform) PixelToLatLon(px, py int) (lat, lon float64) {
	x := t.originX + float64(px)*t.pixelSizeX
	y := t.originY - float64(py)*t.pixelSizeY
	return utm.Inverse(x, y, t.zone)
}

// FOVToPixels estimates the pixel footprint seen by a nadir-pointing sensor
// at the given altitude in meters with the given field of view in degrees.
// Flat-ground first-order estimate: terrain relief and sensor tilt are
// ignored.
func (t *Transform) FOVToPixels(altitudeM, fovDeg float64) (w, h int) {
	ground := 2 * altitudeM * math.Tan(fovDeg/2*math.Pi/180)
	return int(ground / t.pixelSizeX), int(ground / t.pixelSizeY)
}

// PixelSizeX returns the ground width of one pixel in meters.
func (t *Transform) PixelSizeX() float64 { return t.pixelSizeX }

// PixelSizeY returns the ground height of one pixel in meters.
func (t *Transform) PixelSizeY() float64 { return t.pixelSizeY }

// Zone returns the configured UTM zone.
func (t *Transform) Zone() int { return t.zone }
