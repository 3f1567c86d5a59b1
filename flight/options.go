package flight

type pathOptions struct {
	waypoints  int
	altitudes  []float64
	radiusDeg  float64
	fovDeg     float64
	altitudeM  float64
	rows, cols int
}

// PathOption is a functional option for the path constructors.
type PathOption func(*pathOptions)

func newPathOptions(opts []PathOption) *pathOptions {
	o := &pathOptions{
		waypoints: 20,
		altitudes: []float64{50, 100, 150, 200, 250},
		radiusDeg: 0.001,
		fovDeg:    60,
		altitudeM: 100,
		rows:      5,
		cols:      5,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithWaypoints sets the waypoint count for Spiral and Linear paths.
func WithWaypoints(n int) PathOption {
	return func(o *pathOptions) {
		if n > 0 {
			o.waypoints = n
		}
	}
}

// WithAltitudes sets the altitude ladder a Spiral path cycles through.
func WithAltitudes(meters ...float64) PathOption {
	return func(o *pathOptions) {
		if len(meters) > 0 {
			o.altitudes = meters
		}
	}
}

// WithRadius sets the per-waypoint radius growth of a Spiral path, in
// degrees.
func WithRadius(deg float64) PathOption {
	return func(o *pathOptions) {
		if deg > 0 {
			o.radiusDeg = deg
		}
	}
}

// WithFOV sets the sensor field of view in degrees.
func WithFOV(deg float64) PathOption {
	return func(o *pathOptions) {
		if deg > 0 {
			o.fovDeg = deg
		}
	}
}

// WithAltitude sets the flight altitude for Linear and Grid paths.
func WithAltitude(meters float64) PathOption {
	return func(o *pathOptions) {
		if meters > 0 {
			o.altitudeM = meters
		}
	}
}

// WithGridShape sets the row and column counts of a Grid path.
func WithGridShape(rows, cols int) PathOption {
	return func(o *pathOptions) {
		if rows > 0 && cols > 0 {
			o.rows = rows
			o.cols = cols
		}
	}
}
