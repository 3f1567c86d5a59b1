// Package flight generates simulated sensor flight paths over a raster
// dataset and plans the pixel windows each waypoint's sensor covers.
package flight

import (
	"math"

	"github.com/aweris/geoslice"
)

// State is a single waypoint: platform position and sensor geometry at one
// point in time.
type State struct {
	Lat        float64
	Lon        float64
	AltitudeM  float64
	HeadingDeg float64
	FOVDeg     float64
	SpeedMS    float64
	Timestamp  float64
}

// Window is a rectangular pixel window request.
type Window struct {
	X, Y          int
	Width, Height int
}

// Valid reports whether the window lies fully inside a raster of the given
// dimensions.
func (w Window) Valid(mapWidth, mapHeight int) bool {
	return w.X >= 0 && w.Y >= 0 && w.Width > 0 && w.Height > 0 &&
		w.X+w.Width <= mapWidth && w.Y+w.Height <= mapHeight
}

// Path is an ordered sequence of waypoints.
type Path struct {
	Waypoints []State
}

// Len returns the number of waypoints.
func (p Path) Len() int { return len(p.Waypoints) }

// Spiral generates a path spiraling outward around a center point: each
// waypoint steps 360/n degrees around the center while the radius grows
// linearly, and altitudes cycle through the configured ladder.
func Spiral(centerLat, centerLon float64, opts ...PathOption) Path {
	o := newPathOptions(opts)

	waypoints := make([]State, 0, o.waypoints)
	for i := 0; i < o.waypoints; i++ {
		heading := 360 * float64(i) / float64(o.waypoints)
		radius := o.radiusDeg * float64(i+1)
		angle := heading * math.Pi / 180

		waypoints = append(waypoints, State{
			Lat:        centerLat + radius*math.Cos(angle),
			Lon:        centerLon + radius*math.Sin(angle),
			AltitudeM:  o.altitudes[i%len(o.altitudes)],
			HeadingDeg: heading,
			FOVDeg:     o.fovDeg,
			Timestamp:  float64(i),
		})
	}
	return Path{Waypoints: waypoints}
}

// Linear generates evenly spaced waypoints between two points, all at one
// altitude, heading along the track.
func Linear(startLat, startLon, endLat, endLon float64, opts ...PathOption) Path {
	o := newPathOptions(opts)

	heading := math.Atan2(endLon-startLon, endLat-startLat) * 180 / math.Pi
	waypoints := make([]State, 0, o.waypoints)
	for i := 0; i < o.waypoints; i++ {
		frac := 0.0
		if o.waypoints > 1 {
			frac = float64(i) / float64(o.waypoints-1)
		}
		waypoints = append(waypoints, State{
			Lat:        startLat + frac*(endLat-startLat),
			Lon:        startLon + frac*(endLon-startLon),
			AltitudeM:  o.altitudeM,
			HeadingDeg: heading,
			FOVDeg:     o.fovDeg,
			Timestamp:  float64(i),
		})
	}
	return Path{Waypoints: waypoints}
}

// Grid generates a serpentine survey pattern over a bounding box: rows are
// flown alternately west-to-east (heading 90) and east-to-west (heading
// 270).
func Grid(minLat, minLon, maxLat, maxLon float64, opts ...PathOption) Path {
	o := newPathOptions(opts)

	waypoints := make([]State, 0, o.rows*o.cols)
	t := 0
	for i := 0; i < o.rows; i++ {
		lat := minLat
		if o.rows > 1 {
			lat += float64(i) / float64(o.rows-1) * (maxLat - minLat)
		}

		heading := 90.0
		if i%2 == 1 {
			heading = 270
		}

		for j := 0; j < o.cols; j++ {
			col := j
			if i%2 == 1 {
				col = o.cols - 1 - j
			}
			lon := minLon
			if o.cols > 1 {
				lon += float64(col) / float64(o.cols-1) * (maxLon - minLon)
			}

			waypoints = append(waypoints, State{
				Lat:        lat,
				Lon:        lon,
				AltitudeM:  o.altitudeM,
				HeadingDeg: heading,
				FOVDeg:     o.fovDeg,
				Timestamp:  float64(t),
			})
			t++
		}
	}
	return Path{Waypoints: waypoints}
}

// StateToWindow converts a waypoint to the pixel window its sensor covers,
// centered on the platform's ground position.
func StateToWindow(s State, tr *geoslice.Transform) Window {
	cx, cy := tr.LatLonToPixel(s.Lat, s.Lon)
	w, h := tr.FOVToPixels(s.AltitudeM, s.FOVDeg)
	return Window{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}

// Windows computes the window for every waypoint on the path.
func (p Path) Windows(tr *geoslice.Transform) []Window {
	out := make([]Window, len(p.Waypoints))
	for i, s := range p.Waypoints {
		out[i] = StateToWindow(s, tr)
	}
	return out
}
