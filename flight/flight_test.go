package flight

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aweris/geoslice"
)

func TestSpiralDefaults(t *testing.T) {
	p := Spiral(50, 33)
	require.Equal(t, 20, p.Len())

	// Altitudes cycle through the default ladder.
	require.Equal(t, 50.0, p.Waypoints[0].AltitudeM)
	require.Equal(t, 100.0, p.Waypoints[1].AltitudeM)
	require.Equal(t, 50.0, p.Waypoints[5].AltitudeM)

	for i, s := range p.Waypoints {
		require.Equal(t, float64(i), s.Timestamp)
		require.Equal(t, 60.0, s.FOVDeg)
	}
}

func TestSpiralGeometry(t *testing.T) {
	p := Spiral(50, 33, WithWaypoints(8), WithRadius(0.002), WithAltitudes(120))

	require.Equal(t, 8, p.Len())
	require.Equal(t, 120.0, p.Waypoints[3].AltitudeM)

	// Headings step 360/8 degrees; the radius grows linearly.
	require.Equal(t, 0.0, p.Waypoints[0].HeadingDeg)
	require.Equal(t, 45.0, p.Waypoints[1].HeadingDeg)

	d0 := math.Hypot(p.Waypoints[0].Lat-50, p.Waypoints[0].Lon-33)
	d7 := math.Hypot(p.Waypoints[7].Lat-50, p.Waypoints[7].Lon-33)
	require.InDelta(t, 0.002, d0, 1e-9)
	require.InDelta(t, 0.016, d7, 1e-9)
}

func TestLinear(t *testing.T) {
	p := Linear(50, 33, 51, 34, WithWaypoints(5), WithAltitude(80))
	require.Equal(t, 5, p.Len())

	require.Equal(t, 50.0, p.Waypoints[0].Lat)
	require.Equal(t, 33.0, p.Waypoints[0].Lon)
	require.Equal(t, 51.0, p.Waypoints[4].Lat)
	require.Equal(t, 34.0, p.Waypoints[4].Lon)
	require.InDelta(t, 50.5, p.Waypoints[2].Lat, 1e-12)

	for _, s := range p.Waypoints {
		require.Equal(t, 80.0, s.AltitudeM)
		require.InDelta(t, 45.0, s.HeadingDeg, 1e-9)
	}
}

func TestGridSerpentine(t *testing.T) {
	p := Grid(50, 33, 51, 34, WithGridShape(3, 4))
	require.Equal(t, 12, p.Len())

	// Even rows run west to east, odd rows run back.
	row0 := p.Waypoints[0:4]
	require.Equal(t, 33.0, row0[0].Lon)
	require.Equal(t, 34.0, row0[3].Lon)
	require.Equal(t, 90.0, row0[0].HeadingDeg)

	row1 := p.Waypoints[4:8]
	require.Equal(t, 34.0, row1[0].Lon)
	require.Equal(t, 33.0, row1[3].Lon)
	require.Equal(t, 270.0, row1[0].HeadingDeg)

	for i, s := range p.Waypoints {
		require.Equal(t, float64(i), s.Timestamp)
	}
}

func TestWindowValid(t *testing.T) {
	cases := []struct {
		w    Window
		want bool
	}{
		{Window{0, 0, 10, 10}, true},
		{Window{90, 90, 10, 10}, true},
		{Window{-1, 0, 10, 10}, false},
		{Window{0, -1, 10, 10}, false},
		{Window{0, 0, 0, 10}, false},
		{Window{95, 0, 10, 10}, false},
		{Window{0, 95, 10, 10}, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.w.Valid(100, 100), "window %+v", tc.w)
	}
}

func TestStateToWindow(t *testing.T) {
	tr := geoslice.NewTransform([6]float64{1, 0, 500000, 0, -1, 5600000}, 36)

	s := State{Lat: 50.3, Lon: 33.2, AltitudeM: 30, FOVDeg: 60}
	win := StateToWindow(s, tr)

	cx, cy := tr.LatLonToPixel(s.Lat, s.Lon)
	w, h := tr.FOVToPixels(s.AltitudeM, s.FOVDeg)
	require.Equal(t, Window{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}, win)
	require.Equal(t, 34, win.Width) // 2*30m*tan(30deg) on 1m pixels
}
