package flight

import (
	"github.com/sourcegraph/conc/iter"

	"github.com/aweris/geoslice"
)

// Source is the window-read surface Simulate needs from a dataset reader.
// *geoslice.Reader satisfies it.
type Source interface {
	Width() int
	Height() int
	Metadata() geoslice.Metadata
	GetWindow(x, y, w, h int) (geoslice.WindowView, error)
}

// Simulate flies the path over the source dataset, materializing a packed
// copy of each waypoint's window. Frames whose window falls outside the
// raster are nil. Windows are read concurrently — the reader is safe for
// concurrent window access — but frames come back in waypoint order, and
// the optional callback runs once per in-bounds frame, in that order.
func Simulate(src Source, p Path, zone int, callback func(State, []byte)) [][]byte {
	tr := geoslice.NewTransform(src.Metadata().Transform, zone)
	windows := p.Windows(tr)

	frames := iter.Map(windows, func(w *Window) []byte {
		if !w.Valid(src.Width(), src.Height()) {
			return nil
		}
		view, err := src.GetWindow(w.X, w.Y, w.Width, w.Height)
		if err != nil {
			return nil
		}
		return view.Bytes()
	})

	if callback != nil {
		for i, frame := range frames {
			if frame != nil {
				callback(p.Waypoints[i], frame)
			}
		}
	}
	return frames
}
