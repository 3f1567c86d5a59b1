// Package geoslice provides ultra-fast random-access windowed reads over
// large raster datasets stored as raw band-sequential binary payloads, plus
// coordinate conversion between geodetic (lat/lon) and pixel space.
//
// A dataset is two files sharing a base name: a JSON descriptor (base.json)
// and a raw BSQ payload (base.bin). The payload is memory mapped, so a
// window is a zero-copy view into the file:
//
//	r, _ := geoslice.Open("processed_map")
//	defer r.Close()
//
//	view, _ := r.GetWindow(100, 100, 512, 512)
//	v := view.Uint8At(0, 0, 0) // (band, row, col)
//
// Repeated fetches can be fronted by a byte-bounded LRU cache:
//
//	cache := geoslice.NewCache(64 << 20)
//	if data, ok := cache.Get(100, 100, 512, 512); ok {
//	    // cached copy
//	} else {
//	    view, _ := r.GetWindow(100, 100, 512, 512)
//	    cache.Put(100, 100, 512, 512, view.Bytes())
//	}
//
// A Transform plans which windows to request:
//
//	tr := geoslice.NewTransform(r.Metadata().Transform, 36)
//	px, py := tr.LatLonToPixel(50.45, 30.52)
//	w, h := tr.FOVToPixels(120, 60)
//
// Reader, Cache and Transform are composable but independent: none of them
// holds a reference to another.
package geoslice
