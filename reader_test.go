package geoslice

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeDataset writes a descriptor plus a payload whose byte at flat offset
// i equals i mod 256, and returns the dataset base path.
func writeDataset(t *testing.T, meta Metadata, payloadLen int) string {
	t.Helper()
	base := filepath.Join(t.TempDir(), "map")

	data, err := json.Marshal(meta)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(base+".json", data, 0o644))

	payload := make([]byte, payloadLen)
	for i := range payload {
		payload[i] = byte(i % 256)
	}
	require.NoError(t, os.WriteFile(base+".bin", payload, 0o644))
	return base
}

func testMeta() Metadata {
	return Metadata{
		DType:     Uint8,
		Count:     3,
		Height:    100,
		Width:     200,
		Transform: [6]float64{10, 0, 500000, 0, -10, 5600000},
		CRS:       "EPSG:32636",
	}
}

func openTestReader(t *testing.T) *Reader {
	t.Helper()
	meta := testMeta()
	base := writeDataset(t, meta, int(meta.TotalBytes()))
	r, err := Open(base)
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestOpenMissingDescriptor(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}

func TestOpenMissingPayload(t *testing.T) {
	base := filepath.Join(t.TempDir(), "map")
	data, err := json.Marshal(testMeta())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(base+".json", data, 0o644))

	_, err = Open(base)
	require.Error(t, err)
}

func TestOpenTruncatedPayload(t *testing.T) {
	meta := testMeta()
	base := writeDataset(t, meta, int(meta.TotalBytes())-1)

	_, err := Open(base)
	require.ErrorIs(t, err, ErrTruncated)

	// Fail-fast can be disabled explicitly.
	r, err := Open(base, WithoutSizeCheck())
	require.NoError(t, err)
	require.NoError(t, r.Close())
}

func TestOpenZeroDimensions(t *testing.T) {
	meta := testMeta()
	meta.Width = 0
	base := writeDataset(t, meta, 64)

	_, err := Open(base)
	require.ErrorIs(t, err, ErrBadMetadata)
}

func TestOpenStrictMeta(t *testing.T) {
	meta := testMeta()
	meta.DType = "complex64" // would leniently fall back to 1 byte/pixel
	base := writeDataset(t, meta, int(meta.TotalBytes()))

	_, err := Open(base, WithStrictMeta())
	require.ErrorIs(t, err, ErrBadMetadata)

	r, err := Open(base)
	require.NoError(t, err)
	require.NoError(t, r.Close())
}

func TestReaderAccessors(t *testing.T) {
	r := openTestReader(t)
	require.Equal(t, 200, r.Width())
	require.Equal(t, 100, r.Height())
	require.Equal(t, 3, r.Bands())
	require.Equal(t, testMeta(), r.Metadata())
}

func TestIsValidWindow(t *testing.T) {
	r := openTestReader(t)

	cases := []struct {
		x, y, w, h int
		want       bool
	}{
		{0, 0, 10, 10, true},
		{0, 0, 200, 100, true},
		{190, 90, 10, 10, true},
		{199, 99, 1, 1, true},
		{-1, 0, 10, 10, false},
		{0, -1, 10, 10, false},
		{0, 0, 0, 10, false},
		{0, 0, 10, 0, false},
		{0, 0, -5, 10, false},
		{191, 0, 10, 10, false},
		{0, 91, 10, 10, false},
		{0, 0, 201, 1, false},
		{0, 0, 1, 101, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, r.IsValidWindow(tc.x, tc.y, tc.w, tc.h),
			"window (%d,%d %dx%d)", tc.x, tc.y, tc.w, tc.h)
	}
}

func TestGetWindowBytes(t *testing.T) {
	r := openTestReader(t)

	view, err := r.GetWindow(0, 0, 10, 10)
	require.NoError(t, err)
	require.Equal(t, 3, view.Bands)
	require.Equal(t, 10, view.Height)
	require.Equal(t, 10, view.Width)
	require.Equal(t, 1, view.PixelSize)
	require.Equal(t, 200, view.StrideRow)
	require.Equal(t, 200*100, view.StrideBand)

	require.Equal(t, uint8(0), view.Uint8At(0, 0, 0))
	require.Equal(t, uint8(1), view.Uint8At(0, 0, 1))
	// Row 1 starts one full raster row later.
	require.Equal(t, uint8(200%256), view.Uint8At(0, 1, 0))
	// Band 1 starts one full band (200*100 bytes) later.
	require.Equal(t, uint8(200*100%256), view.Uint8At(1, 0, 0))
}

func TestGetWindowOffset(t *testing.T) {
	r := openTestReader(t)

	view, err := r.GetWindow(5, 3, 4, 4)
	require.NoError(t, err)
	require.Equal(t, uint8((3*200+5)%256), view.Uint8At(0, 0, 0))
	require.Equal(t, uint8((4*200+6)%256), view.Uint8At(0, 1, 1))
}

func TestGetWindowOutOfRange(t *testing.T) {
	r := openTestReader(t)

	_, err := r.GetWindow(195, 0, 10, 10)
	require.ErrorIs(t, err, ErrOutOfRange)

	// The reader stays fully usable after a rejected request.
	view, err := r.GetWindow(190, 90, 10, 10)
	require.NoError(t, err)
	require.Equal(t, uint8((90*200+190)%256), view.Uint8At(0, 0, 0))
}

func TestWindowBytesPacked(t *testing.T) {
	r := openTestReader(t)

	view, err := r.GetWindow(5, 3, 4, 2)
	require.NoError(t, err)

	packed := view.Bytes()
	require.Len(t, packed, 3*2*4)
	// First row of band 0.
	for col := 0; col < 4; col++ {
		require.Equal(t, byte((3*200+5+col)%256), packed[col])
	}
	// Second row follows with no stride gap.
	require.Equal(t, byte((4*200+5)%256), packed[4])
	// Band 1 follows band 0's 2x4 block.
	require.Equal(t, byte((200*100+3*200+5)%256), packed[8])
}

func TestWindowBand(t *testing.T) {
	r := openTestReader(t)

	view, err := r.GetWindow(0, 0, 10, 10)
	require.NoError(t, err)

	band := view.Band(1)
	require.Equal(t, byte(200*100%256), band[0])
	require.Len(t, band, 9*200+10)
}

func TestCloseIdempotent(t *testing.T) {
	r := openTestReader(t)
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())

	_, err := r.GetWindow(0, 0, 1, 1)
	require.ErrorIs(t, err, ErrClosed)
}

func TestConcurrentWindowReads(t *testing.T) {
	r := openTestReader(t)

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				x, y := (g*17+i)%190, (g*7+i)%90
				view, err := r.GetWindow(x, y, 10, 10)
				if err != nil {
					errs <- err
					return
				}
				if got, want := view.Uint8At(0, 0, 0), uint8((y*200+x)%256); got != want {
					errs <- fmt.Errorf("window (%d,%d): got %d want %d", x, y, got, want)
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestTypedAccessors(t *testing.T) {
	meta := Metadata{DType: Uint16, Count: 1, Height: 4, Width: 4}
	base := writeDataset(t, meta, int(meta.TotalBytes()))

	r, err := Open(base)
	require.NoError(t, err)
	defer r.Close()

	view, err := r.GetWindow(0, 0, 4, 4)
	require.NoError(t, err)
	require.Equal(t, 2, view.PixelSize)
	// Payload bytes are 0,1,2,3,... so pixel 0 is 0x0100 little-endian.
	require.Equal(t, uint16(0x0100), view.Uint16At(0, 0, 0))
	require.Equal(t, uint16(0x0302), view.Uint16At(0, 0, 1))
}
