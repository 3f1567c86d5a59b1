// Package archive packages a dataset's descriptor and payload into a single
// zstd-compressed tarball for transport. Archived data is never read
// directly: a dataset must be unpacked before it can be mapped, so the read
// path stays free of decompression.
package archive

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// The two files that make up a dataset, by extension.
var suffixes = []string{".json", ".bin"}

// Pack writes base.json and base.bin into a zstd-compressed tar at out.
func Pack(base, out string) (err error) {
	dst, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	enc, err := zstd.NewWriter(dst, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	tw := tar.NewWriter(enc)

	for _, suffix := range suffixes {
		if err := addFile(tw, base+suffix, filepath.Base(base)+suffix); err != nil {
			return err
		}
	}

	if err := tw.Close(); err != nil {
		return err
	}
	return enc.Close()
}

func addFile(tw *tar.Writer, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	hdr := &tar.Header{Name: name, Mode: 0644, Size: info.Size()}
	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}
	_, err = io.Copy(tw, f)
	return err
}

// Unpack extracts a packed dataset into dir and returns the base path
// (without extension) of the extracted dataset.
func Unpack(in, dir string) (string, error) {
	src, err := os.Open(in)
	if err != nil {
		return "", fmt.Errorf("open archive: %w", err)
	}
	defer src.Close()

	dec, err := zstd.NewReader(src)
	if err != nil {
		return "", err
	}
	defer dec.Close()

	tr := tar.NewReader(dec)
	base := ""
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read archive: %w", err)
		}

		// Basename only: entries can never escape dir.
		name := filepath.Base(hdr.Name)
		out := filepath.Join(dir, name)
		if err := writeFile(out, tr); err != nil {
			return "", err
		}
		if ext := filepath.Ext(name); ext == ".bin" {
			base = strings.TrimSuffix(out, ext)
		}
	}
	if base == "" {
		return "", fmt.Errorf("archive %s contains no payload", in)
	}
	return base, nil
}

func writeFile(path string, r io.Reader) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	_, err = io.Copy(f, r)
	return err
}
