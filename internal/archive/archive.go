// Package archive writes the mod container: a zip file whose entries are all
// deflate-compressed.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrClosed is returned when writing to a finalized archive.
var ErrClosed = errors.New("archive: closed")

// Writer owns one output archive from Create until Close.
type Writer struct {
	file   *os.File
	zw     *zip.Writer
	closed bool
}

// Create truncates or creates the file at path and opens a zip writer on it.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Writer{file: f, zw: zip.NewWriter(f)}, nil
}

// AddFile copies the file at src into the archive under name. When tee is
// non-nil it receives exactly the bytes written to the entry.
func (w *Writer) AddFile(name, src string, tee io.Writer) error {
	if w.closed {
		return ErrClosed
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s: is a directory", src)
	}

	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	hdr.Name = name
	hdr.Method = zip.Deflate

	out, err := w.zw.CreateHeader(hdr)
	if err != nil {
		return err
	}
	var r io.Reader = in
	if tee != nil {
		r = io.TeeReader(in, tee)
	}
	if _, err := io.Copy(out, r); err != nil {
		return fmt.Errorf("copy %s: %w", name, err)
	}
	return nil
}

// Close writes the central directory and closes the file. It is safe to
// call more than once; later calls return nil.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	zerr := w.zw.Close()
	ferr := w.file.Close()
	if zerr != nil {
		return zerr
	}
	return ferr
}
