package archive

import (
	"archive/zip"
	"fmt"
	"io"
)

// Contents returns the entry names of the archive at path, in stored order,
// and the uncompressed bytes of each entry.
func Contents(path string) ([]string, map[string][]byte, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()

	names := make([]string, 0, len(r.File))
	data := make(map[string][]byte, len(r.File))
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			return nil, nil, fmt.Errorf("open entry %s: %w", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("read entry %s: %w", f.Name, err)
		}
		names = append(names, f.Name)
		data[f.Name] = b
	}
	return names, data, nil
}
