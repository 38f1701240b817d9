package core

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// EntryName converts an absolute file path under root into an archive entry
// name: relative to root, slash-separated, no leading "./".
//
// Paths outside root are rejected; an archive must never contain "..".
func EntryName(root, file string) (string, error) {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return "", fmt.Errorf("relative path of %q: %w", file, err)
	}
	name := NormalizeName(rel)
	if name == "" || name == ".." || strings.HasPrefix(name, "../") {
		return "", fmt.Errorf("path %q is outside project root %q", file, root)
	}
	return name, nil
}

// NormalizeName turns an OS-relative path into zip entry form.
func NormalizeName(rel string) string {
	name := filepath.ToSlash(rel)
	name = strings.ReplaceAll(name, `\`, "/")
	name = path.Clean(name)
	name = strings.TrimPrefix(name, "./")
	if name == "." {
		return ""
	}
	return name
}
