package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Collector enumerates script files under a source directory.
//
// Only regular files whose name ends with Extension are candidates; anything
// else in the tree is never seen by the caller. Candidates are returned
// sorted by entry name so the archive layout does not depend on directory
// listing order.
type Collector struct {
	// Root is the absolute project root. Entry names are relative to it.
	Root string

	// SourceDir is the script tree, relative to Root.
	SourceDir string

	// Extension is the script file suffix, including the dot.
	Extension string
}

// NewCollector creates a Collector.
func NewCollector(root, sourceDir, extension string) *Collector {
	return &Collector{Root: root, SourceDir: sourceDir, Extension: extension}
}

// SourcePath returns the absolute path of the script tree.
func (c *Collector) SourcePath() string {
	return filepath.Join(c.Root, c.SourceDir)
}

// Collect walks the script tree and returns candidate entries.
//
// The bool result is false when the source directory does not exist; that is
// not an error. A source path that exists but is not a directory is treated
// the same way.
func (c *Collector) Collect() ([]Entry, bool, error) {
	src := c.SourcePath()
	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("stat source dir %q: %w", c.SourceDir, err)
	}
	if !info.IsDir() {
		return nil, false, nil
	}

	var entries []Entry
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		// Directories are walked, never entries, whatever their name.
		if d.IsDir() || !strings.HasSuffix(d.Name(), c.Extension) {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			// Linked files count; linked directories are not followed.
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}

		name, err := EntryName(c.Root, path)
		if err != nil {
			return err
		}
		entries = append(entries, Entry{Name: name, SourcePath: path})
		return nil
	})
	if err != nil {
		return nil, true, fmt.Errorf("walking %q: %w", c.SourceDir, err)
	}

	// Sort by entry name; WalkDir order is lexical per directory but the
	// archive order must not depend on separator placement.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, true, nil
}
