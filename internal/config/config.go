// Package config holds the immutable description of the mod project being
// packaged: its identifier, the fixed top-level files, the script tree and the
// rule sets.
//
// Defaults are built in. A YAML overlay (modpack.yaml at the project root, or
// an explicit path) may replace individual values; absent keys keep defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"modpack/internal/selector"
)

// FileName is the overlay file looked up at the project root.
const FileName = "modpack.yaml"

// ErrInvalidConfig wraps every validation and decoding failure.
var ErrInvalidConfig = errors.New("invalid config")

// Project describes what goes into the archive. Treat it as read-only once
// built; Selector and IncludeSet return freshly built values.
type Project struct {
	Identifier string   `yaml:"identifier"`
	Icon       string   `yaml:"icon"`
	Descriptor string   `yaml:"descriptor"`
	SourceDir  string   `yaml:"source_dir"`
	Extension  string   `yaml:"extension"`
	Include    []string `yaml:"include"`
	Exclude    []string `yaml:"exclude"`
}

// Default returns the built-in project definition.
func Default() Project {
	return Project{
		Identifier: "FS25_SoilFertilizer",
		Icon:       "icon.dds",
		Descriptor: "modDesc.xml",
		SourceDir:  "src",
		Extension:  ".lua",
		Include: []string{
			"icon.dds",
			"modDesc.xml",
			"src/**/*.lua",
		},
		Exclude: []string{
			"*.git*",
			"*.md",
			"*.txt",
			"*.py",
			"__pycache__",
			"*.pyc",
			".vscode",
			".idea",
			"build",
			"dist",
		},
	}
}

// ArchiveName is the output file name, <identifier>.zip.
func (p Project) ArchiveName() string {
	return p.Identifier + ".zip"
}

// FixedFiles returns the top-level files in the order they are added.
func (p Project) FixedFiles() []string {
	return []string{p.Icon, p.Descriptor}
}

// Selector builds the exclusion selector for this project.
func (p Project) Selector() (*selector.Selector, error) {
	return selector.FromPatterns(p.Exclude)
}

// IncludeSet builds the documentary inclusion set for this project.
func (p Project) IncludeSet() (selector.IncludeSet, error) {
	return selector.NewIncludeSet(p.Include)
}

// Validate reports the first problem with p.
func (p Project) Validate() error {
	if strings.TrimSpace(p.Identifier) == "" {
		return fmt.Errorf("%w: identifier is required", ErrInvalidConfig)
	}
	names := []struct{ field, value string }{
		{"identifier", p.Identifier},
		{"icon", p.Icon},
		{"descriptor", p.Descriptor},
	}
	for _, n := range names {
		if n.value == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidConfig, n.field)
		}
		if strings.ContainsAny(n.value, `/\`) {
			return fmt.Errorf("%w: %s %q must be a bare file name", ErrInvalidConfig, n.field, n.value)
		}
	}
	if strings.TrimSpace(p.SourceDir) == "" {
		return fmt.Errorf("%w: source_dir is required", ErrInvalidConfig)
	}
	if !strings.HasPrefix(p.Extension, ".") || len(p.Extension) < 2 {
		return fmt.Errorf("%w: extension %q must start with '.'", ErrInvalidConfig, p.Extension)
	}
	if _, err := p.Selector(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := p.IncludeSet(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Load reads the YAML overlay at path on top of Default and validates the
// result.
func Load(path string) (Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Project{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadOptional behaves like Load but returns Default when path does not
// exist. The bool reports whether a file was read.
func LoadOptional(path string) (Project, bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), false, nil
		}
		return Project{}, false, fmt.Errorf("config: stat %s: %w", path, err)
	}
	p, err := Load(path)
	if err != nil {
		return Project{}, false, err
	}
	return p, true, nil
}

// Parse decodes an overlay document on top of Default.
func Parse(data []byte) (Project, error) {
	p := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var overlay Project
	switch err := dec.Decode(&overlay); {
	case errors.Is(err, io.EOF):
		// empty or comment-only document
	case err != nil:
		return Project{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	default:
		p = merge(p, overlay)
	}
	if err := p.Validate(); err != nil {
		return Project{}, err
	}
	return p, nil
}

func merge(base, overlay Project) Project {
	if overlay.Identifier != "" {
		base.Identifier = overlay.Identifier
	}
	if overlay.Icon != "" {
		base.Icon = overlay.Icon
	}
	if overlay.Descriptor != "" {
		base.Descriptor = overlay.Descriptor
	}
	if overlay.SourceDir != "" {
		base.SourceDir = overlay.SourceDir
	}
	if overlay.Extension != "" {
		base.Extension = overlay.Extension
	}
	if overlay.Include != nil {
		base.Include = append([]string(nil), overlay.Include...)
	}
	if overlay.Exclude != nil {
		base.Exclude = append([]string(nil), overlay.Exclude...)
	}
	return base
}
