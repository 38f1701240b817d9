// Package build assembles a mod archive from a project tree.
//
// A build is one linear pass: resolve paths, remove the stale archive, open a
// new one, add the fixed top-level files, add the selected script files,
// finalize and report the size. Any error aborts the remaining steps. A
// partially written archive is left on disk; the next build removes it.
package build

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"modpack/internal/archive"
	"modpack/internal/config"
	"modpack/internal/core"
	"modpack/internal/report"
	"modpack/internal/selector"
	"modpack/internal/trace"
)

// Builder runs builds for one project root.
type Builder struct {
	root     string
	project  config.Project
	selector *selector.Selector
	includes selector.IncludeSet
	reporter *report.Reporter
}

// Result describes a finished build.
type Result struct {
	// OutputPath is the absolute archive path.
	OutputPath string
	// Entries lists what was written, in write order.
	Entries core.EntrySet
	// SizeBytes is the archive size on disk after finalize.
	SizeBytes int64
	// Digest identifies the uncompressed content of the archive.
	Digest core.Digest
	// Trace is the decision record of the build.
	Trace trace.BuildTrace
}

// New validates the project and prepares a Builder rooted at root. A nil
// reporter prints nothing.
func New(root string, project config.Project, r *report.Reporter) (*Builder, error) {
	if root == "" {
		return nil, errors.New("build: empty project root")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("build: resolve root: %w", err)
	}
	if err := project.Validate(); err != nil {
		return nil, err
	}
	sel, err := project.Selector()
	if err != nil {
		return nil, err
	}
	inc, err := project.IncludeSet()
	if err != nil {
		return nil, err
	}
	if r == nil {
		r = report.Discard()
	}
	return &Builder{root: abs, project: project, selector: sel, includes: inc, reporter: r}, nil
}

// OutputPath returns <root>/<identifier>.zip.
func (b *Builder) OutputPath() string {
	return filepath.Join(b.root, b.project.ArchiveName())
}

// Build runs one build. ctx is checked between steps.
func (b *Builder) Build(ctx context.Context) (res Result, err error) {
	rec := trace.NewRecorder()
	out := b.OutputPath()
	res.OutputPath = out
	defer func() {
		res.Trace = rec.Trace(b.project.Identifier)
	}()

	b.reporter.Building(b.project.Identifier)
	b.reporter.Output(out)

	if err := b.removeStale(out, rec); err != nil {
		return res, err
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	w, err := archive.Create(out)
	if err != nil {
		return res, fmt.Errorf("open archive: %w", err)
	}
	defer func() {
		// Close is idempotent; this only matters when a step below failed.
		if err != nil {
			_ = w.Close()
		}
	}()

	wr := &writeState{w: w, set: &res.Entries, digest: core.NewDigestBuilder(), rec: rec}
	if err := b.addFixedFiles(wr); err != nil {
		return res, err
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}
	if err := b.addScripts(ctx, wr); err != nil {
		return res, err
	}

	if err := w.Close(); err != nil {
		return res, fmt.Errorf("finalize archive: %w", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		return res, fmt.Errorf("stat archive: %w", err)
	}
	res.SizeBytes = info.Size()
	res.Digest = wr.digest.Sum()

	b.reporter.Complete(b.project.ArchiveName(), res.SizeBytes)
	return res, nil
}

// writeState is what the add steps of one build share.
type writeState struct {
	w      *archive.Writer
	set    *core.EntrySet
	digest *core.DigestBuilder
	rec    trace.Sink
}

func (b *Builder) removeStale(out string, rec trace.Sink) error {
	info, err := os.Stat(out)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat old archive: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("remove old archive: %s is not a regular file", out)
	}
	if err := os.Remove(out); err != nil {
		return fmt.Errorf("remove old archive: %w", err)
	}
	trace.SafeRecord(rec, trace.Event{Kind: trace.EventStaleRemoved, Entry: b.project.ArchiveName()})
	b.reporter.Removed(b.project.ArchiveName())
	return nil
}

func (b *Builder) addFixedFiles(wr *writeState) error {
	for _, name := range b.project.FixedFiles() {
		src := filepath.Join(b.root, name)
		info, err := os.Stat(src)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				trace.SafeRecord(wr.rec, trace.Event{Kind: trace.EventFixedFileMissing, Entry: name})
				continue
			}
			return fmt.Errorf("stat %s: %w", name, err)
		}
		if info.IsDir() {
			// Not a file, so not present for our purposes.
			trace.SafeRecord(wr.rec, trace.Event{Kind: trace.EventFixedFileMissing, Entry: name})
			continue
		}
		if err := b.add(wr, core.Entry{Name: name, SourcePath: src}); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) addScripts(ctx context.Context, wr *writeState) error {
	c := core.NewCollector(b.root, b.project.SourceDir, b.project.Extension)
	candidates, found, err := c.Collect()
	if err != nil {
		return err
	}
	if !found {
		trace.SafeRecord(wr.rec, trace.Event{Kind: trace.EventSourceDirMissing})
		return nil
	}

	for _, e := range candidates {
		if err := ctx.Err(); err != nil {
			return err
		}
		d := b.selector.Decide(e.SourcePath)
		if !d.Included {
			trace.SafeRecord(wr.rec, trace.Event{Kind: trace.EventCandidateExcluded, Entry: e.Name, Rule: d.Rule.String()})
			continue
		}
		if err := b.add(wr, e); err != nil {
			return err
		}
	}
	return nil
}

// add writes one entry. Its digest is taken from the bytes as they are
// written, never from a second read of the source.
func (b *Builder) add(wr *writeState, e core.Entry) error {
	if err := wr.w.AddFile(e.Name, e.SourcePath, wr.digest.Entry(e.Name)); err != nil {
		return fmt.Errorf("add %s: %w", e.Name, err)
	}
	wr.set.Add(e)
	trace.SafeRecord(wr.rec, trace.Event{Kind: trace.EventEntryAdded, Entry: e.Name, Include: b.includes.Covering(e.Name)})
	b.reporter.Added(e.Name)
	return nil
}
