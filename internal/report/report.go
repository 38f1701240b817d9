// Package report prints build progress for a human operator.
//
// Every line goes to one writer (stdout in production). Markers are colored
// through a lipgloss renderer bound to that writer, so redirected output and
// test buffers receive plain text.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

const (
	markAdd  = "+"
	markOK   = "✓"
	markFail = "✗"
)

// Reporter writes progress, summary and outcome lines.
type Reporter struct {
	w     io.Writer
	color bool

	add  lipgloss.Style
	ok   lipgloss.Style
	fail lipgloss.Style
	path lipgloss.Style
}

// New returns a Reporter writing to w. When color is false markers are never
// styled, even on a terminal.
func New(w io.Writer, color bool) *Reporter {
	r := lipgloss.NewRenderer(w)
	return &Reporter{
		w:     w,
		color: color,
		add:   r.NewStyle().Foreground(lipgloss.Color("6")),
		ok:    r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		fail:  r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		path:  r.NewStyle().Faint(true),
	}
}

// Discard returns a Reporter that prints nothing.
func Discard() *Reporter {
	return New(io.Discard, false)
}

func (r *Reporter) paint(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

func (r *Reporter) line(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Building announces the mod being built.
func (r *Reporter) Building(identifier string) {
	r.line("Building %s...", identifier)
}

// Output names the archive path.
func (r *Reporter) Output(path string) {
	r.line("Output: %s", r.paint(r.path, path))
}

// Removed reports deletion of a stale archive.
func (r *Reporter) Removed(name string) {
	r.line("Removed old %s", name)
}

// Added reports one archive entry.
func (r *Reporter) Added(name string) {
	r.line("  %s %s", r.paint(r.add, markAdd), name)
}

// Complete prints the size summary. Size is shown in KiB with one decimal.
func (r *Reporter) Complete(name string, sizeBytes int64) {
	r.line("\n%s Build complete: %s (%.1f KB)", r.paint(r.ok, markOK), name, float64(sizeBytes)/1024)
}

// Success prints the final success line.
func (r *Reporter) Success() {
	r.line("\n%s Mod built successfully!", r.paint(r.ok, markOK))
}

// Failure prints the final failure line.
func (r *Reporter) Failure(err error) {
	r.line("\n%s Build failed: %v", r.paint(r.fail, markFail), err)
}

// Trace names the written trace file and its hash.
func (r *Reporter) Trace(path, hash string) {
	r.line("Trace: %s (sha256 %s)", r.paint(r.path, path), hash)
}
