// Package trace records the logical decisions of one build: which entries
// were written, which candidates were rejected and why, and which optional
// inputs were absent.
package trace

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// BuildTrace is the deterministic record of a build.
//
// It holds no timestamps, sizes or absolute paths, so two builds of the same
// project tree produce byte-identical canonical JSON regardless of where the
// tree lives on disk.
type BuildTrace struct {
	Identifier string
	Events     []Event
}

// EventKind is the stable discriminator for Event. The string values are part
// of the canonical bytes; do not rename.
type EventKind string

const (
	EventStaleRemoved      EventKind = "StaleRemoved"
	EventEntryAdded        EventKind = "EntryAdded"
	EventCandidateExcluded EventKind = "CandidateExcluded"
	EventFixedFileMissing  EventKind = "FixedFileMissing"
	EventSourceDirMissing  EventKind = "SourceDirMissing"
)

// Event is a single decision.
type Event struct {
	Kind EventKind

	// Entry is the archive entry name (or the root-relative candidate name for
	// rejections).
	Entry string

	// Rule is the exclusion rule, in legacy pattern form, that rejected a
	// candidate.
	Rule string

	// Include is the documentary inclusion pattern that covers an added entry,
	// if any.
	Include string
}

// Validate checks basic invariants.
func (t *BuildTrace) Validate() error {
	if t == nil {
		return errors.New("trace is nil")
	}
	if t.Identifier == "" {
		return errors.New("identifier is required")
	}
	for i, e := range t.Events {
		if e.Kind == "" {
			return fmt.Errorf("events[%d].kind is required", i)
		}
		if e.Kind == EventCandidateExcluded && e.Rule == "" {
			return fmt.Errorf("events[%d].rule is required for kind %q", i, e.Kind)
		}
		if needsEntry(e.Kind) && e.Entry == "" {
			return fmt.Errorf("events[%d].entry is required for kind %q", i, e.Kind)
		}
	}
	return nil
}

func needsEntry(kind EventKind) bool {
	switch kind {
	case EventEntryAdded, EventCandidateExcluded, EventFixedFileMissing, EventStaleRemoved:
		return true
	default:
		return false
	}
}

// CanonicalJSON validates the trace and returns its canonical encoding.
//
// Events keep build order: the build itself is deterministic (fixed files
// first, then script entries sorted by name), so no reordering is applied.
func (t BuildTrace) CanonicalJSON() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(t)
}

// MarshalJSON fixes field order.
func (t BuildTrace) MarshalJSON() ([]byte, error) {
	if t.Identifier == "" {
		return nil, errors.New("identifier is required")
	}
	var buf bytes.Buffer
	buf.WriteString(`{"identifier":`)
	id, _ := json.Marshal(t.Identifier)
	buf.Write(id)

	buf.WriteString(`,"events":[`)
	for i := range t.Events {
		if i > 0 {
			buf.WriteByte(',')
		}
		eb, err := json.Marshal(t.Events[i])
		if err != nil {
			return nil, err
		}
		buf.Write(eb)
	}
	buf.WriteString("]}")
	return buf.Bytes(), nil
}

// MarshalJSON fixes field order and omits empty optional fields.
func (e Event) MarshalJSON() ([]byte, error) {
	if e.Kind == "" {
		return nil, errors.New("kind is required")
	}
	var buf bytes.Buffer
	buf.WriteString(`{"kind":`)
	kb, _ := json.Marshal(string(e.Kind))
	buf.Write(kb)

	writeOpt := func(key, val string) {
		if val == "" {
			return
		}
		buf.WriteString(`,"` + key + `":`)
		vb, _ := json.Marshal(val)
		buf.Write(vb)
	}
	writeOpt("entry", e.Entry)
	writeOpt("rule", e.Rule)
	writeOpt("include", e.Include)

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
