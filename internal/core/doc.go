// Package core provides the domain models for deterministic mod packaging.
//
// # Design Principles
//
//  1. Entry order never depends on filesystem listing order
//  2. Entry names are root-relative and slash-separated on every OS
//  3. Identity of a build is the ordered (name, content) pairs, not metadata
//
// # Core Types
//
// Entry: one file destined for the archive, with its entry name.
// EntrySet: the ordered entries of one build.
// Collector: walks the script tree and yields candidate entries.
// Digest: content identity of an EntrySet.
package core
