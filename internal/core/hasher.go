package core

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"io"
)

// Digest identifies the uncompressed content of an archive: two builds with
// equal digests wrote the same entry names, in the same order, with the same
// bytes. Compressed bytes and timestamps do not contribute.
type Digest string

// String returns the hex form of the digest.
func (d Digest) String() string { return string(d) }

// DigestBuilder accumulates (name, content) pairs into a Digest.
//
// Content is streamed: Entry opens an entry and returns the writer its bytes
// go to. Each entry contributes its length-prefixed name followed by the
// sha256 of its content, so ("ab", "c") and ("a", "bc") differ.
type DigestBuilder struct {
	h hash.Hash

	name    string
	content hash.Hash // open entry; nil when none
}

// NewDigestBuilder creates an empty DigestBuilder.
func NewDigestBuilder() *DigestBuilder {
	return &DigestBuilder{h: sha256.New()}
}

// Entry seals the previous entry, if any, and starts a new one named name.
// The returned writer never fails.
func (b *DigestBuilder) Entry(name string) io.Writer {
	b.seal()
	b.name = name
	b.content = sha256.New()
	return b.content
}

func (b *DigestBuilder) seal() {
	if b.content == nil {
		return
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(len(b.name)))
	b.h.Write(buf[:])
	io.WriteString(b.h, b.name)
	b.h.Write(b.content.Sum(nil))
	b.content = nil
}

// Sum seals the open entry and returns the digest of everything added so far.
func (b *DigestBuilder) Sum() Digest {
	b.seal()
	return Digest(hex.EncodeToString(b.h.Sum(nil)))
}
