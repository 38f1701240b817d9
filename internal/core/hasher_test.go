package core

import (
	"io"
	"testing"
)

func digestOf(pairs ...string) Digest {
	b := NewDigestBuilder()
	for i := 0; i+1 < len(pairs); i += 2 {
		io.WriteString(b.Entry(pairs[i]), pairs[i+1])
	}
	return b.Sum()
}

func TestDigest_SameContentSameDigest(t *testing.T) {
	if digestOf("src/a.lua", "print(1)") != digestOf("src/a.lua", "print(1)") {
		t.Fatal("identical inputs produced different digests")
	}
}

func TestDigest_FieldBoundariesMatter(t *testing.T) {
	if digestOf("ab", "c") == digestOf("a", "bc") {
		t.Fatal("name and content must not run together")
	}
}

func TestDigest_OrderMatters(t *testing.T) {
	if digestOf("x", "1", "y", "2") == digestOf("y", "2", "x", "1") {
		t.Fatal("entry order should contribute to the digest")
	}
}

func TestDigest_ChangedContent(t *testing.T) {
	if digestOf("src/a.lua", "v1") == digestOf("src/a.lua", "v2") {
		t.Fatal("content change must change the digest")
	}
}

func TestDigest_ChunkedWritesMatchSingleWrite(t *testing.T) {
	b := NewDigestBuilder()
	w := b.Entry("src/a.lua")
	io.WriteString(w, "print")
	io.WriteString(w, "(1)")
	if b.Sum() != digestOf("src/a.lua", "print(1)") {
		t.Fatal("streamed content must digest like a single write")
	}
}

func TestDigest_EmptyEntryCounts(t *testing.T) {
	if digestOf("icon.dds", "") == digestOf() {
		t.Fatal("an empty entry is still an entry")
	}
}
