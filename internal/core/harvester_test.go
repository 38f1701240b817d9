package core

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

// TestCollect_OnlyScriptExtension verifies non-script files are never candidates.
func TestCollect_OnlyScriptExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/a.lua", "a")
	writeFile(t, root, "src/build_helper.py", "py")
	writeFile(t, root, "src/notes.md", "md")
	writeFile(t, root, "src/a.lua.bak", "bak")
	writeFile(t, root, "other/z.lua", "outside")

	entries, found, err := NewCollector(root, "src", ".lua").Collect()
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if !found {
		t.Fatal("expected source dir to be found")
	}
	if len(entries) != 1 || entries[0].Name != "src/a.lua" {
		t.Fatalf("entries = %+v, want only src/a.lua", entries)
	}
	if entries[0].SourcePath != filepath.Join(root, "src", "a.lua") {
		t.Errorf("SourcePath = %q", entries[0].SourcePath)
	}
}

// TestCollect_NestedSorted verifies structure is preserved and order is stable.
func TestCollect_NestedSorted(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{"src/zeta.lua", "src/sub/b.lua", "src/a.lua", "src/sub/deeper/c.lua", "src/sub-x.lua"} {
		writeFile(t, root, rel, rel)
	}

	entries, _, err := NewCollector(root, "src", ".lua").Collect()
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	got := (&EntrySet{Entries: entries}).Names()
	want := []string{"src/a.lua", "src/sub-x.lua", "src/sub/b.lua", "src/sub/deeper/c.lua", "src/zeta.lua"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("names = %v, want %v", got, want)
	}
}

// TestCollect_MissingSourceDir verifies absence is a no-op, not an error.
// TestCollect_DirectoryNamedLikeScript verifies a directory whose name ends in
// the extension is descended into but never becomes an entry itself.
func TestCollect_DirectoryNamedLikeScript(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/lib.lua/inner.lua", "inner")
	if err := os.MkdirAll(filepath.Join(root, "src", "empty.lua"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	entries, _, err := NewCollector(root, "src", ".lua").Collect()
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	if !reflect.DeepEqual(names, []string{"src/lib.lua/inner.lua"}) {
		t.Fatalf("names = %v", names)
	}
}

func TestCollect_MissingSourceDir(t *testing.T) {
	root := t.TempDir()
	entries, found, err := NewCollector(root, "src", ".lua").Collect()
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if found {
		t.Error("found = true for missing dir")
	}
	if len(entries) != 0 {
		t.Errorf("entries = %v", entries)
	}
}

func TestCollect_SourceIsFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src", "not a dir")
	_, found, err := NewCollector(root, "src", ".lua").Collect()
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if found {
		t.Error("a plain file must not count as a source tree")
	}
}

func TestEntryName(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "proj")
	tests := []struct {
		file string
		want string
	}{
		{filepath.Join(root, "src", "a.lua"), "src/a.lua"},
		{filepath.Join(root, "icon.dds"), "icon.dds"},
		{filepath.Join(root, "src", "sub", "..", "b.lua"), "src/b.lua"},
	}
	for _, tc := range tests {
		got, err := EntryName(root, tc.file)
		if err != nil {
			t.Fatalf("EntryName(%q): %v", tc.file, err)
		}
		if got != tc.want {
			t.Errorf("EntryName(%q) = %q, want %q", tc.file, got, tc.want)
		}
	}

	if _, err := EntryName(root, filepath.Join(string(filepath.Separator), "elsewhere", "a.lua")); err == nil {
		t.Error("expected error for path outside root")
	}
	if _, err := EntryName(root, root); err == nil {
		t.Error("expected error for the root itself")
	}
}

func TestNormalizeName(t *testing.T) {
	tests := map[string]string{
		"./src/a.lua":   "src/a.lua",
		`src\win\a.lua`: "src/win/a.lua",
		"src//x.lua":    "src/x.lua",
		".":             "",
	}
	for in, want := range tests {
		if got := NormalizeName(in); got != want {
			t.Errorf("NormalizeName(%q) = %q, want %q", in, got, want)
		}
	}
}
