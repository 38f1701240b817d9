package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseInvocation_NoArgsUsesDefaultRoot(t *testing.T) {
	root := t.TempDir()

	inv, err := ParseInvocation(nil, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Invocation{
		Root:       filepath.Clean(root),
		ConfigPath: filepath.Join(root, "modpack.yaml"),
		Color:      true,
	}
	if !reflect.DeepEqual(inv, want) {
		t.Fatalf("got %#v\nwant %#v", inv, want)
	}
}

func TestParseInvocation_Deterministic(t *testing.T) {
	root := t.TempDir()
	args := []string{
		"-root", root + "/./sub/..",
		"-config", "conf/../modpack.yaml",
		"-trace", "out/./trace.json",
		"-no-color",
	}

	inv1, err := ParseInvocation(args, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inv2, err := ParseInvocation(args, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(inv1, inv2) {
		t.Fatalf("expected identical invocations, got\n%#v\n%#v", inv1, inv2)
	}

	if inv1.Root != filepath.Clean(root) {
		t.Fatalf("root not canonicalized: %q", inv1.Root)
	}
	if !inv1.ConfigExplicit || inv1.ConfigPath != filepath.Join(root, "modpack.yaml") {
		t.Fatalf("config not resolved: %#v", inv1)
	}
	if !inv1.Trace.Enabled || inv1.Trace.Path != filepath.Join(root, "out", "trace.json") {
		t.Fatalf("trace not resolved: %#v", inv1.Trace)
	}
	if inv1.Color {
		t.Fatal("-no-color ignored")
	}
}

func TestParseInvocation_RelativePathsResolveUnderRoot_NotCwd(t *testing.T) {
	root := t.TempDir()
	otherCwd := t.TempDir()

	oldCwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldCwd) })
	if err := os.Chdir(otherCwd); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}

	inv, err := ParseInvocation([]string{"-trace", "t.json"}, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Trace.Path != filepath.Join(root, "t.json") {
		t.Fatalf("trace resolved against cwd: %q", inv.Trace.Path)
	}
}

func TestParseInvocation_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		def  string
	}{
		{"unknown flag", []string{"-x"}, "/tmp"},
		{"positional", []string{"extra"}, "/tmp"},
		{"no root", nil, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseInvocation(tc.args, tc.def)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := ExitCode(err); got != ExitInvalidInvocation {
				t.Fatalf("exit code = %d, want %d", got, ExitInvalidInvocation)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	if ExitCode(nil) != ExitSuccess {
		t.Error("nil error must be success")
	}
	if ExitCode(os.ErrPermission) != ExitBuildFailure {
		t.Error("plain errors are build failures")
	}
	if ExitCode(configErrorf("bad")) != ExitConfigError {
		t.Error("config errors keep their code")
	}
	if ExitCode(&InvocationError{Message: "zero"}) != ExitInvalidInvocation {
		t.Error("zero exit code falls back to invalid invocation")
	}
}
