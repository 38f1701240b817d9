package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"modpack/internal/config"
)

const (
	ExitSuccess           = 0
	ExitBuildFailure      = 1
	ExitInvalidInvocation = 2
	ExitConfigError       = 3
)

type TraceConfig struct {
	Enabled bool
	Path    string
}

// Invocation is the canonical description of one run.
//
// Root is absolute and clean. ConfigPath is absolute; ConfigExplicit records
// whether it came from -config (a missing explicit file is an error, a missing
// default one is not).
type Invocation struct {
	Root           string
	ConfigPath     string
	ConfigExplicit bool
	Trace          TraceConfig
	Color          bool
}

type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

func configErrorf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitConfigError, Message: fmt.Sprintf(format, args...)}
}

// ExecutableDir returns the directory holding the running binary. It is the
// project root when modpack is run without -root.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// ParseInvocation parses CLI flags into a canonical Invocation.
//
// With no arguments the project root is defaultRoot. Relative -config and
// -trace paths resolve under the root, never under the process CWD.
func ParseInvocation(args []string, defaultRoot string) (Invocation, error) {
	fs := flag.NewFlagSet("modpack", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var root string
	var configPath string
	var tracePath string
	var noColor bool

	fs.StringVar(&root, "root", "", "Project root. Defaults to the directory containing modpack.")
	fs.StringVar(&configPath, "config", "", "YAML project overlay. Defaults to <root>/"+config.FileName+" when present.")
	fs.StringVar(&tracePath, "trace", "", "Write the build trace JSON to this path (optional).")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored output.")

	if err := fs.Parse(args); err != nil {
		return Invocation{}, invalidInvocationf("%v", err)
	}
	if fs.NArg() != 0 {
		return Invocation{}, invalidInvocationf("unexpected positional arguments: %q", strings.Join(fs.Args(), " "))
	}

	if strings.TrimSpace(root) == "" {
		root = defaultRoot
	}
	if strings.TrimSpace(root) == "" {
		return Invocation{}, invalidInvocationf("project root could not be determined; pass -root")
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return Invocation{}, invalidInvocationf("resolve -root %q: %v", root, err)
	}

	inv := Invocation{
		Root:  filepath.Clean(absRoot),
		Color: !noColor,
	}

	if strings.TrimSpace(configPath) != "" {
		inv.ConfigPath = resolveUnderRoot(inv.Root, configPath)
		inv.ConfigExplicit = true
	} else {
		inv.ConfigPath = filepath.Join(inv.Root, config.FileName)
	}

	if strings.TrimSpace(tracePath) != "" {
		inv.Trace = TraceConfig{Enabled: true, Path: resolveUnderRoot(inv.Root, tracePath)}
	}

	return inv, nil
}

func resolveUnderRoot(root, p string) string {
	clean := filepath.Clean(p)
	if filepath.IsAbs(clean) {
		return clean
	}
	return filepath.Join(root, clean)
}

// ExitCode extracts a semantic exit code from an error.
// Errors that are not invocation errors are build failures.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var invErr *InvocationError
	if errors.As(err, &invErr) && invErr != nil {
		if invErr.ExitCode != 0 {
			return invErr.ExitCode
		}
		return ExitInvalidInvocation
	}
	return ExitBuildFailure
}
