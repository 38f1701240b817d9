package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"modpack/internal/build"
	"modpack/internal/config"
	"modpack/internal/report"
	"modpack/internal/trace"
)

// Packager is the minimal engine interface the CLI wires into.
//
// This lets tests prove exit-code mapping (including panic) without a real
// build.
type Packager interface {
	Build(ctx context.Context) (build.Result, error)
}

type CLIResult struct {
	ExitCode int
	Build    *build.Result
}

// Execute loads the project configuration, builds the archive and reports the
// outcome on stdout.
//
// Only an explicit -config can produce ExitConfigError. A broken modpack.yaml
// picked up implicitly from the root fails the run like any other build
// error, so a run without flags exits 0 or 1.
func Execute(ctx context.Context, inv Invocation, stdout io.Writer) (CLIResult, error) {
	rep := report.New(stdout, inv.Color)

	project, err := loadProject(inv)
	if err != nil {
		rep.Failure(err)
		return CLIResult{ExitCode: ExitCode(err)}, err
	}

	b, err := build.New(inv.Root, project, rep)
	if err != nil {
		if inv.ConfigExplicit {
			err = configErrorf("%v", err)
		}
		rep.Failure(err)
		return CLIResult{ExitCode: ExitCode(err)}, err
	}
	return ExecuteWithPackager(ctx, inv, b, rep)
}

// ExecuteWithPackager runs p and maps its outcome to an exit code.
//
// Responsibilities:
//   - Any build error prints one failure line and yields ExitBuildFailure.
//   - A panic is recovered and reported the same way.
//   - The trace file, when requested, is written only after a successful
//     build; failing to write it fails the run.
func ExecuteWithPackager(ctx context.Context, inv Invocation, p Packager, rep *report.Reporter) (res CLIResult, execErr error) {
	res.ExitCode = ExitBuildFailure
	if p == nil {
		return res, fmt.Errorf("nil packager")
	}
	if rep == nil {
		rep = report.Discard()
	}

	defer func() {
		if r := recover(); r != nil {
			res.ExitCode = ExitBuildFailure
			res.Build = nil
			execErr = fmt.Errorf("panic: %v", r)
			rep.Failure(execErr)
		}
	}()

	out, err := p.Build(ctx)
	res.Build = &out
	if err != nil {
		rep.Failure(err)
		res.ExitCode = ExitBuildFailure
		return res, err
	}

	if inv.Trace.Enabled {
		hash, err := writeTrace(inv.Trace.Path, out)
		if err != nil {
			rep.Failure(err)
			res.ExitCode = ExitBuildFailure
			return res, err
		}
		rep.Trace(inv.Trace.Path, hash)
	}

	rep.Success()
	res.ExitCode = ExitSuccess
	return res, nil
}

func loadProject(inv Invocation) (config.Project, error) {
	if inv.ConfigExplicit {
		p, err := config.Load(inv.ConfigPath)
		if err != nil {
			return config.Project{}, configErrorf("%v", err)
		}
		return p, nil
	}
	p, _, err := config.LoadOptional(inv.ConfigPath)
	if err != nil {
		return config.Project{}, err
	}
	return p, nil
}

// writeTrace writes the canonical trace and returns its sha256.
func writeTrace(path string, res build.Result) (string, error) {
	b, err := res.Trace.CanonicalJSON()
	if err != nil {
		return "", fmt.Errorf("encode trace: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("trace dir: %w", err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write trace: %w", err)
	}
	return trace.ComputeTraceHash(b), nil
}
