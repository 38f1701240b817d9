package cli

import (
	"context"
	"io"
)

// Run is a high-level CLI entrypoint suitable for black-box tests.
// It accepts the argument slice (excluding argv[0]) and returns the semantic
// exit code plus any error. All output goes to stdout.
func Run(ctx context.Context, args []string, defaultRoot string, stdout io.Writer) (CLIResult, error) {
	inv, err := ParseInvocation(args, defaultRoot)
	if err != nil {
		return CLIResult{ExitCode: ExitCode(err)}, err
	}
	return Execute(ctx, inv, stdout)
}
