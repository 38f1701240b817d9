package main

import (
	"context"
	"fmt"
	"os"

	"modpack/internal/cli"
)

// main packages the mod next to the executable unless -root says otherwise.
// Every diagnostic goes to stdout; the exit status is 0 on success and 1 when
// the build fails.
func main() {
	// An empty root is reported by ParseInvocation unless -root is given.
	root, _ := cli.ExecutableDir()

	result, err := cli.Run(context.Background(), os.Args[1:], root, os.Stdout)
	if err != nil && result.ExitCode == cli.ExitInvalidInvocation {
		// Build and config failures are already reported by Execute.
		fmt.Fprintln(os.Stdout, err)
	}
	os.Exit(result.ExitCode)
}
