// Package driver runs an external solver command in place of the native
// search. The command receives the puzzle path as its final argument and
// must print the solution document on stdout.
package driver

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Result holds the outcome of a single driver invocation.
type Result struct {
	Stdout []byte
	Stderr string
	Err    error
}

// Split breaks a driver command line into argv tokens. Tokens are
// whitespace-separated; there is no shell quoting.
func Split(command string) []string {
	return strings.Fields(command)
}

// Run invokes the driver command with the puzzle path appended. Stdout is
// captured as the solution document. When verbose is enabled, stderr is
// tee'd to os.Stderr in real time; otherwise it is captured silently and
// surfaced only on failure.
func Run(ctx context.Context, command, puzzlePath string, verbose bool) Result {
	argv := Split(command)
	if len(argv) == 0 {
		return Result{Err: errors.New("empty driver command")}
	}
	argv = append(argv, puzzlePath)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	// A killed driver can leave child processes holding the output
	// pipes; the delay lets Wait abandon them instead of blocking until
	// every descendant exits.
	cmd.WaitDelay = time.Second

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	if verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	return Result{
		Stdout: stdoutBuf.Bytes(),
		Stderr: stderrBuf.String(),
		Err:    err,
	}
}
