// Package clitest drives a built CLI binary as a subprocess and asserts
// byte-exact contracts on its exit code and output.
package clitest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/metops/improver/internal/dispatch"
)

// DefaultTimeout bounds each invocation. A run that exceeds it is a harness
// failure, distinct from an assertion failure.
const DefaultTimeout = 30 * time.Second

// ErrTimeout reports a subprocess that did not terminate in time.
var ErrTimeout = errors.New("cli invocation timed out")

// Harness invokes one binary. It holds no per-invocation state, so a single
// harness may be shared by parallel tests.
type Harness struct {
	bin     string
	timeout time.Duration
}

// New returns a harness for the binary at bin with the default timeout.
func New(bin string) *Harness {
	return &Harness{bin: bin, timeout: DefaultTimeout}
}

// WithTimeout returns a copy of the harness using the given timeout.
func (h *Harness) WithTimeout(d time.Duration) *Harness {
	return &Harness{bin: h.bin, timeout: d}
}

// Run launches the binary with args, waits for it to exit, and captures the
// invocation outcome. A non-zero exit is not an error; it is part of the
// result. Timeouts and launch failures are errors.
func (h *Harness) Run(ctx context.Context, args ...string) (dispatch.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, h.bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := dispatch.Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return res, fmt.Errorf("%w after %s: %s %s",
				ErrTimeout, h.timeout, h.bin, strings.Join(args, " "))
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("running %s: %w", h.bin, err)
	}
	return res, nil
}

// AssertExact fails the test unless got carries the expected exit code and
// byte-exact stdout.
func AssertExact(t testing.TB, got dispatch.Result, wantExit int, wantStdout string) {
	t.Helper()
	if msg := diffResult(got, wantExit, wantStdout); msg != "" {
		t.Error(msg)
	}
}

// diffResult returns a failure report for got against the expectation, or
// "" when they match.
func diffResult(got dispatch.Result, wantExit int, wantStdout string) string {
	var b strings.Builder
	if got.ExitCode != wantExit {
		fmt.Fprintf(&b, "exit code: want %d, got %d\n", wantExit, got.ExitCode)
		if got.Stderr != "" {
			fmt.Fprintf(&b, "stderr:\n%s", got.Stderr)
		}
	}
	if got.Stdout != wantStdout {
		fmt.Fprintf(&b, "stdout mismatch (-want +got):\n%s", cmp.Diff(wantStdout, got.Stdout))
		fmt.Fprintf(&b, "want:\n%q\ngot:\n%q\n", wantStdout, got.Stdout)
	}
	return b.String()
}
