// Package pandoc converts HTML documents to markdown by invoking the pandoc CLI.
package pandoc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/fwojciec/slidedoc"
)

// DefaultBinary is the pandoc executable looked up on PATH.
const DefaultBinary = "pandoc"

// CommandRunner abstracts command execution so conversions can be tested
// without a real subprocess.
type CommandRunner interface {
	Run(ctx context.Context, stdin []byte, name string, args ...string) (stdout, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

// Run starts name with stdin piped in and waits for it to exit. A non-zero
// exit status is returned as an *exec.ExitError.
func (r *ExecRunner) Run(ctx context.Context, stdin []byte, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = bytes.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// Ensure Converter implements slidedoc.DocumentConverter at compile time.
var _ slidedoc.DocumentConverter = (*Converter)(nil)

// Converter converts HTML to strict markdown with pandoc.
type Converter struct {
	Runner CommandRunner
	Binary string
}

// NewConverter creates a Converter with a real command runner.
func NewConverter() *Converter {
	return &Converter{Runner: &ExecRunner{}, Binary: DefaultBinary}
}

// Args returns the pandoc arguments used for every conversion.
func Args() []string {
	return []string{"--from", "html", "--to", "markdown_strict"}
}

// ConvertDocument pipes html through pandoc and returns its stdout.
// A failed invocation, non-zero exit, or empty output is ECONVERTER.
func (c *Converter) ConvertDocument(ctx context.Context, html []byte) (string, error) {
	binary := c.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	stdout, stderr, err := c.Runner.Run(ctx, html, binary, Args()...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		if errors.Is(err, exec.ErrNotFound) {
			return "", slidedoc.Errorf(slidedoc.ECONVERTER, "%s not found on PATH", binary)
		}
		return "", slidedoc.Errorf(slidedoc.ECONVERTER, "%s: %s", describe(err), strings.TrimSpace(stderr))
	}
	if strings.TrimSpace(stdout) == "" {
		return "", slidedoc.Errorf(slidedoc.ECONVERTER, "%s produced no output", binary)
	}
	return stdout, nil
}

func describe(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Sprintf("exit status %d", exitErr.ExitCode())
	}
	return err.Error()
}
