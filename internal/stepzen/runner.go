// Package stepzen wraps the StepZen CLI: workspace initialization and
// endpoint deployment via subprocess.
package stepzen

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultBin is the deploy tool binary resolved from PATH.
const DefaultBin = "stepzen"

// CommandError reports a failed CLI invocation with its captured
// standard error, surfaced verbatim for the operator.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("stepzen %s failed: %v", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += "\n" + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }

// Runner executes stepzen subcommands.
type Runner struct {
	bin string
	log *log.Logger
}

// NewRunner creates a Runner for the given binary; empty selects
// DefaultBin.
func NewRunner(bin string, logger *log.Logger) *Runner {
	if bin == "" {
		bin = DefaultBin
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{bin: bin, log: logger}
}

// Run invokes the CLI in dir (process cwd when empty) and returns its
// stdout. A non-zero exit yields a *CommandError carrying stderr.
func (r *Runner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	r.log.Debug("running command", "bin", r.bin, "args", args, "dir", dir)

	cmd := exec.CommandContext(ctx, r.bin, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &CommandError{
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return stdout.String(), nil
}
