// Package runner executes the shell command attached to a shape.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

var ErrEmptyCommand = errors.New("shape has no command")

// Result is what a finished command left behind.
type Result struct {
	Command  string
	Output   string
	ExitCode int
	Duration time.Duration
}

// Run executes command through the platform shell and waits for it, up to
// timeout. Stdout and stderr are combined in Result.Output. A non-zero exit
// status is reported both in Result.ExitCode and as an error.
func Run(ctx context.Context, command string, timeout time.Duration) (Result, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return Result{}, ErrEmptyCommand
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	name, args := shell(command)
	cmd := exec.CommandContext(ctx, name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	cmd.WaitDelay = time.Second

	start := time.Now()
	err := cmd.Run()
	res := Result{
		Command:  command,
		Output:   out.String(),
		Duration: time.Since(start),
	}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return res, fmt.Errorf("run %q: %w", command, ctxErr)
	}
	if err != nil {
		return res, fmt.Errorf("run %q: %w", command, err)
	}
	return res, nil
}

func shell(command string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}
	}
	return "sh", []string{"-c", command}
}
