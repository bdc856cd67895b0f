package runner

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX shell syntax")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRun_CapturesOutput(t *testing.T) {
	skipWithoutShell(t)

	res, err := Run(context.Background(), "echo hello; echo oops 1>&2", time.Second*5)
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Contains(t, res.Output, "hello")
	assert.Contains(t, res.Output, "oops")
}

func TestRun_NonZeroExit(t *testing.T) {
	skipWithoutShell(t)

	res, err := Run(context.Background(), "exit 3", time.Second*5)
	require.Error(t, err)
	assert.Equal(t, 3, res.ExitCode)

	var exitErr *exec.ExitError
	assert.True(t, errors.As(err, &exitErr))
}

func TestRun_Timeout(t *testing.T) {
	skipWithoutShell(t)

	_, err := Run(context.Background(), "sleep 3", 50*time.Millisecond)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRun_EmptyCommand(t *testing.T) {
	_, err := Run(context.Background(), "   ", time.Second)
	assert.ErrorIs(t, err, ErrEmptyCommand)
}

func TestShell(t *testing.T) {
	name, args := shell("ls")
	if runtime.GOOS == "windows" {
		assert.Equal(t, "cmd", name)
	} else {
		assert.Equal(t, "sh", name)
		assert.Equal(t, "ls", strings.Join(args[1:], " "))
	}
}
