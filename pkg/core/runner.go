// Copyright © 2018 One Concern

package core

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
)

// ExitToolNotFound is the exit status reported when the publishing tool cannot be found,
// as a shell would report it.
const ExitToolNotFound = 127

// Runner abstracts how the external publishing tool is invoked.
//
// Run executes name with args inside dir and returns its exit status. An error is returned only
// when the process could not be run at all: a nonzero exit status is not an error.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (int, error)
}

// ExecRunner runs the tool as a subprocess, with dir as its working directory.
//
// The working directory of the current process is never changed.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner builds a runner streaming the tool's output to the process' standard streams
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run the tool
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (int, error) {
	pth, err := exec.LookPath(name)
	if err != nil {
		return ExitToolNotFound, err
	}
	// a relative path would otherwise be resolved from dir
	if !filepath.IsAbs(pth) {
		if pth, err = filepath.Abs(pth); err != nil {
			return -1, errors.Wrapf(err, "resolving %s", name)
		}
	}

	cmd := exec.CommandContext(ctx, pth, args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err = cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, errors.Wrapf(err, "running %s", name)
}
