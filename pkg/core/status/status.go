// Package status exports errors produced by the core package.
package status

import (
	"github.com/oneconcern/sahl/pkg/errors"
)

var (
	// ErrInvalidArgument indicates a request that cannot be honored as specified.
	// It is always returned before any file system change or subprocess call.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotDirectory indicates that a source path exists but is not a directory
	ErrNotDirectory = errors.New("not a directory")

	// ErrPublishFailed indicates the publishing tool exited with a nonzero status.
	// It is only returned by publishers running in strict mode.
	ErrPublishFailed = errors.New("publishing tool failed")
)
