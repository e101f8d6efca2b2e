package model

import (
	"fmt"
	"strings"

	"github.com/oneconcern/sahl/pkg/core/status"
)

// Mode of a publication
type Mode string

const (
	// ModeNew publishes a dataset for the first time
	ModeNew Mode = "new"

	// ModeVersion publishes a new version of an existing dataset
	ModeVersion Mode = "version"
)

// ParseMode validates a publication mode
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeNew, ModeVersion:
		return m, nil
	default:
		return "", status.ErrInvalidArgument.Wrapf("unsupported mode %q, expected %q or %q", s, ModeNew, ModeVersion)
	}
}

func (m Mode) String() string {
	return string(m)
}

// PublishRequest describes the intent to publish a staged directory
type PublishRequest struct {
	Dir     string
	Owner   string
	Slug    string
	Mode    Mode
	Version string
	Notes   string
}

// Validate the request. Version notes are mandatory when publishing a new version.
func (r PublishRequest) Validate() error {
	if r.Owner == "" {
		return status.ErrInvalidArgument.Wrapf("empty field: owner is empty")
	}
	if r.Slug == "" {
		return status.ErrInvalidArgument.Wrapf("empty field: dataset slug is empty")
	}
	switch r.Mode {
	case ModeNew:
	case ModeVersion:
		if r.Notes == "" {
			return status.ErrInvalidArgument.Wrapf("version notes are required when mode=%q", ModeVersion)
		}
	default:
		return status.ErrInvalidArgument.Wrapf("unsupported mode %q", r.Mode)
	}
	return nil
}

// ID of the dataset to publish
func (r PublishRequest) ID() string {
	return DatasetID(r.Owner, r.Slug)
}

// VersionMessage is the message recorded with a new version
func (r PublishRequest) VersionMessage() string {
	return fmt.Sprintf("v%s: %s", r.versionOrDefault(), r.Notes)
}

func (r PublishRequest) versionOrDefault() string {
	if r.Version == "" {
		return DefaultVersion
	}
	return r.Version
}

// PublishResult reports the outcome of a publication.
//
// A nonzero exit code is a failed publication: there is no finer distinction between failure codes.
type PublishResult struct {
	Mode     Mode
	ExitCode int
	Args     []string
	URL      string
}

// OK tells if the publishing tool succeeded
func (r PublishResult) OK() bool {
	return r.ExitCode == 0
}
