// Copyright © 2018 One Concern

package core

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/fatih/color"
	"github.com/oneconcern/sahl/pkg/core/status"
	"github.com/oneconcern/sahl/pkg/model"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Publisher publishes staged directories with an external tool
type Publisher struct {
	runner Runner
	tool   string
	fs     afero.Fs
	l      *zap.Logger
	out    io.Writer
	strict bool
}

// NewPublisher builds a publisher, running the kaggle CLI by default
func NewPublisher(opts ...PublishOption) *Publisher {
	p := defaultPublisher()
	for _, apply := range opts {
		apply(p)
	}
	return p
}

// Publish a staged directory as a new dataset or as a new version of an existing one.
//
// Invalid requests fail with status.ErrInvalidArgument before anything is run.
// The tool runs with the staged directory as its working directory. A nonzero exit status is reported
// in the result and printed with some guidance, but is not an error unless the publisher is strict.
func (p *Publisher) Publish(ctx context.Context, req model.PublishRequest) (model.PublishResult, error) {
	if err := req.Validate(); err != nil {
		return model.PublishResult{}, err
	}
	if req.Version == "" {
		req.Version = model.DefaultVersion
	}
	if err := p.checkDir(req.Dir); err != nil {
		return model.PublishResult{}, err
	}

	args := publishArgs(req)
	result := model.PublishResult{
		Mode: req.Mode,
		Args: args,
		URL:  model.DatasetURL(req.Owner, req.Slug),
	}

	p.reportStart(req)
	p.l.Info("running publishing tool",
		zap.String("tool", p.tool),
		zap.Strings("args", args),
		zap.String("dir", req.Dir),
	)

	code, err := p.runner.Run(ctx, req.Dir, p.tool, args...)
	switch {
	case err != nil && errors.Is(err, exec.ErrNotFound):
		p.l.Error("publishing tool not found", zap.String("tool", p.tool), zap.Error(err))
		code = ExitToolNotFound
	case err != nil:
		return result, err
	}
	result.ExitCode = code

	if !result.OK() {
		p.l.Warn("publishing tool failed", zap.Int("exit_code", code))
		p.reportFailure(req, code)
		if p.strict {
			return result, status.ErrPublishFailed.Wrapf("%s exited with code %d", p.tool, code)
		}
		return result, nil
	}

	p.reportSuccess(req, result.URL)
	return result, nil
}

func (p *Publisher) checkDir(dir string) error {
	info, err := p.fs.Stat(dir)
	if err != nil {
		return errors.Wrapf(err, "staged directory %q", dir)
	}
	if !info.IsDir() {
		return status.ErrNotDirectory.Wrapf("staged directory %q", dir)
	}
	return nil
}

// publishArgs builds the command line of the publishing tool.
//
// The tool archives the current directory (its working directory) as the upload unit.
func publishArgs(req model.PublishRequest) []string {
	if req.Mode == model.ModeVersion {
		return []string{"datasets", "version", "-p", ".", "-m", req.VersionMessage(), "--dir-mode", "zip"}
	}
	return []string{"datasets", "create", "-p", ".", "--dir-mode", "zip"}
}

func (p *Publisher) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Publisher) reportStart(req model.PublishRequest) {
	p.printf("%s\n", color.New(color.Bold).Sprintf("Uploading dataset (%s mode)", strings.ToUpper(req.Mode.String())))
	switch req.Mode {
	case model.ModeNew:
		p.printf("Creating NEW dataset...\n")
		p.printf("   Dataset: %s\n", req.ID())
		p.printf("   This will be version 1\n\n")
	case model.ModeVersion:
		p.printf("Creating NEW VERSION of existing dataset...\n")
		p.printf("   Dataset: %s\n", req.ID())
		p.printf("   Version: %s\n", req.Version)
		p.printf("   Notes: %s\n\n", req.Notes)
	}
}

func (p *Publisher) reportSuccess(req model.PublishRequest, url string) {
	switch req.Mode {
	case model.ModeNew:
		p.printf("\n%s\n", color.GreenString("NEW dataset created successfully!"))
		p.printf("   View at: %s\n", url)
		p.printf("\nNext time, use mode=%s to update this dataset\n", model.ModeVersion)
	case model.ModeVersion:
		p.printf("\n%s\n", color.GreenString("NEW VERSION created successfully!"))
		p.printf("   View at: %s\n", url)
		p.printf("   Version: %s\n", req.Version)
		p.printf("\nRemember to:\n")
		p.printf("   1. Update CHANGELOG.md with this version\n")
		p.printf("   2. Tag in Git: git tag v%s\n", req.Version)
	}
}

var commonIssues = map[model.Mode][]string{
	model.ModeNew: {
		"Dataset name already exists (use mode=version instead)",
		"Publishing tool API not configured (missing credentials)",
		"Invalid dataset name (must be URL-friendly)",
	},
	model.ModeVersion: {
		"Dataset doesn't exist (use mode=new first)",
		"No changes detected",
		"Publishing tool API not configured (missing credentials)",
	},
}

func (p *Publisher) reportFailure(req model.PublishRequest, code int) {
	p.printf("\n%s\n", color.RedString("Upload failed with code %d", code))
	if code == ExitToolNotFound {
		p.printf("   %q was not found: is it installed and in your PATH?\n", p.tool)
	}
	p.printf("   Common issues:\n")
	for _, issue := range commonIssues[req.Mode] {
		p.printf("   - %s\n", issue)
	}
}
