// Copyright © 2018 One Concern

package core

import (
	"io"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// DefaultTool is the publishing tool invoked when none is configured
const DefaultTool = "kaggle"

// PublishOption is a functor to build a publisher with some options
type PublishOption func(*Publisher)

// PublishRunner sets the way the publishing tool is run
func PublishRunner(r Runner) PublishOption {
	return func(p *Publisher) {
		if r != nil {
			p.runner = r
		}
	}
}

// PublishTool sets the name (or path) of the publishing tool
func PublishTool(name string) PublishOption {
	return func(p *Publisher) {
		if name != "" {
			p.tool = name
		}
	}
}

// PublishFs sets the file system on which staged directories are checked
func PublishFs(fs afero.Fs) PublishOption {
	return func(p *Publisher) {
		if fs != nil {
			p.fs = fs
		}
	}
}

// PublishLogger sets a logger for the publisher
func PublishLogger(l *zap.Logger) PublishOption {
	return func(p *Publisher) {
		if l != nil {
			p.l = l
		}
	}
}

// PublishOutput sets the writer receiving the publication report
func PublishOutput(w io.Writer) PublishOption {
	return func(p *Publisher) {
		if w != nil {
			p.out = w
		}
	}
}

// Strict makes a failed publication an error.
//
// By default, a nonzero exit status of the tool is only reported.
func Strict(enabled bool) PublishOption {
	return func(p *Publisher) {
		p.strict = enabled
	}
}

func defaultPublisher() *Publisher {
	return &Publisher{
		runner: NewExecRunner(),
		tool:   DefaultTool,
		fs:     afero.NewOsFs(),
		l:      zap.NewNop(),
		out:    io.Discard,
	}
}
