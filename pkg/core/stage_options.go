// Copyright © 2018 One Concern

package core

import (
	"io"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// StageOption is a functor to build a stager with some options
type StageOption func(*Stager)

// StageFs sets the file system the stager reads from and writes to
func StageFs(fs afero.Fs) StageOption {
	return func(s *Stager) {
		if fs != nil {
			s.fs = fs
		}
	}
}

// StageLogger sets a logger for the stager
func StageLogger(l *zap.Logger) StageOption {
	return func(s *Stager) {
		if l != nil {
			s.l = l
		}
	}
}

// StageClock overrides the time used to date the generated README
func StageClock(now func() time.Time) StageOption {
	return func(s *Stager) {
		if now != nil {
			s.now = now
		}
	}
}

// StageOutput sets the writer receiving the staging summary
func StageOutput(w io.Writer) StageOption {
	return func(s *Stager) {
		if w != nil {
			s.out = w
		}
	}
}

func defaultStager() *Stager {
	return &Stager{
		fs:  afero.NewOsFs(),
		l:   zap.NewNop(),
		now: time.Now,
		out: io.Discard,
	}
}
