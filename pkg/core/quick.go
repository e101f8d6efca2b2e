// Copyright © 2018 One Concern

package core

import (
	"context"

	"github.com/oneconcern/sahl/pkg/model"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const quickStagingPrefix = "kaggle_dataset_"

// QuickRequest describes a one-shot staging and publication
type QuickRequest struct {
	Source  string
	Owner   string
	Slug    string
	Title   string // derived from the slug when empty
	Mode    model.Mode
	Version string
	Notes   string
}

// QuickOption is a functor to tune a quick publication
type QuickOption func(*quick)

// QuickStager sets the stager used to prepare the temporary staging directory
func QuickStager(s *Stager) QuickOption {
	return func(q *quick) {
		if s != nil {
			q.stager = s
		}
	}
}

// QuickPublisher sets the publisher
func QuickPublisher(p *Publisher) QuickOption {
	return func(q *quick) {
		if p != nil {
			q.publisher = p
		}
	}
}

type quick struct {
	stager    *Stager
	publisher *Publisher
}

// QuickPublish stages the source into a fresh temporary directory, then publishes it.
//
// The temporary directory is removed whatever the outcome. A failure to remove it is
// reported along with any other error.
func QuickPublish(ctx context.Context, req QuickRequest, opts ...QuickOption) (result model.PublishResult, err error) {
	q := &quick{}
	for _, apply := range opts {
		apply(q)
	}
	if q.stager == nil {
		q.stager = NewStager()
	}
	if q.publisher == nil {
		q.publisher = NewPublisher(PublishFs(q.stager.Fs()), PublishLogger(q.stager.l))
	}

	if req.Title == "" {
		req.Title = model.TitleFromSlug(req.Slug)
	}
	if req.Mode == "" {
		req.Mode = model.ModeNew
	}
	if req.Version == "" {
		req.Version = model.DefaultVersion
	}

	fs := q.stager.Fs()
	dir, err := afero.TempDir(fs, "", quickStagingPrefix)
	if err != nil {
		return result, errors.Wrap(err, "creating staging directory")
	}
	defer func() {
		if e := fs.RemoveAll(dir); e != nil {
			err = multierr.Append(err, errors.Wrapf(e, "removing staging directory %q", dir))
			return
		}
		q.stager.l.Debug("removed staging directory", zap.String("dir", dir))
	}()

	publishReq := model.PublishRequest{
		Dir:     dir,
		Owner:   req.Owner,
		Slug:    req.Slug,
		Mode:    req.Mode,
		Version: req.Version,
		Notes:   req.Notes,
	}
	// fail fast, before copying anything
	if err = publishReq.Validate(); err != nil {
		return result, err
	}

	_, err = q.stager.Prepare(req.Source, dir, model.StageDescriptor{
		Owner:   req.Owner,
		Slug:    req.Slug,
		Title:   req.Title,
		Version: req.Version,
	})
	if err != nil {
		return result, err
	}

	return q.publisher.Publish(ctx, publishReq)
}
