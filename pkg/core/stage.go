// Copyright © 2018 One Concern

package core

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oneconcern/sahl/pkg/core/status"
	"github.com/oneconcern/sahl/pkg/model"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const maxLinkHops = 40

// Stager prepares upload-ready directories.
//
// A stager owns its output directory: any previous content is destroyed.
type Stager struct {
	fs  afero.Fs
	l   *zap.Logger
	now func() time.Time
	out io.Writer
}

// NewStager builds a stager, working on the OS file system by default
func NewStager(opts ...StageOption) *Stager {
	s := defaultStager()
	for _, apply := range opts {
		apply(s)
	}
	return s
}

// Fs exposes the file system used by this stager
func (s *Stager) Fs() afero.Fs {
	return s.fs
}

// Prepare stages the source directory into the output directory.
//
// The output directory is removed if it exists, then rebuilt from a copy of every regular file
// found under source. A README.md is generated unless the copy provided one, and the
// dataset-metadata.json descriptor is always written.
//
// File system errors are returned with their cause preserved.
func (s *Stager) Prepare(source, output string, desc model.StageDescriptor) (model.Summary, error) {
	if desc.Version == "" {
		desc.Version = model.DefaultVersion
	}
	source, output = filepath.Clean(source), filepath.Clean(output)

	source, err := s.checkPaths(source, output)
	if err != nil {
		return model.Summary{}, err
	}

	s.l.Info("preparing dataset",
		zap.String("id", desc.ID()),
		zap.String("source", source),
		zap.String("output", output),
	)

	if err = s.resetOutput(output); err != nil {
		return model.Summary{}, err
	}

	copied, err := copyTree(s.fs, source, output, s.l)
	if err != nil {
		return model.Summary{}, err
	}
	s.l.Info("copied files", zap.Int("count", copied))

	if err = writeReadme(s.fs, output, desc, s.now(), s.l); err != nil {
		return model.Summary{}, err
	}

	if err = writeMetadata(s.fs, output, model.NewMetadata(desc.Owner, desc.Slug, desc.Title), s.l); err != nil {
		return model.Summary{}, err
	}

	summary, err := summarize(s.fs, output, desc)
	if err != nil {
		return model.Summary{}, err
	}
	printSummary(s.out, summary)

	return summary, nil
}

// checkPaths validates the source and output directories, and returns the source with
// a symlinked root resolved
func (s *Stager) checkPaths(source, output string) (string, error) {
	info, err := s.fs.Stat(source)
	if err != nil {
		return "", errors.Wrapf(err, "source %q", source)
	}
	if !info.IsDir() {
		return "", status.ErrNotDirectory.Wrapf("source %q", source)
	}

	resolved, err := resolveRoot(s.fs, source)
	if err != nil {
		return "", errors.Wrapf(err, "source %q", source)
	}
	if resolved != source {
		s.l.Debug("source is a link", zap.String("source", source), zap.String("target", resolved))
	}

	// the output is wiped out: it must not overlap with the source
	absOutput, err := filepath.Abs(output)
	if err != nil {
		return "", errors.Wrapf(err, "output %q", output)
	}
	for _, candidate := range []string{source, resolved} {
		absSource, err := filepath.Abs(candidate)
		if err != nil {
			return "", errors.Wrapf(err, "source %q", source)
		}
		if isWithin(absOutput, absSource) || isWithin(absSource, absOutput) {
			return "", status.ErrInvalidArgument.Wrapf("output %q overlaps with source %q", output, source)
		}
	}
	return resolved, nil
}

// resolveRoot follows the links of a root directory, since walking does not descend into a link
func resolveRoot(fs afero.Fs, root string) (string, error) {
	lstater, ok := fs.(afero.Lstater)
	if !ok {
		return root, nil
	}
	reader, ok := fs.(afero.LinkReader)
	if !ok {
		return root, nil
	}
	for hops := 0; hops < maxLinkHops; hops++ {
		info, lstatCalled, err := lstater.LstatIfPossible(root)
		if err != nil {
			return "", err
		}
		if !lstatCalled || info.Mode()&os.ModeSymlink == 0 {
			return root, nil
		}
		target, err := reader.ReadlinkIfPossible(root)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(root), target)
		}
		root = filepath.Clean(target)
	}
	return "", status.ErrInvalidArgument.Wrapf("too many links from %q", root)
}

func (s *Stager) resetOutput(output string) error {
	exists, err := afero.Exists(s.fs, output)
	if err != nil {
		return errors.Wrapf(err, "output %q", output)
	}
	if exists {
		s.l.Warn("output directory exists, cleaning", zap.String("output", output))
		if err = s.fs.RemoveAll(output); err != nil {
			return errors.Wrapf(err, "cleaning output %q", output)
		}
	}
	if err = s.fs.MkdirAll(output, 0o755); err != nil {
		return errors.Wrapf(err, "creating output %q", output)
	}
	return nil
}

// isWithin tells if pth is dir or lies under dir
func isWithin(pth, dir string) bool {
	if pth == dir {
		return true
	}
	if !strings.HasSuffix(dir, string(os.PathSeparator)) {
		dir += string(os.PathSeparator)
	}
	return strings.HasPrefix(pth, dir)
}
