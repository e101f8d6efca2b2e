// Copyright © 2018 One Concern

package core

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// copyTree copies every regular file under source to the same relative path under dest.
//
// Content, permission bits and modification times are preserved. Symlinks and special
// files are skipped.
func copyTree(fs afero.Fs, source, dest string, l *zap.Logger) (int, error) {
	var copied int
	err := afero.Walk(fs, source, func(pth string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(source, pth)
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			l.Debug("skipped non-regular file", zap.String("path", rel), zap.Stringer("mode", info.Mode()))
			return nil
		}

		target := filepath.Join(dest, rel)
		if err = fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return errors.Wrapf(err, "creating directory for %q", rel)
		}
		if err = copyFile(fs, pth, target, info); err != nil {
			return err
		}
		copied++
		l.Debug("copied", zap.String("path", rel), zap.Int64("size", info.Size()))
		return nil
	})
	if err != nil {
		return copied, errors.Wrapf(err, "copying %q to %q", source, dest)
	}
	return copied, nil
}

func copyFile(fs afero.Fs, source, target string, info os.FileInfo) (err error) {
	in, err := fs.Open(source)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := fs.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err = io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err = out.Close(); err != nil {
		return err
	}

	// the creation mode is subject to umask
	if err = fs.Chmod(target, info.Mode().Perm()); err != nil {
		return err
	}
	return fs.Chtimes(target, info.ModTime(), info.ModTime())
}
