// Copyright © 2018 One Concern

package core

import (
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/oneconcern/sahl/pkg/model"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// metadataJSON leaves HTML and non-ASCII characters unescaped
var metadataJSON = jsoniter.Config{EscapeHTML: false}.Froze()

// writeMetadata (over)writes the dataset descriptor in dir
func writeMetadata(fs afero.Fs, dir string, meta model.Metadata, l *zap.Logger) error {
	content, err := marshalMetadata(meta)
	if err != nil {
		return err
	}
	pth := filepath.Join(dir, model.MetadataFile)
	if err = afero.WriteFile(fs, pth, content, 0o644); err != nil {
		return errors.Wrapf(err, "writing %q", pth)
	}
	l.Info("created dataset metadata", zap.String("path", pth), zap.String("id", meta.ID))
	return nil
}

// marshalMetadata renders the descriptor as JSON indented by 2 spaces, without a trailing newline
func marshalMetadata(meta model.Metadata) ([]byte, error) {
	content, err := metadataJSON.MarshalIndent(meta, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "encoding dataset metadata")
	}
	return content, nil
}
