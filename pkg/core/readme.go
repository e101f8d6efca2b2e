// Copyright © 2018 One Concern

package core

import (
	"bytes"
	"path/filepath"
	"text/template"
	"time"

	"github.com/oneconcern/sahl/pkg/model"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const fence = "```"

// the citation block uses literal braces: actions are delimited with [[ ]]
const readmeTemplate = `# [[.Title]]

Dataset version: [[.Version]]

## Contents

This dataset contains processed data files.

## Usage

` + fence + `python
# Load your data here
import pandas as pd

# Example
data = pd.read_csv('your_file.csv')
` + fence + `

## Citation

If you use this dataset, please cite:

` + fence + `
@dataset{[[.Slug]],
  title = {[[.Title]]},
  author = {[[.Owner]]},
  year = {[[.Year]]},
  version = {[[.Version]]}
}
` + fence + `

Last updated: [[.Date]]
`

var readme = template.Must(template.New("readme").Delims("[[", "]]").Parse(readmeTemplate))

// writeReadme generates a README.md unless one already exists in dir.
//
// A non-empty description is used verbatim instead of the template.
func writeReadme(fs afero.Fs, dir string, desc model.StageDescriptor, now time.Time, l *zap.Logger) error {
	pth := filepath.Join(dir, model.ReadmeFile)
	exists, err := afero.Exists(fs, pth)
	if err != nil {
		return errors.Wrapf(err, "checking %q", pth)
	}
	if exists {
		l.Info("keeping existing README", zap.String("path", pth))
		return nil
	}

	content, err := renderReadme(desc, now)
	if err != nil {
		return err
	}
	if err = afero.WriteFile(fs, pth, content, 0o644); err != nil {
		return errors.Wrapf(err, "writing %q", pth)
	}
	l.Info("created README", zap.String("path", pth))
	return nil
}

func renderReadme(desc model.StageDescriptor, now time.Time) ([]byte, error) {
	if desc.Description != "" {
		return []byte(desc.Description), nil
	}

	var buf bytes.Buffer
	err := readme.Execute(&buf, struct {
		model.StageDescriptor
		Year int
		Date string
	}{
		StageDescriptor: desc,
		Year:            now.Year(),
		Date:            now.Format("2006-01-02"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "rendering README")
	}
	return buf.Bytes(), nil
}
