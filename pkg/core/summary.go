// Copyright © 2018 One Concern

package core

import (
	"fmt"
	"io"
	"os"

	"github.com/docker/go-units"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/oneconcern/sahl/pkg/model"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// summarize walks a staged directory
func summarize(fs afero.Fs, dir string, desc model.StageDescriptor) (model.Summary, error) {
	summary := model.Summary{
		Path:    dir,
		ID:      desc.ID(),
		Title:   desc.Title,
		Version: desc.Version,
	}
	err := afero.Walk(fs, dir, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			summary.Files++
			summary.TotalSize += info.Size()
		}
		return nil
	})
	if err != nil {
		return model.Summary{}, errors.Wrapf(err, "summarizing %q", dir)
	}
	return summary, nil
}

func printSummary(w io.Writer, summary model.Summary) {
	table := uitable.New()
	table.MaxColWidth = 80
	table.AddRow("Location:", summary.Path)
	table.AddRow("Files:", summary.Files)
	table.AddRow("Total size:", units.HumanSize(float64(summary.TotalSize)))
	table.AddRow("Dataset ID:", summary.ID)
	table.AddRow("Title:", summary.Title)
	table.AddRow("Version:", summary.Version)

	_, _ = fmt.Fprintln(w, color.New(color.Bold).Sprint("Dataset summary"))
	_, _ = fmt.Fprintln(w, table)
	_, _ = fmt.Fprintln(w, color.GreenString("Dataset prepared successfully"))
}
