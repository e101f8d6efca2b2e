// Copyright © 2018 One Concern

package cmd

import (
	"context"

	"github.com/oneconcern/sahl/pkg/core"
	"github.com/oneconcern/sahl/pkg/model"
	"github.com/spf13/cobra"
)

var quickCmd = &cobra.Command{
	Use:   "quick",
	Short: "Prepare and publish a dataset in one go",
	Long: `Prepare a dataset in a temporary directory and publish it.

The temporary directory is always removed afterwards.

Examples:
  sahl quick --source ./data --owner researcher --slug my-dataset
  sahl quick --source ./data --owner researcher --slug my-dataset --mode version --version 1.1.0 -m "Bug fixes"
`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		mode, err := model.ParseMode(sahlFlags.publish.Mode)
		if err != nil {
			wrapFatalln("invalid mode", err)
			return
		}
		source, err := expandPath(sahlFlags.stage.Source)
		if err != nil {
			wrapFatalln("expand source path", err)
			return
		}
		logger, err := getLogger()
		if err != nil {
			wrapFatalln("failed to set log level", err)
			return
		}
		defer func() { _ = logger.Sync() }()

		_, err = core.QuickPublish(ctx, core.QuickRequest{
			Source:  source,
			Owner:   sahlFlags.dataset.Owner,
			Slug:    sahlFlags.dataset.Slug,
			Title:   sahlFlags.dataset.Title,
			Mode:    mode,
			Version: sahlFlags.publish.Version,
			Notes:   sahlFlags.publish.Notes,
		},
			core.QuickStager(newStager(logger)),
			core.QuickPublisher(newPublisher(logger)),
		)
		if err != nil {
			wrapFatalln("quick publish", err)
			return
		}
	},
}

func init() {
	requireFlags(quickCmd,
		addSourceFlag(quickCmd),
		addSlugFlag(quickCmd),
	)
	addOwnerFlag(quickCmd)
	addTitleFlag(quickCmd, false)
	addModeFlag(quickCmd)
	addVersionFlag(quickCmd)
	addNotesFlag(quickCmd)
	addStrictFlag(quickCmd)

	rootCmd.AddCommand(quickCmd)
}
