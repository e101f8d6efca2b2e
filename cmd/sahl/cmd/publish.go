// Copyright © 2018 One Concern

package cmd

import (
	"context"

	"github.com/oneconcern/sahl/pkg/model"
	"github.com/spf13/cobra"
)

var publishCmd = &cobra.Command{
	Use:     "publish",
	Aliases: []string{"upload"},
	Short:   "Publish a prepared dataset",
	Long: `Publish a prepared dataset, either as a new dataset or as a new version of an existing dataset.

The publishing tool runs inside the prepared directory. When it fails, the likely causes are reported:
unless --strict is set, this does not make the command fail.

Examples:
  sahl publish --path ./kaggle_dataset --owner researcher --slug my-dataset
  sahl publish --path ./kaggle_dataset_v2 --owner researcher --slug my-dataset --mode version --version 1.1.0 -m "Fixed bugs"
`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		mode, err := model.ParseMode(sahlFlags.publish.Mode)
		if err != nil {
			wrapFatalln("invalid mode", err)
			return
		}
		dir, err := expandPath(sahlFlags.publish.Path)
		if err != nil {
			wrapFatalln("expand dataset path", err)
			return
		}
		logger, err := getLogger()
		if err != nil {
			wrapFatalln("failed to set log level", err)
			return
		}
		defer func() { _ = logger.Sync() }()

		_, err = newPublisher(logger).Publish(ctx, model.PublishRequest{
			Dir:     dir,
			Owner:   sahlFlags.dataset.Owner,
			Slug:    sahlFlags.dataset.Slug,
			Mode:    mode,
			Version: sahlFlags.publish.Version,
			Notes:   sahlFlags.publish.Notes,
		})
		if err != nil {
			wrapFatalln("publish dataset", err)
			return
		}
	},
}

func init() {
	requireFlags(publishCmd,
		addPathFlag(publishCmd),
		addSlugFlag(publishCmd),
	)
	addOwnerFlag(publishCmd)
	addModeFlag(publishCmd)
	addVersionFlag(publishCmd)
	addNotesFlag(publishCmd)
	addStrictFlag(publishCmd)

	rootCmd.AddCommand(publishCmd)
}
