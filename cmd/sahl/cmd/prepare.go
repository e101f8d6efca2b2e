// Copyright © 2018 One Concern

package cmd

import (
	"github.com/spf13/cobra"
)

var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Prepare a dataset for upload",
	Long: `Prepare a dataset for upload by copying all the files of a source directory into a staging directory.

A README.md is generated unless the source provides one, and the dataset-metadata.json descriptor is written.

WARNING: the staging directory is deleted first, if it exists.

Example:
  sahl prepare --source ./data --output ./kaggle_dataset --owner researcher --slug my-dataset --title "My Dataset"
`,
	Run: func(cmd *cobra.Command, args []string) {
		if sahlFlags.dataset.Owner == "" {
			wrapFatalln("an owner is required: use --owner or configure one with 'sahl config create'", nil)
			return
		}
		source, err := expandPath(sahlFlags.stage.Source)
		if err != nil {
			wrapFatalln("expand source path", err)
			return
		}
		output, err := expandPath(sahlFlags.stage.Output)
		if err != nil {
			wrapFatalln("expand output path", err)
			return
		}
		logger, err := getLogger()
		if err != nil {
			wrapFatalln("failed to set log level", err)
			return
		}
		defer func() { _ = logger.Sync() }()

		summary, err := newStager(logger).Prepare(source, output, stageDescriptor())
		if err != nil {
			wrapFatalln("prepare dataset", err)
			return
		}
		infoLogger.Printf("Dataset %s staged in %s", summary.ID, summary.Path)
	},
}

func init() {
	requireFlags(prepareCmd,
		addSourceFlag(prepareCmd),
		addOutputFlag(prepareCmd),
		addSlugFlag(prepareCmd),
		addTitleFlag(prepareCmd, true),
	)
	addOwnerFlag(prepareCmd)
	addDescriptionFlag(prepareCmd)
	addVersionFlag(prepareCmd)

	rootCmd.AddCommand(prepareCmd)
}
