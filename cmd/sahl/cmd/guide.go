// Copyright © 2018 One Concern

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const uploadGuide = `
SCENARIO 1: first time upload (NEW dataset)

  sahl prepare \
    --source ./data \
    --output ./kaggle_dataset \
    --owner your-username \
    --slug my-dataset \
    --title "My Dataset"

  sahl publish \
    --path ./kaggle_dataset \
    --owner your-username \
    --slug my-dataset \
    --mode new                  # creates a NEW dataset


SCENARIO 2: update an existing dataset (NEW VERSION)

  sahl prepare \
    --source ./data_v2 \
    --output ./kaggle_dataset_v2 \
    --owner your-username \
    --slug my-dataset \         # SAME slug!
    --title "My Dataset" \
    --version 1.1.0             # new version

  sahl publish \
    --path ./kaggle_dataset_v2 \
    --owner your-username \
    --slug my-dataset \         # SAME slug!
    --mode version \            # creates a VERSION
    --version 1.1.0 \
    --notes "Fixed bugs and improved quality"


QUICK ONE-LINER

  # NEW dataset
  sahl quick --source ./data --owner your-username --slug my-dataset

  # VERSION update
  sahl quick --source ./data --owner your-username --slug my-dataset \
    --mode version --version 1.1.0 --notes "Bug fixes"


TIP: store your username with "sahl config create --owner your-username" and omit --owner.
`

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Print the upload guide",
	Long:  "Print a step by step guide to publish new datasets and new versions of existing datasets",
	Run: func(cmd *cobra.Command, args []string) {
		_, _ = fmt.Fprintln(stdout, color.New(color.Bold).Sprint("DATASET UPLOAD GUIDE"))
		_, _ = fmt.Fprint(stdout, uploadGuide)
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
