// Copyright © 2018 One Concern

package cmd

import (
	"github.com/oneconcern/sahl/pkg/dlogger"
	"github.com/oneconcern/sahl/pkg/model"
	"github.com/spf13/cobra"
)

const (
	defaultTool     = "kaggle"
	defaultLogLevel = dlogger.LogLevelInfo
)

type flagsT struct {
	dataset struct {
		Owner       string
		Slug        string
		Title       string
		Description string
	}
	stage struct {
		Source string
		Output string
	}
	publish struct {
		Path    string
		Mode    string
		Version string
		Notes   string
		Strict  bool
	}
	root struct {
		logLevel string
		tool     string
	}
	config struct {
		force bool
	}
	doc struct {
		docTarget string
		format    string
	}
}

var sahlFlags = flagsT{}

func addOwnerFlag(cmd *cobra.Command) string {
	owner := "owner"
	cmd.Flags().StringVar(&sahlFlags.dataset.Owner, owner, "", "The account the dataset is published under (defaults to the configured owner)")
	return owner
}

func addSlugFlag(cmd *cobra.Command) string {
	slug := "slug"
	cmd.Flags().StringVar(&sahlFlags.dataset.Slug, slug, "", "The URL-friendly short name of the dataset, e.g. 'my-dataset'")
	return slug
}

func addTitleFlag(cmd *cobra.Command, required bool) string {
	title := "title"
	usage := "The title of the dataset"
	if !required {
		usage += " (derived from the slug when not specified)"
	}
	cmd.Flags().StringVar(&sahlFlags.dataset.Title, title, "", usage)
	return title
}

func addDescriptionFlag(cmd *cobra.Command) string {
	description := "description"
	cmd.Flags().StringVar(&sahlFlags.dataset.Description, description, "",
		"The content of the generated README.md. A default README is generated when not specified")
	return description
}

func addSourceFlag(cmd *cobra.Command) string {
	source := "source"
	cmd.Flags().StringVar(&sahlFlags.stage.Source, source, "", "The directory containing the files of the dataset")
	return source
}

func addOutputFlag(cmd *cobra.Command) string {
	output := "output"
	cmd.Flags().StringVar(&sahlFlags.stage.Output, output, "",
		"The staging directory to prepare. WARNING: any existing content is deleted")
	return output
}

func addPathFlag(cmd *cobra.Command) string {
	path := "path"
	cmd.Flags().StringVar(&sahlFlags.publish.Path, path, "", "The path to a prepared dataset directory")
	return path
}

func addModeFlag(cmd *cobra.Command) string {
	mode := "mode"
	cmd.Flags().StringVar(&sahlFlags.publish.Mode, mode, string(model.ModeNew),
		`Either "new" to create a new dataset, or "version" to add a version to an existing dataset`)
	return mode
}

func addVersionFlag(cmd *cobra.Command) string {
	version := "version"
	cmd.Flags().StringVar(&sahlFlags.publish.Version, version, model.DefaultVersion, "The version of the dataset, e.g. 1.1.0")
	return version
}

func addNotesFlag(cmd *cobra.Command) string {
	notes := "notes"
	cmd.Flags().StringVarP(&sahlFlags.publish.Notes, notes, "m", "", `Describes the changes of a new version (required with --mode version)`)
	return notes
}

func addStrictFlag(cmd *cobra.Command) string {
	strict := "strict"
	cmd.Flags().BoolVar(&sahlFlags.publish.Strict, strict, false,
		"Exit with an error status when the publishing tool fails. By default, failures are only reported")
	return strict
}

func addForceFlag(cmd *cobra.Command) string {
	force := "force"
	cmd.Flags().BoolVar(&sahlFlags.config.force, force, false, "Overwrite an existing config file")
	return force
}

func addTargetFlag(cmd *cobra.Command) string {
	target := "target"
	cmd.Flags().StringVar(&sahlFlags.doc.docTarget, target, "docs/usage", "Target directory for the generated documentation")
	return target
}

func addDocFormatFlag(cmd *cobra.Command) string {
	format := "format"
	cmd.Flags().StringVar(&sahlFlags.doc.format, format, docMarkdown, `The documentation format: "markdown" or "man"`)
	return format
}

func addLogLevel(cmd *cobra.Command) string {
	logLevel := "loglevel"
	cmd.PersistentFlags().StringVar(&sahlFlags.root.logLevel, logLevel, "",
		`The logging level: one of "debug", "info", "warn", "error" or "none" (defaults to the configured level, or "info")`)
	return logLevel
}

func addToolFlag(cmd *cobra.Command) string {
	tool := "tool"
	cmd.PersistentFlags().StringVar(&sahlFlags.root.tool, tool, "", `The publishing tool to run (defaults to the configured tool, or "kaggle")`)
	return tool
}

func requireFlags(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		err := cmd.MarkFlagRequired(flag)
		if err != nil {
			wrapFatalln("mark required flag", err)
			return
		}
	}
}
