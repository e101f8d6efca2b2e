// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

const (
	docMarkdown = "markdown"
	docMan      = "man"
)

func docHeader(string) string {
	return fmt.Sprintf("**sahl %s**\n\n", NewVersionInfo().Version)
}

// docLink keeps links between generated pages relative
func docLink(name string) string {
	return "./" + strings.ToLower(path.Base(name))
}

func generateDocs(target, format string) error {
	if err := os.MkdirAll(target, 0o755); err != nil {
		return err
	}
	switch format {
	case docMarkdown:
		return doc.GenMarkdownTreeCustom(rootCmd, target, docHeader, docLink)
	case docMan:
		return doc.GenManTree(rootCmd, &doc.GenManHeader{
			Title:   "SAHL",
			Section: "1",
			Source:  "sahl " + NewVersionInfo().Version,
		}, target)
	default:
		return fmt.Errorf("unsupported documentation format %q, expected %q or %q", format, docMarkdown, docMan)
	}
}

var usageCmd = &cobra.Command{
	Use:    "usage",
	Short:  "Generate the documentation of sahl",
	Long:   "Generate one page per command, as markdown or man pages, in the target directory.",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		if err := generateDocs(sahlFlags.doc.docTarget, sahlFlags.doc.format); err != nil {
			wrapFatalln("generate documentation", err)
			return
		}
		infoLogger.Printf("documentation written to %s", sahlFlags.doc.docTarget)
	},
}

func init() {
	addTargetFlag(usageCmd)
	addDocFormatFlag(usageCmd)

	rootCmd.AddCommand(usageCmd)
}
