// Copyright © 2018 One Concern

package cmd

import (
	"io"
	"sort"

	"github.com/spf13/cobra"
)

// completion scripts, by shell
var completionGenerators = map[string]func(io.Writer) error{
	"bash":       func(w io.Writer) error { return rootCmd.GenBashCompletionV2(w, true) },
	"zsh":        func(w io.Writer) error { return rootCmd.GenZshCompletion(w) },
	"fish":       func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) },
	"powershell": func(w io.Writer) error { return rootCmd.GenPowerShellCompletionWithDesc(w) },
}

func completionShells() []string {
	shells := make([]string, 0, len(completionGenerators))
	for shell := range completionGenerators {
		shells = append(shells, shell)
	}
	sort.Strings(shells)
	return shells
}

var completionCmd = &cobra.Command{
	Use:   "completion SHELL",
	Short: "Generate the completion script for a shell",
	Long: `Generate the completion script of sahl for bash, zsh, fish or powershell.

bash, in ~/.bashrc:

	eval "$(sahl completion bash)"

zsh:

	sahl completion zsh > "${fpath[1]}/_sahl"
`,
	Hidden:    true,
	ValidArgs: completionShells(),
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		if err := completionGenerators[args[0]](stdout); err != nil {
			wrapFatalln("generate "+args[0]+" completion", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
