// Copyright © 2018 One Concern

package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags
var (
	Version   string
	BuildDate string
	GitCommit string
	GitState  string
)

// VersionInfo describes the build of this binary
type VersionInfo struct {
	Version   string `json:"version,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
	GitCommit string `json:"gitCommit,omitempty"`
	GitState  string `json:"gitState,omitempty"`
}

// NewVersionInfo reports the version of this binary, "dev" when not set at build time
func NewVersionInfo() VersionInfo {
	ver := VersionInfo{
		Version:   "dev",
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	}
	if Version != "" {
		ver.Version = Version
		ver.GitState = "clean"
	}
	if GitState != "" {
		ver.GitState = GitState
	}
	return ver
}

func (v VersionInfo) String() string {
	var buf bytes.Buffer
	buf.WriteString("Version: " + v.Version + "\n")
	buf.WriteString("Build date: " + v.BuildDate + "\n")
	buf.WriteString("Commit: " + v.GitCommit + "\n")
	buf.WriteString("Working tree: " + v.GitState + "\n")
	return buf.String()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "prints the version of sahl",
	Long: `Prints the version of sahl. It includes the following components:
	* Semver (output of git describe --tags)
	* Build Date (date at which the binary was built)
	* Git Commit (the git commit hash this binary was built from)
	* Git State (when dirty there were uncommitted changes during the build)
`,
	Run: func(cmd *cobra.Command, args []string) {
		_, _ = fmt.Fprint(stdout, NewVersionInfo().String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
