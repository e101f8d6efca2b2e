// Copyright © 2018 One Concern

package cmd

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

func configFilePath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".sahl", "sahl.yaml"), nil
}

var configCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a config",
	Long: `Create a config to use for sahl. Config file will be placed in $HOME/.sahl/sahl.yaml

Example:
  sahl config create --owner researcher
`,
	Run: func(cmd *cobra.Command, args []string) {
		if sahlFlags.dataset.Owner == "" {
			wrapFatalln("an owner is required, use --owner", nil)
			return
		}
		pth, err := configFilePath()
		if err != nil {
			wrapFatalln("could not get home directory for user", err)
			return
		}
		if _, err = os.Stat(pth); err == nil && !sahlFlags.config.force {
			wrapFatalln("config file "+pth+" already exists, use --force to overwrite it", nil)
			return
		}
		cfg := CLIConfig{
			Owner:    sahlFlags.dataset.Owner,
			Tool:     sahlFlags.root.tool,
			LogLevel: sahlFlags.root.logLevel,
		}
		o, err := yaml.Marshal(cfg)
		if err != nil {
			wrapFatalln("serialize config to yaml", err)
			return
		}
		if err = os.MkdirAll(filepath.Dir(pth), 0o700); err != nil {
			wrapFatalln("create config directory", err)
			return
		}
		if err = os.WriteFile(pth, o, 0o600); err != nil {
			wrapFatalln("write config file", err)
			return
		}
		infoLogger.Printf("config written to %s", pth)
	},
}

func init() {
	addOwnerFlag(configCreateCmd)
	addForceFlag(configCreateCmd)

	configCmd.AddCommand(configCreateCmd)
}
