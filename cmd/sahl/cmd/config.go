// Copyright © 2018 One Concern

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CLIConfig describes the CLI configuration.
type CLIConfig struct {
	Owner    string `json:"owner" yaml:"owner" mapstructure:"owner"`          // Account datasets are published under
	Tool     string `json:"tool" yaml:"tool" mapstructure:"tool"`             // Publishing tool
	LogLevel string `json:"loglevel" yaml:"loglevel" mapstructure:"loglevel"` // Logging level
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// setSahlParams fills in the flags left unset with configured values
func (c *CLIConfig) setSahlParams(flags *flagsT) {
	if flags.dataset.Owner == "" {
		flags.dataset.Owner = c.Owner
	}
	if flags.root.tool == "" {
		flags.root.tool = c.Tool
	}
	if flags.root.tool == "" {
		flags.root.tool = defaultTool
	}
	if flags.root.logLevel == "" {
		flags.root.logLevel = c.LogLevel
	}
	if flags.root.logLevel == "" {
		flags.root.logLevel = defaultLogLevel
	}
}

// configCmd represents the config related commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Commands to manage a config",
	Long: `Commands to manage sahl CLI config.

Configuration for sahl is the common set of flags that are needed for most commands and do not change across runs,
analogous to "git config ...".

Settings may also be set with environment variables: SAHL_OWNER, SAHL_TOOL, SAHL_LOGLEVEL.
A config file other than the default one may be used by setting SAHL_CONFIG.`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
