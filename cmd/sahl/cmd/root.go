// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sahl",
	Short: "Sahl stages and publishes datasets",
	Long: `Sahl prepares a directory of data files for upload as a dataset, then publishes it
with the kaggle CLI, either as a new dataset or as a new version of an existing one.

Preparing a dataset copies the files into a staging directory, generates a README.md
(unless one is provided) and the dataset-metadata.json descriptor.

The kaggle CLI must be installed and configured with your credentials.
`,
}

var config *CLIConfig

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)
	addLogLevel(rootCmd)
	addToolFlag(rootCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("owner", "")
	viper.SetDefault("tool", defaultTool)
	viper.SetDefault("loglevel", defaultLogLevel)
	if os.Getenv("SAHL_CONFIG") != "" {
		// Use config file from the env.
		viper.SetConfigFile(os.Getenv("SAHL_CONFIG"))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.sahl")
		viper.AddConfigPath("/etc/sahl")
		viper.SetConfigName("sahl")
	}

	viper.SetEnvPrefix("sahl")
	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
	var err error
	config, err = newConfig()
	if err != nil {
		wrapFatalln("read config", err)
		return
	}
	config.setSahlParams(&sahlFlags)
}
