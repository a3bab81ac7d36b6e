// Package cmd implements the enumium command-line interface.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/enumium/enum"
	"github.com/zjrosen/enumium/internal/config"
	"github.com/zjrosen/enumium/internal/definitions"
	"github.com/zjrosen/enumium/internal/log"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "enumium",
	Short:   "Inspect and export enum definitions",
	Long:    `A command-line companion for the enumium library: loads enum set definitions from a YAML file and lists, exports, or validates them.`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/enumium/config.yaml)")
	rootCmd.PersistentFlags().StringP("file", "f", "",
		"enum definitions YAML file")
	rootCmd.PersistentFlags().Bool("debug", false,
		"enable debug logging")

	_ = viper.BindPFlag("definitions_file", rootCmd.PersistentFlags().Lookup("file"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("definitions_file", defaults.DefinitionsFile)
	viper.SetDefault("format", defaults.Format)
	viper.SetDefault("debug", defaults.Debug)
	viper.SetDefault("log_file", defaults.LogFile)

	viper.SetEnvPrefix("enumium")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .enumium/config.yaml (current directory)
		// 2. ~/.config/enumium/config.yaml (user config)
		if _, err := os.Stat(".enumium/config.yaml"); err == nil {
			viper.SetConfigFile(".enumium/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "enumium"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		// Missing config is fine - defaults apply.
	}

	_ = viper.Unmarshal(&cfg)

	if cfg.Debug || os.Getenv("ENUMIUM_DEBUG") != "" {
		if _, err := log.Init(cfg.LogFile); err != nil {
			fmt.Fprintf(os.Stderr, "warning: debug log unavailable: %v\n", err)
		}
	}
}

// loadSets loads the configured definitions file into a fresh registry.
func loadSets() (*enum.Registry, []*enum.Set, error) {
	file, err := definitions.Load(cfg.DefinitionsFile)
	if err != nil {
		return nil, nil, err
	}
	reg := enum.NewRegistry()
	sets, err := file.Build(reg)
	if err != nil {
		return nil, nil, err
	}
	return reg, sets, nil
}

// SetVersion sets the version string shown by --version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
