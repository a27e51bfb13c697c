// Package cmd implements the anchorui command-line tooling: layout runs
// over tree files for inspection and golden testing.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/grindlemire/go-anchorui/internal/config"
	"github.com/grindlemire/go-anchorui/internal/observability"
)

var (
	cfgFile string
	cfg     config.Config
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "anchorui",
	Short: "Layout tooling for anchorui element trees",
	Long: `anchorui computes absolute pixel bounds for element trees described
in YAML tree files, using the same layout engine the visual editor runs
on every frame.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initializeConfig(); err != nil {
			return err
		}
		observability.Initialize(cfg.Logger)
		return nil
	},
}

// Execute runs the CLI. It exits non-zero on error.
func Execute() {
	defer observability.Sync()
	if err := rootCmd.Execute(); err != nil {
		observability.Logger().Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./anchorui.yaml)")
}

// initializeConfig reads the config file and environment into cfg.
func initializeConfig() error {
	v := viper.New()
	config.SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("anchorui")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("ANCHORUI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one is not.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg.Validate()
}
