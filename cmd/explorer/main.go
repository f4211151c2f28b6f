package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/compose-network/dispute-explorer/configs"
	"github.com/compose-network/dispute-explorer/internal/chains"
	"github.com/compose-network/dispute-explorer/internal/l1"
	"github.com/compose-network/dispute-explorer/internal/l2"
	"github.com/compose-network/dispute-explorer/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appName = "explorer"

var rootCmd = &cobra.Command{
	Use:           appName,
	Short:         "Read-only explorer for OP Stack dispute games and chain parameters",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := configs.LoadDefaults(viper.GetViper()); err != nil {
			return err
		}

		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if execPath, err := os.Executable(); err == nil {
			execDir := filepath.Dir(execPath)
			viper.AddConfigPath(execDir)
		}
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")

		// A config file only carries overrides of the embedded defaults.
		configErr := viper.MergeInConfig()

		if err := viper.Unmarshal(&configs.Values); err != nil {
			return fmt.Errorf("unable to decode application config: %w", err)
		}

		level, err := logger.ParseLevel(configs.Values.Log.Level)
		if err != nil {
			return err
		}
		logger.Initialize(level, configs.Values.Log.Format)

		var notFound viper.ConfigFileNotFoundError
		switch {
		case configErr == nil:
			slog.With("config_file", viper.ConfigFileUsed()).Debug("config file loaded")
		case errors.As(configErr, &notFound):
			slog.Debug("no config file found, using embedded defaults and flags")
		default:
			const errMsg = "error reading config file"
			slog.With("err", configErr.Error()).Error(errMsg)
			return errors.Join(configErr, errors.New(errMsg))
		}

		if err := configs.Values.Validate(); err != nil {
			return err
		}

		slog.With("network", configs.Values.Network).Debug("configuration loaded")

		return nil
	},
}

var persistentFlags = []struct {
	name, viperKey, defaultValue, description string
}{
	{"network", "network", "", "Network to inspect (see the chains command)"},
	{"output", "output", "", "Output format: table, json or yaml"},
	{"log-level", "log.level", "", "Log level: debug, info, warn or error"},
	{"log-format", "log.format", "", "Log format: json or text"},
}

func init() {
	for _, f := range persistentFlags {
		rootCmd.PersistentFlags().String(f.name, f.defaultValue, f.description)
		if err := viper.BindPFlag(f.viperKey, rootCmd.PersistentFlags().Lookup(f.name)); err != nil {
			panic(err)
		}
	}
}

func main() {
	rootCmd.AddCommand(chains.CMD)
	rootCmd.AddCommand(l1.CMD)
	rootCmd.AddCommand(l2.CMD)

	if err := rootCmd.Execute(); err != nil {
		slog.With("err", err.Error()).Error("failed to execute root command")
		os.Exit(1)
	}
}
