package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/xcxsave/config"
)

// cfg is loaded by the root command before any subcommand runs.
var cfg = config.Default()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "xcxsave",
	Short: "Decode, inspect and back up Xenoblade Chronicles X save data",
	Long: `xcxsave decodes and re-encodes the gamedata file of Xenoblade Chronicles X
(WiiU and Definitive Edition), prints the records it holds, writes xenoprobes
input files and keeps compressed snapshots of saves.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		loaded, err := loadConfig(path, cmd.Flags().Changed("config"))
		if err != nil {
			return err
		}
		cfg = loaded

		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			cfg.Logging.Level = lvl
		}
		level, err := cfg.LogLevel()
		if err != nil {
			return err
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		slog.Debug("configuration loaded", "path", path)

		return nil
	},
}

// loadConfig reads path, falling back to the defaults when the file is absent
// and was not named explicitly.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	c, err := config.Load(path)
	if err == nil {
		return c, nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}

	return nil, fmt.Errorf("load config: %w", err)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "xcxsave.yaml", "Configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); overrides logging.level")
}
