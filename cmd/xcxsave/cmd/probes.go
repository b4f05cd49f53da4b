package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arloliu/xcxsave/config"
	"github.com/arloliu/xcxsave/record"
)

// probesCmd represents the probes command
var probesCmd = &cobra.Command{
	Use:   "probes <gamedata>",
	Short: "Write xenoprobes input files and a FrontierNav link",
	Long: `Write inventory.csv, sites.csv and layout.csv for the xenoprobes optimizer
and print a frontiernav.net link to the current probe layout.

Example:
  xcxsave probes --exclude MB,RB gamedata`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		save, err := readSave(cmd, args[0])
		if err != nil {
			return err
		}

		inv, err := save.ProbeInventory()
		if err != nil {
			return err
		}
		installed, err := save.Sites()
		if err != nil {
			return err
		}
		found, err := save.SightseeingSpots()
		if err != nil {
			return err
		}

		exclude := cfg.ExcludedProbes()
		if list, _ := cmd.Flags().GetString("exclude"); list != "" {
			exclude = config.ParseExclude(list)
		}
		dir := cfg.FNav.OutputDir
		if d, _ := cmd.Flags().GetString("output-dir"); d != "" {
			dir = d
		}
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}

		writers := []struct {
			name  string
			write func(f *os.File) error
		}{
			{"inventory.csv", func(f *os.File) error { return record.WriteInventoryCSV(f, inv, exclude) }},
			{"sites.csv", func(f *os.File) error {
				return record.WriteSitesCSV(f, installed, found, cfg.SightseeingOverrides())
			}},
			{"layout.csv", func(f *os.File) error { return record.WriteLayoutCSV(f, installed) }},
		}
		for _, w := range writers {
			path := filepath.Join(dir, w.name)
			if err := writeFile(path, w.write); err != nil {
				return err
			}
			slog.Info("wrote report", "file", path)
		}

		fmt.Fprintln(cmd.OutOrStdout(), record.FrontierNavURL(installed))

		return nil
	},
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return f.Close()
}

func init() {
	addDecodedFlag(probesCmd)
	probesCmd.Flags().String("exclude", "", "Comma-separated probe codes to comment out of inventory.csv")
	probesCmd.Flags().StringP("output-dir", "o", "", "Directory for the CSV files (default fnav.output_dir)")
	rootCmd.AddCommand(probesCmd)
}
