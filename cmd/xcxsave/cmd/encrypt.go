package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/xcxsave"
	"github.com/arloliu/xcxsave/format"
)

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt <decoded> <output>",
	Short: "Encode a decoded buffer into a save file",
	Long: `Encode a decoded buffer, fixing its checksum first unless encode.fix_checksum
is false.

With --key the buffer is encoded with a key file written by decrypt --dump-key
instead of the keystream table. The checksum is then only fixed when the buffer
carries a format marker.

Example:
  xcxsave encrypt gamedata.dec gamedata
  xcxsave encrypt --key broken.bin_key broken.dec broken.bin`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read decoded buffer: %w", err)
		}

		var save *xcxsave.SaveData
		if keyFile, _ := cmd.Flags().GetString("key"); keyFile != "" {
			key, keyErr := readKeyFile(keyFile)
			if keyErr != nil {
				return keyErr
			}
			save, err = xcxsave.FromDecodedWithKey(raw, key)
		} else {
			save, err = xcxsave.FromDecoded(raw, cfg.EncodeByteOrder(format.UnknownByteOrder))
		}
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		if cfg.Encode.FixChecksum && save.ByteOrder().IsKnown() && !save.VerifyChecksum() {
			if err := save.FixChecksum(); err != nil {
				return err
			}
			slog.Info("checksum fixed", "file", args[0])
		}

		encoded, err := save.Encode(cfg.EncodeOptions()...)
		if err != nil {
			return err
		}

		if err := os.WriteFile(args[1], encoded, 0o600); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		slog.Info("encoded", "input", args[0], "output", args[1], "order", save.ByteOrder())

		return nil
	},
}

func init() {
	encryptCmd.Flags().StringP("key", "k", "", "Encode with a 512-byte key file")
	rootCmd.AddCommand(encryptCmd)
}
