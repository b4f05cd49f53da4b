package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// decryptCmd represents the decrypt command
var decryptCmd = &cobra.Command{
	Use:   "decrypt <gamedata> <output>",
	Short: "Decode a save file",
	Long: `Decode an encoded gamedata file and write the plain buffer.

With --dump-key the mask that decodes the file is written to <gamedata>_key.
A key file can be passed back with --key to decode files that carry no
format marker.

Example:
  xcxsave decrypt gamedata gamedata.dec
  xcxsave decrypt --recover-key --dump-key broken.bin broken.dec
  xcxsave decrypt --key broken.bin_key broken2.bin broken2.dec`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("recover-key") {
			cfg.Decode.KeyRecovery, _ = cmd.Flags().GetBool("recover-key")
		}
		if cmd.Flags().Changed("byte-order") {
			cfg.Decode.ByteOrder, _ = cmd.Flags().GetString("byte-order")
		}

		save, err := readSave(cmd, args[0])
		if err != nil {
			return err
		}

		if err := os.WriteFile(args[1], save.Bytes(), 0o600); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		slog.Info("decoded", "input", args[0], "output", args[1], "order", save.ByteOrder(), "size", save.Len())

		if dump, _ := cmd.Flags().GetBool("dump-key"); dump {
			key, ok := save.Key()
			if !ok {
				return fmt.Errorf("%s: no key to dump", args[0])
			}

			path := keyFilePath(args[0])
			if err := os.WriteFile(path, key[:], 0o600); err != nil {
				return fmt.Errorf("failed to write key file: %w", err)
			}
			slog.Info("key written", "file", path)
		}

		return nil
	},
}

func init() {
	decryptCmd.Flags().Bool("recover-key", false, "Recover the key from the data when the header is unrecognized")
	decryptCmd.Flags().String("byte-order", "", "Force the byte order (big, little)")
	decryptCmd.Flags().StringP("key", "k", "", "Decode with a 512-byte key file")
	decryptCmd.Flags().BoolP("dump-key", "d", false, "Write the decoding key to <gamedata>_key")
	rootCmd.AddCommand(decryptCmd)
}
