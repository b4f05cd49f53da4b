package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/xcxsave"
	"github.com/arloliu/xcxsave/crypt"
	"github.com/arloliu/xcxsave/errs"
	"github.com/arloliu/xcxsave/format"
	"github.com/arloliu/xcxsave/keystream"
)

// readSave loads an encoded save, or a decoded buffer when --decoded is set.
func readSave(cmd *cobra.Command, path string) (*xcxsave.SaveData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read save: %w", err)
	}

	var save *xcxsave.SaveData
	if decoded, _ := cmd.Flags().GetBool("decoded"); decoded {
		order, _ := format.ParseByteOrder(cfg.Decode.ByteOrder)
		save, err = xcxsave.FromDecoded(raw, order)
	} else {
		opts := cfg.DecodeOptions()
		if keyFile, _ := cmd.Flags().GetString("key"); keyFile != "" {
			key, keyErr := readKeyFile(keyFile)
			if keyErr != nil {
				return nil, keyErr
			}
			opts = append(opts, crypt.WithKey(key))
		}
		save, err = xcxsave.Decode(raw, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logValidation(path, save)

	return save, nil
}

// readKeyFile loads a raw 512-byte key written by decrypt --dump-key.
func readKeyFile(path string) (keystream.Key, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return keystream.Key{}, fmt.Errorf("failed to read key file: %w", err)
	}

	key, err := keystream.FromBytes(raw)
	if err != nil {
		return keystream.Key{}, fmt.Errorf("%s: %w", path, err)
	}

	return key, nil
}

// keyFilePath names the key file dumped next to a save.
func keyFilePath(savePath string) string {
	return savePath + "_key"
}

func logValidation(path string, save *xcxsave.SaveData) {
	if save.RecoveredKey() {
		slog.Warn("decoded with a recovered key", "file", path)
	}

	err := save.Validate()
	var checksumErr *errs.ChecksumError
	switch {
	case err == nil:
		slog.Debug("save validated", "file", path, "order", save.ByteOrder(), "key_position", save.KeyPosition())
	case errors.As(err, &checksumErr):
		slog.Warn("stale checksum", "file", path,
			"stored", fmt.Sprintf("0x%08x", checksumErr.Stored),
			"computed", fmt.Sprintf("0x%08x", checksumErr.Computed))
	default:
		slog.Warn("save did not validate", "file", path, "error", err)
	}
}

func addDecodedFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("decoded", false, "Input is an already decoded buffer")
}
