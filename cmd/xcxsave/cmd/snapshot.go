package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"github.com/arloliu/xcxsave"
	"github.com/arloliu/xcxsave/snapshot"
)

// snapshotCmd represents the snapshot command group
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage save snapshots",
	Long: `Keep compressed snapshots of decoded saves in a local store
(snapshot.directory). Snapshot ids sort chronologically.`,
}

var snapshotSaveCmd = &cobra.Command{
	Use:   "save <gamedata>",
	Short: "Store a snapshot of a save",
	Long: `Store a snapshot of a save. The label defaults to snapshot.name expanded
with the save's backup name tokens.

Example:
  xcxsave snapshot save gamedata
  xcxsave snapshot save --label "{name}-lv{level}" gamedata`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		save, err := readSave(cmd, args[0])
		if err != nil {
			return err
		}

		pattern := cfg.Snapshot.Name
		if l, _ := cmd.Flags().GetString("label"); l != "" {
			pattern = l
		}
		tokens, err := save.Tokens(time.Now())
		if err != nil {
			return err
		}
		label, err := snapshot.FormatName(pattern, tokens)
		if err != nil {
			return err
		}

		return withStore(func(store *snapshot.Store) error {
			packed, err := save.Snapshot(cfg.SnapshotOptions(label)...)
			if err != nil {
				return err
			}
			id, err := store.Put(packed)
			if err != nil {
				return err
			}
			slog.Info("snapshot stored", "id", id, "label", label, "size", len(packed))
			fmt.Fprintln(cmd.OutOrStdout(), id)

			return nil
		})
	},
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored snapshots",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *snapshot.Store) error {
			headers, err := store.List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, h := range headers {
				state := "ok"
				if !h.HasValidChecksum() {
					state = "stale"
				}
				fmt.Fprintf(out, "%s  %s  %-6s %-5s %7d -> %7d  %s\n",
					h.ID, h.Created().Local().Format(time.DateTime), h.ByteOrder, state,
					h.OriginalSize, h.CompressedSize, h.Label)
			}

			return nil
		})
	},
}

var snapshotRestoreCmd = &cobra.Command{
	Use:   "restore <id|latest> <output>",
	Short: "Write a stored snapshot as an encoded save file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *snapshot.Store) error {
			id, err := resolveID(store, args[0])
			if err != nil {
				return err
			}
			snap, err := store.Get(id)
			if err != nil {
				return err
			}

			out := snap.Data
			if decoded, _ := cmd.Flags().GetBool("decoded"); !decoded || snap.Header.IsEncoded() {
				save, err := xcxsave.FromSnapshot(snap)
				if err != nil {
					return err
				}
				out = save.Bytes()
				if !decoded {
					if out, err = save.Encode(cfg.EncodeOptions()...); err != nil {
						return err
					}
				}
			}

			if err := os.WriteFile(args[1], out, 0o600); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			slog.Info("snapshot restored", "id", id, "output", args[1])

			return nil
		})
	},
}

var snapshotDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *snapshot.Store) error {
			id, err := ksuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid snapshot id: %w", err)
			}
			if err := store.Delete(id); err != nil {
				return err
			}
			slog.Info("snapshot deleted", "id", id)

			return nil
		})
	},
}

func resolveID(store *snapshot.Store, arg string) (ksuid.KSUID, error) {
	if arg == "latest" {
		h, err := store.Latest()
		if err != nil {
			return ksuid.Nil, err
		}

		return h.ID, nil
	}

	id, err := ksuid.Parse(arg)
	if err != nil {
		return ksuid.Nil, fmt.Errorf("invalid snapshot id: %w", err)
	}

	return id, nil
}

func withStore(fn func(store *snapshot.Store) error) error {
	store, err := snapshot.OpenStore(cfg.Snapshot.Directory, cfg.StoreOptions()...)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	return fn(store)
}

func init() {
	addDecodedFlag(snapshotSaveCmd)
	snapshotSaveCmd.Flags().StringP("label", "l", "", "Label pattern (default snapshot.name)")
	snapshotRestoreCmd.Flags().Bool("decoded", false, "Write the decoded buffer instead of an encoded save")

	snapshotCmd.AddCommand(snapshotSaveCmd, snapshotListCmd, snapshotRestoreCmd, snapshotDeleteCmd)
	rootCmd.AddCommand(snapshotCmd)
}
