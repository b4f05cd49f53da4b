package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/xcxsave/region"
)

// diffCmd represents the diff command
var diffCmd = &cobra.Command{
	Use:   "diff <before> <after> [more...]",
	Short: "Show the bytes that changed between saves",
	Long: `Compare decoded save buffers in sequence. Each file is compared with the one
before it; offsets are named from the built-in regions and named_ranges.

Example:
  xcxsave diff gamedata.1 gamedata.2 gamedata.3`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := cfg.ComparatorOptions()
		if err != nil {
			return err
		}

		first, err := readSave(cmd, args[0])
		if err != nil {
			return err
		}
		cmp, err := region.NewComparator(first.Bytes(), opts...)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, path := range args[1:] {
			next, err := readSave(cmd, path)
			if err != nil {
				return err
			}
			deltas, err := cmp.Compare(next.Bytes())
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			fmt.Fprintf(out, "# %s: %d change(s)\n", path, len(deltas))
			for _, d := range deltas {
				fmt.Fprintln(out, d)
			}
		}

		return nil
	},
}

func init() {
	addDecodedFlag(diffCmd)
	rootCmd.AddCommand(diffCmd)
}
