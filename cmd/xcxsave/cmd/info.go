package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <gamedata>",
	Short: "Print a summary of a save file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		save, err := readSave(cmd, args[0])
		if err != nil {
			return err
		}

		c, err := save.Character()
		if err != nil {
			return err
		}
		timer, err := save.GameTimer()
		if err != nil {
			return err
		}
		saved, err := save.SavedTime()
		if err != nil {
			return err
		}
		inv, err := save.ProbeInventory()
		if err != nil {
			return err
		}
		locations, err := save.Locations()
		if err != nil {
			return err
		}
		found := 0
		for _, loc := range locations {
			if loc.Found {
				found++
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Edition:      %s (key position %d)\n", save.ByteOrder(), save.KeyPosition())
		fmt.Fprintf(out, "Checksum:     %s\n", checksumState(save.VerifyChecksum()))
		fmt.Fprintf(out, "Name:         %s\n", c.Name)
		fmt.Fprintf(out, "Level:        %d (%d exp)\n", c.Level, c.Exp)
		fmt.Fprintf(out, "Class:        %s rank %d (%d exp)\n", c.Class, c.ClassRank, c.ClassExp)
		fmt.Fprintf(out, "BLADE:        level %d, %s\n", c.BladeLevel, c.Division)
		fmt.Fprintf(out, "Play time:    %s\n", timer)
		fmt.Fprintf(out, "Saved at:     %s\n", saved.Time().Format(time.DateTime))
		fmt.Fprintf(out, "Data probes:  %d\n", inv.Total())
		fmt.Fprintf(out, "Locations:    %d/%d found\n", found, len(locations))

		return nil
	},
}

func checksumState(ok bool) string {
	if ok {
		return "ok"
	}

	return "stale"
}

func init() {
	addDecodedFlag(infoCmd)
	rootCmd.AddCommand(infoCmd)
}
