package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reallyoldfogie/ccblockstate/blockstate"
)

var keysCmd = &cobra.Command{
	Use:   "keys <file>",
	Short: "List the combination keys of each channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		doc, err := blockstate.ParseDocument(data, newParser())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, ch := range doc.Channels() {
			combos, err := doc.Combinations(ch)
			if err != nil {
				return err
			}
			headerColor.Fprintf(out, "%s", ch.Name)
			dimColor.Fprintf(out, " [%s] %d keys\n", strings.Join(ch.Properties, ","), len(combos))
			for _, combo := range combos {
				keyColor.Fprintf(out, "  %s\n", combo.Key())
			}
		}
		return nil
	},
}
