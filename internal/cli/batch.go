package cli

import (
	"github.com/spf13/cobra"

	"github.com/reallyoldfogie/ccblockstate/internal/ccgen"
)

var batchConfig string

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Compile a directory of blockstates using a YAML config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := ccgen.LoadConfig(batchConfig)
		if err != nil {
			return err
		}
		sum, err := ccgen.Run(cfg)
		if err != nil {
			return err
		}
		okColor.Fprintf(cmd.OutOrStdout(), "✓ compiled %d, vanilla %d (copied %d) into %s\n",
			sum.Compiled, sum.Vanilla, sum.Copied, cfg.OutputDir)
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchConfig, "config", "c", "ccblockstate.yaml", "path to config file (YAML)")
}
