package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reallyoldfogie/ccblockstate/internal/ccgen"
	"github.com/reallyoldfogie/ccblockstate/loader"
)

var compileCmd = &cobra.Command{
	Use:   "compile <file>",
	Short: "Compile a blockstate file and print its variant table",
	Long: `Load a blockstate file and print the resolved rendering parameters for every key.

Files without a ccl_marker are loaded as vanilla blockstates.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := loader.LoadFile(args[0], loaderOptions()...)
		if err != nil {
			return err
		}
		buf, err := ccgen.Encode(def, outputFormat)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), string(buf))
		return err
	},
}
