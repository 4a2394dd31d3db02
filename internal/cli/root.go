package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/reallyoldfogie/ccblockstate/blockstate"
	"github.com/reallyoldfogie/ccblockstate/internal/ccgen"
	"github.com/reallyoldfogie/ccblockstate/loader"
)

var (
	// Global flags
	outputFormat       string
	textureDomain      string
	allowUnknownFields bool
	rejectUnresolved   bool

	headerColor = color.New(color.FgBlue, color.Bold)
	keyColor    = color.New(color.FgCyan)
	dimColor    = color.New(color.FgHiBlack)
	okColor     = color.New(color.FgGreen, color.Bold)
)

// rootCmd is the root command for ccblockstate.
var rootCmd = &cobra.Command{
	Use:     "ccblockstate",
	Version: "dev",
	Short:   "Compile ccl blockstate variant tables",
	Long: `ccblockstate expands ccl blockstate documents into fully resolved variant tables.

Every combination of the requested block and inventory properties is compiled
from the document defaults, per-value overrides and conditional sub variants.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", ccgen.FormatJSON, "Output format (json or yaml)")
	rootCmd.PersistentFlags().StringVar(&textureDomain, "texture-domain", "", "Texture domain for documents that do not set one")
	rootCmd.PersistentFlags().BoolVar(&allowUnknownFields, "allow-unknown-fields", false, "Ignore unknown variant fields instead of failing")
	rootCmd.PersistentFlags().BoolVar(&rejectUnresolved, "reject-unresolved", false, "Fail when a channel names a property without values")

	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(batchCmd)
}

func newParser() *blockstate.Parser {
	var opts []blockstate.ParserOption
	if allowUnknownFields {
		opts = append(opts, blockstate.AllowUnknownFields())
	}
	if rejectUnresolved {
		opts = append(opts, blockstate.RejectUnresolved())
	}
	return blockstate.NewParser(opts...)
}

func loaderOptions() []loader.Option {
	return []loader.Option{
		loader.WithParser(newParser()),
		loader.WithDefaultTextureDomain(textureDomain),
	}
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
