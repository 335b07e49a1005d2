// Command mrdocs-finalize runs the finalizer pipeline over a JSON-encoded
// corpus produced by an external extractor, and writes the finalized
// corpus plus a diagnostic report.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/oxhq/mrdocs/internal/config"
)

func main() {
	_ = godotenv.Load() // optional MRDOCS_* overrides for local runs; absence is not an error

	root := &cobra.Command{
		Use:           "mrdocs-finalize",
		Short:         "Run the corpus finalizer pipeline over an extracted JSON corpus.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCommand(), newExplainCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mrdocs-finalize:", err)
		os.Exit(1)
	}
}

// newRunCommand builds the "run" subcommand. Flag parsing is delegated
// entirely to config.BuildConfigFromFlags (a pflag.FlagSet of its own) so
// the finalizer's options stay defined in one place, shared with tests that
// construct a config.Config without going through a CLI at all.
func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "run [flags] <corpus.json>",
		Short:              "Finalize a corpus and write the result.",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := config.BuildConfigFromFlags(args)
			if err != nil {
				return err
			}
			return runFinalize(opts)
		},
	}
	return cmd
}

func newExplainCommand() *cobra.Command {
	var contextName string
	cmd := &cobra.Command{
		Use:   "explain <corpus.json> <reference>",
		Short: "Resolve a reference string against a corpus and print the result.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(args[0], args[1], contextName)
		},
	}
	cmd.Flags().StringVar(&contextName, "context", "", "Lookup context, as a reference string resolved from global (default: global).")
	return cmd
}
