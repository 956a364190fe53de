// Command jsonrepair repairs malformed or truncated JSON from files,
// stdin, or an incremental stream, and writes strict JSON to stdout.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Latias94/jsonrepair/internal/logging"
	"github.com/Latias94/jsonrepair/internal/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := NewConfig()

	root := &cobra.Command{
		Use:           "jsonrepair [flags] [file ...]",
		Short:         "Repair malformed JSON into strict JSON",
		Long:          "jsonrepair tolerates missing commas, unquoted keys, trailing commas, stray comments and other common JSON mistakes, and emits strict JSON.\nWith no file arguments, or with \"-\", it reads from stdin.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := logging.CreateHandlerWithStrings(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			logger := slog.New(handler)

			paths := args
			if len(paths) == 0 {
				paths = []string{"-"}
			}
			return run(cmd.Context(), cfg, logger, paths, cmd.OutOrStdout())
		},
	}

	cfg.RegisterFlags(root.Flags())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build and engine version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return err
		},
	}
}
