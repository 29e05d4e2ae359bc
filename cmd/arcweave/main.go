// Command arcweave rewrites a sliced motion program in place, turning
// its bridge-infill regions into concentric printable arcs (spec.md
// §6.3).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var exitCode int

	root := &cobra.Command{
		Use:           "arcweave <path-to-motion-file>",
		Short:         "Rewrite bridge-infill regions into concentric printable arcs",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			logger := newLogger()
			defer logger.Sync() //nolint:errcheck

			code, err := Process(cmdArgs[0], logger)
			exitCode = code
			return err
		},
	}
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "arcweave:", err)
		if exitCode == 0 {
			exitCode = 1
		}
	}
	return exitCode
}

func newLogger() *zap.SugaredLogger {
	l, err := zap.NewProduction()
	if err != nil {
		l = zap.NewNop()
	}
	return l.Sugar()
}
