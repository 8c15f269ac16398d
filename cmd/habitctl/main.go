// Command habitctl runs the trend aggregator and the recommendation matcher
// against local files, without a database.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "habitctl",
		Short:         "Offline tools for habit exports and recommendation rules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAggregateCmd(), newMatchCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "habitctl:", err)
		os.Exit(1)
	}
}
