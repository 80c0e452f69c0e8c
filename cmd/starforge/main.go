// Command starforge generates star systems offline and mints admin tokens for
// the HTTP service.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "starforge",
		Short:         "Procedural star-system generator",
		Long:          "starforge generates star systems with planet textures and issues admin tokens for the starsystem server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCmd(), newTokenCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
