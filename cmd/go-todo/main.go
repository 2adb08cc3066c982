// Command go-todo serves the todo and label HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/deppfellow/go-todo/internal/config"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:           config.ServiceName,
	Short:         "Todo list API with labels",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", config.ServiceName, version)
	},
}

func init() {
	rootCmd.AddCommand(newServeCmd(), versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
