// Package cli provides the command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "dev"
	// Commit is set at build time.
	Commit = "none"
)

var (
	rootDebug bool
	logger    = log.New(os.Stderr)
)

var rootCmd = &cobra.Command{
	Use:   "stepzen-soap",
	Short: "Generate and deploy StepZen GraphQL schemas from WSDL services",
	Long: `stepzen-soap turns WSDL-described SOAP services into StepZen GraphQL
schemas and deploys them with the stepzen CLI.

Each configured API gets a workspace directory holding a schema.graphql
(complex types plus a Query type of @rest-backed SOAP calls) and an
index.graphql wiring the schema as the served root.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if rootDebug {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("stepzen-soap version %s (commit: %s)\n", Version, Commit)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
