package cli

import (
	"errors"
	"fmt"

	"github.com/shankar0909/stepzen-gql-soap/internal/config"
	"github.com/shankar0909/stepzen-gql-soap/internal/runcache"
	"github.com/shankar0909/stepzen-gql-soap/internal/wsdl"
	"github.com/spf13/cobra"
)

var (
	generateConfig       string
	generateOutput       string
	generateSOAPVersion  string
	generateSkipValidate bool
	generateKeepGoing    bool
	generateDBPath       string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate StepZen GraphQL schemas from configured WSDLs",
	Long: `Generate schema.graphql and index.graphql for every API in the
config file, one workspace directory per API under the output folder.

The config file is a JSON object mapping API name to WSDL URL:

  {
    "weather": "https://example.com/weather.asmx?WSDL",
    "billing": "https://example.com/billing?wsdl"
  }

Examples:
  stepzen-soap generate --config apis.json --output ./workspaces
  stepzen-soap generate --config apis.json --output ./workspaces --soap-version 1.1
  stepzen-soap generate --config apis.json --output ./workspaces --keep-going`,
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := parseSOAPVersion(generateSOAPVersion)
		if err != nil {
			return err
		}

		cfg, err := config.Load(generateConfig)
		if err != nil {
			return err
		}

		db, err := runcache.NewDB(generateDBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		p := &pipeline{
			output:       generateOutput,
			version:      version,
			skipValidate: generateSkipValidate,
			fetcher:      wsdl.NewFetcher(),
			repo:         runcache.NewRepository(db),
			log:          logger,
		}

		var failures []error
		for _, api := range cfg.APIs {
			logger.Info("processing API", "api", api.Name, "wsdl", api.WSDL)
			if _, err := p.generate(cmd.Context(), api); err != nil {
				if !generateKeepGoing {
					return err
				}
				logger.Error("generation failed", "api", api.Name, "err", err)
				failures = append(failures, err)
			}
		}

		if len(failures) > 0 {
			return fmt.Errorf("%d of %d APIs failed: %w", len(failures), len(cfg.APIs), errors.Join(failures...))
		}
		logger.Info("all APIs generated", "count", len(cfg.APIs))
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateConfig, "config", "c", "", "JSON file mapping API name -> WSDL URL (required)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Base folder for StepZen workspaces (required)")
	generateCmd.Flags().StringVar(&generateSOAPVersion, "soap-version", "1.2", "SOAP envelope version (1.1 or 1.2)")
	generateCmd.Flags().BoolVar(&generateSkipValidate, "skip-validate", false, "Skip GraphQL validation of generated schemas")
	generateCmd.Flags().BoolVar(&generateKeepGoing, "keep-going", false, "Continue past per-API failures and report a summary")
	generateCmd.Flags().StringVar(&generateDBPath, "db", defaultDBPath, "Run history database path")
	generateCmd.MarkFlagRequired("config")
	generateCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(generateCmd)
}
