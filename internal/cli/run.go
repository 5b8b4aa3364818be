package cli

import (
	"errors"
	"fmt"

	"github.com/shankar0909/stepzen-gql-soap/internal/config"
	"github.com/shankar0909/stepzen-gql-soap/internal/runcache"
	"github.com/shankar0909/stepzen-gql-soap/internal/stepzen"
	"github.com/shankar0909/stepzen-gql-soap/internal/wsdl"
	"github.com/spf13/cobra"
)

var (
	runConfig       string
	runOutput       string
	runSOAPVersion  string
	runSkipValidate bool
	runKeepGoing    bool
	runBin          string
	runDBPath       string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate and deploy every configured API in one pass",
	Long: `Fetch each API's WSDL, generate its workspace artifacts and deploy
the endpoint, strictly in sequence. The first failure aborts the batch
unless --keep-going is set.

Examples:
  stepzen-soap run --config apis.json --output ./workspaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := parseSOAPVersion(runSOAPVersion)
		if err != nil {
			return err
		}

		cfg, err := config.Load(runConfig)
		if err != nil {
			return err
		}

		db, err := runcache.NewDB(runDBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		p := &pipeline{
			output:       runOutput,
			version:      version,
			skipValidate: runSkipValidate,
			fetcher:      wsdl.NewFetcher(),
			runner:       stepzen.NewRunner(runBin, logger),
			repo:         runcache.NewRepository(db),
			log:          logger,
		}

		var failures []error
		for _, api := range cfg.APIs {
			logger.Info("processing API", "api", api.Name, "wsdl", api.WSDL)
			err := func() error {
				run, err := p.generate(cmd.Context(), api)
				if err != nil {
					return err
				}
				return p.deploy(cmd.Context(), api, run)
			}()
			if err != nil {
				if !runKeepGoing {
					return err
				}
				logger.Error("API failed", "api", api.Name, "err", err)
				failures = append(failures, err)
			}
		}

		if len(failures) > 0 {
			return fmt.Errorf("%d of %d APIs failed: %w", len(failures), len(cfg.APIs), errors.Join(failures...))
		}
		logger.Info("all APIs processed", "count", len(cfg.APIs))
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&runConfig, "config", "c", "", "JSON file mapping API name -> WSDL URL (required)")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "Base folder for StepZen workspaces (required)")
	runCmd.Flags().StringVar(&runSOAPVersion, "soap-version", "1.2", "SOAP envelope version (1.1 or 1.2)")
	runCmd.Flags().BoolVar(&runSkipValidate, "skip-validate", false, "Skip GraphQL validation of generated schemas")
	runCmd.Flags().BoolVar(&runKeepGoing, "keep-going", false, "Continue past per-API failures and report a summary")
	runCmd.Flags().StringVar(&runBin, "stepzen-bin", "", "Path to the stepzen binary (default: resolved from PATH)")
	runCmd.Flags().StringVar(&runDBPath, "db", defaultDBPath, "Run history database path")
	runCmd.MarkFlagRequired("config")
	runCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(runCmd)
}
