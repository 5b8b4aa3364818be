package cli

import (
	"errors"
	"fmt"

	"github.com/shankar0909/stepzen-gql-soap/internal/config"
	"github.com/shankar0909/stepzen-gql-soap/internal/stepzen"
	"github.com/spf13/cobra"
)

var (
	deployConfig    string
	deployOutput    string
	deployBin       string
	deployKeepGoing bool
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy previously generated workspaces with the stepzen CLI",
	Long: `Initialize and deploy the workspace of every configured API.
Workspaces must already contain generated artifacts; run "generate"
first, or use "run" for the combined pipeline.

Examples:
  stepzen-soap deploy --config apis.json --output ./workspaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(deployConfig)
		if err != nil {
			return err
		}

		p := &pipeline{
			output: deployOutput,
			runner: stepzen.NewRunner(deployBin, logger),
			log:    logger,
		}

		var failures []error
		for _, api := range cfg.APIs {
			if err := p.deploy(cmd.Context(), api, nil); err != nil {
				if !deployKeepGoing {
					return err
				}
				logger.Error("deploy failed", "api", api.Name, "err", err)
				failures = append(failures, err)
			}
		}

		if len(failures) > 0 {
			return fmt.Errorf("%d of %d APIs failed: %w", len(failures), len(cfg.APIs), errors.Join(failures...))
		}
		logger.Info("all APIs deployed", "count", len(cfg.APIs))
		return nil
	},
}

func init() {
	deployCmd.Flags().StringVarP(&deployConfig, "config", "c", "", "JSON file mapping API name -> WSDL URL (required)")
	deployCmd.Flags().StringVarP(&deployOutput, "output", "o", "", "Base folder holding the StepZen workspaces (required)")
	deployCmd.Flags().StringVar(&deployBin, "stepzen-bin", "", "Path to the stepzen binary (default: resolved from PATH)")
	deployCmd.Flags().BoolVar(&deployKeepGoing, "keep-going", false, "Continue past per-API failures and report a summary")
	deployCmd.MarkFlagRequired("config")
	deployCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(deployCmd)
}
