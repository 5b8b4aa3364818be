package cli

import (
	"fmt"

	"github.com/shankar0909/stepzen-gql-soap/internal/runcache"
	"github.com/spf13/cobra"
)

var (
	historyDBPath string
	historyLimit  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded generation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := runcache.NewDB(historyDBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		runs, err := runcache.NewRepository(db).List(historyLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded.")
			return nil
		}

		for _, run := range runs {
			status := "generated"
			if run.Deployed {
				status = "deployed"
			}
			fmt.Printf("%s  %-20s %-9s ops=%-3d hash=%.12s %s\n",
				run.CreatedAt.Format("2006-01-02 15:04:05"),
				run.API, status, run.OperationCount, run.SchemaHash, run.WSDLURL)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyDBPath, "db", defaultDBPath, "Run history database path")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum runs to list")

	rootCmd.AddCommand(historyCmd)
}
