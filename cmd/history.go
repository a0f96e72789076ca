package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/daniloc96/member-roster-sync/internal/config"
	"github.com/spf13/cobra"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent sync runs from DynamoDB",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		overrideConfigFromFlags(cmd, cfg)

		if !cfg.DynamoDB.Enabled {
			return fmt.Errorf("run history is disabled (set DYNAMODB_ENABLED=true)")
		}
		if cfg.Notion.DatabaseID == "" {
			return fmt.Errorf("notion.database_id is required")
		}
		if listRuns == nil {
			return fmt.Errorf("run history is not configured")
		}

		runs, err := listRuns(cmd.Context(), cfg, flagLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "STARTED\tRUN\tTRIGGER\tSTATUS\tROWS\tCREATED\tUPDATED\tFAILED\tERROR")
		for _, run := range runs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
				run.StartedAt.Local().Format(time.DateTime),
				run.RunID,
				run.Trigger,
				run.Status,
				run.TotalRows,
				run.Created,
				run.Updated,
				run.Failed,
				run.Error,
			)
		}
		return w.Flush()
	},
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of runs to show")
	rootCmd.AddCommand(historyCmd)
}
