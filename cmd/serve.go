package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/daniloc96/member-roster-sync/internal/config"
	"github.com/daniloc96/member-roster-sync/internal/models"
	"github.com/daniloc96/member-roster-sync/internal/trigger"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
)

var (
	flagAddr     string
	flagPath     string
	flagSchedule bool
	flagInterval time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP sync endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		run, err := runner(cfg)
		if err != nil {
			return err
		}

		p := pool.New().WithContext(cmd.Context()).WithCancelOnError()
		p.Go(func(ctx context.Context) error {
			return trigger.NewServer(cfg.Server, run).Run(ctx)
		})
		if flagSchedule {
			p.Go(func(ctx context.Context) error {
				return trigger.NewScheduler(cfg.Sync.Interval, run).Run(ctx)
			})
		}
		return p.Wait()
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Sync at start and then once per interval",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		run, err := runner(cfg)
		if err != nil {
			return err
		}
		return trigger.NewScheduler(cfg.Sync.Interval, run).Run(cmd.Context())
	},
}

// runner binds the registered sync function to cfg.
func runner(cfg *config.Config) (trigger.Runner, error) {
	if runSync == nil {
		return nil, fmt.Errorf("sync engine is not configured")
	}
	return func(ctx context.Context, t models.Trigger) (*models.SyncResult, error) {
		return runSync(ctx, cfg, t)
	}, nil
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "HTTP listen address")
	serveCmd.Flags().StringVar(&flagPath, "path", "", "HTTP path of the sync endpoint")
	serveCmd.Flags().BoolVar(&flagSchedule, "schedule", false, "Also run the interval scheduler")
	serveCmd.Flags().DurationVar(&flagInterval, "interval", 0, "Scheduler interval, e.g. 24h")
	scheduleCmd.Flags().DurationVar(&flagInterval, "interval", 0, "Scheduler interval, e.g. 24h")

	rootCmd.AddCommand(serveCmd, scheduleCmd)
}
