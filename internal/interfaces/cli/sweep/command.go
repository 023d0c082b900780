// Package sweep runs one sweep job on demand, outside the scheduler.
package sweep

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gearguard/gearguard/internal/infrastructure/database"
	"github.com/gearguard/gearguard/internal/infrastructure/scheduler"
	httpRouter "github.com/gearguard/gearguard/internal/interfaces/http"
	"github.com/gearguard/gearguard/internal/interfaces/cli/bootstrap"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run a sweep job once",
		Long:  `Run one of the scheduled sweeps immediately and wait for its emails to be delivered.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newJobCommand("overdue", "Email the overdue alert to admins and managers", func(j scheduler.SweepJobs) scheduler.BatchJob { return j.OverdueAlert }),
		newJobCommand("digest", "Email the daily digest to managers and technicians", func(j scheduler.SweepJobs) scheduler.BatchJob { return j.DailyDigest }),
		newJobCommand("refresh", "Recompute the overdue flag of open requests", func(j scheduler.SweepJobs) scheduler.BatchJob { return j.OverdueRefresh }),
	)

	return cmd
}

func newJobCommand(use, short string, pick func(scheduler.SweepJobs) scheduler.BatchJob) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap.Init(env)
			if err != nil {
				return err
			}
			defer database.Close()

			container, err := httpRouter.NewContainer(database.Get(), cfg, nil, log)
			if err != nil {
				return fmt.Errorf("failed to build application: %w", err)
			}
			defer container.Shutdown()

			ctx := context.Background()
			container.StartEmail(ctx)

			jobCtx, cancel := context.WithTimeout(ctx, jobTimeout(cfg.Scheduler.JobTimeout))
			n, runErr := pick(container.SweepJobs()).Execute(jobCtx)
			cancel()

			drainCtx, cancelDrain := context.WithTimeout(ctx, httpRouter.DrainTimeout)
			defer cancelDrain()
			if err := container.DrainEmail(drainCtx); err != nil {
				log.Warnw("email queue not fully drained", "error", err)
			}

			if runErr != nil {
				return fmt.Errorf("sweep %s failed: %w", use, runErr)
			}

			log.Infow("sweep completed", "job", use, "count", n)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", use, n)
			return nil
		},
	}
}
