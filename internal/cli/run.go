package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/logtools/log-archiver/internal/maintain"
)

var (
	runSchedule string
	runWatch    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run maintenance continuously on a schedule or on directory changes",
	Long: `Keep running and trigger maintenance cycles from a cron schedule, from
log directory activity, or both. Overlapping triggers coalesce into a single
pending cycle. Stops cleanly on SIGINT or SIGTERM.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runSchedule, "schedule", "", "cron spec (e.g. \"0 3 * * *\"), overrides config")
	runCmd.Flags().BoolVar(&runWatch, "watch", false, "trigger on log directory changes")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, log, mgr, err := setup()
	if err != nil {
		return err
	}

	schedule := runSchedule
	if schedule == "" {
		schedule = cfg.Maintenance.Schedule
	}
	if schedule == "" && !runWatch {
		return errors.New("run needs --schedule or --watch (or a schedule in the config)")
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down")
		cancel()
	}()

	runner := maintain.New(mgr, cfg.Maintenance, log)
	go runner.Start(ctx)

	if schedule != "" {
		go func() {
			if err := runner.StartSchedule(ctx, schedule); err != nil {
				log.Error("schedule failed", "error", err)
				cancel()
			}
		}()
	}

	if runWatch {
		go func() {
			if err := runner.StartWatch(ctx, cfg.Archive.LogDir, cfg.Maintenance.Watch); err != nil {
				log.Error("watch failed", "error", err)
				cancel()
			}
		}()
	}

	<-ctx.Done()
	return nil
}
