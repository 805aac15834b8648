// Package maintain drives full maintenance cycles over the archive manager:
// compress eligible logs, build the daily bundle, prune expired archives,
// and report final statistics. The manager itself never schedules anything;
// this package is the cron-like invoker that calls it.
package maintain

import (
	"context"
	"time"

	"github.com/logtools/log-archiver/internal/archive"
	"github.com/logtools/log-archiver/internal/codec"
	"github.com/logtools/log-archiver/internal/config"
	"github.com/logtools/log-archiver/internal/logging"
	"github.com/logtools/log-archiver/internal/mailbox"
)

// Trigger asks for one maintenance cycle. Repeated triggers coalesce in the
// mailbox while a cycle is running.
type Trigger struct {
	Reason string
	At     time.Time
}

// Report summarizes one maintenance cycle.
type Report struct {
	Compressed map[string]int64
	BundlePath string
	Pruned     int
	Stats      archive.Statistics
}

// Runner executes maintenance cycles, one at a time.
type Runner struct {
	mgr *archive.Manager
	cfg config.MaintenanceConfig
	log logging.Logger
	mb  *mailbox.Mailbox[Trigger]
}

func New(mgr *archive.Manager, cfg config.MaintenanceConfig, log logging.Logger) *Runner {
	return &Runner{
		mgr: mgr,
		cfg: cfg,
		log: log,
		mb:  mailbox.New[Trigger](),
	}
}

// Trigger requests a maintenance cycle. It never blocks.
func (r *Runner) Trigger(reason string) {
	r.mb.Put(Trigger{Reason: reason, At: time.Now()})
}

// Start runs the trigger loop until the context is cancelled.
func (r *Runner) Start(ctx context.Context) {
	r.log.Info("maintenance runner started")

	triggers := make(chan Trigger)
	go func() {
		for {
			triggers <- r.mb.Take()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			r.log.Info("maintenance runner stopped")
			return
		case t := <-triggers:
			r.log.Info("maintenance triggered", "reason", t.Reason)
			r.RunOnce(ctx)
		}
	}
}

// RunOnce executes one full maintenance cycle. Each stage runs regardless of
// earlier stage failures; a failed stage is logged and its result is simply
// missing from the report.
func (r *Runner) RunOnce(ctx context.Context) Report {
	_ = ctx // stages are local filesystem work and run to completion

	var rep Report

	kind, err := codec.ParseKind(r.cfg.Codec)
	if err != nil {
		r.log.Warn("unknown codec in config, falling back to zip", "codec", r.cfg.Codec)
		kind = codec.Zip
	}

	r.log.Info("compressing eligible logs", "olderThanDays", r.cfg.OlderThanDays, "codec", kind.String())
	rep.Compressed = r.mgr.CompressEligible(r.cfg.OlderThanDays, kind)
	r.log.Info("compression stage done", "files", len(rep.Compressed))

	path, err := r.mgr.BuildDailyBundle("")
	if err != nil {
		r.log.Error("daily bundle stage failed", "error", err)
	} else {
		rep.BundlePath = path
	}

	r.log.Info("pruning expired archives", "keepDays", r.cfg.KeepDays)
	rep.Pruned = r.mgr.PruneExpired(r.cfg.KeepDays)
	r.log.Info("prune stage done", "deleted", rep.Pruned)

	rep.Stats = r.mgr.Statistics()
	r.log.Info("maintenance cycle complete",
		"logCount", rep.Stats.LogCount,
		"archiveCount", rep.Stats.ArchiveCount,
	)

	return rep
}
