package maintain

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/logtools/log-archiver/internal/config"
	"github.com/logtools/log-archiver/internal/fsprobe"
)

// StartWatch fires maintenance triggers when the log directory changes.
// Mode selects the strategy: "fsnotify", "poll", "auto" (probe fsnotify,
// fall back to polling), or "off".
func (r *Runner) StartWatch(ctx context.Context, dir string, cfg config.WatchConfig) error {
	switch cfg.Mode {
	case "off":
		return nil

	case "fsnotify":
		return r.watchFsnotify(ctx, dir, time.Duration(cfg.DebounceWindow))

	case "poll":
		r.watchPoll(ctx, time.Duration(cfg.PollInterval))
		return nil

	case "auto":
		res := fsprobe.Probe(dir)
		if res.FsnotifySupported {
			return r.watchFsnotify(ctx, dir, time.Duration(cfg.DebounceWindow))
		}
		r.log.Warn("fsnotify disabled, polling instead", "reason", res.Reason)
		r.watchPoll(ctx, time.Duration(cfg.PollInterval))
		return nil

	default:
		return fmt.Errorf("unknown watch mode %q", cfg.Mode)
	}
}

// watchFsnotify triggers maintenance after directory activity settles for
// the debounce window. Every event resets the timer, so a steady write burst
// produces a single trigger at the end.
func (r *Runner) watchFsnotify(ctx context.Context, dir string, debounce time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return err
	}

	// Channel to request debounce resets
	resetCh := make(chan struct{}, 1)

	go func() {
		var t *time.Timer
		for range resetCh {
			if t != nil {
				t.Stop()
			}
			t = time.AfterFunc(debounce, func() {
				r.Trigger("watch")
			})
		}
	}()

	r.log.Info("watching log directory", "dir", dir, "debounce", debounce)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			r.log.Debug("event", "name", ev.Name, "op", ev.Op)

			// Non-blocking send to reset debounce
			select {
			case resetCh <- struct{}{}:
			default:
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.log.Error("fsnotify error", "error", err)
		}
	}
}

// watchPoll triggers maintenance on a fixed interval.
func (r *Runner) watchPoll(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.log.Info("polling for maintenance", "interval", interval)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Trigger("poll")
		}
	}
}
