package maintain

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
)

// StartSchedule fires maintenance triggers on a cron spec until the context
// is cancelled. Triggers that land while a cycle is running coalesce through
// the mailbox.
func (r *Runner) StartSchedule(ctx context.Context, spec string) error {
	c := cron.New()

	if _, err := c.AddFunc(spec, func() { r.Trigger("schedule") }); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}

	r.log.Info("maintenance schedule active", "spec", spec)
	c.Start()

	<-ctx.Done()

	stopped := c.Stop()
	<-stopped.Done()
	return nil
}
