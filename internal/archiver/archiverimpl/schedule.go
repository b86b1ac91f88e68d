package archiverimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/tumblr-likes-archiver/internal/domain"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/errors"
)

// ScheduleRuns registers the pipeline as a cron job. A run still in flight
// when the next tick fires causes that tick to be skipped.
func (a *ArchiverImpl) ScheduleRuns(ctx context.Context) error {
	cronExpr := a.Config.App.Schedule
	if cronExpr == "" {
		return errors.Wrap(errors.ErrInvalidInput, "APP_SCHEDULE is empty")
	}

	event, err := domain.ParseEvent(a.Config.App.Event)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidInput, "invalid APP_EVENT: "+err.Error())
	}

	loc, err := time.LoadLocation(a.Config.App.Timezone)
	if err != nil {
		loc = time.Local
		a.Logger.Warn("Failed to load timezone, using local timezone", "timezone", a.Config.App.Timezone, "error", err)
	}

	scheduler, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				a.Logger.Info("Context cancelled, skipping scheduled run")
				return
			}

			summary, err := a.Handle(ctx, event)
			if err != nil {
				a.Logger.Error("Scheduled run finished with errors", "summary", summary, "error", err)
				return
			}
			a.Logger.Info("Scheduled run finished", "summary", summary)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule runs %q: %w", cronExpr, err)
	}

	scheduler.Start()
	a.Logger.Info("Scheduled runs", "cron", cronExpr, "timezone", loc.String())

	go func() {
		<-ctx.Done()
		a.Logger.Info("Stopping run scheduler")
		if err := scheduler.Shutdown(); err != nil {
			a.Logger.Error("Failed to shut down scheduler", "error", err)
		}
	}()

	return nil
}
