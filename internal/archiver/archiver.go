package archiver

import (
	"context"

	"github.com/orgball2608/tumblr-likes-archiver/internal/domain"
)

type Client interface {
	// Run executes one pass of the pipeline and waits for every descriptor.
	Run(ctx context.Context, event domain.Event) (*domain.RunReport, error)

	// Handle is the invocation entry point: it runs once and returns the
	// summary of the run together with the joined item errors.
	Handle(ctx context.Context, event domain.Event) (string, error)

	// ScheduleRuns runs the pipeline on APP_SCHEDULE until ctx is done.
	ScheduleRuns(ctx context.Context) error
}
