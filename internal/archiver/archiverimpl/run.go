package archiverimpl

import (
	"context"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/orgball2608/tumblr-likes-archiver/internal/domain"
	"github.com/orgball2608/tumblr-likes-archiver/internal/repositories/ledger"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Handle runs the pipeline once and reports the summary of the run.
func (a *ArchiverImpl) Handle(ctx context.Context, event domain.Event) (string, error) {
	report, err := a.Run(ctx, event)
	if report == nil {
		return "", err
	}
	return report.Summary(), errors.Join(err, report.Err())
}

// Run lists likes, stores the media of every post not seen by the previous
// run and rewrites the ledger when the id list changed. Item failures are
// collected in the report; only a failure of the initial reads or of the
// ledger write is returned as error.
func (a *ArchiverImpl) Run(ctx context.Context, event domain.Event) (*domain.RunReport, error) {
	start := time.Now()
	report := domain.NewRunReport(event)
	a.Logger.Info("Starting run", "is_local", event.IsLocal, "limit", a.Config.Tumblr.PostsLimit)

	var (
		posts   []domain.Post
		prevIDs []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = a.Tumblr.Likes(gctx, a.Config.Tumblr.PostsLimit)
		return err
	})
	g.Go(func() error {
		var err error
		prevIDs, err = a.Ledger.GetProcessedIDs(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		a.Logger.Error("Failed to load likes or ledger", "error", err)
		return nil, err
	}
	report.Posts = len(posts)

	seen := make(map[string]struct{}, len(prevIDs))
	for _, id := range prevIDs {
		seen[id] = struct{}{}
	}

	runIDs := make([]string, 0, len(posts))
	var descriptors []domain.MediaDescriptor
	for _, post := range posts {
		meta := post.Meta()
		runIDs = append(runIDs, meta.ID)

		if _, ok := seen[meta.ID]; ok {
			report.Duplicates++
			continue
		}

		ds, err := a.Resolver.Resolve(post)
		if err != nil {
			report.Add(a.fail(domain.ItemResult{PostID: meta.ID}, err))
			continue
		}
		descriptors = append(descriptors, ds...)
	}

	var wg sync.WaitGroup
	for _, d := range descriptors {
		wg.Add(1)
		go func(d domain.MediaDescriptor) {
			defer wg.Done()
			report.Add(a.processDescriptor(ctx, d))
		}(d)
	}
	wg.Wait()

	if !ledger.Equal(prevIDs, runIDs) {
		if err := a.Ledger.SetProcessedIDs(ctx, runIDs); err != nil {
			a.Logger.Error("Failed to update ledger", "error", err)
			return report, err
		}
		report.LedgerUpdated = true
	}

	a.Logger.Info("Run completed",
		"summary", report.Summary(),
		"duration", time.Since(start).String())
	return report, nil
}

func (a *ArchiverImpl) processDescriptor(ctx context.Context, d domain.MediaDescriptor) domain.ItemResult {
	res := domain.ItemResult{PostID: d.PostID, URL: d.URL}

	if !d.Fetchable() {
		if err := a.Notifier.Notify(ctx, d.Notification); err != nil {
			return a.fail(res, err)
		}
		res.Status = domain.ItemNotified
		return res
	}

	meta, err := domain.NewStoredFileMeta(d.URL)
	if err != nil {
		return a.fail(res, err)
	}

	body, err := a.Fetcher.Fetch(ctx, d.URL)
	if err != nil {
		return a.fail(res, err)
	}
	if len(body) == 0 {
		return a.fail(res, errors.MalformedMedia("empty body for "+d.URL))
	}
	res.DetectedType = a.checkContentType(d, body, meta)

	confirmation, err := a.Storage.Store(ctx, body, meta)
	if err != nil {
		return a.fail(res, err)
	}
	res.Status = domain.ItemStored
	res.Confirmation = confirmation
	a.Logger.Info("Stored media", "post_id", d.PostID, "name", meta.Name, "result", confirmation)

	if err := a.Notifier.Notify(ctx, d.Notification); err != nil {
		res.Err = err
	}

	if d.IsLast && a.Config.App.AutoUnlike {
		if err := a.Tumblr.Unlike(ctx, d.PostID, d.ReblogKey); err != nil {
			res.Err = errors.Join(res.Err, err)
		} else {
			a.Logger.Info("Unliked post", "post_id", d.PostID)
		}
	}

	if res.Err != nil {
		a.Logger.Warn("Stored media with follow-up errors", "post_id", d.PostID, "error", res.Err)
	}
	return res
}

func (a *ArchiverImpl) fail(res domain.ItemResult, err error) domain.ItemResult {
	a.Logger.Error("Failed to archive media",
		"post_id", res.PostID,
		"url", res.URL,
		"code", errors.GetCode(err),
		"error", err)
	res.Status = domain.ItemFailed
	res.Err = err
	return res
}

// checkContentType sniffs body and warns when it disagrees with the type
// derived from the URL. The stored content type is left as derived.
func (a *ArchiverImpl) checkContentType(d domain.MediaDescriptor, body []byte, meta domain.StoredFileMeta) string {
	detected := mimetype.Detect(body)
	if meta.ContentType != "" && !detected.Is(meta.ContentType) {
		a.Logger.Warn("Content type mismatch",
			"post_id", d.PostID,
			"name", meta.Name,
			"derived", meta.ContentType,
			"detected", detected.String())
	}
	return detected.String()
}
