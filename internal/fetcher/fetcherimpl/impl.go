package fetcherimpl

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/orgball2608/tumblr-likes-archiver/internal/fetcher"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/errors"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Logger logger.Logger
}

type FetcherImpl struct {
	httpClient *http.Client
	logger     logger.Logger
}

// New returns a fetcher without a client timeout; callers bound it through ctx.
func New(opts Opts) *FetcherImpl {
	return &FetcherImpl{
		httpClient: &http.Client{},
		logger:     opts.Logger.WithComponent("Fetcher"),
	}
}

var _ fetcher.Client = (*FetcherImpl)(nil)

func (f *FetcherImpl) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Network(err, "error creating request for "+url)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, errors.Network(err, "error downloading "+url)
	}
	defer safeClose(resp.Body, f.logger)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Network(fmt.Errorf("unexpected status %d", resp.StatusCode), "error downloading "+url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Network(err, "error reading body of "+url)
	}

	f.logger.Debug("Media fetched", "url", url, "bytes", len(body))
	return body, nil
}

// safeClose safely closes an io.ReadCloser and logs any errors
func safeClose(closer io.ReadCloser, logger logger.Logger) {
	if err := closer.Close(); err != nil {
		logger.Error("Error closing response body", "error", err)
	}
}
