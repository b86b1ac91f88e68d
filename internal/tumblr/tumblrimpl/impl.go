package tumblrimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dghubble/oauth1"
	"github.com/orgball2608/tumblr-likes-archiver/internal/tumblr"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/config"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type TumblrImpl struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

// New builds a client whose requests are OAuth1 signed with the user's token.
func New(opts Opts) *TumblrImpl {
	c := opts.Config.Tumblr
	oauthCfg := oauth1.NewConfig(c.ConsumerKey, c.ConsumerSecret)
	token := oauth1.NewToken(c.Token, c.TokenSecret)

	return newWithHTTPClient(c.BaseURL, oauthCfg.Client(context.Background(), token), opts.Logger)
}

func newWithHTTPClient(baseURL string, httpClient *http.Client, log logger.Logger) *TumblrImpl {
	return &TumblrImpl{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		logger:     log.WithComponent("TumblrClient"),
	}
}

var _ tumblr.Client = (*TumblrImpl)(nil)

type meta struct {
	Status int    `json:"status"`
	Msg    string `json:"msg"`
}

// do sends req and decodes the "response" member of the envelope into out.
func (t *TumblrImpl) do(req *http.Request, out any) error {
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			t.logger.Error("Error closing response body", "error", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var envelope struct {
		Meta     meta            `json:"meta"`
		Response json.RawMessage `json:"response"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("status %d: invalid response: %w", resp.StatusCode, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("status %d: %s", resp.StatusCode, envelope.Meta.Msg)
	}

	if out == nil || len(envelope.Response) == 0 {
		return nil
	}
	return json.Unmarshal(envelope.Response, out)
}
