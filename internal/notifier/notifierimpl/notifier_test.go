package notifierimpl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/tumblr-likes-archiver/internal/domain"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/config"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/errors"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSlackForTest(url string) *SlackImpl {
	cfg := &config.Config{}
	cfg.Slack.WebhookURL = url
	return NewSlack(Opts{Config: cfg, Logger: logger.NewNop()})
}

func TestSlackNotify_PostsJSONPayload(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newSlackForTest(srv.URL).Notify(context.Background(), &domain.Message{
		IconURL:  "https://example.com/icon.png",
		Username: "archiver",
		Channel:  "#likes",
		Text:     "Liked photo & <video>.\nhttps://a.tumblr.com/post/1/",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/icon.png", got["icon_url"])
	assert.Equal(t, "archiver", got["username"])
	assert.Equal(t, "#likes", got["channel"])
	assert.Equal(t, "Liked photo & <video>.\nhttps://a.tumblr.com/post/1/", got["text"])
	for key, v := range got {
		switch key {
		case "icon_url", "username", "channel", "text":
		case "replace_original", "delete_original":
			assert.Equal(t, false, v, key)
		default:
			t.Errorf("unexpected key %q in webhook body", key)
		}
	}
}

func TestSlackNotify_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no_service"))
	}))
	defer srv.Close()

	err := newSlackForTest(srv.URL).Notify(context.Background(), &domain.Message{Text: "x"})
	assert.ErrorIs(t, err, errors.ErrNotification)
}

func TestSlackNotify_NilMessageIsNoop(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	require.NoError(t, newSlackForTest(srv.URL).Notify(context.Background(), nil))
	assert.False(t, called)
}

type fakeSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.err
}

func TestTelegramNotify(t *testing.T) {
	sender := &fakeSender{}
	tg := &TelegramImpl{TgBot: sender, Channel: "@likes", Logger: logger.NewNop()}

	require.NoError(t, tg.Notify(context.Background(), &domain.Message{Username: "bot", Text: "see a.b"}))
	require.NoError(t, tg.Notify(context.Background(), nil))
	require.Len(t, sender.sent, 1)

	msg, ok := sender.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, "@likes", msg.ChannelUsername)
	assert.Equal(t, "*bot*\nsee a\\.b", msg.Text)
	assert.Equal(t, tgbotapi.ModeMarkdownV2, msg.ParseMode)
}

func TestTelegramNotify_SendError(t *testing.T) {
	tg := &TelegramImpl{TgBot: &fakeSender{err: assert.AnError}, Channel: "@likes", Logger: logger.NewNop()}
	err := tg.Notify(context.Background(), &domain.Message{Text: "x"})
	assert.ErrorIs(t, err, errors.ErrNotification)
}
