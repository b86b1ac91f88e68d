package tumblrimpl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/orgball2608/tumblr-likes-archiver/internal/domain"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/errors"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const likesJSON = `{
  "meta": {"status": 200, "msg": "OK"},
  "response": {
    "liked_count": 3,
    "liked_posts": [
      {
        "id": 1234567890123456789, "id_string": "1234567890123456789", "type": "photo",
        "reblog_key": "rkA", "post_url": "https://a.tumblr.com/post/1234567890123456789/slug",
        "photos": [
          {"original_size": {"url": "https://64.media.tumblr.com/a/1.jpg"}},
          {"alt_sizes": []},
          null,
          {"original_size": {"url": "https://64.media.tumblr.com/a/2.png"}}
        ]
      },
      {
        "id": 42, "type": "video", "reblog_key": "rkB",
        "post_url": "https://b.tumblr.com/post/42",
        "video_url": "https://vt.tumblr.com/v.mp4", "video_type": "tumblr"
      },
      {"id": 7, "type": "quote", "reblog_key": "rkC", "post_url": "https://c.tumblr.com/post/7"}
    ]
  }
}`

func TestLikes_DecodesPostVariants(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/user/likes", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(likesJSON))
	}))
	defer srv.Close()

	posts, err := newWithHTTPClient(srv.URL+"/", srv.Client(), logger.NewNop()).Likes(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, posts, 3)

	photo, ok := posts[0].(domain.PhotoPost)
	require.True(t, ok)
	assert.Equal(t, "1234567890123456789", photo.ID)
	assert.Equal(t, "rkA", photo.ReblogKey)
	assert.Equal(t, []domain.Photo{
		{OriginalURL: "https://64.media.tumblr.com/a/1.jpg"},
		{},
		{},
		{OriginalURL: "https://64.media.tumblr.com/a/2.png"},
	}, photo.Photos)

	video, ok := posts[1].(domain.VideoPost)
	require.True(t, ok)
	assert.Equal(t, "42", video.ID)
	assert.Equal(t, "https://vt.tumblr.com/v.mp4", video.VideoURL)
	assert.Equal(t, "tumblr", video.VideoType)

	other, ok := posts[2].(domain.OtherPost)
	require.True(t, ok)
	assert.Equal(t, "7", other.Meta().ID)
	assert.Equal(t, "quote", other.TypeName)
}

func TestLikes_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"meta":{"status":401,"msg":"Not Authorized"},"response":[]}`))
	}))
	defer srv.Close()

	_, err := newWithHTTPClient(srv.URL, srv.Client(), logger.NewNop()).Likes(context.Background(), 20)
	assert.ErrorIs(t, err, errors.ErrUpstream)
	assert.Contains(t, err.Error(), "Not Authorized")
}

func TestUnlike_PostsForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/user/unlike", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "42", r.PostForm.Get("id"))
		assert.Equal(t, "rkB", r.PostForm.Get("reblog_key"))
		_, _ = w.Write([]byte(`{"meta":{"status":200,"msg":"OK"},"response":[]}`))
	}))
	defer srv.Close()

	err := newWithHTTPClient(srv.URL, srv.Client(), logger.NewNop()).Unlike(context.Background(), "42", "rkB")
	require.NoError(t, err)
}
