package tumblrimpl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/orgball2608/tumblr-likes-archiver/internal/domain"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/errors"
)

type photoSize struct {
	URL string `json:"url"`
}

type photoDTO struct {
	OriginalSize *photoSize `json:"original_size"`
}

type postDTO struct {
	ID        json.Number `json:"id"`
	IDString  string      `json:"id_string"`
	Type      string      `json:"type"`
	ReblogKey string      `json:"reblog_key"`
	PostURL   string      `json:"post_url"`
	Photos    []*photoDTO `json:"photos"`
	VideoURL  string      `json:"video_url"`
	VideoType string      `json:"video_type"`
}

type likesResponse struct {
	LikedPosts []postDTO `json:"liked_posts"`
	LikedCount int       `json:"liked_count"`
}

func (t *TumblrImpl) Likes(ctx context.Context, limit int) ([]domain.Post, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"/v2/user/likes?"+q.Encode(), nil)
	if err != nil {
		return nil, errors.Upstream(err, "failed to build likes request")
	}

	var res likesResponse
	if err := t.do(req, &res); err != nil {
		return nil, errors.Upstream(err, "failed to list likes")
	}

	posts := make([]domain.Post, 0, len(res.LikedPosts))
	for _, dto := range res.LikedPosts {
		posts = append(posts, dto.toDomain())
	}

	t.logger.Info("Retrieved likes", "count", len(posts), "liked_count", res.LikedCount)
	return posts, nil
}

func (t *TumblrImpl) Unlike(ctx context.Context, postID, reblogKey string) error {
	form := url.Values{}
	form.Set("id", postID)
	form.Set("reblog_key", reblogKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/v2/user/unlike", strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Upstream(err, "failed to build unlike request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if err := t.do(req, nil); err != nil {
		return errors.Upstream(err, "failed to unlike "+postID)
	}

	t.logger.Info("Post unliked", "post_id", postID)
	return nil
}

func (p postDTO) toDomain() domain.Post {
	id := p.IDString
	if id == "" {
		id = p.ID.String()
	}
	meta := domain.PostMeta{ID: id, ReblogKey: p.ReblogKey, PostURL: p.PostURL}

	switch p.Type {
	case domain.PostTypePhoto:
		photos := make([]domain.Photo, 0, len(p.Photos))
		for _, ph := range p.Photos {
			if ph == nil || ph.OriginalSize == nil {
				photos = append(photos, domain.Photo{})
				continue
			}
			photos = append(photos, domain.Photo{OriginalURL: ph.OriginalSize.URL})
		}
		return domain.PhotoPost{PostMeta: meta, Photos: photos}
	case domain.PostTypeVideo:
		return domain.VideoPost{PostMeta: meta, VideoURL: p.VideoURL, VideoType: p.VideoType}
	default:
		return domain.OtherPost{PostMeta: meta, TypeName: p.Type}
	}
}
