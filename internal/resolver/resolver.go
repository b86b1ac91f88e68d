// Package resolver turns liked posts into media descriptors.
package resolver

import (
	"fmt"
	"regexp"

	"github.com/orgball2608/tumblr-likes-archiver/internal/domain"
	"github.com/orgball2608/tumblr-likes-archiver/internal/notifier"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/errors"
)

var (
	permalinkPattern   = regexp.MustCompile(`(http|https)://[a-z0-9\-.]+/post/[0-9]+/`)
	unsupportedVideoRe = regexp.MustCompile(`vine|flickr`)
)

type Resolver struct {
	template notifier.MessageTemplate
}

func New(template notifier.MessageTemplate) *Resolver {
	return &Resolver{template: template}
}

// Resolve returns the descriptors of one post. Posts whose URL has no
// permalink fail with a malformed media error and yield nothing.
func (r *Resolver) Resolve(post domain.Post) ([]domain.MediaDescriptor, error) {
	meta := post.Meta()
	link, err := Permalink(meta.PostURL)
	if err != nil {
		return nil, err
	}

	switch p := post.(type) {
	case domain.PhotoPost:
		return r.photos(meta, p.Photos, link), nil
	case domain.VideoPost:
		return r.video(meta, p.VideoURL, p.VideoType, link), nil
	case domain.OtherPost:
		return r.skip(meta, fmt.Sprintf("%s posts cannot be saved.\n%s", p.TypeName, link)), nil
	default:
		return nil, errors.MalformedMedia(fmt.Sprintf("unknown post variant %T", post))
	}
}

func (r *Resolver) photos(meta domain.PostMeta, photos []domain.Photo, link string) []domain.MediaDescriptor {
	urls := make([]string, 0, len(photos))
	for _, ph := range photos {
		if ph.OriginalURL == "" {
			continue
		}
		urls = append(urls, ph.OriginalURL)
	}

	msg := r.template.Build("Liked photo.\n" + link)
	last := len(urls) - 1
	out := make([]domain.MediaDescriptor, 0, len(urls))
	for i, u := range urls {
		d := domain.MediaDescriptor{
			PostID:    meta.ID,
			ReblogKey: meta.ReblogKey,
			URL:       u,
			IsFirst:   i == 0,
			IsLast:    i == last,
		}
		if i == 0 {
			d.Notification = msg
		}
		out = append(out, d)
	}
	return out
}

func (r *Resolver) video(meta domain.PostMeta, videoURL, videoType, link string) []domain.MediaDescriptor {
	if unsupportedVideoRe.MatchString(videoType) {
		return r.skip(meta, fmt.Sprintf("%s videos cannot be saved.\n%s", videoType, link))
	}
	return []domain.MediaDescriptor{{
		PostID:       meta.ID,
		ReblogKey:    meta.ReblogKey,
		URL:          videoURL,
		IsFirst:      true,
		IsLast:       true,
		Notification: r.template.Build("Liked video.\n" + link),
	}}
}

func (r *Resolver) skip(meta domain.PostMeta, text string) []domain.MediaDescriptor {
	return []domain.MediaDescriptor{{
		PostID:       meta.ID,
		ReblogKey:    meta.ReblogKey,
		IsFirst:      true,
		IsLast:       true,
		Notification: r.template.Build(text),
	}}
}

// Permalink extracts "scheme://host/post/<id>/" from a post URL.
func Permalink(postURL string) (string, error) {
	link := permalinkPattern.FindString(postURL + "/")
	if link == "" {
		return "", errors.MalformedMedia("unparsable permalink " + postURL)
	}
	return link, nil
}
