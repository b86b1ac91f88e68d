package tumblr

import (
	"context"

	"github.com/orgball2608/tumblr-likes-archiver/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=tumblr.go -destination=mocks/mock.go
type Client interface {
	// Likes returns the newest liked posts, at most limit of them.
	Likes(ctx context.Context, limit int) ([]domain.Post, error)
	Unlike(ctx context.Context, postID, reblogKey string) error
}
