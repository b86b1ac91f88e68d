package storage

import (
	"context"

	"github.com/orgball2608/tumblr-likes-archiver/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=storage.go -destination=mocks/mock.go
type Sink interface {
	// Store writes body under meta.Name, overwriting what is there, and
	// returns a human readable confirmation.
	Store(ctx context.Context, body []byte, meta domain.StoredFileMeta) (string, error)
}
