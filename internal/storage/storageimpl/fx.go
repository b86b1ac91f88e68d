package storageimpl

import (
	"github.com/orgball2608/tumblr-likes-archiver/internal/storage"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/config"
	"go.uber.org/fx"
)

// Module provides the storage.Sink selected by STORAGE_BACKEND.
func Module(cfg *config.Config) fx.Option {
	var sink any = NewS3
	if cfg.Storage.Backend == config.StorageLocal {
		sink = NewLocal
	}

	return fx.Module("storage",
		fx.Provide(fx.Annotate(sink, fx.As(new(storage.Sink)))),
	)
}
