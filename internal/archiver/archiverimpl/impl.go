package archiverimpl

import (
	"github.com/orgball2608/tumblr-likes-archiver/internal/archiver"
	"github.com/orgball2608/tumblr-likes-archiver/internal/fetcher"
	"github.com/orgball2608/tumblr-likes-archiver/internal/notifier"
	"github.com/orgball2608/tumblr-likes-archiver/internal/repositories/ledger"
	"github.com/orgball2608/tumblr-likes-archiver/internal/resolver"
	"github.com/orgball2608/tumblr-likes-archiver/internal/storage"
	"github.com/orgball2608/tumblr-likes-archiver/internal/tumblr"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/config"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Tumblr   tumblr.Client
	Fetcher  fetcher.Client
	Storage  storage.Sink
	Notifier notifier.Client
	Ledger   ledger.Repository
	Resolver *resolver.Resolver
	Logger   logger.Logger
	Config   *config.Config
}

type ArchiverImpl struct {
	Tumblr   tumblr.Client
	Fetcher  fetcher.Client
	Storage  storage.Sink
	Notifier notifier.Client
	Ledger   ledger.Repository
	Resolver *resolver.Resolver
	Logger   logger.Logger
	Config   *config.Config
}

func New(opts Opts) *ArchiverImpl {
	return &ArchiverImpl{
		Tumblr:   opts.Tumblr,
		Fetcher:  opts.Fetcher,
		Storage:  opts.Storage,
		Notifier: opts.Notifier,
		Ledger:   opts.Ledger,
		Resolver: opts.Resolver,
		Logger:   opts.Logger.WithComponent("archiver"),
		Config:   opts.Config,
	}
}

var _ archiver.Client = (*ArchiverImpl)(nil)
