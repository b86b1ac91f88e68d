package ledger

import (
	"github.com/orgball2608/tumblr-likes-archiver/internal/migrations"
	internalpgx "github.com/orgball2608/tumblr-likes-archiver/internal/pgx"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/config"
	"go.uber.org/fx"
)

// Module provides the Repository selected by LEDGER_BACKEND. The postgres
// backend also migrates its schema before the first run.
func Module(cfg *config.Config) fx.Option {
	if cfg.Ledger.Backend == config.LedgerPostgres {
		return fx.Module("ledger_repository",
			fx.Provide(
				internalpgx.New,
				fx.Annotate(NewPgx, fx.As(new(Repository))),
			),
			fx.Invoke(migrations.Up),
		)
	}

	return fx.Module("ledger_repository",
		fx.Provide(
			fx.Annotate(NewDynamo, fx.As(new(Repository))),
		),
	)
}
