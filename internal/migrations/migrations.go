package migrations

import (
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/config"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/logger"
	"github.com/pressly/goose/v3"
)

// Up applies the registered Go migrations.
func Up(cfg *config.Config, log logger.Logger) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := goose.Up(db, "."); err != nil {
		return err
	}

	log.Info("Migrations applied")
	return nil
}
