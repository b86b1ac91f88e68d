package ledger

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/tumblr-likes-archiver/internal/repositories"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/config"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/errors"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/logger"
)

const table = "processed_posts"

// pgxQuerier is the part of *pgxpool.Pool the ledger uses.
type pgxQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Pgx keeps the ledger as one row of processed_posts, posts being a text[].
type Pgx struct {
	pg       pgxQuerier
	targetID string
	logger   logger.Logger
}

func NewPgx(pg *pgxpool.Pool, cfg *config.Config, logger logger.Logger) *Pgx {
	return newPgx(pg, cfg.Ledger.TargetID, logger)
}

func newPgx(pg pgxQuerier, targetID string, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:       pg,
		targetID: targetID,
		logger:   logger.WithComponent("PgxLedger"),
	}
}

var _ Repository = (*Pgx)(nil)

func (p *Pgx) GetProcessedIDs(ctx context.Context) ([]string, error) {
	query, args, err := repositories.SqBuilder.
		Select("posts").
		From(table).
		Where(sq.Eq{"target_id": p.targetID}).
		ToSql()
	if err != nil {
		return nil, errors.Ledger(repositories.ErrBadQuery, err.Error())
	}

	var ids []string
	err = p.pg.QueryRow(ctx, query, args...).Scan(&ids)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []string{}, nil
		}
		return nil, errors.Ledger(err, "failed to read processed posts")
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (p *Pgx) SetProcessedIDs(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}

	query, args, err := repositories.SqBuilder.
		Insert(table).
		Columns("target_id", "posts", "updated_at").
		Values(p.targetID, ids, time.Now()).
		Suffix("ON CONFLICT (target_id) DO UPDATE SET posts = EXCLUDED.posts, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return errors.Ledger(repositories.ErrBadQuery, err.Error())
	}

	if _, err := p.pg.Exec(ctx, query, args...); err != nil {
		return errors.Ledger(err, "failed to write processed posts")
	}

	p.logger.Info("Ledger updated", "target_id", p.targetID, "count", len(ids))
	return nil
}
