package ledger

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/errors"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePg keeps processed_posts rows in memory and applies the upsert the
// way Postgres does for the statements the ledger sends.
type fakePg struct {
	rows    map[string][]string
	queries []string
	failErr error
}

type fakeRow struct {
	ids   []string
	found bool
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if !r.found {
		return pgx.ErrNoRows
	}
	*dest[0].(*[]string) = append([]string{}, r.ids...)
	return nil
}

func (f *fakePg) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.queries = append(f.queries, sql)
	if f.failErr != nil {
		return fakeRow{err: f.failErr}
	}
	ids, ok := f.rows[args[0].(string)]
	return fakeRow{ids: ids, found: ok}
}

func (f *fakePg) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.queries = append(f.queries, sql)
	if f.failErr != nil {
		return pgconn.CommandTag{}, f.failErr
	}
	targetID := args[0].(string)
	if _, exists := f.rows[targetID]; exists && !strings.Contains(sql, "ON CONFLICT (target_id) DO UPDATE SET posts = EXCLUDED.posts") {
		return pgconn.CommandTag{}, &pgconn.PgError{Code: "23505", Message: "duplicate key value"}
	}
	f.rows[targetID] = args[1].([]string)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func TestPgx_EmptyWhenNoRow(t *testing.T) {
	pg := &fakePg{rows: map[string][]string{}}

	ids, err := newPgx(pg, "tumblr", logger.NewNop()).GetProcessedIDs(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
	require.Len(t, pg.queries, 1)
	assert.Equal(t, "SELECT posts FROM processed_posts WHERE target_id = $1", pg.queries[0])
}

func TestPgx_SetReplacesWholeList(t *testing.T) {
	ctx := context.Background()
	pg := &fakePg{rows: map[string][]string{"other": {"9"}}}
	repo := newPgx(pg, "tumblr", logger.NewNop())

	require.NoError(t, repo.SetProcessedIDs(ctx, []string{"1", "2", "3"}))
	require.NoError(t, repo.SetProcessedIDs(ctx, []string{"3", "4"}))

	ids, err := repo.GetProcessedIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "4"}, ids)
	assert.Equal(t, []string{"9"}, pg.rows["other"])
	assert.True(t, strings.HasPrefix(pg.queries[0], "INSERT INTO processed_posts (target_id,posts,updated_at) VALUES ($1,$2,$3)"))
}

func TestPgx_NilIDsStoredAsEmptyArray(t *testing.T) {
	pg := &fakePg{rows: map[string][]string{}}

	require.NoError(t, newPgx(pg, "tumblr", logger.NewNop()).SetProcessedIDs(context.Background(), nil))
	stored, ok := pg.rows["tumblr"]
	require.True(t, ok)
	assert.NotNil(t, stored)
	assert.Empty(t, stored)
}

func TestPgx_Failures(t *testing.T) {
	pg := &fakePg{rows: map[string][]string{}, failErr: assert.AnError}
	repo := newPgx(pg, "tumblr", logger.NewNop())

	_, err := repo.GetProcessedIDs(context.Background())
	assert.ErrorIs(t, err, errors.ErrLedger)

	err = repo.SetProcessedIDs(context.Background(), []string{"1"})
	assert.ErrorIs(t, err, errors.ErrLedger)
}
