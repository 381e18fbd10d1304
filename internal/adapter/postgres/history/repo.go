// Package history implements the per-user draw history using PostgreSQL.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/escolhe-pra-mim/internal/adapter/postgres"
	"github.com/heartmarshall/escolhe-pra-mim/internal/domain"
)

const table = "user_history"

var columns = []string{"id", "content", "watched", "created_at"}

// Repo provides history persistence.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// List returns the user's history, newest first.
func (r *Repo) List(ctx context.Context, userID int64) ([]domain.HistoryItem, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history query: %w", err)
	}

	var rows []historyRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "history", userID)
	}

	out := make([]domain.HistoryItem, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// Add stores a new history item.
func (r *Repo) Add(ctx context.Context, userID int64, item domain.HistoryItem) error {
	payload, err := json.Marshal(item.Content)
	if err != nil {
		return fmt.Errorf("marshal content %d: %w", item.Content.ID, err)
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "content", "watched", "created_at").
		Values(item.HistoryID, userID, payload, item.Watched, item.Timestamp).
		ToSql()
	if err != nil {
		return fmt.Errorf("build history insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "history", item.HistoryID)
	}
	return nil
}

// ToggleWatched flips the watched flag of one item and returns it.
func (r *Repo) ToggleWatched(ctx context.Context, userID int64, id uuid.UUID) (*domain.HistoryItem, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("watched", squirrel.Expr("NOT watched")).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING id, content, watched, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history toggle: %w", err)
	}

	var row historyRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "history", id)
	}

	item, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes one item. Returns ErrNotFound if nothing was removed.
func (r *Repo) Delete(ctx context.Context, userID int64, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build history delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "history", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("history %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteAll removes the user's whole history.
func (r *Repo) DeleteAll(ctx context.Context, userID int64) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build history clear: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "history", userID)
	}
	return nil
}

type historyRow struct {
	ID        uuid.UUID `db:"id"`
	Content   []byte    `db:"content"`
	Watched   bool      `db:"watched"`
	CreatedAt time.Time `db:"created_at"`
}

func (r historyRow) toDomain() (domain.HistoryItem, error) {
	var c domain.Content
	if err := json.Unmarshal(r.Content, &c); err != nil {
		return domain.HistoryItem{}, fmt.Errorf("decode history item: %w", err)
	}
	return domain.HistoryItem{
		HistoryID: r.ID,
		Content:   c,
		Watched:   r.Watched,
		Timestamp: r.CreatedAt,
	}, nil
}
