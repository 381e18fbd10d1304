// Package userlist implements the per-user watchlist, watched and saved
// lists using PostgreSQL. Entries store a JSON snapshot of the content.
package userlist

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	json "github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/escolhe-pra-mim/internal/adapter/postgres"
	"github.com/heartmarshall/escolhe-pra-mim/internal/domain"
)

const table = "user_lists"

// Repo provides list entry persistence.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user list repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// List returns the entries of one list, newest first.
func (r *Repo) List(ctx context.Context, userID int64, kind domain.ListKind) ([]domain.UserContent, error) {
	query, args, err := postgres.Builder().
		Select("content", "added_at").
		From(table).
		Where(squirrel.Eq{"user_id": userID, "list_kind": string(kind)}).
		OrderBy("added_at DESC", "content_id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "user_list", kind)
	}

	out := make([]domain.UserContent, 0, len(rows))
	for _, row := range rows {
		uc, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, uc)
	}
	return out, nil
}

// ContentIDs returns the content IDs stored in one list.
func (r *Repo) ContentIDs(ctx context.Context, userID int64, kind domain.ListKind) ([]int64, error) {
	query, args, err := postgres.Builder().
		Select("content_id").
		From(table).
		Where(squirrel.Eq{"user_id": userID, "list_kind": string(kind)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list ids query: %w", err)
	}

	var ids []int64
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &ids, query, args...); err != nil {
		return nil, postgres.MapError(err, "user_list", kind)
	}
	return ids, nil
}

// Add stores c in the list unless its ID is already there.
// Reports whether a row was inserted.
func (r *Repo) Add(ctx context.Context, userID int64, kind domain.ListKind, c domain.Content, addedAt time.Time) (bool, error) {
	payload, err := json.Marshal(c)
	if err != nil {
		return false, fmt.Errorf("marshal content %d: %w", c.ID, err)
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "list_kind", "content_id", "content", "added_at").
		Values(userID, string(kind), c.ID, payload, addedAt).
		Suffix("ON CONFLICT (user_id, list_kind, content_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build list insert: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "user_list", c.ID)
	}
	return tag.RowsAffected() == 1, nil
}

// Get returns one entry. Returns ErrNotFound if the list lacks contentID.
func (r *Repo) Get(ctx context.Context, userID int64, kind domain.ListKind, contentID int64) (*domain.UserContent, error) {
	query, args, err := postgres.Builder().
		Select("content", "added_at").
		From(table).
		Where(squirrel.Eq{"user_id": userID, "list_kind": string(kind), "content_id": contentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list get: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user_list", contentID)
	}

	uc, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &uc, nil
}

// Remove deletes one entry. Returns ErrNotFound if nothing was removed.
func (r *Repo) Remove(ctx context.Context, userID int64, kind domain.ListKind, contentID int64) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"user_id": userID, "list_kind": string(kind), "content_id": contentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build list delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user_list", contentID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user_list %d: %w", contentID, domain.ErrNotFound)
	}
	return nil
}

// DeleteAll removes every list entry of the user.
func (r *Repo) DeleteAll(ctx context.Context, userID int64) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build list clear: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "user_list", userID)
	}
	return nil
}

type entryRow struct {
	Content []byte    `db:"content"`
	AddedAt time.Time `db:"added_at"`
}

func (r entryRow) toDomain() (domain.UserContent, error) {
	var c domain.Content
	if err := json.Unmarshal(r.Content, &c); err != nil {
		return domain.UserContent{}, fmt.Errorf("decode list entry: %w", err)
	}
	return domain.UserContent{Content: c, AddedAt: r.AddedAt}, nil
}
