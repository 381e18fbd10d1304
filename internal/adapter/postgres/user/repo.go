// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/escolhe-pra-mim/internal/adapter/postgres"
	"github.com/heartmarshall/escolhe-pra-mim/internal/domain"
)

const (
	usersTable    = "users"
	settingsTable = "user_settings"
)

var userColumns = []string{"id", "name", "email", "password", "created_at"}

// Repo provides user and user-settings persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email}, email)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, key any) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}

	u := row.toDomain()
	return &u, nil
}

// Create inserts a new user and returns it with the generated ID.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query, args, err := postgres.Builder().
		Insert(usersTable).
		Columns("name", "email", "password", "created_at").
		Values(u.Name, u.Email, u.PasswordHash, createdAt).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user insert: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}

	created := row.toDomain()
	return &created, nil
}

// Count returns the number of registered users.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	query, args, err := postgres.Builder().Select("COUNT(*)").From(usersTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build user count: %w", err)
	}

	var n int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "user", "count")
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// UserSettings operations
// ---------------------------------------------------------------------------

// GetSettings returns the stored settings for the given user.
// Returns ErrNotFound when the user never saved any.
func (r *Repo) GetSettings(ctx context.Context, userID int64) (*domain.UserSettings, error) {
	query, args, err := postgres.Builder().
		Select("include_watched_in_draw", "dark_mode").
		From(settingsTable).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build settings query: %w", err)
	}

	var row settingsRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user_settings", userID)
	}

	s := row.toDomain()
	return &s, nil
}

// UpsertSettings stores s as the settings of the given user.
func (r *Repo) UpsertSettings(ctx context.Context, userID int64, s domain.UserSettings) error {
	query, args, err := postgres.Builder().
		Insert(settingsTable).
		Columns("user_id", "include_watched_in_draw", "dark_mode", "updated_at").
		Values(userID, s.IncludeWatchedInDraw, s.DarkMode, time.Now().UTC()).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			include_watched_in_draw = EXCLUDED.include_watched_in_draw,
			dark_mode = EXCLUDED.dark_mode,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build settings upsert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "user_settings", userID)
	}
	return nil
}

// DeleteSettings removes stored settings so defaults apply again.
func (r *Repo) DeleteSettings(ctx context.Context, userID int64) error {
	query, args, err := postgres.Builder().
		Delete(settingsTable).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build settings delete: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "user_settings", userID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type userRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.Password,
		CreatedAt:    r.CreatedAt,
	}
}

type settingsRow struct {
	IncludeWatchedInDraw bool `db:"include_watched_in_draw"`
	DarkMode             bool `db:"dark_mode"`
}

func (r settingsRow) toDomain() domain.UserSettings {
	return domain.UserSettings{
		IncludeWatchedInDraw: r.IncludeWatchedInDraw,
		DarkMode:             r.DarkMode,
	}
}
