// Package content implements the catalog snapshot repository using PostgreSQL.
package content

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/escolhe-pra-mim/internal/adapter/postgres"
	"github.com/heartmarshall/escolhe-pra-mim/internal/domain"
)

const table = "contents"

var columns = []string{
	"id", "title", "type", "overview", "poster_path", "backdrop_path",
	"release_date", "rating", "year", "genres", "streaming",
}

const upsertSQL = `INSERT INTO contents
	(id, title, type, overview, poster_path, backdrop_path, release_date, rating, year, genres, streaming, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (id) DO UPDATE SET
		title = EXCLUDED.title,
		type = EXCLUDED.type,
		overview = EXCLUDED.overview,
		poster_path = EXCLUDED.poster_path,
		backdrop_path = EXCLUDED.backdrop_path,
		release_date = EXCLUDED.release_date,
		rating = EXCLUDED.rating,
		year = EXCLUDED.year,
		genres = EXCLUDED.genres,
		streaming = EXCLUDED.streaming,
		updated_at = EXCLUDED.updated_at`

// Repo provides access to the contents table.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new content repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListAll returns every stored content ordered by ID.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Content, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build contents query: %w", err)
	}

	var rows []contentRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "content", "all")
	}

	out := make([]domain.Content, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// UpsertMany inserts or replaces items using pgx.Batch and returns the
// number of rows written.
func (r *Repo) UpsertMany(ctx context.Context, items []domain.Content) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	batch := &pgx.Batch{}
	for _, c := range items {
		batch.Queue(upsertSQL,
			c.ID, c.Title, string(c.Type), c.Overview, c.PosterPath, c.BackdropPath,
			c.ReleaseDate, c.Rating, c.Year, nonNil(c.Genres), nonNil(c.Streaming), now,
		)
	}

	results := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch)
	defer results.Close()

	var written int
	for i := range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return written, postgres.MapError(err, "content", items[i].ID)
		}
		written += int(tag.RowsAffected())
	}
	return written, nil
}

// Count returns the number of stored contents.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	query, args, err := postgres.Builder().Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build contents count: %w", err)
	}

	var n int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "content", "count")
	}
	return n, nil
}

type contentRow struct {
	ID           int64    `db:"id"`
	Title        string   `db:"title"`
	Type         string   `db:"type"`
	Overview     string   `db:"overview"`
	PosterPath   *string  `db:"poster_path"`
	BackdropPath *string  `db:"backdrop_path"`
	ReleaseDate  string   `db:"release_date"`
	Rating       float64  `db:"rating"`
	Year         int      `db:"year"`
	Genres       []string `db:"genres"`
	Streaming    []string `db:"streaming"`
}

func (r contentRow) toDomain() domain.Content {
	return domain.Content{
		ID:           r.ID,
		Title:        r.Title,
		Type:         domain.ContentType(r.Type),
		Genres:       nonNil(r.Genres),
		Streaming:    nonNil(r.Streaming),
		Overview:     r.Overview,
		PosterPath:   r.PosterPath,
		BackdropPath: r.BackdropPath,
		ReleaseDate:  r.ReleaseDate,
		Rating:       r.Rating,
		Year:         r.Year,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
