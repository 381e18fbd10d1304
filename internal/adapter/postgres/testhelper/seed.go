package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/escolhe-pra-mim/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique email and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	user := domain.User{
		Name:         "Test User " + suffix,
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$04$notarealhashbutlongenoughforthecolumn",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		user.Name, user.Email, user.PasswordHash, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// NewContent returns a valid movie snapshot with the given ID.
func NewContent(id int64) domain.Content {
	poster := "https://image.tmdb.org/t/p/w342/poster.jpg"
	return domain.Content{
		ID:         id,
		Title:      "Movie " + uniqueSuffix(),
		Type:       domain.ContentTypeMovie,
		Genres:     []string{"Drama"},
		Streaming:  []string{"Netflix"},
		Overview:   "overview",
		PosterPath: &poster,
		Rating:     7.5,
		Year:       2020,
	}
}
