// Command populate-db applies migrations and loads the bundled mock
// catalog into the contents table. Existing rows are updated in place.
//
// Flags:
//
//	--count  only print how many contents and users are stored
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/escolhe-pra-mim/internal/adapter/postgres"
	contentrepo "github.com/heartmarshall/escolhe-pra-mim/internal/adapter/postgres/content"
	userrepo "github.com/heartmarshall/escolhe-pra-mim/internal/adapter/postgres/user"
	"github.com/heartmarshall/escolhe-pra-mim/internal/app"
	"github.com/heartmarshall/escolhe-pra-mim/internal/config"
	"github.com/heartmarshall/escolhe-pra-mim/internal/service/content"
)

func main() {
	countFlag := flag.Bool("count", false, "print row counts and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := content.NewService(logger, contentrepo.New(pool))

	if *countFlag {
		if err := printCounts(ctx, svc, userrepo.New(pool)); err != nil {
			logger.Error("count rows", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	if err := postgres.Migrate(ctx, pool, logger); err != nil {
		logger.Error("migrate", slog.String("error", err.Error()))
		os.Exit(1)
	}

	n, err := svc.SeedFromMock(ctx)
	if err != nil {
		logger.Error("populate contents", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("contents populated", slog.Int("rows", n))
}

type counter interface {
	Count(ctx context.Context) (int64, error)
}

func printCounts(ctx context.Context, contents, users counter) error {
	nContents, err := contents.Count(ctx)
	if err != nil {
		return err
	}
	nUsers, err := users.Count(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("contents: %d\nusers: %d\n", nContents, nUsers)
	return nil
}
