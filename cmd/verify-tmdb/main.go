// Command verify-tmdb checks that the configured TMDB API key works.
//
// Flags:
//
//	--providers  also list the flatrate providers of the configured region
//	             for movies and series
//
// Exit codes: 0 = key accepted, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/escolhe-pra-mim/internal/adapter/provider/tmdb"
	"github.com/heartmarshall/escolhe-pra-mim/internal/app"
	"github.com/heartmarshall/escolhe-pra-mim/internal/config"
	"github.com/heartmarshall/escolhe-pra-mim/internal/domain"
)

func main() {
	providersFlag := flag.Bool("providers", false, "list region providers for movie and series")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if !cfg.TMDB.Enabled() {
		logger.Error("TMDB_API_KEY is not set")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := tmdb.NewClient(cfg.TMDB, logger)

	if err := client.Ping(ctx); err != nil {
		logger.Error("TMDB key rejected", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println("TMDB API key OK")

	if !*providersFlag {
		return
	}

	for _, t := range []domain.ContentType{domain.ContentTypeMovie, domain.ContentTypeSeries} {
		providers, err := client.RegionProviders(ctx, t)
		if err != nil {
			logger.Error("list providers", slog.String("type", t.String()), slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("\n%s providers in %s (%d):\n", t, client.Region(), len(providers))
		for _, p := range providers {
			fmt.Printf("  %5d  %s\n", p.ID, p.Name)
		}
	}
}
