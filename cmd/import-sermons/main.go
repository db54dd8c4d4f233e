// Command import-sermons registers sermon videos from a CSV file.
//
//	import-sermons sermons.csv
//
// The header needs title, type and youtubeUrl columns (Korean headers are
// accepted); date, description and order are optional.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/changil/changilweb-server/internal/config"
	mongorepo "github.com/changil/changilweb-server/internal/repositories/mongodb"
	"github.com/changil/changilweb-server/internal/services"
	"github.com/changil/changilweb-server/pkg/mongodb"
	"github.com/topi314/tint"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{TimeFormat: time.DateTime})))

	if len(os.Args) < 2 {
		slog.Error("CSV file path is required as a command line argument")
		os.Exit(2)
	}

	if err := run(os.Args[1]); err != nil {
		slog.Error("Failed to import sermons", tint.Err(err))
		os.Exit(1)
	}
}

func run(path string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	ctx := context.Background()
	client, err := mongodb.NewClient(ctx, cfg.MongoDB.URI, cfg.MongoDB.TimeoutDuration())
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDB.Database)
	if err := mongorepo.EnsureIndexes(ctx, db, slog.Default()); err != nil {
		return err
	}

	svc := services.NewSermonService(mongorepo.NewSermonRepository(db))
	result, err := services.ImportSermons(ctx, svc, file, cfg.Site.Location())
	if err != nil {
		return err
	}

	for _, msg := range result.Errors {
		slog.Warn("Skipped row", slog.String("reason", msg))
	}
	slog.Info("Sermons imported",
		slog.Int("rows", result.TotalRows),
		slog.Int("created", result.Created),
		slog.Int("duplicates", result.Duplicates),
		slog.Int("errors", len(result.Errors)),
	)
	return nil
}
