package main

import (
	"context"
	"flag"
	"os"

	"aura/internal/catalog"
	"aura/internal/config"
	"aura/internal/db"
	"aura/internal/logger"
	"aura/internal/repository"
)

func main() {
	file := flag.String("file", "", "JSON file with the unlockable catalog (defaults to the built-in catalog)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.New("seed", "info", "").Fatal().Err(err).Msg("load config")
	}
	log := logger.New("seed", cfg.Log.Level, cfg.Log.File)
	ctx := log.WithContext(context.Background())

	gormDB, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	defer func() { _ = db.Close(gormDB) }()

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB, false); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	items := catalog.Default()
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			log.Fatal().Err(err).Str("file", *file).Msg("open catalog file")
		}
		items, err = catalog.Decode(f)
		_ = f.Close()
		if err != nil {
			log.Fatal().Err(err).Str("file", *file).Msg("read catalog file")
		}
	}
	log.Info().Int("items", len(items)).Msg("seeding catalog")

	res, err := catalog.Seed(ctx, repository.NewUnlockableRepository(gormDB), items)
	if err != nil {
		log.Fatal().Err(err).Msg("seed catalog")
	}

	log.Info().
		Int("created", res.Created).
		Int("updated", res.Updated).
		Int("total", res.Created+res.Updated).
		Msg("seed completed")
}
