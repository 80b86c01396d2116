package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/immxrtalbeast/playlog/internal/config"
	"github.com/immxrtalbeast/playlog/internal/repository"
	"github.com/immxrtalbeast/playlog/lib/logger"
	"github.com/immxrtalbeast/playlog/lib/logger/sl"
	"github.com/joho/godotenv"
)

var (
	down    = flag.Bool("down", false, "roll back every migration")
	steps   = flag.Int("steps", 0, "apply n migrations (negative rolls back)")
	version = flag.Bool("version", false, "print the current schema version")
)

func main() {
	_ = godotenv.Load(".env")

	// Parses the flags above as well.
	cfg := config.MustLoad()
	log := logger.Setup(cfg.Env)

	m, err := repository.NewMigrator(cfg.Database.DSN)
	if err != nil {
		log.Error("migration setup failed", sl.Err(err))
		os.Exit(1)
	}
	defer m.Close()

	switch {
	case *version:
		v, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			log.Info("no migrations applied")
			return
		}
		if err != nil {
			log.Error("cannot read schema version", sl.Err(err))
			os.Exit(1)
		}
		log.Info("schema version", slog.Uint64("version", uint64(v)), slog.Bool("dirty", dirty))
		return
	case *steps != 0:
		err = m.Steps(*steps)
	case *down:
		err = m.Down()
	default:
		err = m.Up()
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Error("database migration failed", sl.Err(err))
		os.Exit(1)
	}
	log.Info("database migrations applied")
}
