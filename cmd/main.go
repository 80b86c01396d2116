package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	httpapi "github.com/immxrtalbeast/playlog/internal/api/http"
	"github.com/immxrtalbeast/playlog/internal/config"
	"github.com/immxrtalbeast/playlog/internal/repository"
	"github.com/immxrtalbeast/playlog/internal/service"
	"github.com/immxrtalbeast/playlog/lib/logger"
	"github.com/immxrtalbeast/playlog/lib/logger/sl"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := logger.Setup(cfg.Env)

	if cfg.Env != logger.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := connectDatabase(cfg.Database, log)
	if err != nil {
		log.Error("failed to connect database", sl.Err(err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("failed to get database handle", sl.Err(err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	gameRepo := repository.NewPostgresGameRepository(db)
	playerRepo := repository.NewPostgresPlayerRepository(db)
	playRepo := repository.NewPostgresPlayRepository(db)
	participantRepo := repository.NewPostgresParticipantRepository(db)

	gameService := service.NewGameService(gameRepo, log)
	playerService := service.NewPlayerService(playerRepo, log)
	playService := service.NewPlayService(playRepo, log)
	participantService := service.NewParticipantService(participantRepo, log)

	resp := httpapi.NewResponder(log, cfg.HTTP.RedactStoreErrors)
	router, err := httpapi.SetupRouter(log, cfg.HTTP.AllowedOrigins, sqlDB.PingContext, httpapi.Controllers{
		Games:        httpapi.NewGameController(gameService, resp),
		Players:      httpapi.NewPlayerController(playerService, resp),
		Plays:        httpapi.NewPlayController(playService, resp),
		Participants: httpapi.NewParticipantController(participantService, resp),
	})
	if err != nil {
		log.Error("failed to set up router", sl.Err(err))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting application", slog.String("addr", cfg.HTTP.Address), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server stopped", sl.Err(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", sl.Err(err))
		return
	}
	log.Info("server stopped")
}

func connectDatabase(cfg config.DatabaseConfig, log *slog.Logger) (*gorm.DB, error) {
	if cfg.DSN == "" {
		return nil, errors.New("database dsn is empty")
	}

	if cfg.AutoMigrate {
		if err := repository.MigrateUp(cfg.DSN); err != nil {
			return nil, err
		}
		log.Info("database migrations applied")
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}
