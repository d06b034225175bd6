package main

import (
	"log/slog"
	"os"

	"github.com/dayanaadylkhanova/movie-picker/internal/adapter/catalog"
	"github.com/dayanaadylkhanova/movie-picker/internal/adapter/transport/tcp"
	"github.com/dayanaadylkhanova/movie-picker/internal/app"
	"github.com/dayanaadylkhanova/movie-picker/internal/entity"
	"github.com/dayanaadylkhanova/movie-picker/internal/service"
	"github.com/dayanaadylkhanova/movie-picker/pkg/config"
	"github.com/dayanaadylkhanova/movie-picker/pkg/logger"
)

func main() {
	cfg := config.Parse()

	log := logger.NewJSON(logger.LevelFromEnv(cfg.LogLevel))

	movies, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Error("load catalog failed", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("catalog loaded", "movies", len(movies), "path", cfg.CatalogPath)

	srv := tcp.NewServer(log, cfg.ListenAddr, cfg.IdleTimeout, cfg.ShutdownWait, func() tcp.Picker {
		return service.NewPicker(movies)
	}).WithRateLimit(cfg.RateLimit, cfg.RateBurst)

	if err := app.New(srv).Run(); err != nil {
		log.Error("server stopped with error", slog.Any("err", err))
		os.Exit(1)
	}
}

func loadCatalog(path string) ([]entity.Movie, error) {
	if path == "" {
		s, err := catalog.NewStatic()
		if err != nil {
			return nil, err
		}
		return s.Movies(), nil
	}
	s, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return s.Movies(), nil
}
