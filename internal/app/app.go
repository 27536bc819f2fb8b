package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"docmeister/config"
	"docmeister/internal/service"
	"docmeister/internal/storage"
	"docmeister/internal/storage/cache"
	"docmeister/internal/storage/postgres"
	"docmeister/internal/transport"
)

type App struct {
	Config *config.Config
	Router *http.ServeMux
}

func InitApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config error: %w", err)
	}

	if err := postgres.RunMigrations(context.Background(), cfg.DbURL); err != nil {
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	dbConn, err := postgres.InitDb(cfg.DbURL)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	userStorage := storage.NewUserStorage(dbConn)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authService := service.NewAuthService(userStorage, tokenService, cfg.BcryptCost)

	docStorage := storage.NewDocStorage(dbConn)
	listCache := cache.NewListCache()
	docService := service.NewDocService(docStorage, listCache, cfg.DefaultPageSize, cfg.DefaultPageNumber)

	handler := transport.NewHandler(authService, docService)

	return &App{
		Config: cfg,
		Router: handler.InitRouter(),
	}, nil
}

func (a *App) Run() error {
	slog.Info("starting server", "addr", a.Config.ServerAddr)
	return http.ListenAndServe(a.Config.ServerAddr, a.Router)
}
