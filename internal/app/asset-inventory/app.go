// Package assetinventory собирает приложение: хранилище, сервисы,
// маршруты и HTTP-сервер с корректным завершением.
package assetinventory

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/asset-inventory/internal/config"
	"github.com/magabrotheeeer/asset-inventory/internal/lib/jwt"
	assetservice "github.com/magabrotheeeer/asset-inventory/internal/services/asset"
	authservice "github.com/magabrotheeeer/asset-inventory/internal/services/auth"
	"github.com/magabrotheeeer/asset-inventory/internal/storage"
)

// App инкапсулирует HTTP-сервер и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
}

// New создаёт приложение: открывает хранилище, собирает сервисы и маршруты.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StoragePath)
	if err != nil {
		return nil, err
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = jwt.DefaultTokenTTL
	}
	jwtMaker := jwt.NewMaker(cfg.JWTSecretKey, ttl)

	authService := authservice.New(db, jwtMaker)
	assetService := assetservice.New(db, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, assetService, db)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и завершает его корректно при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
