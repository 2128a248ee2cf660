// Package assetinventory предоставляет маршруты для основного приложения.
package assetinventory

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	assetcreate "github.com/magabrotheeeer/asset-inventory/internal/http/handlers/asset/create"
	assetlist "github.com/magabrotheeeer/asset-inventory/internal/http/handlers/asset/list"
	assetread "github.com/magabrotheeeer/asset-inventory/internal/http/handlers/asset/read"
	assetremove "github.com/magabrotheeeer/asset-inventory/internal/http/handlers/asset/remove"
	assetupdate "github.com/magabrotheeeer/asset-inventory/internal/http/handlers/asset/update"
	"github.com/magabrotheeeer/asset-inventory/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/asset-inventory/internal/http/handlers/auth/register"
	userread "github.com/magabrotheeeer/asset-inventory/internal/http/handlers/user/read"
	"github.com/magabrotheeeer/asset-inventory/internal/http/middlewarectx"
	assetservice "github.com/magabrotheeeer/asset-inventory/internal/services/asset"
	authservice "github.com/magabrotheeeer/asset-inventory/internal/services/auth"
	"github.com/magabrotheeeer/asset-inventory/internal/storage"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.AuthService, assetService *assetservice.AssetService, db *storage.Storage) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Get("/users/{username}", userread.New(logger, db).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/assets", assetlist.New(logger, assetService).ServeHTTP)
			r.Post("/assets", assetcreate.New(logger, assetService).ServeHTTP)
			r.Get("/assets/{id}", assetread.New(logger, assetService).ServeHTTP)
			r.Put("/assets/{id}", assetupdate.New(logger, assetService).ServeHTTP)
			r.Delete("/assets/{id}", assetremove.New(logger, assetService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
