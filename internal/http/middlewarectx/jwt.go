// Package middlewarectx содержит HTTP middleware сервиса.
//
// JWTMiddleware проверяет bearer-токен из заголовка Authorization, разрешает
// его в запись пользователя через сервис аутентификации и кладёт имя
// пользователя в контекст запроса. Любой отказ — HTTP 401 Unauthorized.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/asset-inventory/internal/http/response"
	"github.com/magabrotheeeer/asset-inventory/internal/lib/sl"
	"github.com/magabrotheeeer/asset-inventory/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// User — ключ, под которым имя аутентифицированного пользователя
// хранится в контексте запроса.
const User Key = "username"

// Service описывает интерфейс разрешения токена в пользователя.
type Service interface {
	ResolvePrincipal(ctx context.Context, tokenStr string) (*models.User, error)
}

// JWTMiddleware возвращает middleware, которое
//  1. читает заголовок Authorization и требует схему "Bearer",
//  2. разрешает токен в запись пользователя (проверка подписи, срока
//     действия и существования учётной записи),
//  3. кладёт имя пользователя в контекст и передаёт управление дальше.
func JWTMiddleware(service Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			principal, err := service.ResolvePrincipal(r.Context(), tokenStr)
			if err != nil {
				log.Error("failed to resolve principal", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}

			ctx := context.WithValue(r.Context(), User, principal.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
