// Package read реализует HTTP-обработчик получения актива по идентификатору.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/asset-inventory/internal/http/response"
	"github.com/magabrotheeeer/asset-inventory/internal/lib/sl"
	"github.com/magabrotheeeer/asset-inventory/internal/models"
	"github.com/magabrotheeeer/asset-inventory/internal/storage"
)

// Handler обрабатывает запросы на получение актива по идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения актива.
type Service interface {
	Read(ctx context.Context, id int) (*models.Asset, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP обрабатывает HTTP-запрос на получение актива по ID.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.asset.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	asset, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrAssetNotFound) {
			log.Error("asset not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("asset not found"))
			return
		}
		log.Error("failed to read asset", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read asset"))
		return
	}

	log.Info("asset found", slog.Int("id", asset.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"asset": asset,
	}))
}
