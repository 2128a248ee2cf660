// Package list реализует HTTP-обработчик получения списка активов
// с необязательными фильтрами из query-параметров.
package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/asset-inventory/internal/http/response"
	"github.com/magabrotheeeer/asset-inventory/internal/lib/sl"
	"github.com/magabrotheeeer/asset-inventory/internal/models"
	assetservice "github.com/magabrotheeeer/asset-inventory/internal/services/asset"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	List(ctx context.Context, filter models.FilterAssets) ([]*models.Asset, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить список активов
// @Description Возвращает активы, удовлетворяющие всем заданным фильтрам, в порядке добавления
// @Tags Assets
// @Produce json
// @Param name query string false "Подстрока в названии"
// @Param category query string false "Подстрока в категории"
// @Param status query string false "Точное совпадение статуса"
// @Param min_price query number false "Нижняя граница цены"
// @Param max_price query number false "Верхняя граница цены"
// @Success 200 {object} response.Response "list_count и массив активов"
// @Failure 400 {object} response.ErrorResponse "Некорректный фильтр"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /assets [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.asset.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	filter, err := parseFilter(r)
	if err != nil {
		log.Error("failed to parse filter", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid filter parameters"))
		return
	}

	assets, err := h.service.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, assetservice.ErrInvalidPriceRange) {
			log.Error("invalid price range")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("min_price must not be greater than max_price"))
			return
		}
		log.Error("failed to list assets", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list assets"))
		return
	}

	log.Info("list assets", slog.Int("count", len(assets)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(assets),
		"assets":     assets,
	}))
}

// parseFilter собирает FilterAssets из query-параметров запроса.
// Отсутствующий параметр не накладывает ограничения.
func parseFilter(r *http.Request) (models.FilterAssets, error) {
	query := r.URL.Query()
	filter := models.FilterAssets{
		Name:     query.Get("name"),
		Category: query.Get("category"),
		Status:   query.Get("status"),
	}

	if raw := query.Get("min_price"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.FilterAssets{}, err
		}
		filter.MinPrice = &minPrice
	}
	if raw := query.Get("max_price"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.FilterAssets{}, err
		}
		filter.MaxPrice = &maxPrice
	}
	return filter, nil
}
