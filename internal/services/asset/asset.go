// Package asset содержит бизнес-логику операций над активами поверх
// слоя доступа к данным.
package asset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/asset-inventory/internal/models"
)

// ErrInvalidPriceRange — в фильтре одновременно заданы min_price и max_price,
// и нижняя граница больше верхней.
var ErrInvalidPriceRange = errors.New("min_price must not be greater than max_price")

// AssetRepository определяет методы для работы с активами в хранилище.
type AssetRepository interface {
	// CreateAsset назначает идентификатор и время создания, сохраняет запись.
	CreateAsset(ctx context.Context, entry models.Asset) (*models.Asset, error)
	// ListAssets возвращает активы по фильтру в порядке добавления.
	ListAssets(ctx context.Context, filter models.FilterAssets) ([]*models.Asset, error)
	// ReadAsset возвращает актив по идентификатору.
	ReadAsset(ctx context.Context, id int) (*models.Asset, error)
	// UpdateAsset применяет merge-patch к активу.
	UpdateAsset(ctx context.Context, id int, patch models.PatchAsset) (*models.Asset, error)
	// RemoveAsset удаляет актив по идентификатору.
	RemoveAsset(ctx context.Context, id int) error
}

// AssetService реализует бизнес-логику работы с активами.
type AssetService struct {
	repo AssetRepository
	log  *slog.Logger
}

// New создает новый экземпляр AssetService.
func New(repo AssetRepository, log *slog.Logger) *AssetService {
	return &AssetService{
		repo: repo,
		log:  log,
	}
}

// Create сохраняет новый актив и возвращает запись с назначенным
// идентификатором и временем создания.
func (s *AssetService) Create(ctx context.Context, req models.DummyAsset) (*models.Asset, error) {
	entry := models.Asset{
		Name:          req.Name,
		Category:      req.Category,
		Location:      req.Location,
		Status:        req.Status,
		PurchasePrice: req.PurchasePrice,
	}

	created, err := s.repo.CreateAsset(ctx, entry)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new asset", slog.Int("id", created.ID))
	return created, nil
}

// List возвращает активы по фильтру. Заданные вместе границы цены
// проверяются на согласованность до обращения к хранилищу.
func (s *AssetService) List(ctx context.Context, filter models.FilterAssets) ([]*models.Asset, error) {
	const op = "services.asset.List"

	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidPriceRange)
	}
	return s.repo.ListAssets(ctx, filter)
}

// Read возвращает актив по идентификатору.
func (s *AssetService) Read(ctx context.Context, id int) (*models.Asset, error) {
	return s.repo.ReadAsset(ctx, id)
}

// Update применяет частичное обновление к активу и возвращает его
// новое состояние.
func (s *AssetService) Update(ctx context.Context, id int, patch models.PatchAsset) (*models.Asset, error) {
	updated, err := s.repo.UpdateAsset(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.log.Info("updated asset", slog.Int("id", id))
	return updated, nil
}

// Remove удаляет актив по идентификатору.
func (s *AssetService) Remove(ctx context.Context, id int) error {
	if err := s.repo.RemoveAsset(ctx, id); err != nil {
		return err
	}
	s.log.Info("removed asset", slog.Int("id", id))
	return nil
}
