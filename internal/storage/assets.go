package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/magabrotheeeer/asset-inventory/internal/models"
)

// CreateAsset назначает активу следующий идентификатор (max существующих + 1,
// для пустой коллекции — 1), проставляет CreatedAt в UTC и сохраняет запись.
// Возвращает сохранённый актив.
func (s *Storage) CreateAsset(ctx context.Context, entry models.Asset) (*models.Asset, error) {
	const op = "storage.CreateAsset"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.assetsMu.Lock()
	defer s.assetsMu.Unlock()

	var assets []models.Asset
	if err := s.readDocument(assetsDocument, &assets); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	maxID := 0
	for _, a := range assets {
		if a.ID > maxID {
			maxID = a.ID
		}
	}
	entry.ID = maxID + 1
	entry.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	assets = append(assets, entry)
	if err := s.writeDocument(assetsDocument, assets); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &entry, nil
}

// ListAssets возвращает активы, удовлетворяющие всем заданным условиям
// фильтра, в порядке их добавления в коллекцию.
func (s *Storage) ListAssets(ctx context.Context, filter models.FilterAssets) ([]*models.Asset, error) {
	const op = "storage.ListAssets"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var assets []models.Asset
	if err := s.readDocument(assetsDocument, &assets); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]*models.Asset, 0, len(assets))
	for i := range assets {
		if matchesFilter(assets[i], filter) {
			result = append(result, &assets[i])
		}
	}
	return result, nil
}

func matchesFilter(a models.Asset, f models.FilterAssets) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(a.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Category != "" && !strings.Contains(strings.ToLower(a.Category), strings.ToLower(f.Category)) {
		return false
	}
	if f.Status != "" && !strings.EqualFold(a.Status, f.Status) {
		return false
	}
	if f.MinPrice != nil && a.PurchasePrice < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && a.PurchasePrice > *f.MaxPrice {
		return false
	}
	return true
}

// ReadAsset возвращает актив по идентификатору или ErrAssetNotFound.
func (s *Storage) ReadAsset(ctx context.Context, id int) (*models.Asset, error) {
	const op = "storage.ReadAsset"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var assets []models.Asset
	if err := s.readDocument(assetsDocument, &assets); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range assets {
		if assets[i].ID == id {
			return &assets[i], nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, ErrAssetNotFound)
}

// UpdateAsset применяет merge-patch к активу: перезаписываются только
// не-nil поля patch, идентификатор и CreatedAt не меняются никогда.
// Возвращает обновлённый актив или ErrAssetNotFound.
func (s *Storage) UpdateAsset(ctx context.Context, id int, patch models.PatchAsset) (*models.Asset, error) {
	const op = "storage.UpdateAsset"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.assetsMu.Lock()
	defer s.assetsMu.Unlock()

	var assets []models.Asset
	if err := s.readDocument(assetsDocument, &assets); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range assets {
		if assets[i].ID != id {
			continue
		}
		if patch.Name != nil {
			assets[i].Name = *patch.Name
		}
		if patch.Category != nil {
			assets[i].Category = *patch.Category
		}
		if patch.Location != nil {
			assets[i].Location = *patch.Location
		}
		if patch.Status != nil {
			assets[i].Status = *patch.Status
		}
		if patch.PurchasePrice != nil {
			assets[i].PurchasePrice = *patch.PurchasePrice
		}
		if err := s.writeDocument(assetsDocument, assets); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return &assets[i], nil
	}
	return nil, fmt.Errorf("%s: %w", op, ErrAssetNotFound)
}

// RemoveAsset удаляет актив по идентификатору и сохраняет коллекцию.
// Возвращает ErrAssetNotFound, если записи нет.
func (s *Storage) RemoveAsset(ctx context.Context, id int) error {
	const op = "storage.RemoveAsset"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.assetsMu.Lock()
	defer s.assetsMu.Unlock()

	var assets []models.Asset
	if err := s.readDocument(assetsDocument, &assets); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i := range assets {
		if assets[i].ID == id {
			assets = append(assets[:i], assets[i+1:]...)
			if err := s.writeDocument(assetsDocument, assets); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			return nil
		}
	}
	return fmt.Errorf("%s: %w", op, ErrAssetNotFound)
}
