package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"interior_budget/internal/domain/budget"
	"interior_budget/internal/domain/entities"
	"interior_budget/internal/usecase/interfaces"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

var (
	ErrInvalidMaterialCategory = errors.New("invalid material category")
	ErrInvalidRoomType         = errors.New("invalid room type")
)

//go:generate mockgen -source=budget_usecase.go -destination=../adapter/http/handlers/mocks/budget_usecase_mock.go -package=mocks

// IBudgetUseCase exposes the budget estimator and its catalogs.
//
// Estimate returns *budget.InvalidInputError for bad requests; callers match
// it with errors.Is(err, budget.ErrInvalidInput).
type IBudgetUseCase interface {
	Estimate(ctx context.Context, req entities.BudgetRequest) (entities.BudgetResult, error)
	ListMaterials(category entities.MaterialCategory) ([]entities.MaterialCatalogEntry, error)
	ListFurniture(roomType entities.RoomType) ([]entities.FurnitureCatalogEntry, error)
	RoomTypes() []entities.RoomType
}

type BudgetUseCase struct {
	estimator *budget.Estimator
	cache     interfaces.IBudgetCache
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

// NewBudgetUseCase wires the estimator. cache may be nil.
func NewBudgetUseCase(estimator *budget.Estimator, cache interfaces.IBudgetCache) *BudgetUseCase {
	return &BudgetUseCase{estimator: estimator, cache: cache}
}

func (u *BudgetUseCase) Estimate(ctx context.Context, req entities.BudgetRequest) (entities.BudgetResult, error) {
	key, keyErr := u.cacheKey(req)
	if u.cache != nil && keyErr == nil {
		cached, found, err := u.cache.Get(ctx, key)
		switch {
		case err != nil:
			zap.S().Warnw("[budget][usecase] cache get failed", "key", key, "err", err)
		case found:
			zap.S().Debugw("[budget][usecase] cache hit", "key", key)
			return cached, nil
		}
	}

	res, err := u.estimator.Estimate(req)
	if err != nil {
		zap.S().Infow("[budget][usecase] estimate rejected", "err", err)
		return entities.BudgetResult{}, err
	}
	zap.S().Infow("[budget][usecase] estimate computed",
		"room_type", req.RoomType,
		"area", res.Area,
		"total_cost", res.TotalCost,
		"weeks_min", res.TimeEstimate.Min,
		"weeks_max", res.TimeEstimate.Max,
	)

	if u.cache != nil && keyErr == nil {
		if err := u.cache.Set(ctx, key, res); err != nil {
			zap.S().Warnw("[budget][usecase] cache set failed", "key", key, "err", err)
		}
	}
	return res, nil
}

// cacheKey scopes the request hash by catalog fingerprint so a new price
// list never serves results computed with the old one.
func (u *BudgetUseCase) cacheKey(req entities.BudgetRequest) (string, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("budget:%s:%016x", u.estimator.Catalog().Fingerprint(), xxhash.Sum64(b)), nil
}

// ListMaterials returns the whole material catalog, or one category of it.
func (u *BudgetUseCase) ListMaterials(category entities.MaterialCategory) ([]entities.MaterialCatalogEntry, error) {
	if category == "" {
		return u.estimator.Catalog().Materials(), nil
	}
	if !category.Valid() {
		return nil, ErrInvalidMaterialCategory
	}
	return u.estimator.Catalog().MaterialsIn(category), nil
}

// ListFurniture returns every piece, or the pieces selectable for roomType.
func (u *BudgetUseCase) ListFurniture(roomType entities.RoomType) ([]entities.FurnitureCatalogEntry, error) {
	if roomType == "" {
		return u.estimator.Catalog().AllFurniture(), nil
	}
	if !roomType.Valid() {
		return nil, ErrInvalidRoomType
	}
	return u.estimator.Catalog().FurnitureFor(roomType), nil
}

func (u *BudgetUseCase) RoomTypes() []entities.RoomType {
	return append([]entities.RoomType(nil), entities.RoomTypes...)
}
