package interfaces

import (
	"context"
	"interior_budget/internal/domain/entities"
)

// IBudgetCache stores estimator results by request fingerprint.
//
// Get reports found=false on a miss; an error means the cache itself failed.

//go:generate mockgen -source=budget_cache_interface.go -destination=mocks/budget_cache_mock.go -package=mock_interfaces

type IBudgetCache interface {
	Get(ctx context.Context, key string) (result entities.BudgetResult, found bool, err error)
	Set(ctx context.Context, key string, result entities.BudgetResult) error
}
