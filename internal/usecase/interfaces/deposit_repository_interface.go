package interfaces

import (
	"context"
	"interior_budget/internal/domain/entities"
)

// IDepositRepository abstracts DynamoDB persistence for Deposit.

//go:generate mockgen -source=deposit_repository_interface.go -destination=mocks/deposit_repository_mock.go -package=mock_interfaces

type IDepositRepository interface {
	Create(ctx context.Context, d entities.Deposit) (entities.Deposit, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Deposit, error)
}
