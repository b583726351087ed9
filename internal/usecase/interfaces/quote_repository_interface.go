package interfaces

import (
	"context"
	"interior_budget/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Lookups return a zero Quote (empty ID) and a nil error when nothing
// matches; the use case turns that into ErrQuoteNotFound.

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/quote_repository_mock.go -package=mock_interfaces

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	// UpdateStatus moves a quote from one status to another and returns the
	// stored quote. It returns a zero Quote when the id does not exist or the
	// current status differs from from.
	UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus) (entities.Quote, error)
}
