package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"interior_budget/internal/domain/entities"
	"interior_budget/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrQuoteNotFound   = errors.New("quote not found")
	ErrInvalidQuoteID  = errors.New("invalid quote id")
	ErrInvalidClient   = errors.New("invalid client details")
	ErrQuoteNotPending = errors.New("quote is not pending")
)

// QuoteClient identifies who booked the consultation.
type QuoteClient struct {
	Name  string `validate:"required,max=120"`
	Email string `validate:"required,email"`
}

// IQuoteUseCase saves budget estimates as client quotes and drives their
// status:
//   - CreateQuote runs the estimator and stores a pending quote
//   - Approve / Reject / Cancel only act on pending quotes

//go:generate mockgen -source=quote_usecase.go -destination=../adapter/http/handlers/mocks/quote_usecase_mock.go -package=mocks

type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, client QuoteClient, req entities.BudgetRequest) (entities.Quote, error)
	Approve(ctx context.Context, id string) (entities.Quote, error)
	Reject(ctx context.Context, id string) (entities.Quote, error)
	Cancel(ctx context.Context, id string) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	budget   IBudgetUseCase
	validate *validator.Validate
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, budget IBudgetUseCase) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, budget: budget, validate: validator.New()}
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, client QuoteClient, req entities.BudgetRequest) (entities.Quote, error) {
	client.Name = strings.TrimSpace(client.Name)
	client.Email = strings.TrimSpace(client.Email)
	if err := u.validate.Struct(client); err != nil {
		return entities.Quote{}, ErrInvalidClient
	}

	result, err := u.budget.Estimate(ctx, req)
	if err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:          uuid.NewString(),
		ClientName:  client.Name,
		ClientEmail: client.Email,
		Request:     req,
		Result:      result,
		Status:      entities.QuoteStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		zap.S().Errorw("[quote][usecase] create failed", "quote_id", q.ID, "err", err)
		return entities.Quote{}, err
	}
	zap.S().Infow("[quote][usecase] quote created", "quote_id", created.ID, "total_cost", created.Result.TotalCost)
	return created, nil
}

func (u *QuoteUseCase) Approve(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatus(ctx, id, entities.QuoteStatusApproved)
}

func (u *QuoteUseCase) Reject(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatus(ctx, id, entities.QuoteStatusRejected)
}

func (u *QuoteUseCase) Cancel(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatus(ctx, id, entities.QuoteStatusCancelled)
}

func (u *QuoteUseCase) updateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	updated, err := u.repo.UpdateStatus(ctx, id, entities.QuoteStatusPending, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID != "" {
		zap.S().Infow("[quote][usecase] status updated", "quote_id", id, "status", status)
		return updated, nil
	}

	// The conditional update matched nothing: tell a missing quote apart
	// from one that already left pending.
	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if existing.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return entities.Quote{}, ErrQuoteNotPending
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}
