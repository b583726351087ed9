package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"interior_budget/internal/domain/entities"
	"interior_budget/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const DefaultDepositRate = 0.30

var (
	ErrDepositNotFound             = errors.New("deposit not found")
	ErrInvalidDepositQuoteID       = errors.New("invalid quote_id")
	ErrInvalidProviderPayload      = errors.New("invalid payment provider payload")
	ErrQuoteNotApproved            = errors.New("quote not approved")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest    = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized  = errors.New("payment gateway unauthorized")
)

// DepositPolicy configures how deposits are charged.
type DepositPolicy struct {
	// Rate is the share of the quote total charged up front, in (0, 1].
	Rate float64
	// RelaxedPayload skips the provider field checks; set with the mock gateway.
	RelaxedPayload bool
}

// IDepositUseCase charges the deposit that secures an approved quote.

//go:generate mockgen -source=deposit_usecase.go -destination=../adapter/http/handlers/mocks/deposit_usecase_mock.go -package=mocks

type IDepositUseCase interface {
	CreateDeposit(ctx context.Context, quoteID string, providerPayload json.RawMessage) (entities.Deposit, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Deposit, error)
	LatestByQuoteID(ctx context.Context, quoteID string) (entities.Deposit, error)
}

type DepositUseCase struct {
	repo    interfaces.IDepositRepository
	quotes  interfaces.IQuoteRepository
	gateway interfaces.IPaymentGateway
	policy  DepositPolicy
}

var _ IDepositUseCase = (*DepositUseCase)(nil)

func NewDepositUseCase(repo interfaces.IDepositRepository, quotes interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway, policy DepositPolicy) *DepositUseCase {
	if !(policy.Rate > 0 && policy.Rate <= 1) {
		zap.S().Warnw("[deposit][usecase] invalid deposit rate, using default", "rate", policy.Rate, "default", DefaultDepositRate)
		policy.Rate = DefaultDepositRate
	}
	return &DepositUseCase{repo: repo, quotes: quotes, gateway: gateway, policy: policy}
}

func (u *DepositUseCase) CreateDeposit(ctx context.Context, quoteID string, providerPayload json.RawMessage) (entities.Deposit, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Deposit{}, ErrInvalidDepositQuoteID
	}
	if len(strings.TrimSpace(string(providerPayload))) == 0 {
		providerPayload = json.RawMessage("{}")
	}

	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil || reqMap == nil {
		return entities.Deposit{}, ErrInvalidProviderPayload
	}
	if !u.policy.RelaxedPayload {
		if !hasNonEmptyString(reqMap, "payment_method_id") || !hasPayer(reqMap) {
			return entities.Deposit{}, ErrInvalidProviderPayload
		}
	}
	if u.gateway == nil {
		return entities.Deposit{}, ErrPaymentGatewayNotConfigured
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		zap.S().Errorw("[deposit][usecase] failed loading quote", "quote_id", quoteID, "err", err)
		return entities.Deposit{}, err
	}
	if q.ID == "" {
		return entities.Deposit{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusApproved {
		zap.S().Infow("[deposit][usecase] quote not approved", "quote_id", quoteID, "status", q.Status)
		return entities.Deposit{}, ErrQuoteNotApproved
	}

	// The quote is the source of truth for the amount.
	amount := math.Round(q.Result.TotalCost*u.policy.Rate*100) / 100
	reqMap["transaction_amount"] = amount
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = quoteID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Design deposit for quote %s", quoteID)
	}
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Deposit{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		zap.S().Warnw("[deposit][usecase] payment gateway failed", "quote_id", quoteID, "err", err)
		return entities.Deposit{}, mapGatewayError(err)
	}

	d := entities.Deposit{
		ID:                 providerID,
		QuoteID:            quoteID,
		Amount:             amount,
		Date:               time.Now().UTC(),
		Status:             depositStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
	}
	created, err := u.repo.Create(ctx, d)
	if err != nil {
		zap.S().Errorw("[deposit][usecase] repository create failed", "quote_id", quoteID, "deposit_id", d.ID, "err", err)
		return entities.Deposit{}, err
	}
	zap.S().Infow("[deposit][usecase] deposit created", "quote_id", quoteID, "deposit_id", created.ID, "amount", created.Amount, "status", created.Status)
	return created, nil
}

func (u *DepositUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Deposit, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidDepositQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

// LatestByQuoteID returns the most recent deposit of a quote.
func (u *DepositUseCase) LatestByQuoteID(ctx context.Context, quoteID string) (entities.Deposit, error) {
	deposits, err := u.ListByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.Deposit{}, err
	}
	if len(deposits) == 0 {
		return entities.Deposit{}, ErrDepositNotFound
	}

	latest := deposits[0]
	for _, d := range deposits[1:] {
		if d.Date.After(latest.Date) {
			latest = d
		}
	}
	return latest, nil
}

func depositStatusFromProvider(status string) entities.DepositStatus {
	switch strings.ToLower(status) {
	case "approved", "authorized":
		return entities.DepositStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.DepositStatusDenied
	default:
		return entities.DepositStatusPending
	}
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "\"error\":\"unauthorized\""), strings.Contains(msg, "\"status\":401"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, "\"error\":\"bad_request\""), strings.Contains(msg, "\"status\":400"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	return ok && hasNonEmptyString(payer, "email")
}
