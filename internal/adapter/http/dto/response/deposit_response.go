package response

import (
	"time"

	"interior_budget/internal/domain/entities"
)

type DepositResponse struct {
	DepositID string    `json:"deposit_id"`
	ID        string    `json:"id"`
	QuoteID   string    `json:"quote_id"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`

	ProviderPayloadRaw string `json:"provider_payload_raw,omitempty"`
}

func FromDeposit(d entities.Deposit) DepositResponse {
	return DepositResponse{
		DepositID:          d.ID,
		ID:                 d.ID,
		QuoteID:            d.QuoteID,
		Amount:             d.Amount,
		Date:               d.Date,
		Status:             string(d.Status),
		ProviderPayloadRaw: string(d.ProviderPayloadRaw),
	}
}
