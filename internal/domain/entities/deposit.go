package entities

import (
	"encoding/json"
	"time"
)

type DepositStatus string

const (
	DepositStatusPending  DepositStatus = "pending"
	DepositStatusApproved DepositStatus = "approved"
	DepositStatusDenied   DepositStatus = "denied"
)

// Deposit is the down payment that secures an approved quote.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (quote_id-index): quote_id
//
// ProviderPayloadRaw keeps the payment provider response for audit.
type Deposit struct {
	ID                 string          `json:"id"`
	QuoteID            string          `json:"quote_id"`
	Amount             float64         `json:"amount"`
	Date               time.Time       `json:"date"`
	Status             DepositStatus   `json:"status"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}
