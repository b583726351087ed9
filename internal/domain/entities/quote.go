package entities

import "time"

// QuoteStatus represents the lifecycle of a client quote.
//
// Domain notes:
//   - A quote is created pending when the client books a consultation.
//   - Only pending quotes may be approved, rejected or cancelled.
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusApproved  QuoteStatus = "approved"
	QuoteStatusRejected  QuoteStatus = "rejected"
	QuoteStatusCancelled QuoteStatus = "cancelled"
)

// Quote is a budget estimate saved for a client, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Request and Result are kept verbatim so a quote can be shown again
// even after catalog prices change.
type Quote struct {
	ID          string        `json:"id"`
	ClientName  string        `json:"client_name"`
	ClientEmail string        `json:"client_email"`
	Request     BudgetRequest `json:"request"`
	Result      BudgetResult  `json:"result"`
	Status      QuoteStatus   `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
