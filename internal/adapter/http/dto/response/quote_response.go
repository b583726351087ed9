package response

import (
	"time"

	"interior_budget/internal/domain/entities"
)

type QuoteResponse struct {
	QuoteID     string         `json:"quote_id"`
	ID          string         `json:"id"`
	ClientName  string         `json:"client_name"`
	ClientEmail string         `json:"client_email"`
	RoomType    string         `json:"room_type"`
	Budget      BudgetResponse `json:"budget"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		QuoteID:     q.ID,
		ID:          q.ID,
		ClientName:  q.ClientName,
		ClientEmail: q.ClientEmail,
		RoomType:    string(q.Request.RoomType),
		Budget:      FromBudgetResult(q.Result),
		Status:      string(q.Status),
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}
