package request

// QuoteCreateRequest books a consultation for the given budget.
type QuoteCreateRequest struct {
	ClientName  string                `json:"client_name" binding:"required,max=120" example:"Ana Souza"`
	ClientEmail string                `json:"client_email" binding:"required,email" example:"ana@example.com"`
	Budget      BudgetEstimateRequest `json:"budget"`
}
