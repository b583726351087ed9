package routes

import (
	"interior_budget/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathDeposits = "/deposits"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, depositHandler *handlers.DepositHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.PATCH("/:quote_id/approve", quoteHandler.ApproveQuote)
		quotes.PATCH("/:quote_id/reject", quoteHandler.RejectQuote)
		quotes.PATCH("/:quote_id/cancel", quoteHandler.CancelQuote)
	}

	deposits := rg.Group(PathDeposits)
	{
		deposits.POST("/:quote_id", depositHandler.CreateDeposit)
		deposits.GET("/:quote_id", depositHandler.GetDeposit)
	}
}
