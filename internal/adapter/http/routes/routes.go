package routes

import (
	"context"
	"log"
	"strconv"

	_ "interior_budget/docs" // This will be auto-generated
	budgetcache "interior_budget/internal/adapter/cache"
	"interior_budget/internal/adapter/http/handlers"
	"interior_budget/internal/adapter/http/middleware"
	"interior_budget/internal/adapter/persistence/repository"
	"interior_budget/internal/domain/budget"
	"interior_budget/internal/infrastructure/cache"
	"interior_budget/internal/infrastructure/catalog"
	"interior_budget/internal/infrastructure/config"
	"interior_budget/internal/infrastructure/database"
	"interior_budget/internal/infrastructure/logger"
	"interior_budget/internal/infrastructure/payments"
	"interior_budget/internal/usecase"
	"interior_budget/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Budget  *handlers.BudgetHandler
	Quote   *handlers.QuoteHandler
	Deposit *handlers.DepositHandler
}

// Run will start the server
func Run() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}

	l := logger.New(cfg.Server.LogLevel)
	defer logger.Install(l)()
	defer func() { _ = l.Sync() }()

	gin.SetMode(cfg.Server.GinMode)

	h, cleanup, err := buildHandlers(context.Background(), cfg)
	if err != nil {
		zap.S().Fatalw("[app][routes] failed to wire dependencies", "err", err)
	}
	defer cleanup()

	router := NewRouter(l, h)
	addr := ":" + strconv.Itoa(cfg.Server.Port)
	zap.S().Infow("[app][routes] listening", "addr", addr)
	if err := router.Run(addr); err != nil {
		zap.S().Fatalw("Failed to startup the application", "err", err)
	}
}

// NewRouter mounts middlewares, swagger and the /v1 routes.
func NewRouter(l *zap.Logger, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(l), middleware.Logger(l))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBudgetRoutes(v1, h.Budget)
	addQuoteRoutes(v1, h.Quote, h.Deposit)
	return router
}

func buildHandlers(ctx context.Context, cfg *config.Config) (Handlers, func(), error) {
	cleanup := func() {}

	cat, err := catalog.Load(cfg.Budget.CatalogFile)
	if err != nil {
		return Handlers{}, cleanup, err
	}
	estimator, err := budget.NewEstimator(cat, budget.DefaultPolicy())
	if err != nil {
		return Handlers{}, cleanup, err
	}
	zap.S().Infow("[app][routes] catalog loaded",
		"source", catalogSource(cfg.Budget.CatalogFile),
		"materials", len(cat.Materials()),
		"furniture", len(cat.AllFurniture()),
		"fingerprint", cat.Fingerprint(),
	)

	var estimateCache interfaces.IBudgetCache
	rdb, err := cache.ConnectRedis(ctx, cfg.Redis)
	switch {
	case err != nil:
		zap.S().Warnw("[app][routes] redis unavailable, estimate cache disabled", "err", err)
	case rdb != nil:
		estimateCache = budgetcache.NewRedisBudgetCache(rdb, cfg.Redis.CacheTTL)
		cleanup = func() { _ = rdb.Close() }
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return Handlers{}, cleanup, err
	}
	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.Tables.Quotes)
	depositRepo := repository.NewDepositDynamoRepository(ddb, cfg.Tables.Deposits)

	var paymentGateway interfaces.IPaymentGateway
	mockMode := false
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments)
	if err != nil {
		zap.S().Warnw("[app][routes] Mercado Pago gateway not configured", "err", err)
	} else {
		paymentGateway = mpGateway
		mockMode = mpGateway.MockMode()
	}

	budgetUseCase := usecase.NewBudgetUseCase(estimator, estimateCache)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, budgetUseCase)
	depositUseCase := usecase.NewDepositUseCase(depositRepo, quoteRepo, paymentGateway, usecase.DepositPolicy{
		Rate:           cfg.Budget.DepositRate,
		RelaxedPayload: mockMode,
	})

	return Handlers{
		Budget:  handlers.NewBudgetHandler(budgetUseCase),
		Quote:   handlers.NewQuoteHandler(quoteUseCase),
		Deposit: handlers.NewDepositHandler(depositUseCase),
	}, cleanup, nil
}

func catalogSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
