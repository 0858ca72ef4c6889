package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kampusadmin/dashboard-api/internal/audit"
	"github.com/kampusadmin/dashboard-api/internal/auth"
	"github.com/kampusadmin/dashboard-api/internal/config"
	"github.com/kampusadmin/dashboard-api/internal/handlers"
	infraRepo "github.com/kampusadmin/dashboard-api/internal/infra/repository"
	"github.com/kampusadmin/dashboard-api/internal/middleware"
	"github.com/kampusadmin/dashboard-api/internal/models"
	"github.com/kampusadmin/dashboard-api/internal/timezone"
	ucFinance "github.com/kampusadmin/dashboard-api/internal/usecase/finance"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA
	// ======================================================
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)

	financeRepo := infraRepo.NewFinanceGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	businessNow := func() time.Time { return timezone.NowIn(cfg.Timezone) }

	// ======================================================
	// USE CASES — FINANCE
	// ======================================================
	getFinancialsUC := ucFinance.NewGetFinancials(financeRepo)
	getPartnershipStatsUC := ucFinance.NewGetPartnershipStats(financeRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, tokens)
	meHandler := handlers.NewMeHandler()

	customerHandler := handlers.NewCustomerHandler(db, auditDispatcher)
	codeHandler := handlers.NewPartnershipCodeHandler(db, auditDispatcher)
	transactionHandler := handlers.NewTransactionHandler(db, auditDispatcher)
	userHandler := handlers.NewUserHandler(db, auditDispatcher)

	financialHandler := handlers.NewFinancialHandler(
		getFinancialsUC,
		getPartnershipStatsUC,
		businessNow,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// ROUTES
	// ======================================================
	r.POST("/login", authHandler.Login)

	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(db, tokens))
	{
		secured.GET("/me", meHandler.GetMe)

		customers := secured.Group("/customers")
		customers.Use(middleware.RequireCapability(models.CapManageCustomers))
		{
			customers.GET("", customerHandler.List)
			customers.POST("", customerHandler.Create)
			customers.GET("/:id", customerHandler.Get)
			customers.PATCH("/:id", customerHandler.Update)
			customers.PATCH("/:id/paid", customerHandler.UpdatePaid)
			customers.DELETE("/:id", customerHandler.Delete)
		}

		codes := secured.Group("/partnership-codes")
		codes.Use(middleware.RequireCapability(models.CapManagePartnershipCodes))
		{
			codes.GET("", codeHandler.List)
			codes.POST("", codeHandler.Create)
			codes.DELETE("/:id", codeHandler.Deactivate)
		}

		secured.GET(
			"/partnership-stats",
			middleware.RequireCapability(models.CapViewPartnershipStats),
			financialHandler.GetPartnershipStats,
		)

		financials := secured.Group("/")
		financials.Use(middleware.RequireCapability(models.CapViewFinancials))
		{
			financials.GET("/financials", financialHandler.GetFinancials)
			financials.GET("/transactions", transactionHandler.List)
			financials.POST("/transactions", transactionHandler.Create)
			financials.DELETE("/transactions/:id", transactionHandler.Delete)
		}

		access := secured.Group("/")
		access.Use(middleware.RequireCapability(models.CapManageAccess))
		{
			access.GET("/users", userHandler.List)
			access.POST("/users", userHandler.Create)
			access.PUT("/users/:id", userHandler.Update)
			access.DELETE("/users/:id", userHandler.Deactivate)

			access.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
