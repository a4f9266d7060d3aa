package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-manager/internal/audit"
	"github.com/BruksfildServices01/studio-manager/internal/auth"
	"github.com/BruksfildServices01/studio-manager/internal/config"
	"github.com/BruksfildServices01/studio-manager/internal/handlers"
	infraRepo "github.com/BruksfildServices01/studio-manager/internal/infra/repository"
	"github.com/BruksfildServices01/studio-manager/internal/metrics"
	"github.com/BruksfildServices01/studio-manager/internal/middleware"
	"github.com/BruksfildServices01/studio-manager/internal/ratelimit"
	"github.com/BruksfildServices01/studio-manager/internal/storage"
	"github.com/BruksfildServices01/studio-manager/internal/tenancy"
	"github.com/BruksfildServices01/studio-manager/internal/usecase"
	ucAccount "github.com/BruksfildServices01/studio-manager/internal/usecase/account"
	ucClient "github.com/BruksfildServices01/studio-manager/internal/usecase/client"
	ucDashboard "github.com/BruksfildServices01/studio-manager/internal/usecase/dashboard"
	ucEvent "github.com/BruksfildServices01/studio-manager/internal/usecase/event"
	ucFinance "github.com/BruksfildServices01/studio-manager/internal/usecase/finance"
	ucReport "github.com/BruksfildServices01/studio-manager/internal/usecase/report"
	"github.com/BruksfildServices01/studio-manager/internal/validators"
)

// Deps are the process-wide singletons the router is built from.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Log      *zap.Logger
	Audit    *audit.Dispatcher
	Limiter  ratelimit.Limiter
	Archiver storage.Archiver
	Metrics  *metrics.HTTP
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(d.Log))
	if d.Metrics != nil {
		r.Use(middleware.Metrics(d.Metrics))
	}
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	studioRepo := infraRepo.NewStudioGormRepository(d.DB)
	accountRepo := infraRepo.NewAccountGormRepository(d.DB)

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	clock := usecase.NewClock(accountRepo, cfg.DefaultTimezone)
	auditLogger := audit.New(d.DB)

	var checkDomain ucAccount.DomainCheck
	if cfg.CheckEmailDomain {
		checkDomain = validators.IsEmailDomainValid
	}

	// ======================================================
	// USE CASES
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		ucAccount.NewRegister(accountRepo, tokens, checkDomain, cfg.DefaultTimezone, d.Audit),
		ucAccount.NewLogin(accountRepo, tokens),
		ucAccount.NewGetProfile(accountRepo),
		ucAccount.NewUpdateProfile(accountRepo, d.Audit),
		ucAccount.NewChangePassword(accountRepo, d.Audit),
		ucAccount.NewListUsers(accountRepo),
		ucAccount.NewCreateUser(accountRepo, checkDomain, cfg.DefaultTimezone, d.Audit),
		ucAccount.NewResetPassword(accountRepo, d.Audit),
		d.Log,
	)

	clientHandler := handlers.NewClientHandler(
		ucClient.NewListClients(studioRepo),
		ucClient.NewGetClientDetail(studioRepo),
		ucClient.NewCreateClient(studioRepo, d.Audit),
		ucClient.NewUpdateClient(studioRepo, d.Audit),
		ucClient.NewDeleteClient(studioRepo, d.Audit),
		d.Log,
	)

	eventHandler := handlers.NewEventHandler(handlers.EventUseCases{
		List:       ucEvent.NewListEvents(studioRepo, clock),
		Upcoming:   ucEvent.NewListUpcoming(studioRepo, clock),
		Calendar:   ucEvent.NewCalendar(studioRepo, clock),
		Get:        ucEvent.NewGetEvent(studioRepo),
		Create:     ucEvent.NewCreateEvent(studioRepo, clock, d.Audit, d.Log),
		Update:     ucEvent.NewUpdateEvent(studioRepo, d.Audit),
		SetStatus:  ucEvent.NewSetStatus(studioRepo, d.Audit),
		SetEditing: ucEvent.NewSetEditingStatus(studioRepo, d.Audit),
		Delete:     ucEvent.NewDeleteEvent(studioRepo, d.Audit),
	}, clock, d.Log)

	financeHandler := handlers.NewFinanceHandler(handlers.FinanceUseCases{
		Dashboard:     ucDashboard.NewGetDashboard(studioRepo, clock),
		ListPayments:  ucFinance.NewListPayments(studioRepo),
		RecordPayment: ucFinance.NewRecordPayment(studioRepo, clock, d.Audit),
		DeletePayment: ucFinance.NewDeletePayment(studioRepo, d.Audit),
		ListExpenses:  ucFinance.NewListExpenses(studioRepo),
		RecordExpense: ucFinance.NewRecordExpense(studioRepo, clock, d.Audit),
		DeleteExpense: ucFinance.NewDeleteExpense(studioRepo, d.Audit),
	}, clock, d.Log)

	reportHandler := handlers.NewReportHandler(
		ucReport.NewFinanceReport(studioRepo, clock, d.Archiver, d.Audit, d.Log),
		ucReport.NewEventsReport(studioRepo, clock, d.Archiver, d.Audit, d.Log),
		ucReport.NewClientPaymentsReport(studioRepo, clock, d.Archiver, d.Audit, d.Log),
		d.Log,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger, clock, d.Log)
	healthHandler := handlers.NewHealthHandler(d.DB)

	// ======================================================
	// OPERATIONAL
	// ======================================================
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	if d.Limiter != nil {
		api.Use(middleware.RateLimit(d.Limiter, d.Metrics, d.Log))
	}
	{
		api.GET("/health", healthHandler.Check)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens, accountRepo))
		{
			secured.GET("/auth/me", authHandler.Me)
			secured.PATCH("/auth/me", authHandler.UpdateMe)
			secured.PUT("/auth/password", authHandler.ChangePassword)

			users := secured.Group("/auth/users")
			users.Use(middleware.RequireRole(tenancy.RoleOwner))
			{
				users.GET("", authHandler.ListUsers)
				users.POST("", authHandler.CreateUser)
				users.PUT("/:id/password", authHandler.ResetPassword)
			}

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			// ------------------------------
			// EVENTS
			// ------------------------------
			secured.GET("/events", eventHandler.List)
			secured.GET("/events/upcoming", eventHandler.Upcoming)
			secured.GET("/events/calendar", eventHandler.Calendar)
			secured.GET("/events/:id", eventHandler.Get)
			secured.POST("/events", eventHandler.Create)
			secured.PUT("/events/:id", eventHandler.Update)
			secured.PATCH("/events/:id/status", eventHandler.SetStatus)
			secured.PATCH("/events/:id/editing-status", eventHandler.SetEditingStatus)
			secured.DELETE("/events/:id", eventHandler.Delete)

			// ------------------------------
			// FINANCE
			// ------------------------------
			secured.GET("/finance/dashboard", financeHandler.Dashboard)
			secured.GET("/finance/payments", financeHandler.ListPayments)
			secured.POST("/finance/payments", financeHandler.RecordPayment)
			secured.DELETE("/finance/payments/:id", financeHandler.DeletePayment)
			secured.GET("/finance/expenses", financeHandler.ListExpenses)
			secured.POST("/finance/expenses", financeHandler.RecordExpense)
			secured.DELETE("/finance/expenses/:id", financeHandler.DeleteExpense)

			// ------------------------------
			// REPORTS
			// ------------------------------
			secured.GET("/reports/finance", reportHandler.Finance)
			secured.GET("/reports/events", reportHandler.Events)
			secured.GET("/reports/client-payments", reportHandler.ClientPayments)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
