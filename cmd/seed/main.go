package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/studio-manager/internal/auth"
	"github.com/BruksfildServices01/studio-manager/internal/config"
	dbpkg "github.com/BruksfildServices01/studio-manager/internal/db"
	"github.com/BruksfildServices01/studio-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/studio-manager/internal/domain/studio"
	"github.com/BruksfildServices01/studio-manager/internal/httperr"
	infraRepo "github.com/BruksfildServices01/studio-manager/internal/infra/repository"
	"github.com/BruksfildServices01/studio-manager/internal/logger"
	"github.com/BruksfildServices01/studio-manager/internal/tenancy"
	"github.com/BruksfildServices01/studio-manager/internal/usecase"
	ucAccount "github.com/BruksfildServices01/studio-manager/internal/usecase/account"
	ucClient "github.com/BruksfildServices01/studio-manager/internal/usecase/client"
	ucEvent "github.com/BruksfildServices01/studio-manager/internal/usecase/event"
	ucFinance "github.com/BruksfildServices01/studio-manager/internal/usecase/finance"
)

const (
	ownerEmail = "owner@studio.local"
	staffEmail = "staff@studio.local"
	password   = "studio123"
)

func main() {
	cfg := config.Load()
	log := logger.Must(cfg.LogLevel, cfg.LogFormat, "studio-seed")
	defer func() { _ = log.Sync() }()

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	ctx := context.Background()
	accounts := infraRepo.NewAccountGormRepository(db)
	repo := infraRepo.NewStudioGormRepository(db)
	clock := usecase.NewClock(accounts, cfg.DefaultTimezone)

	if _, err := accounts.FindUserByEmail(ctx, ownerEmail); err == nil {
		log.Info("seed data already present", zap.String("owner", ownerEmail))
		return
	} else if !httperr.IsKind(err, httperr.KindNotFound) {
		log.Fatal("failed to look up owner", zap.Error(err))
	}

	// ------------------------------
	// Accounts
	// ------------------------------
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	session, err := ucAccount.NewRegister(accounts, tokens, nil, cfg.DefaultTimezone, nil).
		Execute(ctx, ucAccount.RegisterInput{
			Name:       "Studio Owner",
			Email:      ownerEmail,
			Password:   password,
			Phone:      "9876543210",
			StudioName: "Demo Studio",
		})
	if err != nil {
		log.Fatal("failed to create owner", zap.Error(err))
	}
	owner := tenancy.Caller{AccountID: session.User.ID, Role: tenancy.RoleOwner}

	if _, err := ucAccount.NewCreateUser(accounts, nil, cfg.DefaultTimezone, nil).
		Execute(ctx, owner, ucAccount.CreateUserInput{
			Name:     "Studio Staff",
			Email:    staffEmail,
			Password: password,
		}); err != nil {
		log.Fatal("failed to create staff", zap.Error(err))
	}

	// ------------------------------
	// Sample studio data
	// ------------------------------
	client, err := ucClient.NewCreateClient(repo, nil).Execute(ctx, owner, studio.ClientInput{
		Name:    "Priya Sharma",
		Phone:   "9123456780",
		Email:   "priya@example.com",
		Address: "Bandra West, Mumbai",
	})
	if err != nil {
		log.Fatal("failed to create client", zap.Error(err))
	}

	now, err := clock.Now(ctx, owner)
	if err != nil {
		log.Fatal("failed to resolve clock", zap.Error(err))
	}

	event, err := ucEvent.NewCreateEvent(repo, clock, nil, log).Execute(ctx, owner, ucEvent.CreateInput{
		EventInput: studio.EventInput{
			ClientID:        client.ID,
			EventType:       string(catalog.EventWedding),
			Date:            now.AddDate(0, 0, 30),
			Location:        "Taj Lands End, Mumbai",
			PackageSelected: "Premium Wedding",
			PackageCost:     150000,
			AdvancePaid:     50000,
			Photographer:    "Studio Owner",
		},
		AdvanceMethod: string(catalog.MethodUPI),
	})
	if err != nil {
		log.Fatal("failed to create event", zap.Error(err))
	}

	paidOn := now.Add(-24 * time.Hour)
	if _, err := ucFinance.NewRecordPayment(repo, clock, nil).Execute(ctx, owner, studio.PaymentInput{
		EventID: event.ID,
		Amount:  25000,
		Method:  string(catalog.MethodBankTransfer),
		Date:    &paidOn,
		Notes:   "Second instalment",
	}); err != nil {
		log.Fatal("failed to record payment", zap.Error(err))
	}

	if _, err := ucFinance.NewRecordExpense(repo, clock, nil).Execute(ctx, owner, studio.ExpenseInput{
		Category:    string(catalog.ExpenseEquipment),
		Amount:      12000,
		Description: "Lens rental",
	}); err != nil {
		log.Fatal("failed to record expense", zap.Error(err))
	}

	log.Info("seed complete",
		zap.String("owner", ownerEmail),
		zap.String("staff", staffEmail),
	)
}
