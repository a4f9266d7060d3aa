package account

import (
	"context"

	"github.com/BruksfildServices01/studio-manager/internal/audit"
	"github.com/BruksfildServices01/studio-manager/internal/domain/studio"
	"github.com/BruksfildServices01/studio-manager/internal/httperr"
	"github.com/BruksfildServices01/studio-manager/internal/models"
	"github.com/BruksfildServices01/studio-manager/internal/tenancy"
)

// ======================================================
// LIST USERS (owner)
// ======================================================

type ListUsers struct {
	repo studio.AccountRepository
}

func NewListUsers(repo studio.AccountRepository) *ListUsers {
	return &ListUsers{repo: repo}
}

func (uc *ListUsers) Execute(ctx context.Context, caller tenancy.Caller) ([]models.User, error) {
	if err := caller.Require(tenancy.RoleOwner); err != nil {
		return nil, err
	}
	return uc.repo.ListManagedUsers(ctx, caller.AccountID)
}

// ======================================================
// CREATE USER (owner)
// ======================================================

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     string
}

type CreateUser struct {
	repo            studio.AccountRepository
	checkDomain     DomainCheck
	defaultTimezone string
	audit           *audit.Dispatcher
}

func NewCreateUser(
	repo studio.AccountRepository,
	checkDomain DomainCheck,
	defaultTimezone string,
	audit *audit.Dispatcher,
) *CreateUser {
	return &CreateUser{
		repo:            repo,
		checkDomain:     checkDomain,
		defaultTimezone: defaultTimezone,
		audit:           audit,
	}
}

func (uc *CreateUser) Execute(
	ctx context.Context,
	caller tenancy.Caller,
	in CreateUserInput,
) (*models.User, error) {

	if err := caller.Require(tenancy.RoleOwner); err != nil {
		return nil, err
	}

	role := tenancy.RoleStaff
	if in.Role != "" {
		role = tenancy.Role(in.Role)
		if !role.Valid() {
			return nil, httperr.Validation("invalid_role", "Role must be owner or staff.")
		}
	}

	user, err := newUser(ctx, uc.repo, uc.checkDomain, userInput{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Phone:    in.Phone,
		Role:     role,
	}, uc.defaultTimezone)
	if err != nil {
		return nil, err
	}

	owner := caller.AccountID
	user.ManagedByID = &owner

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: caller.AccountID,
		Action:    "user_created",
		Entity:    "user",
		EntityID:  &user.ID,
		Metadata:  map[string]any{"role": user.Role},
	})

	return user, nil
}

// ======================================================
// RESET PASSWORD (owner)
// ======================================================

// ResetPassword only reaches the caller and the users the caller created.
// Any other id is reported as not found.
type ResetPassword struct {
	repo  studio.AccountRepository
	audit *audit.Dispatcher
}

func NewResetPassword(repo studio.AccountRepository, audit *audit.Dispatcher) *ResetPassword {
	return &ResetPassword{repo: repo, audit: audit}
}

func (uc *ResetPassword) Execute(
	ctx context.Context,
	caller tenancy.Caller,
	userID uint,
	password string,
) error {

	if err := caller.Require(tenancy.RoleOwner); err != nil {
		return err
	}

	user, err := uc.repo.GetManagedUser(ctx, caller.AccountID, userID)
	if err != nil {
		return err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	if err := uc.repo.SaveUser(ctx, user); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: caller.AccountID,
		Action:    "password_reset",
		Entity:    "user",
		EntityID:  &user.ID,
	})
	return nil
}
