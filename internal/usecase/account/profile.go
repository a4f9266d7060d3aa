package account

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/studio-manager/internal/audit"
	"github.com/BruksfildServices01/studio-manager/internal/domain/studio"
	"github.com/BruksfildServices01/studio-manager/internal/httperr"
	"github.com/BruksfildServices01/studio-manager/internal/models"
	"github.com/BruksfildServices01/studio-manager/internal/tenancy"
	"github.com/BruksfildServices01/studio-manager/internal/timezone"
)

// ======================================================
// GET PROFILE
// ======================================================

type GetProfile struct {
	repo studio.AccountRepository
}

func NewGetProfile(repo studio.AccountRepository) *GetProfile {
	return &GetProfile{repo: repo}
}

func (uc *GetProfile) Execute(ctx context.Context, caller tenancy.Caller) (*models.User, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}
	return uc.repo.GetUser(ctx, caller.AccountID)
}

// ======================================================
// UPDATE PROFILE
// ======================================================

// ProfileInput fields left nil are not changed.
type ProfileInput struct {
	Name       *string
	Phone      *string
	StudioName *string
	Timezone   *string
}

type UpdateProfile struct {
	repo  studio.AccountRepository
	audit *audit.Dispatcher
}

func NewUpdateProfile(repo studio.AccountRepository, audit *audit.Dispatcher) *UpdateProfile {
	return &UpdateProfile{repo: repo, audit: audit}
}

func (uc *UpdateProfile) Execute(
	ctx context.Context,
	caller tenancy.Caller,
	in ProfileInput,
) (*models.User, error) {

	if err := caller.Validate(); err != nil {
		return nil, err
	}

	user, err := uc.repo.GetUser(ctx, caller.AccountID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, httperr.Validation("name_required", "Name is required.")
		}
		user.Name = name
	}
	if in.Phone != nil {
		user.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.StudioName != nil {
		user.StudioName = strings.TrimSpace(*in.StudioName)
	}
	if in.Timezone != nil {
		tz := strings.TrimSpace(*in.Timezone)
		if !timezone.IsValid(tz) {
			return nil, httperr.Validation("invalid_timezone", "Unknown timezone.")
		}
		user.Timezone = tz
	}

	if err := uc.repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: caller.AccountID,
		Action:    "profile_updated",
		Entity:    "user",
		EntityID:  &user.ID,
	})

	return user, nil
}

// ======================================================
// CHANGE PASSWORD
// ======================================================

type ChangePassword struct {
	repo  studio.AccountRepository
	audit *audit.Dispatcher
}

func NewChangePassword(repo studio.AccountRepository, audit *audit.Dispatcher) *ChangePassword {
	return &ChangePassword{repo: repo, audit: audit}
}

func (uc *ChangePassword) Execute(
	ctx context.Context,
	caller tenancy.Caller,
	current string,
	next string,
) error {

	if err := caller.Validate(); err != nil {
		return err
	}

	user, err := uc.repo.GetUser(ctx, caller.AccountID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return httperr.Validation("incorrect_password", "Current password is incorrect.")
	}

	hash, err := hashPassword(next)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	if err := uc.repo.SaveUser(ctx, user); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: caller.AccountID,
		Action:    "password_changed",
		Entity:    "user",
		EntityID:  &user.ID,
	})
	return nil
}
