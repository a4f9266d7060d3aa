package account

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/studio-manager/internal/audit"
	"github.com/BruksfildServices01/studio-manager/internal/auth"
	"github.com/BruksfildServices01/studio-manager/internal/domain/studio"
	"github.com/BruksfildServices01/studio-manager/internal/httperr"
	"github.com/BruksfildServices01/studio-manager/internal/models"
	"github.com/BruksfildServices01/studio-manager/internal/tenancy"
	"github.com/BruksfildServices01/studio-manager/internal/timezone"
	"github.com/BruksfildServices01/studio-manager/internal/validators"
)

const minPasswordLen = 6

// DomainCheck decides whether an email domain can receive mail. A nil
// DomainCheck accepts everything.
type DomainCheck func(ctx context.Context, email string) bool

// ======================================================
// INPUT / OUTPUT
// ======================================================

type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Phone      string
	StudioName string
	Timezone   string
}

type Session struct {
	User  *models.User
	Token string
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	repo            studio.AccountRepository
	tokens          *auth.Tokens
	checkDomain     DomainCheck
	defaultTimezone string
	audit           *audit.Dispatcher
}

func NewRegister(
	repo studio.AccountRepository,
	tokens *auth.Tokens,
	checkDomain DomainCheck,
	defaultTimezone string,
	audit *audit.Dispatcher,
) *Register {
	return &Register{
		repo:            repo,
		tokens:          tokens,
		checkDomain:     checkDomain,
		defaultTimezone: defaultTimezone,
		audit:           audit,
	}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*Session, error) {
	user, err := newUser(ctx, uc.repo, uc.checkDomain, userInput{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Phone:    in.Phone,
		Role:     tenancy.RoleOwner,
		Timezone: in.Timezone,
	}, uc.defaultTimezone)
	if err != nil {
		return nil, err
	}
	user.StudioName = strings.TrimSpace(in.StudioName)

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: user.ID,
		Action:    "account_registered",
		Entity:    "user",
		EntityID:  &user.ID,
	})

	return &Session{User: user, Token: token}, nil
}

// --------------------------------------------------
// Shared account construction
// --------------------------------------------------

type userInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     tenancy.Role
	Timezone string
}

func newUser(
	ctx context.Context,
	repo studio.AccountRepository,
	checkDomain DomainCheck,
	in userInput,
	defaultTimezone string,
) (*models.User, error) {

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.Validation("name_required", "Name is required.")
	}

	email := validators.NormalizeEmail(in.Email)
	if !strings.Contains(email, "@") {
		return nil, httperr.Validation("invalid_email", "Email is not valid.")
	}

	if checkDomain != nil && !checkDomain(ctx, email) {
		return nil, httperr.Validation("invalid_email_domain", "The email domain does not appear to be valid.")
	}

	taken, err := repo.EmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrConflict("email_already_registered", "An account with this email already exists.")
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	tz, err := resolveTimezone(in.Timezone, defaultTimezone)
	if err != nil {
		return nil, err
	}

	return &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Phone:        strings.TrimSpace(in.Phone),
		Role:         string(in.Role),
		Timezone:     tz,
	}, nil
}

func hashPassword(password string) (string, error) {
	if len(password) < minPasswordLen {
		return "", httperr.Validation("password_too_short", "Password must have at least 6 characters.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func resolveTimezone(requested, fallback string) (string, error) {
	tz := strings.TrimSpace(requested)
	if tz == "" {
		tz = fallback
	}
	if tz == "" {
		tz = timezone.DefaultTimezone
	}
	if !timezone.IsValid(tz) {
		return "", httperr.Validation("invalid_timezone", "Unknown timezone.")
	}
	return tz, nil
}
