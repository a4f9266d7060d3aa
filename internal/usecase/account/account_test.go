package account

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/studio-manager/internal/auth"
	"github.com/BruksfildServices01/studio-manager/internal/db/dbtest"
	"github.com/BruksfildServices01/studio-manager/internal/httperr"
	"github.com/BruksfildServices01/studio-manager/internal/infra/repository"
	"github.com/BruksfildServices01/studio-manager/internal/tenancy"
)

type fixture struct {
	repo   *repository.AccountGormRepository
	tokens *auth.Tokens
}

func setup(t *testing.T) fixture {
	t.Helper()
	return fixture{
		repo:   repository.NewAccountGormRepository(dbtest.Open(t)),
		tokens: auth.NewTokens("test-secret", time.Hour),
	}
}

func (f fixture) register(t *testing.T, email string) *Session {
	t.Helper()
	s, err := NewRegister(f.repo, f.tokens, nil, "Asia/Kolkata", nil).Execute(context.Background(), RegisterInput{
		Name:     "Owner",
		Email:    email,
		Password: "secret123",
	})
	require.NoError(t, err)
	return s
}

func TestRegister_CreatesOwnerAndToken(t *testing.T) {
	f := setup(t)

	s := f.register(t, " Owner@Studio.test ")
	assert.Equal(t, "owner@studio.test", s.User.Email)
	assert.Equal(t, string(tenancy.RoleOwner), s.User.Role)
	assert.Equal(t, "Asia/Kolkata", s.User.Timezone)

	caller, err := f.tokens.Parse(s.Token)
	require.NoError(t, err)
	assert.Equal(t, s.User.ID, caller.AccountID)
	assert.Equal(t, tenancy.RoleOwner, caller.Role)
}

func TestRegister_Rejects(t *testing.T) {
	f := setup(t)
	f.register(t, "owner@studio.test")
	ctx := context.Background()
	uc := NewRegister(f.repo, f.tokens, nil, "Asia/Kolkata", nil)

	_, err := uc.Execute(ctx, RegisterInput{Name: "X", Email: "OWNER@studio.test", Password: "secret123"})
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))

	_, err = uc.Execute(ctx, RegisterInput{Name: "X", Email: "x@studio.test", Password: "123"})
	assert.True(t, httperr.IsBusiness(err, "password_too_short"))

	_, err = uc.Execute(ctx, RegisterInput{Name: "X", Email: "y@studio.test", Password: "secret123", Timezone: "Mars/Base"})
	assert.True(t, httperr.IsBusiness(err, "invalid_timezone"))

	reject := func(context.Context, string) bool { return false }
	_, err = NewRegister(f.repo, f.tokens, reject, "", nil).
		Execute(ctx, RegisterInput{Name: "X", Email: "z@nowhere.test", Password: "secret123"})
	assert.True(t, httperr.IsBusiness(err, "invalid_email_domain"))
}

func TestLogin(t *testing.T) {
	f := setup(t)
	f.register(t, "owner@studio.test")
	uc := NewLogin(f.repo, f.tokens)
	ctx := context.Background()

	s, err := uc.Execute(ctx, "OWNER@studio.test", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, s.Token)

	_, err = uc.Execute(ctx, "owner@studio.test", "wrong")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))

	_, err = uc.Execute(ctx, "ghost@studio.test", "secret123")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))
}

func TestChangePassword(t *testing.T) {
	f := setup(t)
	s := f.register(t, "owner@studio.test")
	caller := tenancy.Caller{AccountID: s.User.ID, Role: tenancy.RoleOwner}
	ctx := context.Background()
	uc := NewChangePassword(f.repo, nil)

	err := uc.Execute(ctx, caller, "wrong", "newsecret")
	assert.True(t, httperr.IsBusiness(err, "incorrect_password"))

	require.NoError(t, uc.Execute(ctx, caller, "secret123", "newsecret"))

	_, err = NewLogin(f.repo, f.tokens).Execute(ctx, "owner@studio.test", "newsecret")
	assert.NoError(t, err)
}

func TestUpdateProfile(t *testing.T) {
	f := setup(t)
	s := f.register(t, "owner@studio.test")
	caller := tenancy.Caller{AccountID: s.User.ID, Role: tenancy.RoleOwner}
	ctx := context.Background()
	uc := NewUpdateProfile(f.repo, nil)

	studioName := "  Lens & Light "
	tz := "Europe/Lisbon"
	u, err := uc.Execute(ctx, caller, ProfileInput{StudioName: &studioName, Timezone: &tz})
	require.NoError(t, err)
	assert.Equal(t, "Lens & Light", u.StudioName)
	assert.Equal(t, "Europe/Lisbon", u.Timezone)
	assert.Equal(t, "Owner", u.Name)

	bad := "Nowhere/City"
	_, err = uc.Execute(ctx, caller, ProfileInput{Timezone: &bad})
	assert.True(t, httperr.IsBusiness(err, "invalid_timezone"))
}

func TestUserAdministration_OwnerOnly(t *testing.T) {
	f := setup(t)
	s := f.register(t, "owner@studio.test")
	owner := tenancy.Caller{AccountID: s.User.ID, Role: tenancy.RoleOwner}
	ctx := context.Background()

	staff, err := NewCreateUser(f.repo, nil, "Asia/Kolkata", nil).Execute(ctx, owner, CreateUserInput{
		Name: "Assistant", Email: "staff@studio.test", Password: "staff123",
	})
	require.NoError(t, err)
	assert.Equal(t, string(tenancy.RoleStaff), staff.Role)

	staffCaller := tenancy.Caller{AccountID: staff.ID, Role: tenancy.RoleStaff}

	_, err = NewListUsers(f.repo).Execute(ctx, staffCaller)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))

	err = NewResetPassword(f.repo, nil).Execute(ctx, staffCaller, s.User.ID, "hijacked")
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))

	users, err := NewListUsers(f.repo).Execute(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	require.NoError(t, NewResetPassword(f.repo, nil).Execute(ctx, owner, staff.ID, "fresh123"))
	_, err = NewLogin(f.repo, f.tokens).Execute(ctx, "staff@studio.test", "fresh123")
	assert.NoError(t, err)

	_, err = NewCreateUser(f.repo, nil, "", nil).Execute(ctx, owner, CreateUserInput{
		Name: "X", Email: "x@studio.test", Password: "secret123", Role: "admin",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_role"))
}

func TestUserAdministration_ScopedToOwnStudio(t *testing.T) {
	f := setup(t)
	alice := f.register(t, "alice@studio.test")
	bob := f.register(t, "bob@studio.test")
	ctx := context.Background()

	aliceCaller := tenancy.Caller{AccountID: alice.User.ID, Role: tenancy.RoleOwner}
	bobCaller := tenancy.Caller{AccountID: bob.User.ID, Role: tenancy.RoleOwner}

	assistant, err := NewCreateUser(f.repo, nil, "", nil).Execute(ctx, aliceCaller, CreateUserInput{
		Name: "Assistant", Email: "assistant@studio.test", Password: "staff123",
	})
	require.NoError(t, err)
	require.NotNil(t, assistant.ManagedByID)
	assert.Equal(t, alice.User.ID, *assistant.ManagedByID)

	users, err := NewListUsers(f.repo).Execute(ctx, bobCaller)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, bob.User.ID, users[0].ID)

	for _, id := range []uint{alice.User.ID, assistant.ID} {
		err = NewResetPassword(f.repo, nil).Execute(ctx, bobCaller, id, "taken123")
		assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	}

	_, err = NewLogin(f.repo, f.tokens).Execute(ctx, "alice@studio.test", "secret123")
	assert.NoError(t, err)
	_, err = NewLogin(f.repo, f.tokens).Execute(ctx, "assistant@studio.test", "staff123")
	assert.NoError(t, err)
}
