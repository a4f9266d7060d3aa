package account

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/studio-manager/internal/auth"
	"github.com/BruksfildServices01/studio-manager/internal/domain/studio"
	"github.com/BruksfildServices01/studio-manager/internal/httperr"
)

type Login struct {
	repo   studio.AccountRepository
	tokens *auth.Tokens
}

func NewLogin(repo studio.AccountRepository, tokens *auth.Tokens) *Login {
	return &Login{repo: repo, tokens: tokens}
}

// Execute never reveals whether the email exists.
func (uc *Login) Execute(ctx context.Context, email, password string) (*Session, error) {
	user, err := uc.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			return nil, httperr.ErrUnauthorized("invalid_credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, httperr.ErrUnauthorized("invalid_credentials")
	}

	token, err := uc.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &Session{User: user, Token: token}, nil
}
