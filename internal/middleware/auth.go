package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-manager/internal/auth"
	"github.com/BruksfildServices01/studio-manager/internal/httperr"
	"github.com/BruksfildServices01/studio-manager/internal/models"
	"github.com/BruksfildServices01/studio-manager/internal/tenancy"
)

const ContextCaller = "caller"

// AccountLookup loads the account a token was issued for.
type AccountLookup interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
}

// AuthMiddleware verifies the bearer token and reloads its account. The
// role always comes from the stored account, not from the token.
func AuthMiddleware(tokens *auth.Tokens, accounts AccountLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, http.StatusUnauthorized, "missing_authorization_header", "Authentication required.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_authorization_header", "Authentication required.")
			return
		}

		caller, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "Token is invalid or expired.")
			return
		}

		user, err := accounts.GetUser(c.Request.Context(), caller.AccountID)
		if err != nil {
			if httperr.IsKind(err, httperr.KindNotFound) {
				httperr.Abort(c, http.StatusUnauthorized, "account_not_found", "Token is invalid. User not found.")
				return
			}
			httperr.Abort(c, http.StatusInternalServerError, "internal_error", "Internal server error.")
			return
		}

		caller.Role = tenancy.Role(user.Role)
		if !caller.Role.Valid() {
			caller.Role = tenancy.RoleStaff
		}

		c.Set(ContextCaller, caller)
		c.Next()
	}
}

// Caller returns the authenticated caller. Outside AuthMiddleware it is
// the zero Caller, which every use case rejects.
func Caller(c *gin.Context) tenancy.Caller {
	if v, ok := c.Get(ContextCaller); ok {
		if caller, ok := v.(tenancy.Caller); ok {
			return caller
		}
	}
	return tenancy.Caller{}
}

func RequireRole(role tenancy.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := Caller(c).Require(role); err != nil {
			var be httperr.BusinessError
			if errors.As(err, &be) {
				httperr.Abort(c, httperr.StatusOf(be.Kind), be.Code, be.Message)
				return
			}
			httperr.Abort(c, http.StatusForbidden, "insufficient_role", "Access denied.")
			return
		}
		c.Next()
	}
}
