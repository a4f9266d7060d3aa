// Package tenancy scopes every store access to the calling account.
//
// A Caller is resolved once per request by the auth middleware and then
// passed explicitly to repositories and use cases. Repositories apply
// Owned or OwnedID to every query and Stamp to every insert; a record that
// belongs to another account is reported exactly like a missing one.
package tenancy

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-manager/internal/httperr"
)

type Role string

const (
	RoleOwner Role = "owner"
	RoleStaff Role = "staff"
)

func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleStaff
}

// Caller is the authenticated account a request acts on behalf of.
type Caller struct {
	AccountID uint
	Role      Role
}

func (c Caller) Validate() error {
	if c.AccountID == 0 {
		return httperr.ErrUnauthorized("unresolved_caller")
	}
	return nil
}

// Require checks that the caller holds role.
func (c Caller) Require(role Role) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Role != role {
		return httperr.ErrForbidden("insufficient_role")
	}
	return nil
}

// Owned restricts a query to rows owned by the caller.
func Owned(c Caller) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("account_id = ?", c.AccountID)
	}
}

// OwnedID restricts a query to a single row owned by the caller.
func OwnedID(c Caller, id uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ? AND account_id = ?", id, c.AccountID)
	}
}

// Stamp forces the owner of a new record to the caller, whatever the
// payload said.
func Stamp(c Caller, accountID *uint) {
	*accountID = c.AccountID
}

// NotFound folds a missing-row error into a NotFound business error.
// Other errors pass through untouched.
func NotFound(err error, code string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(code)
	}
	return err
}

// Affected turns a zero-row update or delete into NotFound.
func Affected(res *gorm.DB, code string) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound(code)
	}
	return nil
}
