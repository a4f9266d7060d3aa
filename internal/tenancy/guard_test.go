package tenancy

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-manager/internal/httperr"
)

func TestCaller_Validate(t *testing.T) {
	assert.True(t, httperr.IsKind(Caller{}.Validate(), httperr.KindUnauthorized))
	assert.NoError(t, Caller{AccountID: 7, Role: RoleStaff}.Validate())
}

func TestCaller_Require(t *testing.T) {
	owner := Caller{AccountID: 1, Role: RoleOwner}
	staff := Caller{AccountID: 2, Role: RoleStaff}

	assert.NoError(t, owner.Require(RoleOwner))
	assert.True(t, httperr.IsKind(staff.Require(RoleOwner), httperr.KindForbidden))
	assert.True(t, httperr.IsKind(Caller{Role: RoleOwner}.Require(RoleOwner), httperr.KindUnauthorized))
}

func TestStamp_OverridesPayload(t *testing.T) {
	accountID := uint(99)
	Stamp(Caller{AccountID: 3}, &accountID)
	assert.Equal(t, uint(3), accountID)
}

func TestNotFound(t *testing.T) {
	assert.NoError(t, NotFound(nil, "x"))

	err := NotFound(fmt.Errorf("first: %w", gorm.ErrRecordNotFound), "client_not_found")
	assert.True(t, httperr.IsBusiness(err, "client_not_found"))
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))

	other := errors.New("connection reset")
	assert.Equal(t, other, NotFound(other, "client_not_found"))
}

func TestAffected(t *testing.T) {
	assert.True(t, httperr.IsKind(Affected(&gorm.DB{}, "event_not_found"), httperr.KindNotFound))
	assert.NoError(t, Affected(&gorm.DB{RowsAffected: 1}, "event_not_found"))

	boom := errors.New("boom")
	assert.Equal(t, boom, Affected(&gorm.DB{Error: boom}, "event_not_found"))
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleOwner.Valid())
	assert.True(t, RoleStaff.Valid())
	assert.False(t, Role("admin").Valid())
}
