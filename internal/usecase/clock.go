// Package usecase holds helpers shared by the use case packages.
package usecase

import (
	"context"
	"time"

	"github.com/BruksfildServices01/studio-manager/internal/domain/studio"
	"github.com/BruksfildServices01/studio-manager/internal/tenancy"
	"github.com/BruksfildServices01/studio-manager/internal/timezone"
)

// Clock tells the current time in an account's own timezone.
type Clock struct {
	accounts        studio.AccountRepository
	defaultTimezone string
	now             func() time.Time
}

func NewClock(accounts studio.AccountRepository, defaultTimezone string) *Clock {
	return &Clock{accounts: accounts, defaultTimezone: defaultTimezone, now: time.Now}
}

// FixedClock always reports t, in the location t carries.
func FixedClock(t time.Time) *Clock {
	return &Clock{now: func() time.Time { return t }}
}

// Now returns the current instant in the caller's location.
func (c *Clock) Now(ctx context.Context, caller tenancy.Caller) (time.Time, error) {
	now := c.now()
	if c.accounts == nil {
		return now, nil
	}

	user, err := c.accounts.GetUser(ctx, caller.AccountID)
	if err != nil {
		return time.Time{}, err
	}

	tz := user.Timezone
	if tz == "" {
		tz = c.defaultTimezone
	}
	return now.In(timezone.Location(tz)), nil
}
