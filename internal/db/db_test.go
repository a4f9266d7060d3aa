package db_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/studio-manager/internal/db"
	"github.com/BruksfildServices01/studio-manager/internal/db/dbtest"
	"github.com/BruksfildServices01/studio-manager/internal/domain/workflow"
	"github.com/BruksfildServices01/studio-manager/internal/models"
)

func TestRemapLegacyEditingStatuses(t *testing.T) {
	gdb := dbtest.Open(t)

	legacy := models.Event{
		AccountID: 1, ClientID: 1, EventType: "Wedding", Location: "Pune",
		Date: time.Now(), Status: workflow.BookingBooked,
		EditingStatus: workflow.EditingStatus("Album Designing"),
	}
	current := models.Event{
		AccountID: 1, ClientID: 1, EventType: "Wedding", Location: "Pune",
		Date: time.Now(), Status: workflow.BookingBooked,
		EditingStatus: workflow.EditingStarted,
	}
	require.NoError(t, gdb.Create(&legacy).Error)
	require.NoError(t, gdb.Create(&current).Error)

	n, err := db.RemapLegacyEditingStatuses(gdb)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	var got models.Event
	require.NoError(t, gdb.First(&got, legacy.ID).Error)
	assert.Equal(t, workflow.EditingPrinting, got.EditingStatus)

	require.NoError(t, gdb.First(&got, current.ID).Error)
	assert.Equal(t, workflow.EditingStarted, got.EditingStatus)
}

func TestBackfillTimezones(t *testing.T) {
	gdb := dbtest.Open(t)

	u := models.User{Name: "Old", Email: "old@studio.test", PasswordHash: "x", Role: "owner"}
	require.NoError(t, gdb.Create(&u).Error)

	require.NoError(t, db.BackfillTimezones(gdb, "Asia/Kolkata"))

	var got models.User
	require.NoError(t, gdb.First(&got, u.ID).Error)
	assert.Equal(t, "Asia/Kolkata", got.Timezone)
}
