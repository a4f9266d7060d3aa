package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/studio-manager/internal/domain/workflow"
	"github.com/BruksfildServices01/studio-manager/internal/models"
)

func TestFromEvent_RecomputesRemainingBalance(t *testing.T) {
	ev := models.Event{
		ID:            1,
		PackageCost:   50000,
		AdvancePaid:   20000,
		Date:          time.Date(2026, 11, 2, 10, 0, 0, 0, time.UTC),
		EditingStatus: workflow.EditingCompleted,
	}

	out := FromEvent(&ev)
	assert.Equal(t, 30000.0, out.RemainingBalance)
	assert.Equal(t, 60, out.EditingProgress)

	ev.AdvancePaid = 50000
	assert.Equal(t, 0.0, FromEvent(&ev).RemainingBalance)
}

func TestFromEvent_MissingClientIsNil(t *testing.T) {
	ev := models.Event{ClientID: 9}
	assert.Nil(t, FromEvent(&ev).Client)

	ev.Client = &models.Client{ID: 9, Name: "Asha"}
	assert.Equal(t, "Asha", FromEvent(&ev).Client.Name)
}

func TestFromPayment_EventSummary(t *testing.T) {
	p := models.Payment{ID: 3, EventID: 1, Amount: 100}
	assert.Nil(t, FromPayment(&p).Event)

	p.Event = &models.Event{ID: 1, PackageCost: 900}
	assert.Equal(t, 900.0, FromPayment(&p).Event.PackageCost)
}
