package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/studio-manager/internal/httperr"
)

func TestParseBookingStatus(t *testing.T) {
	for _, s := range BookingStatuses {
		got, err := ParseBookingStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseBookingStatus("Cancelled")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	_, err = ParseBookingStatus("booked")
	assert.Error(t, err, "values are case sensitive")
}

func TestParseEditingStatus(t *testing.T) {
	for _, s := range EditingStatuses {
		_, err := ParseEditingStatus(string(s))
		require.NoError(t, err)
	}

	_, err := ParseEditingStatus("Album Designing")
	assert.True(t, httperr.IsBusiness(err, "invalid_editing_status"))
}

func TestLegacyEditingRemap_TargetsAreValid(t *testing.T) {
	for from, to := range LegacyEditingRemap() {
		assert.False(t, from.Valid())
		assert.True(t, to.Valid())
	}
}

func TestEditingProgress(t *testing.T) {
	assert.Equal(t, 0, EditingProgress(EditingNotStarted))
	assert.Equal(t, 40, EditingProgress(EditingStarted))
	assert.Equal(t, 100, EditingProgress(EditingDelivered))
	assert.Equal(t, 0, EditingProgress("unknown"))
}

func TestPipeline(t *testing.T) {
	stages := Pipeline(EditingCompleted)
	require.Len(t, stages, len(EditingStatuses))

	assert.True(t, stages[0].Done)
	assert.True(t, stages[2].Done)
	assert.True(t, stages[3].Current)
	assert.False(t, stages[3].Done)
	assert.False(t, stages[4].Done)
}

func TestDisplayOrderCoversEveryStatus(t *testing.T) {
	assert.Len(t, BookingOrder, len(BookingStatuses))
	assert.Len(t, EditingOrder, len(EditingStatuses))
}
