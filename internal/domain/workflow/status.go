package workflow

import "github.com/BruksfildServices01/studio-manager/internal/httperr"

// ===============================
// Booking Status
// ===============================

type BookingStatus string

const (
	BookingBooked     BookingStatus = "Booked"
	BookingInProgress BookingStatus = "In Progress"
	BookingCompleted  BookingStatus = "Completed"
	BookingDelivered  BookingStatus = "Delivered"
)

var BookingStatuses = []BookingStatus{
	BookingBooked,
	BookingInProgress,
	BookingCompleted,
	BookingDelivered,
}

func (s BookingStatus) Valid() bool {
	for _, v := range BookingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ===============================
// Post-production Status
// ===============================

type EditingStatus string

const (
	EditingNotStarted     EditingStatus = "Not Started"
	EditingShootCompleted EditingStatus = "Shoot Completed"
	EditingStarted        EditingStatus = "Editing Started"
	EditingCompleted      EditingStatus = "Editing Completed"
	EditingPrinting       EditingStatus = "Printing in Progress"
	EditingDelivered      EditingStatus = "Delivered"
	legacyAlbumDesigning  EditingStatus = "Album Designing"
)

var EditingStatuses = []EditingStatus{
	EditingNotStarted,
	EditingShootCompleted,
	EditingStarted,
	EditingCompleted,
	EditingPrinting,
	EditingDelivered,
}

func (s EditingStatus) Valid() bool {
	for _, v := range EditingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ===============================
// Validations
// ===============================

// Any valid status may follow any other one, including moving backwards.

func ParseBookingStatus(raw string) (BookingStatus, error) {
	s := BookingStatus(raw)
	if !s.Valid() {
		return "", httperr.Validation("invalid_status", "Unknown booking status.")
	}
	return s, nil
}

func ParseEditingStatus(raw string) (EditingStatus, error) {
	s := EditingStatus(raw)
	if !s.Valid() {
		return "", httperr.Validation("invalid_editing_status", "Unknown post-production status.")
	}
	return s, nil
}

func InitialBookingStatus() BookingStatus {
	return BookingBooked
}

func InitialEditingStatus() EditingStatus {
	return EditingNotStarted
}

// LegacyEditingRemap lists stored values that were renamed and what they
// map to today.
func LegacyEditingRemap() map[EditingStatus]EditingStatus {
	return map[EditingStatus]EditingStatus{
		legacyAlbumDesigning: EditingPrinting,
	}
}
