package workflow

// Display order is presentation data only. Nothing on the write path reads it.

var BookingOrder = map[BookingStatus]int{
	BookingBooked:     0,
	BookingInProgress: 1,
	BookingCompleted:  2,
	BookingDelivered:  3,
}

var EditingOrder = map[EditingStatus]int{
	EditingNotStarted:     0,
	EditingShootCompleted: 1,
	EditingStarted:        2,
	EditingCompleted:      3,
	EditingPrinting:       4,
	EditingDelivered:      5,
}

// EditingProgress returns a 0-100 percentage for a progress bar.
func EditingProgress(s EditingStatus) int {
	pos, ok := EditingOrder[s]
	if !ok {
		return 0
	}
	return pos * 100 / (len(EditingOrder) - 1)
}

// Stage is one step of the post-production pipeline as shown to users.
type Stage struct {
	Status  EditingStatus `json:"status"`
	Index   int           `json:"index"`
	Done    bool          `json:"done"`
	Current bool          `json:"current"`
}

// Pipeline renders every post-production step relative to current.
func Pipeline(current EditingStatus) []Stage {
	at, known := EditingOrder[current]

	out := make([]Stage, 0, len(EditingStatuses))
	for _, s := range EditingStatuses {
		idx := EditingOrder[s]
		out = append(out, Stage{
			Status:  s,
			Index:   idx,
			Done:    known && idx < at,
			Current: s == current,
		})
	}
	return out
}
