package slots

import "campuscare-service/internal/app/models"

// clock holds a local wall time (hour and minute).
type clock struct {
	H int
	M int
}

func (c clock) minuteOfDay() int {
	return c.H*60 + c.M
}

// DateSlots pairs a calendar date key (YYYY-MM-DD) with the slots resolved
// for that date.
type DateSlots struct {
	Date  string            `json:"date"`
	Slots []models.TimeSlot `json:"slots"`
}
