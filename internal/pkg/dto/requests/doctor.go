package requests

type TimeSlot struct {
	StartTime   string `json:"startTime" validate:"required,clock"`
	EndTime     string `json:"endTime" validate:"required,clock"`
	IsAvailable bool   `json:"isAvailable"`
}

type DaySchedule struct {
	Day   string     `json:"day" validate:"required,weekday"`
	Slots []TimeSlot `json:"slots" validate:"dive"`
}

type CreateDoctor struct {
	Name             string        `json:"name" validate:"required,min=2,max=100"`
	Specialization   string        `json:"specialization" validate:"required"`
	Email            string        `json:"email" validate:"required,email"`
	Phone            string        `json:"phone" validate:"omitempty"`
	Experience       int           `json:"experience" validate:"gte=0"`
	Fees             int           `json:"fees" validate:"gte=0"`
	Hospital         string        `json:"hospital"`
	AvailabilityType string        `json:"availabilityType" validate:"omitempty,oneof=online offline both"`
	WeeklySchedule   []DaySchedule `json:"weeklySchedule" validate:"dive"`
	Universities     []string      `json:"universities"`
	Image            string        `json:"image,omitempty"`

	// Derived from Image during controller validation, never bound from JSON.
	ImageData      []byte `json:"-"`
	ImageExtension string `json:"-"`
}

type UpdateDoctor struct {
	Name             string        `json:"name" validate:"omitempty,min=2,max=100"`
	Specialization   string        `json:"specialization"`
	Phone            string        `json:"phone"`
	Experience       int           `json:"experience" validate:"gte=0"`
	Fees             int           `json:"fees" validate:"gte=0"`
	Hospital         string        `json:"hospital"`
	AvailabilityType string        `json:"availabilityType" validate:"omitempty,oneof=online offline both"`
	WeeklySchedule   []DaySchedule `json:"weeklySchedule" validate:"dive"`
	Universities     []string      `json:"universities"`
	Image            string        `json:"image,omitempty"`

	ImageData      []byte `json:"-"`
	ImageExtension string `json:"-"`
}

type SetDateSlots struct {
	Date  string     `json:"date" validate:"required,isodate"`
	Slots []TimeSlot `json:"slots" validate:"dive"`
}

// BulkDateSlots replaces multiple dates at once. Setting IsAvailable to
// "not_available" clears every stored date and flips the doctor flag.
type BulkDateSlots struct {
	IsAvailable string                `json:"isAvailable" validate:"omitempty,oneof=available not_available"`
	DateSlots   map[string][]TimeSlot `json:"dateSlots"`
}

type SlotRef struct {
	Date      string `json:"date" validate:"required,isodate"`
	StartTime string `json:"startTime" validate:"required,clock"`
	EndTime   string `json:"endTime" validate:"required,clock"`
}

type UpdateTodaySchedule struct {
	Date      string     `json:"date" validate:"required,isodate"`
	Available bool       `json:"available"`
	Slots     []TimeSlot `json:"slots" validate:"dive"`
}
