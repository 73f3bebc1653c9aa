package models

// TimeSlot is a bookable start/end interval on a single day. Identity within
// a list is the (startTime, endTime) pair; there is no separate slot id.
type TimeSlot struct {
	StartTime   string `json:"startTime" bson:"startTime"`
	EndTime     string `json:"endTime" bson:"endTime"`
	IsAvailable bool   `json:"isAvailable" bson:"isAvailable"`
}

// DaySchedule is one weekday's recurring slot template.
type DaySchedule struct {
	Day   string     `json:"day" bson:"day"`
	Slots []TimeSlot `json:"slots" bson:"slots"`
}

// TodaySchedule is a legacy single-day override, below the dateSlots map and
// above the weekly template in the lookup order for the literal current date.
type TodaySchedule struct {
	Date      string     `json:"date" bson:"date"`
	Available bool       `json:"available" bson:"available"`
	Slots     []TimeSlot `json:"slots" bson:"slots"`
}

type Doctor struct {
	ID               string                `json:"id" bson:"_id,omitempty"`
	Name             string                `json:"name" bson:"name"`
	Specialization   string                `json:"specialization" bson:"specialization"`
	Email            string                `json:"email" bson:"email"`
	Phone            string                `json:"phone" bson:"phone"`
	Password         string                `json:"-" bson:"password"`
	Role             string                `json:"role" bson:"role"`
	Experience       int                   `json:"experience" bson:"experience"`
	ImageUrl         string                `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Fees             int                   `json:"fees" bson:"fees"`
	Hospital         string                `json:"hospital" bson:"hospital"`
	AvailabilityType string                `json:"availabilityType" bson:"availabilityType"`
	IsAvailable      string                `json:"isAvailable" bson:"isAvailable"`
	WeeklySchedule   []DaySchedule         `json:"weeklySchedule" bson:"weeklySchedule"`
	TodaySchedule    TodaySchedule         `json:"todaySchedule" bson:"todaySchedule"`
	DateSlots        map[string][]TimeSlot `json:"dateSlots" bson:"dateSlots"`
	Universities     []string              `json:"universities" bson:"universities"`
	TimeModel        `bson:",inline"`
}
