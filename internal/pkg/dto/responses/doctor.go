package responses

import "campuscare-service/internal/app/models"

type Doctor struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Specialization   string               `json:"specialization"`
	Email            string               `json:"email"`
	Phone            string               `json:"phone,omitempty"`
	Experience       int                  `json:"experience"`
	Fees             int                  `json:"fees"`
	Hospital         string               `json:"hospital,omitempty"`
	AvailabilityType string               `json:"availabilityType"`
	Availability     string               `json:"availability"`
	Image            string               `json:"image,omitempty"`
	Universities     []string             `json:"universities,omitempty"`
	TodaySlots       []models.TimeSlot    `json:"todaySlots"`
	WeeklySchedule   []models.DaySchedule `json:"weeklySchedule,omitempty"`
}

type CreateDoctor struct {
	Doctor
	GeneratedPassword string `json:"generatedPassword"`
}

type DateSlots struct {
	Date  string            `json:"date"`
	Slots []models.TimeSlot `json:"slots"`
}

type UpcomingAvailability struct {
	DoctorID string      `json:"doctorId"`
	Days     []DateSlots `json:"days"`
}

type SlotBooking struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Booked    bool   `json:"booked"`
}
