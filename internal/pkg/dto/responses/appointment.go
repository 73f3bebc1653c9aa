package responses

import "time"

type Appointment struct {
	ID         string    `json:"id"`
	Student    string    `json:"student"`
	DoctorID   string    `json:"doctorId"`
	DoctorName string    `json:"doctorName,omitempty"`
	SlotStart  time.Time `json:"slotStart"`
	SlotEnd    time.Time `json:"slotEnd"`
	Mode       string    `json:"mode"`
	Notes      string    `json:"notes,omitempty"`
	Status     string    `json:"status"`
}

type AttendanceCounts struct {
	Attended int `json:"attended"`
	Upcoming int `json:"upcoming"`
}
