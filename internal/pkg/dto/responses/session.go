package responses

import "time"

type Session struct {
	ID           string     `json:"id"`
	Student      string     `json:"student"`
	DoctorID     string     `json:"doctorId"`
	DoctorName   string     `json:"doctorName,omitempty"`
	PatientName  string     `json:"patientName"`
	Mobile       string     `json:"mobile"`
	SlotStart    time.Time  `json:"slotStart"`
	SlotEnd      time.Time  `json:"slotEnd"`
	Mode         string     `json:"mode"`
	Notes        string     `json:"notes,omitempty"`
	Status       string     `json:"status"`
	AllottedDate string     `json:"allottedDate"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

type SessionList struct {
	Upcoming []Session `json:"upcoming"`
	History  []Session `json:"history"`
}
