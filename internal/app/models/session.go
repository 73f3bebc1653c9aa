package models

import "time"

type Session struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	Student      string     `json:"student" bson:"student"`
	DoctorID     string     `json:"doctorId" bson:"doctorId"`
	PatientName  string     `json:"patientName" bson:"patientName"`
	Mobile       string     `json:"mobile" bson:"mobile"`
	SlotStart    time.Time  `json:"slotStart" bson:"slotStart"`
	SlotEnd      time.Time  `json:"slotEnd" bson:"slotEnd"`
	Mode         string     `json:"mode" bson:"mode"`
	Notes        string     `json:"notes,omitempty" bson:"notes,omitempty"`
	Status       string     `json:"status" bson:"status"`
	CompletedAt  *time.Time `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	AllottedDate string     `json:"allottedDate" bson:"allottedDate"`
	TimeModel    `bson:",inline"`
}
