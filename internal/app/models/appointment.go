package models

import "time"

type Appointment struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Student   string    `json:"student" bson:"student"`
	Doctor    string    `json:"doctor" bson:"doctor"`
	SlotStart time.Time `json:"slotStart" bson:"slotStart"`
	SlotEnd   time.Time `json:"slotEnd" bson:"slotEnd"`
	Mode      string    `json:"mode" bson:"mode"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	Status    string    `json:"status" bson:"status"`
	TimeModel `bson:",inline"`
}
