package requests

type CreateSession struct {
	DoctorID    string `json:"doctorId" validate:"required"`
	PatientName string `json:"patientName" validate:"required,min=2,max=100"`
	Mobile      string `json:"mobile" validate:"required"`
	Date        string `json:"date" validate:"required,isodate"`
	StartTime   string `json:"startTime" validate:"required,clock"`
	EndTime     string `json:"endTime" validate:"required,clock"`
	Mode        string `json:"mode" validate:"omitempty,oneof=online offline Online Offline"`
	Notes       string `json:"notes" validate:"max=500"`
}

type UpdateSessionStatus struct {
	Status string `json:"status" validate:"required,oneof=approved booked completed cancelled"`
}

// SessionFilter narrows a doctor's session listing. Date is a YYYY-MM-DD
// allotted date, Day a weekday name, Time an HH:mm slot start.
type SessionFilter struct {
	Date string
	Day  string
	Time string
}
