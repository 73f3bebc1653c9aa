package requests

type CreateAppointment struct {
	DoctorID  string `json:"doctorId" validate:"required"`
	Date      string `json:"date" validate:"required,isodate"`
	StartTime string `json:"startTime" validate:"required,clock"`
	EndTime   string `json:"endTime" validate:"required,clock"`
	Mode      string `json:"mode" validate:"omitempty,oneof=online offline"`
	Notes     string `json:"notes" validate:"max=500"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected completed cancelled"`
}
