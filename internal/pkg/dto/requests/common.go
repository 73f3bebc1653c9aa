package requests

type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

type DoctorFilter struct {
	Specialization   string
	AvailabilityType string
	University       string
	Search           string
	Pagination
}

type AppointmentFilter struct {
	Student string
	Doctor  string
	Status  string
	Search  string
}
