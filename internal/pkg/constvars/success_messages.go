package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	SignupSuccessMessage                = "account created successfully"
	LoginSuccessMessage                 = "successfully login"
	CreateUniversityAdminSuccessMessage = "university admin created successfully"

	// User messages
	GetProfileSuccessMessage    = "get profile successfully"
	UpdateProfileSuccessMessage = "profile updated successfully"

	// Doctor messages
	CreateDoctorSuccessMessage      = "doctor created successfully"
	UpdateDoctorSuccessMessage      = "doctor updated successfully"
	DeleteDoctorSuccessMessage      = "doctor deleted successfully"
	GetDoctorsSuccessMessage        = "get doctors successfully"
	GetDoctorSuccessMessage         = "get doctor successfully"
	GetSlotsSuccessMessage          = "get slots successfully"
	SetSlotsSuccessMessage          = "slots updated successfully"
	ClearSlotsSuccessMessage        = "slots cleared successfully"
	BookSlotSuccessMessage          = "slot booked successfully"
	UnbookSlotSuccessMessage        = "slot released successfully"
	GetAvailabilitySuccessMessage   = "get availability successfully"
	UpdateTodayScheduleSuccess      = "today's schedule updated successfully"
	UpdateAllSlotsSuccessMessage    = "all slots updated successfully"
	GetUpcomingAvailabilitySuccess  = "get upcoming availability successfully"
	GetDatesWithSlotsSuccessMessage = "get dates with slots successfully"

	// Appointment messages
	CreateAppointmentSuccessMessage = "appointment created successfully"
	GetAppointmentsSuccessMessage   = "get appointments successfully"
	UpdateAppointmentStatusSuccess  = "appointment status updated successfully"
	GetAttendedCountSuccessMessage  = "get attended count successfully"
	GetUpcomingCountSuccessMessage  = "get upcoming count successfully"

	// Session messages
	CreateSessionSuccessMessage = "session booked successfully"
	GetSessionsSuccessMessage   = "get sessions successfully"
	UpdateSessionStatusSuccess  = "session status updated successfully"

	// Assessment messages
	GetAssessmentsSuccessMessage  = "get assessments successfully"
	GetAssessmentSuccessMessage   = "get assessment successfully"
	ScoreAssessmentSuccessMessage = "assessment scored successfully"

	// University messages
	CreateUniversitySuccessMessage = "university created successfully"
	GetUniversitiesSuccessMessage  = "get universities successfully"
	GetUniversitySuccessMessage    = "get university successfully"

	// Report messages
	CreateReportSuccessMessage = "report created successfully"
	GetReportsSuccessMessage   = "get reports successfully"
)
