package constvars

// ContextKey is the typed key for values stored on a request context.
type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_USER_ID_KEY              ContextKey = "user_id"
	CONTEXT_ROLE_KEY                 ContextKey = "role"
)

// Mongo collections
const (
	MongoCollectionUsers        = "users"
	MongoCollectionDoctors      = "doctors"
	MongoCollectionAppointments = "appointments"
	MongoCollectionSessions     = "sessions"
	MongoCollectionUniversities = "universities"
	MongoCollectionReports      = "reports"
)

// Roles
const (
	RoleStudent         = "student"
	RoleDoctor          = "doctor"
	RoleAdmin           = "admin"
	RoleUniversityAdmin = "university_admin"
)

// Doctor availability
const (
	DoctorAvailable    = "available"
	DoctorNotAvailable = "not_available"

	AvailabilityTypeOnline  = "online"
	AvailabilityTypeOffline = "offline"
	AvailabilityTypeBoth    = "both"
)

// Appointment statuses
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusApproved  = "approved"
	AppointmentStatusRejected  = "rejected"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

// Session statuses and modes
const (
	SessionStatusApproved  = "approved"
	SessionStatusBooked    = "booked"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"

	SessionModeOnline  = "Online"
	SessionModeOffline = "Offline"
)

// Date keys are stored as YYYY-MM-DD, time-of-day fields as 24-hour HH:mm.
const (
	DateKeyLayout = "2006-01-02"
	ClockLayout   = "15:04"
)

// Redis key formats
const (
	RedisDoctorSlotsKeyFormat = "doctor:slots:%s:%s"
)

const (
	GeneratedPasswordLength = 8
	MaxActiveSessionsPerDay = 2
	DefaultUpcomingDays     = 7
)

const (
	ImageAllowedProfilePictureFormats = "jpg,jpeg,png"

	ImageProfilePicturePrefix = "profile-picture"
	ImageDoctorPicturePrefix  = "doctor-picture"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)
