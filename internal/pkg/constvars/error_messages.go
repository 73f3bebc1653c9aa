package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"eqfield":  "must match %s",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"numeric":  "must be a number",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"url":      "must be a valid URL",
	"uuid":     "must be a valid UUID",
	"base64":   "must be a valid base64 string",
	"clock":    "must be a valid 24-hour time in HH:mm format",
	"isodate":  "must be a valid date in YYYY-MM-DD format",
	"weekday":  "must be a valid weekday name",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"len":     true,
	"eqfield": true,
	"gt":      true,
	"gte":     true,
	"lt":      true,
	"lte":     true,
	"oneof":   true,
}

// Error messages for clients
const (
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientUniversityNotRecognized       = "your email domain doesn't belong to any registered university"
	ErrClientDoctorNotAvailable            = "the doctor is currently not accepting bookings"
	ErrClientSlotAlreadyBooked             = "this time slot is no longer available"
	ErrClientSlotNotFound                  = "no such time slot exists for that date"
	ErrClientInvalidSlotWindow             = "slot start time must be before end time"
	ErrClientDailySessionLimit             = "you already have the maximum number of sessions for that day"
	ErrClientAssessmentNotFound            = "assessment not found"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientSessionNotFound               = "session not found"
	ErrClientUniversityNotFound            = "university not found"
	ErrClientUniversityAlreadyExists       = "a university with that name is already registered"
	ErrClientReportNotFound                = "report not found"
	ErrClientInvalidStatusTransition       = "the requested status change is not allowed"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate          = "cannot parse the requested date"
	ErrDevCannotParseClock         = "cannot parse time-of-day, expected HH:mm"
	ErrDevInvalidFormat            = "invalid %s format"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevDocumentNotFound         = "document not found"
	ErrDevUserNotExists            = "user not exists in our system"
	ErrDevEmailAlreadyExists       = "email already exists"
	ErrDevUniversityAlreadyExists  = "university name already exists"
	ErrDevUniversityDomainNoMatch  = "no university matches the email domain"
	ErrDevDoctorNotAvailable       = "doctor isAvailable flag is not 'available'"
	ErrDevSlotAlreadyBooked        = "conditional slot update matched no available slot"
	ErrDevSlotNotFound             = "slot with the given start/end does not exist for the date"
	ErrDevInvalidSlotWindow        = "slot startTime must be strictly before endTime"
	ErrDevDailySessionLimitReached = "student reached max active sessions for the date"
	ErrDevInvalidStatusTransition  = "status transition not allowed from current state"

	// SMTP
	ErrDevSMTPSendEmail = "failed to send email via SMTP client hostname %s"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevImageValidationFailed      = "image validation failed"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthPermissionDenied      = "permission denied"
	ErrDevRoleTypeDoesntMatch       = "request done by user with a different role"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Minio messages
	ErrDevMinioFailedToCreateObject          = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisGetNoData  = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublish = "failed to publish message into queue %s"

	// Server messages
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
)

const (
	ErrEnvParsing     = "Error parsing %s: %v, will use default value"
	ErrEnvKeyNotExist = "Error getting env key: %s, will use default value"
)
