package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingDataKey       = "data"
	LoggingRequestKey    = "request"
	LoggingResponseKey   = "response"
	LoggingUserIDKey     = "user_id"
	LoggingRoleKey       = "role"
	LoggingDoctorIDKey   = "doctor_id"
	LoggingDateKey       = "date"
)
