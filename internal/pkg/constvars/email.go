package constvars

const (
	EmailSendBasicEmailSubjectFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
	EmailSendHTMLSubjectFormat       = "To: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"
)

const (
	EmailDoctorCredentialsSubject = "[CampusCare] Your Account Credentials"
	EmailBodyDoctorCredentials    = "Hi %s,\n\nyour CampusCare account is ready.\n\nEmail: %s\nPassword: %s\n\nPlease change the password after your first login.\n\nCampusCare"

	EmailSessionBookedSubject = "[CampusCare] Session Booked"

	EmailBodySessionBookedStudent = "Hi %s,\n\nyour counselling session with %s on %s from %s to %s (%s) is booked.\n\nCampusCare"
	EmailBodySessionBookedDoctor  = "Hi %s,\n\na new counselling session with %s is booked on %s from %s to %s (%s).\n\nCampusCare"
	EmailBodySessionBookedAdmin   = "A counselling session between %s and %s was booked on %s from %s to %s (%s)."
)
