package responses

type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	University     string `json:"university,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	AttendedCount  int    `json:"attendedCount"`
}
