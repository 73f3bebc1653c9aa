package models

type User struct {
	ID             string `json:"id" bson:"_id,omitempty"`
	Name           string `json:"name" bson:"name"`
	Email          string `json:"email" bson:"email"`
	Password       string `json:"-" bson:"password"`
	Role           string `json:"role" bson:"role"`
	University     string `json:"university,omitempty" bson:"university,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty" bson:"profilePicture,omitempty"`
	LeaveBalance   int    `json:"leaveBalance" bson:"leaveBalance"`
	IsVerified     bool   `json:"isVerified" bson:"isVerified"`
	IsApproved     bool   `json:"isApproved" bson:"isApproved"`
	AttendedCount  int    `json:"attendedCount" bson:"attendedCount"`
	TimeModel      `bson:",inline"`
}
