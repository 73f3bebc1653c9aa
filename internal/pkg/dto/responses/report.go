package responses

import "time"

type Report struct {
	ID              string     `json:"id"`
	Student         string     `json:"student"`
	Name            string     `json:"name"`
	Age             int        `json:"age"`
	Gender          string     `json:"gender"`
	Mode            string     `json:"mode"`
	Problems        string     `json:"problems"`
	Analysis        string     `json:"analysis"`
	Metrics         string     `json:"metrics,omitempty"`
	NextSessionDate *time.Time `json:"nextSessionDate,omitempty"`
	DaysToAttend    int        `json:"daysToAttend,omitempty"`
	AttendedDate    *time.Time `json:"attendedDate,omitempty"`
	AssessmentSlug  string     `json:"assessmentSlug,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}
