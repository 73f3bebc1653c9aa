package models

import "time"

type Report struct {
	ID              string     `json:"id" bson:"_id,omitempty"`
	Student         string     `json:"student" bson:"student"`
	Name            string     `json:"name" bson:"name"`
	Age             int        `json:"age" bson:"age"`
	Gender          string     `json:"gender" bson:"gender"`
	Mode            string     `json:"mode" bson:"mode"`
	Problems        string     `json:"problems" bson:"problems"`
	Analysis        string     `json:"analysis" bson:"analysis"`
	Metrics         string     `json:"metrics,omitempty" bson:"metrics,omitempty"`
	NextSessionDate *time.Time `json:"nextSessionDate,omitempty" bson:"nextSessionDate,omitempty"`
	DaysToAttend    int        `json:"daysToAttend,omitempty" bson:"daysToAttend,omitempty"`
	AttendedDate    *time.Time `json:"attendedDate,omitempty" bson:"attendedDate,omitempty"`
	AssessmentSlug  string     `json:"assessmentSlug,omitempty" bson:"assessmentSlug,omitempty"`
	TimeModel       `bson:",inline"`
}
