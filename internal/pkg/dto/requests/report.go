package requests

type CreateReport struct {
	Student         string `json:"student" validate:"required"`
	Name            string `json:"name" validate:"required,min=2,max=100"`
	Age             int    `json:"age" validate:"required,gte=1,lte=120"`
	Gender          string `json:"gender" validate:"required,oneof=male female other"`
	Mode            string `json:"mode" validate:"required,oneof=online offline"`
	Problems        string `json:"problems" validate:"required"`
	Analysis        string `json:"analysis" validate:"required"`
	Metrics         string `json:"metrics"`
	NextSessionDate string `json:"nextSessionDate" validate:"omitempty,isodate"`
	DaysToAttend    int    `json:"daysToAttend" validate:"gte=0"`
	AssessmentSlug  string `json:"assessmentSlug"`
}
