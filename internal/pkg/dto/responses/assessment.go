package responses

type AssessmentSummary struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ItemCount   int    `json:"itemCount"`
}

type AssessmentQuestion struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

type AssessmentDetail struct {
	ID          int                  `json:"id"`
	Title       string               `json:"title"`
	Slug        string               `json:"slug"`
	Description string               `json:"description"`
	Category    string               `json:"category"`
	Questions   []AssessmentQuestion `json:"questions"`
}

type ScoreResult struct {
	Slug       string   `json:"slug"`
	TotalScore int      `json:"score"`
	MaxScore   int      `json:"maxScore"`
	Percentage int      `json:"percentage"`
	Status     string   `json:"status"`
	Message    string   `json:"message"`
	Unanswered []string `json:"unanswered,omitempty"`
}
