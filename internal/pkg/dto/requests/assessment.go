package requests

// SubmitAssessment carries the chosen option text keyed by question id.
// Missing or unrecognized answers score zero.
type SubmitAssessment struct {
	Answers map[string]string `json:"answers" validate:"required"`
}
