package assessments

import (
	"math"

	"campuscare-service/internal/pkg/dto/responses"
)

// Score computes the weighted result for one submission. It is pure: no
// database access, no mutation of the definition.
func Score(assessment *Assessment, answers map[string]string) responses.ScoreResult {
	totalScore := 0
	var unanswered []string

	for _, q := range assessment.Questions {
		given, ok := answers[q.ID]
		if !ok {
			unanswered = append(unanswered, q.ID)
			continue
		}
		weight, ok := q.Weights[given]
		if !ok {
			unanswered = append(unanswered, q.ID)
			continue
		}
		totalScore += weight
	}

	maxScore := assessment.MaxScore()
	percentage := 0
	if maxScore > 0 {
		percentage = int(math.Round(float64(totalScore) / float64(maxScore) * 100))
	}

	bandValue := percentage
	if assessment.BandsOnRaw {
		bandValue = totalScore
	}

	status := "Result calculated"
	message := "Thank you for completing the assessment."
	for _, b := range assessment.Bands {
		if bandValue >= b.Min && bandValue <= b.Max {
			status = b.Status
			message = b.Message
			break
		}
	}

	return responses.ScoreResult{
		Slug:       assessment.Slug,
		TotalScore: totalScore,
		MaxScore:   maxScore,
		Percentage: percentage,
		Status:     status,
		Message:    message,
		Unanswered: unanswered,
	}
}
