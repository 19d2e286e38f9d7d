package app

import (
	"math"

	"cybershield-service/internal/domain"
)

// QuestionResult is the graded outcome for a single question, used by the
// post-quiz review listing.
type QuestionResult struct {
	Question    string `json:"question"`
	Chosen      int    `json:"chosen"`
	ChosenText  string `json:"chosenText"`
	CorrectText string `json:"correctText"`
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation"`
}

// Review is the full graded outcome of a completed quiz run.
type Review struct {
	Score        int              `json:"score"`
	CorrectCount int              `json:"correctCount"`
	Total        int              `json:"total"`
	Results      []QuestionResult `json:"results"`
}

// Grade compares answers against questions position by position. The two
// slices are aligned by index; a missing or out-of-range answer is simply
// incorrect, and its chosen-option text is left empty so display never
// indexes past the options.
func Grade(questions []domain.Question, answers []int) Review {
	review := Review{
		Total:   len(questions),
		Results: make([]QuestionResult, 0, len(questions)),
	}

	for i, q := range questions {
		chosen := -1
		if i < len(answers) {
			chosen = answers[i]
		}

		result := QuestionResult{
			Question:    q.Question,
			Chosen:      chosen,
			Explanation: q.Explanation,
		}
		if chosen >= 0 && chosen < len(q.Options) {
			result.ChosenText = q.Options[chosen]
		}
		if q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options) {
			result.CorrectText = q.Options[q.CorrectAnswer]
		}
		if chosen == q.CorrectAnswer {
			result.Correct = true
			review.CorrectCount++
		}
		review.Results = append(review.Results, result)
	}

	review.Score = scorePercent(review.CorrectCount, len(questions))
	return review
}

// scorePercent computes round(100*correct/total). A zero-question quiz
// scores 0 rather than dividing by zero.
func scorePercent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}
