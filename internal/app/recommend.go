package app

import "cybershield-service/internal/domain"

// maxRecentAttempts bounds how much history feeds the recommendation.
const maxRecentAttempts = 5

// SuggestDifficulty picks a target tier from a user's recent attempts,
// newest first. No history starts at beginner; otherwise the mean score over
// at most the last five attempts decides: above 80 advanced, above 60
// intermediate, else beginner.
func SuggestDifficulty(recent []domain.Attempt) domain.Difficulty {
	if len(recent) == 0 {
		return domain.DifficultyBeginner
	}
	if len(recent) > maxRecentAttempts {
		recent = recent[:maxRecentAttempts]
	}

	sum := 0
	for _, attempt := range recent {
		sum += attempt.Score
	}
	mean := float64(sum) / float64(len(recent))

	switch {
	case mean > 80:
		return domain.DifficultyAdvanced
	case mean > 60:
		return domain.DifficultyIntermediate
	default:
		return domain.DifficultyBeginner
	}
}
