package http

import (
	"context"
	"encoding/json"
	"net/http"
)

type submitAttemptRequest struct {
	QuizID  string `json:"quizId"`
	Score   int    `json:"score"`
	Answers []int  `json:"answers"`
}

func (a *API) handleSubmitAttempt(w http.ResponseWriter, r *http.Request) {
	var req submitAttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, _ := currentUser(r)
	attempt, err := a.attempts.Submit(r.Context(), user.ID, req.QuizID, req.Score, req.Answers)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	// Recompute rankings off the request path so slow aggregation never
	// delays the submit response.
	go a.leaderboard.Publish(context.Background())

	respondJSON(w, http.StatusCreated, attempt)
}

func (a *API) handleListAttempts(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)
	attempts, err := a.attempts.ListByUser(r.Context(), user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, attempts)
}

func (a *API) handleRecentAttempts(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)
	attempts, err := a.attempts.Recent(r.Context(), user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, attempts)
}
