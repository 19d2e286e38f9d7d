package http

import (
	"encoding/json"
	"net/http"

	"cybershield-service/internal/app"
)

func (a *API) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := a.leaderboard.Snapshot(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

func (a *API) handleAchievements(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)
	earned, err := a.achievements.ListForUser(r.Context(), user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, earned)
}

func (a *API) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.admin.Stats(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

type chatRequest struct {
	Message string `json:"message"`
	History []struct {
		Sender string `json:"sender"`
		Text   string `json:"text"`
	} `json:"conversationHistory"`
}

// handleChat forwards the conversation to the configured completion API.
// Upstream failures come back as 502 so the client can show a retry hint.
func (a *API) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Message == "" {
		respondError(w, http.StatusBadRequest, "Message is required")
		return
	}

	history := make([]app.ChatMessage, 0, len(req.History))
	for _, m := range req.History {
		role := "user"
		if m.Sender == "bot" {
			role = "assistant"
		}
		history = append(history, app.ChatMessage{Role: role, Content: m.Text})
	}

	reply, err := a.chat.Reply(r.Context(), req.Message, history)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Assistant is unavailable right now")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
