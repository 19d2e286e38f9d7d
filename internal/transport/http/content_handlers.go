package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (a *API) handleListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := a.articles.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, articles)
}

func (a *API) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	article, err := a.articles.GetBySlug(r.Context(), slug)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, article)
}

func (a *API) handleRandomQuiz(w http.ResponseWriter, r *http.Request) {
	quiz, err := a.quizzes.RandomQuiz(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, quiz)
}

// handleSuggestedQuiz returns null when no quiz matches the recommended
// difficulty; the client treats that as "nothing to suggest".
func (a *API) handleSuggestedQuiz(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)
	quiz, err := a.quizzes.SuggestedQuiz(r.Context(), user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if quiz == nil {
		respondJSON(w, http.StatusOK, nil)
		return
	}
	respondJSON(w, http.StatusOK, quiz)
}
