package http

import (
	"encoding/json"
	"net/http"
)

type registerRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := a.auth.Register(r.Context(), req.Email, req.FirstName, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	a.setSessionCookie(w, token)
	respondJSON(w, http.StatusCreated, user)
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := a.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	a.setSessionCookie(w, token)
	respondJSON(w, http.StatusOK, user)
}

// handleLogout is idempotent; a request without a valid session still
// clears the cookie and reports success.
func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if err := a.auth.Logout(r.Context(), cookie.Value); err != nil {
			respondServiceError(w, err)
			return
		}
	}
	a.clearSessionCookie(w)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (a *API) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)
	respondJSON(w, http.StatusOK, user)
}
