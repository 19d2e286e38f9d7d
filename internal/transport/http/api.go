package http

import (
	"net/http"
	"time"

	"cybershield-service/internal/app"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

// API bundles the use-case services behind the REST surface.
type API struct {
	auth         *app.AuthService
	articles     *app.ArticleService
	quizzes      *app.QuizService
	attempts     *app.AttemptService
	leaderboard  *app.LeaderboardService
	incidents    *app.IncidentService
	achievements *app.AchievementService
	admin        *app.AdminService
	chat         *app.ChatService
	sessionTTL   time.Duration
	upgrader     websocket.Upgrader
}

// Deps lists everything the API needs; all fields are required.
type Deps struct {
	Auth         *app.AuthService
	Articles     *app.ArticleService
	Quizzes      *app.QuizService
	Attempts     *app.AttemptService
	Leaderboard  *app.LeaderboardService
	Incidents    *app.IncidentService
	Achievements *app.AchievementService
	Admin        *app.AdminService
	Chat         *app.ChatService
	SessionTTL   time.Duration
}

func NewAPI(deps Deps) *API {
	return &API{
		auth:         deps.Auth,
		articles:     deps.Articles,
		quizzes:      deps.Quizzes,
		attempts:     deps.Attempts,
		leaderboard:  deps.Leaderboard,
		incidents:    deps.Incidents,
		achievements: deps.Achievements,
		admin:        deps.Admin,
		chat:         deps.Chat,
		sessionTTL:   deps.SessionTTL,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Routes builds the full route table.
func (a *API) Routes() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Public routes.
	api.HandleFunc("/register", a.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/login", a.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/logout", a.handleLogout).Methods(http.MethodGet)
	api.HandleFunc("/articles", a.handleListArticles).Methods(http.MethodGet)
	api.HandleFunc("/articles/{slug}", a.handleGetArticle).Methods(http.MethodGet)
	api.HandleFunc("/quizzes/random", a.handleRandomQuiz).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard", a.handleLeaderboard).Methods(http.MethodGet)
	api.HandleFunc("/chat", a.handleChat).Methods(http.MethodPost)

	// Session-protected routes.
	api.Handle("/auth/user", a.requireUser(a.handleCurrentUser)).Methods(http.MethodGet)
	api.Handle("/quiz-attempts", a.requireUser(a.handleSubmitAttempt)).Methods(http.MethodPost)
	api.Handle("/quiz-attempts", a.requireUser(a.handleListAttempts)).Methods(http.MethodGet)
	api.Handle("/quiz-attempts/recent", a.requireUser(a.handleRecentAttempts)).Methods(http.MethodGet)
	api.Handle("/quiz/suggested", a.requireUser(a.handleSuggestedQuiz)).Methods(http.MethodGet)
	api.Handle("/incident-reports", a.requireUser(a.handleCreateIncident)).Methods(http.MethodPost)
	api.Handle("/incident-reports", a.requireUser(a.handleListIncidents)).Methods(http.MethodGet)
	api.Handle("/achievements", a.requireUser(a.handleAchievements)).Methods(http.MethodGet)
	api.Handle("/admin/stats", a.requireAdmin(a.handleAdminStats)).Methods(http.MethodGet)

	r.HandleFunc("/ws/leaderboard", a.handleLeaderboardWS)

	return r
}
