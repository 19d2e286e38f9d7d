package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cybershield-service/internal/app"
	"cybershield-service/internal/domain"
	"cybershield-service/internal/infra/memory"

	"github.com/gorilla/mux"
)

type fakeCompleter struct {
	reply string
	err   error
}

func (c *fakeCompleter) Complete(context.Context, []app.ChatMessage) (string, error) {
	return c.reply, c.err
}

type fixture struct {
	api      *API
	router   *mux.Router
	users    *memory.UserStore
	quizzes  *memory.QuizStore
	badges   *memory.BadgeStore
	sessions *memory.SessionStore
	chat     *fakeCompleter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	users := memory.NewUserStore()
	articles := memory.NewArticleStore()
	quizzes := memory.NewQuizStore()
	attempts := memory.NewAttemptStore()
	incidents := memory.NewIncidentStore()
	badges := memory.NewBadgeStore()
	sessions := memory.NewSessionStore(time.Hour)
	chat := &fakeCompleter{reply: "stay safe"}

	article := domain.Article{
		ID:    "a1",
		Title: "Spotting Phishing",
		Slug:  "spotting-phishing",
	}
	if err := articles.Create(ctx, &article); err != nil {
		t.Fatalf("seed article: %v", err)
	}
	quiz := domain.Quiz{
		ID:         "quiz-1",
		Title:      "Basics",
		Difficulty: domain.DifficultyBeginner,
		Questions: []domain.Question{
			{Question: "Pick A", Options: []string{"A", "B"}, CorrectAnswer: 0},
			{Question: "Pick B", Options: []string{"A", "B"}, CorrectAnswer: 1},
		},
	}
	if err := quizzes.Create(ctx, &quiz); err != nil {
		t.Fatalf("seed quiz: %v", err)
	}

	api := NewAPI(Deps{
		Auth:         app.NewAuthService(users, sessions),
		Articles:     app.NewArticleService(articles),
		Quizzes:      app.NewQuizService(quizzes, attempts),
		Attempts:     app.NewAttemptService(attempts, quizzes),
		Leaderboard:  app.NewLeaderboardService(memory.NewLeaderboardSource(users, attempts, badges), nil),
		Incidents:    app.NewIncidentService(incidents),
		Achievements: app.NewAchievementService(badges),
		Admin:        app.NewAdminService(users, articles, quizzes, attempts, incidents),
		Chat:         app.NewChatService(chat),
		SessionTTL:   time.Hour,
	})

	return &fixture{
		api:      api,
		router:   api.Routes(),
		users:    users,
		quizzes:  quizzes,
		badges:   badges,
		sessions: sessions,
		chat:     chat,
	}
}

func (f *fixture) do(t *testing.T, method, path, cookie string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

// register creates an account and returns its session token.
func (f *fixture) register(t *testing.T, email string) string {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/api/register", "", map[string]string{
		"email":    email,
		"password": "pw",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c.Value
		}
	}
	t.Fatalf("register did not set a session cookie")
	return ""
}

func TestRegisterLoginLogoutFlow(t *testing.T) {
	f := newFixture(t)
	token := f.register(t, "alice@example.com")

	rec := f.do(t, http.MethodGet, "/api/auth/user", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("auth/user: expected 200, got %d", rec.Code)
	}
	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("unexpected user %+v", user)
	}
	if strings.Contains(rec.Body.String(), "passwordHash") {
		t.Fatalf("password hash must never be serialized")
	}

	rec = f.do(t, http.MethodGet, "/api/logout", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", rec.Code)
	}
	rec = f.do(t, http.MethodGet, "/api/auth/user", token, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", rec.Code)
	}
}

func TestLoginFailures(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice@example.com")

	rec := f.do(t, http.MethodPost, "/api/login", "", map[string]string{
		"email": "alice@example.com", "password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodPost, "/api/register", "", map[string]string{
		"email": "alice@example.com", "password": "pw",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400, got %d", rec.Code)
	}
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	f := newFixture(t)
	for _, path := range []string{
		"/api/auth/user",
		"/api/quiz-attempts",
		"/api/quiz-attempts/recent",
		"/api/quiz/suggested",
		"/api/incident-reports",
		"/api/achievements",
		"/api/admin/stats",
	} {
		rec := f.do(t, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, rec.Code)
		}
	}
}

func TestArticleEndpoints(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/articles", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodGet, "/api/articles/spotting-phishing", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodGet, "/api/articles/nope", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown slug: expected 404, got %d", rec.Code)
	}
}

func TestRandomQuizEndpoint(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/quizzes/random", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var quiz domain.Quiz
	if err := json.Unmarshal(rec.Body.Bytes(), &quiz); err != nil {
		t.Fatalf("decode quiz: %v", err)
	}
	if quiz.ID != "quiz-1" {
		t.Fatalf("unexpected quiz %+v", quiz)
	}
}

func TestSubmitAndListAttempts(t *testing.T) {
	f := newFixture(t)
	token := f.register(t, "alice@example.com")

	rec := f.do(t, http.MethodPost, "/api/quiz-attempts", token, map[string]interface{}{
		"quizId": "quiz-1", "score": 50, "answers": []int{0, 0},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = f.do(t, http.MethodPost, "/api/quiz-attempts", token, map[string]interface{}{
		"quizId": "quiz-404", "score": 50, "answers": []int{0, 0},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown quiz: expected 400, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodGet, "/api/quiz-attempts", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	var attempts []domain.Attempt
	if err := json.Unmarshal(rec.Body.Bytes(), &attempts); err != nil {
		t.Fatalf("decode attempts: %v", err)
	}
	if len(attempts) != 1 || attempts[0].Score != 50 {
		t.Fatalf("unexpected attempts %+v", attempts)
	}

	rec = f.do(t, http.MethodGet, "/api/quiz-attempts/recent", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("recent: expected 200, got %d", rec.Code)
	}
}

func TestSuggestedQuizEndpoint(t *testing.T) {
	f := newFixture(t)
	token := f.register(t, "alice@example.com")

	// Fresh user gets the beginner quiz.
	rec := f.do(t, http.MethodGet, "/api/quiz/suggested", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var quiz domain.Quiz
	if err := json.Unmarshal(rec.Body.Bytes(), &quiz); err != nil {
		t.Fatalf("decode quiz: %v", err)
	}
	if quiz.ID != "quiz-1" {
		t.Fatalf("expected beginner quiz, got %+v", quiz)
	}
}

func TestSuggestedQuizNullWhenNoMatch(t *testing.T) {
	f := newFixture(t)
	token := f.register(t, "alice@example.com")

	// Push the user to advanced; there is no advanced quiz in the catalog.
	for i := 0; i < 3; i++ {
		rec := f.do(t, http.MethodPost, "/api/quiz-attempts", token, map[string]interface{}{
			"quizId": "quiz-1", "score": 100, "answers": []int{0, 1},
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("submit: expected 201, got %d", rec.Code)
		}
	}

	rec := f.do(t, http.MethodGet, "/api/quiz/suggested", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "null" {
		t.Fatalf("expected null body, got %q", rec.Body.String())
	}
}

func TestIncidentEndpoints(t *testing.T) {
	f := newFixture(t)
	token := f.register(t, "alice@example.com")

	rec := f.do(t, http.MethodPost, "/api/incident-reports", token, map[string]interface{}{
		"title":         "Phishing email",
		"description":   "Asked for my password",
		"incidentType":  "phishing",
		"affectedAreas": "email",
		"severity":      "high",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = f.do(t, http.MethodPost, "/api/incident-reports", token, map[string]interface{}{
		"title":         "Broken",
		"description":   "x",
		"incidentType":  "phishing",
		"affectedAreas": "email",
		"severity":      "apocalyptic",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad severity: expected 400, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodGet, "/api/incident-reports", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	var reports []domain.IncidentReport
	if err := json.Unmarshal(rec.Body.Bytes(), &reports); err != nil {
		t.Fatalf("decode reports: %v", err)
	}
	if len(reports) != 1 || reports[0].Status != "open" {
		t.Fatalf("unexpected reports %+v", reports)
	}
}

func TestAchievementsEndpoint(t *testing.T) {
	f := newFixture(t)
	token := f.register(t, "alice@example.com")

	rec := f.do(t, http.MethodGet, "/api/auth/user", token, nil)
	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}

	badge := domain.Badge{ID: "b1", Name: "First Steps"}
	if err := f.badges.CreateBadge(context.Background(), &badge); err != nil {
		t.Fatalf("create badge: %v", err)
	}
	f.badges.Award(domain.UserAchievement{ID: "ach1", UserID: user.ID, BadgeID: "b1", EarnedAt: time.Now()})

	rec = f.do(t, http.MethodGet, "/api/achievements", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var earned []app.EarnedBadge
	if err := json.Unmarshal(rec.Body.Bytes(), &earned); err != nil {
		t.Fatalf("decode achievements: %v", err)
	}
	if len(earned) != 1 || earned[0].Badge.Name != "First Steps" {
		t.Fatalf("unexpected achievements %+v", earned)
	}
}

func TestAdminStatsRequiresAdmin(t *testing.T) {
	f := newFixture(t)
	token := f.register(t, "alice@example.com")

	rec := f.do(t, http.MethodGet, "/api/admin/stats", token, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-admin: expected 403, got %d", rec.Code)
	}

	// Seed an admin directly and open a session for them.
	ctx := context.Background()
	admin := domain.User{ID: "admin-1", Email: "admin@example.com", IsAdmin: true}
	if err := f.users.Create(ctx, &admin); err != nil {
		t.Fatalf("create admin: %v", err)
	}
	if err := f.sessions.Create(ctx, "admin-token", admin.ID); err != nil {
		t.Fatalf("create session: %v", err)
	}

	rec = f.do(t, http.MethodGet, "/api/admin/stats", "admin-token", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin: expected 200, got %d", rec.Code)
	}
	var stats app.AdminStats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.Users != 2 || stats.Quizzes != 1 || stats.Articles != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestLeaderboardEndpoint(t *testing.T) {
	f := newFixture(t)
	token := f.register(t, "alice@example.com")

	rec := f.do(t, http.MethodPost, "/api/quiz-attempts", token, map[string]interface{}{
		"quizId": "quiz-1", "score": 80, "answers": []int{0, 1},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodGet, "/api/leaderboard", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var entries []domain.LeaderboardEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode leaderboard: %v", err)
	}
	if len(entries) != 1 || entries[0].TotalScore != 80 {
		t.Fatalf("unexpected leaderboard %+v", entries)
	}
}

func TestChatEndpoint(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/chat", "", map[string]interface{}{
		"message": "what is phishing?",
		"conversationHistory": []map[string]string{
			{"sender": "user", "text": "hi"},
			{"sender": "bot", "text": "hello"},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode reply: %v", err)
	}
	if resp["reply"] != "stay safe" {
		t.Fatalf("unexpected reply %q", resp["reply"])
	}

	rec = f.do(t, http.MethodPost, "/api/chat", "", map[string]string{"message": ""})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty message: expected 400, got %d", rec.Code)
	}

	f.chat.err = errors.New("upstream down")
	rec = f.do(t, http.MethodPost, "/api/chat", "", map[string]string{"message": "hi"})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("upstream failure: expected 502, got %d", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("unexpected healthz response: %d %q", rec.Code, rec.Body.String())
	}
}
