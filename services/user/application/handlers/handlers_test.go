package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"

	"github.com/ghuser/navboard/pkg/auth"
	"github.com/ghuser/navboard/pkg/config"
	"github.com/ghuser/navboard/pkg/logger"
	appsvcs "github.com/ghuser/navboard/services/user/application/services"
	userdomain "github.com/ghuser/navboard/services/user/domain"
	"github.com/ghuser/navboard/services/user/domain/models"
)

// memUserRepo is an in-memory UserRepository for handler tests.
type memUserRepo struct {
	users      map[int64]*models.User
	activities []*models.Activity
	nextID     int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]*models.User), nextID: 1}
}

func (m *memUserRepo) List(_ context.Context, filter models.ListFilter) ([]*models.User, int, error) {
	filter = filter.Normalize()
	var matched []*models.User
	for _, u := range m.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		cp := *u
		cp.PasswordHash = nil
		matched = append(matched, &cp)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	total := len(matched)
	start := (filter.Page - 1) * filter.Limit
	if start > total {
		start = total
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (m *memUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", userdomain.ErrUserNotFound, id)
	}
	cp := *u
	cp.PasswordHash = nil
	return &cp, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", userdomain.ErrUserNotFound, email)
}

func (m *memUserRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == user.Email {
			return nil, fmt.Errorf("%w: %s", userdomain.ErrEmailExists, user.Email)
		}
	}
	cp := *user
	cp.ID = m.nextID
	m.nextID++
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	m.users[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memUserRepo) Update(_ context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	if patch.Empty() {
		return nil, userdomain.ErrNoFields
	}
	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", userdomain.ErrUserNotFound, id)
	}
	if patch.Name != nil {
		u.Name = patch.Name
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.IsActive != nil {
		u.IsActive = *patch.IsActive
	}
	u.UpdatedAt = time.Now()
	cp := *u
	cp.PasswordHash = nil
	return &cp, nil
}

func (m *memUserRepo) Delete(_ context.Context, id int64) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", userdomain.ErrUserNotFound, id)
	}
	delete(m.users, id)
	return u, nil
}

func (m *memUserRepo) RecordLogin(_ context.Context, id int64) error {
	u, ok := m.users[id]
	if !ok {
		return fmt.Errorf("%w: id %d", userdomain.ErrUserNotFound, id)
	}
	now := time.Now()
	u.LastLogin = &now
	u.LoginCount++
	return nil
}

func (m *memUserRepo) LogActivity(_ context.Context, a *models.Activity) error {
	cp := *a
	cp.ID = int64(len(m.activities) + 1)
	cp.CreatedAt = time.Now()
	m.activities = append(m.activities, &cp)
	return nil
}

func (m *memUserRepo) Activities(_ context.Context, userID int64, limit int) ([]*models.Activity, error) {
	var out []*models.Activity
	for i := len(m.activities) - 1; i >= 0 && len(out) < limit; i-- {
		if m.activities[i].UserID == userID {
			cp := *m.activities[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memUserRepo) Stats(_ context.Context) (*models.Stats, error) {
	s := &models.Stats{}
	for _, u := range m.users {
		s.TotalUsers++
		if u.IsActive {
			s.ActiveUsers++
		} else {
			s.InactiveUsers++
		}
		switch u.Role {
		case models.RoleAdmin:
			s.AdminUsers++
		case models.RoleUser:
			s.RegularUsers++
		}
	}
	return s, nil
}

type testEnv struct {
	router chi.Router
	store  sessions.Store
	repo   *memUserRepo
}

func newTestEnv() *testEnv {
	repo := newMemUserRepo()
	log := logger.New(&config.Config{LogLevel: "error"})
	svcs := &appsvcs.Services{
		User: appsvcs.NewUserService(repo),
		Auth: appsvcs.NewAuthService(repo, log),
	}
	store := sessions.NewCookieStore(
		[]byte("test-auth-key-must-be-32-bytes!!"),
		[]byte("test-enc-key-must-be-32-bytes!!!"),
	)

	r := chi.NewRouter()
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", NewLoginHandler(svcs, store).Execute)
		r.Post("/logout", NewLogoutHandler(svcs, store).Execute)
		r.Get("/session", NewGetSessionHandler(svcs, store).Execute)
	})
	r.Route("/users", func(r chi.Router) {
		r.Use(auth.RequireAuth(store, log))
		r.Get("/", NewGetUsersHandler(svcs).Execute)
		r.Post("/", NewPostUserHandler(svcs).Execute)
		r.Put("/", NewPutUserHandler(svcs).Execute)
		r.Delete("/", NewDeleteUserHandler(svcs).Execute)
		r.Get("/stats", NewGetStatsHandler(svcs).Execute)
		r.Get("/{id}/activities", NewGetActivitiesHandler(svcs).Execute)
	})
	return &testEnv{router: r, store: store, repo: repo}
}

// seedUser inserts a user directly into the fake store, bypassing HTTP.
func (e *testEnv) seedUser(t *testing.T, email, password, role string) *models.User {
	t.Helper()
	u := &models.User{Email: email, Role: role, IsActive: true}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("hash password: %v", err)
		}
		h := string(hash)
		u.PasswordHash = &h
	}
	stored, err := e.repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return stored
}

func (e *testEnv) do(t *testing.T, method, target string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// login performs a credential login and returns the session cookies.
func (e *testEnv) login(t *testing.T, email, password string) []*http.Cookie {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/auth/login", map[string]any{"email": email, "password": password}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login set no session cookie")
	}
	return cookies
}

func TestLoginIssuesSession(t *testing.T) {
	env := newTestEnv()
	seeded := env.seedUser(t, "ada@example.com", "s3cret-pass", models.RoleAdmin)

	cookies := env.login(t, "ada@example.com", "s3cret-pass")

	rec := env.do(t, http.MethodGet, "/auth/session", nil, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("session: status = %d", rec.Code)
	}
	var resp SessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Authenticated || resp.User == nil || resp.User.ID != seeded.ID {
		t.Errorf("session = %+v, want authenticated as user %d", resp, seeded.ID)
	}

	if env.repo.users[seeded.ID].LoginCount != 1 {
		t.Errorf("login count = %d, want 1", env.repo.users[seeded.ID].LoginCount)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv()
	env.seedUser(t, "ada@example.com", "s3cret-pass", models.RoleAdmin)

	tests := []struct {
		name string
		body map[string]any
		want int
	}{
		{"wrong password", map[string]any{"email": "ada@example.com", "password": "nope-nope"}, http.StatusUnauthorized},
		{"unknown email", map[string]any{"email": "ghost@example.com", "password": "whatever"}, http.StatusUnauthorized},
		{"missing password", map[string]any{"email": "ada@example.com"}, http.StatusBadRequest},
		{"malformed email", map[string]any{"email": "not-an-email", "password": "whatever"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/auth/login", tt.body, nil)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d, body = %s", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestLogoutDestroysSession(t *testing.T) {
	env := newTestEnv()
	env.seedUser(t, "ada@example.com", "s3cret-pass", models.RoleAdmin)
	cookies := env.login(t, "ada@example.com", "s3cret-pass")

	rec := env.do(t, http.MethodPost, "/auth/logout", nil, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout: status = %d", rec.Code)
	}

	// The expired cookie replaces the old one.
	after := rec.Result().Cookies()
	rec = env.do(t, http.MethodGet, "/auth/session", nil, after)
	var resp SessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Authenticated {
		t.Error("session still authenticated after logout")
	}
}

func TestSessionAnonymous(t *testing.T) {
	env := newTestEnv()
	rec := env.do(t, http.MethodGet, "/auth/session", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp SessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Authenticated {
		t.Error("anonymous request reported as authenticated")
	}
}

func TestUsersEndpointsRequireSession(t *testing.T) {
	env := newTestEnv()

	targets := []struct {
		method, target string
	}{
		{http.MethodGet, "/users"},
		{http.MethodPost, "/users"},
		{http.MethodPut, "/users"},
		{http.MethodDelete, "/users?id=1"},
		{http.MethodGet, "/users/stats"},
		{http.MethodGet, "/users/1/activities"},
	}
	for _, tt := range targets {
		rec := env.do(t, tt.method, tt.target, nil, nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401", tt.method, tt.target, rec.Code)
		}
	}
}

func TestUserCRUD(t *testing.T) {
	env := newTestEnv()
	env.seedUser(t, "admin@example.com", "s3cret-pass", models.RoleAdmin)
	cookies := env.login(t, "admin@example.com", "s3cret-pass")

	rec := env.do(t, http.MethodPost, "/users", map[string]any{"email": "new@example.com", "name": "New User"}, cookies)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var created UserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Role != models.RoleUser || !created.IsActive {
		t.Errorf("created = %+v, want active default-role user", created)
	}

	rec = env.do(t, http.MethodPost, "/users", map[string]any{"email": "new@example.com"}, cookies)
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate email: status = %d, want 409", rec.Code)
	}

	rec = env.do(t, http.MethodPut, "/users", map[string]any{"id": created.ID, "role": "editor"}, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodPut, "/users", map[string]any{"id": created.ID}, cookies)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty patch: status = %d, want 400", rec.Code)
	}

	rec = env.do(t, http.MethodPut, "/users", map[string]any{"id": 999, "role": "editor"}, cookies)
	if rec.Code != http.StatusNotFound {
		t.Errorf("update unknown: status = %d, want 404", rec.Code)
	}

	rec = env.do(t, http.MethodGet, "/users?role=editor", nil, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: status = %d", rec.Code)
	}
	var list struct {
		Data       []UserResponse `json:"data"`
		Pagination struct {
			Total int `json:"total"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if list.Pagination.Total != 1 || len(list.Data) != 1 || list.Data[0].ID != created.ID {
		t.Errorf("editor listing = %+v, want the updated user", list)
	}

	rec = env.do(t, http.MethodDelete, "/users?id=abc", nil, cookies)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad id: status = %d, want 400", rec.Code)
	}
	rec = env.do(t, http.MethodDelete, fmt.Sprintf("/users?id=%d", created.ID), nil, cookies)
	if rec.Code != http.StatusOK {
		t.Errorf("delete: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	rec = env.do(t, http.MethodDelete, fmt.Sprintf("/users?id=%d", created.ID), nil, cookies)
	if rec.Code != http.StatusNotFound {
		t.Errorf("delete again: status = %d, want 404", rec.Code)
	}
}

func TestStatsAndActivities(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "admin@example.com", "s3cret-pass", models.RoleAdmin)
	env.seedUser(t, "user@example.com", "", models.RoleUser)
	cookies := env.login(t, "admin@example.com", "s3cret-pass")

	rec := env.do(t, http.MethodGet, "/users/stats", nil, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("stats: status = %d", rec.Code)
	}
	var stats StatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.TotalUsers != 2 || stats.AdminUsers != 1 || stats.RegularUsers != 1 {
		t.Errorf("stats = %+v, want 2 total, 1 admin, 1 regular", stats)
	}

	rec = env.do(t, http.MethodGet, fmt.Sprintf("/users/%d/activities", admin.ID), nil, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("activities: status = %d", rec.Code)
	}
	var acts []ActivityResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &acts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(acts) != 1 || acts[0].Action != "login" {
		t.Errorf("activities = %+v, want the login entry", acts)
	}

	rec = env.do(t, http.MethodGet, "/users/999/activities", nil, cookies)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown user activities: status = %d, want 404", rec.Code)
	}
}
