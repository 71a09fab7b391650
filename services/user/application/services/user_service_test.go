package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ghuser/navboard/pkg/config"
	"github.com/ghuser/navboard/pkg/logger"
	userdomain "github.com/ghuser/navboard/services/user/domain"
	"github.com/ghuser/navboard/services/user/domain/models"
)

// fakeUserRepo is an in-memory UserRepository for unit tests.
type fakeUserRepo struct {
	users      map[int64]*models.User
	activities []*models.Activity
	nextID     int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User), nextID: 1}
}

func (f *fakeUserRepo) List(_ context.Context, filter models.ListFilter) ([]*models.User, int, error) {
	filter = filter.Normalize()
	var matched []*models.User
	for _, u := range f.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.Search != "" {
			s := strings.ToLower(filter.Search)
			name := ""
			if u.Name != nil {
				name = strings.ToLower(*u.Name)
			}
			if !strings.Contains(name, s) && !strings.Contains(strings.ToLower(u.Email), s) {
				continue
			}
		}
		cp := *u
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

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", userdomain.ErrUserNotFound, id)
	}
	cp := *u
	cp.PasswordHash = nil
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", userdomain.ErrUserNotFound, email)
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == user.Email {
			return nil, fmt.Errorf("%w: %s", userdomain.ErrEmailExists, user.Email)
		}
	}
	cp := *user
	cp.ID = f.nextID
	f.nextID++
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	f.users[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeUserRepo) Update(_ context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	if patch.Empty() {
		return nil, userdomain.ErrNoFields
	}
	u, ok := f.users[id]
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
	return &cp, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", userdomain.ErrUserNotFound, id)
	}
	delete(f.users, id)
	return u, nil
}

func (f *fakeUserRepo) RecordLogin(_ context.Context, id int64) error {
	u, ok := f.users[id]
	if !ok {
		return fmt.Errorf("%w: id %d", userdomain.ErrUserNotFound, id)
	}
	now := time.Now()
	u.LastLogin = &now
	u.LoginCount++
	return nil
}

func (f *fakeUserRepo) LogActivity(_ context.Context, a *models.Activity) error {
	cp := *a
	cp.ID = int64(len(f.activities) + 1)
	cp.CreatedAt = time.Now()
	f.activities = append(f.activities, &cp)
	return nil
}

func (f *fakeUserRepo) Activities(_ context.Context, userID int64, limit int) ([]*models.Activity, error) {
	var out []*models.Activity
	for i := len(f.activities) - 1; i >= 0 && len(out) < limit; i-- {
		if f.activities[i].UserID == userID {
			cp := *f.activities[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Stats(_ context.Context) (*models.Stats, error) {
	s := &models.Stats{}
	for _, u := range f.users {
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

func testLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

func TestCreateUserHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	created, err := svc.Create(context.Background(), CreateUserInput{
		Email:    "ada@example.com",
		Role:     models.RoleAdmin,
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Error("created user has no id")
	}

	stored := repo.users[created.ID]
	if stored.PasswordHash == nil {
		t.Fatal("password hash not stored")
	}
	if *stored.PasswordHash == "correct horse" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*stored.PasswordHash), []byte("correct horse")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestCreateUserDefaultsAndValidation(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateUserInput{Email: "u@example.com"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Role != models.RoleUser {
		t.Errorf("default role = %q, want user", created.Role)
	}
	if !created.IsActive {
		t.Error("new user should be active")
	}

	if _, err := svc.Create(ctx, CreateUserInput{Email: "x@example.com", Role: "root"}); !errors.Is(err, userdomain.ErrInvalidRole) {
		t.Errorf("bad role: err = %v, want ErrInvalidRole", err)
	}
	if _, err := svc.Create(ctx, CreateUserInput{Email: "u@example.com"}); !errors.Is(err, userdomain.ErrEmailExists) {
		t.Errorf("duplicate email: err = %v, want ErrEmailExists", err)
	}
}

func TestUpdateUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateUserInput{Email: "u@example.com"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	role := models.RoleEditor
	updated, err := svc.Update(ctx, created.ID, models.UserPatch{Role: &role})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Role != models.RoleEditor {
		t.Errorf("role = %q, want editor", updated.Role)
	}

	if _, err := svc.Update(ctx, created.ID, models.UserPatch{}); !errors.Is(err, userdomain.ErrNoFields) {
		t.Errorf("empty patch: err = %v, want ErrNoFields", err)
	}
	bad := "root"
	if _, err := svc.Update(ctx, created.ID, models.UserPatch{Role: &bad}); !errors.Is(err, userdomain.ErrInvalidRole) {
		t.Errorf("bad role: err = %v, want ErrInvalidRole", err)
	}
	if _, err := svc.Update(ctx, 99, models.UserPatch{Role: &role}); !errors.Is(err, userdomain.ErrUserNotFound) {
		t.Errorf("unknown id: err = %v, want ErrUserNotFound", err)
	}
}

func TestListUsersFilterAndPaginate(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(ctx, CreateUserInput{Email: fmt.Sprintf("user%d@example.com", i)}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if _, err := svc.Create(ctx, CreateUserInput{Email: "admin@example.com", Role: models.RoleAdmin}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	admins, total, err := svc.List(ctx, models.ListFilter{Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(admins) != 1 || admins[0].Email != "admin@example.com" {
		t.Errorf("role filter: got %d/%d, want the one admin", len(admins), total)
	}

	page, total, err := svc.List(ctx, models.ListFilter{Page: 2, Limit: 3})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 4 || len(page) != 1 {
		t.Errorf("page 2 of 3: got %d items, total %d, want 1 item of 4", len(page), total)
	}

	found, _, err := svc.List(ctx, models.ListFilter{Search: "user1"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(found) != 1 {
		t.Errorf("search: got %d items, want 1", len(found))
	}
}

func TestActivitiesUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	_, err := svc.Activities(context.Background(), 42, 10)
	if !errors.Is(err, userdomain.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	users := NewUserService(repo)
	auth := NewAuthService(repo, testLogger())
	ctx := context.Background()

	created, err := users.Create(ctx, CreateUserInput{Email: "ada@example.com", Password: "s3cret", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := auth.Authenticate(ctx, "ada@example.com", "s3cret", LoginMeta{IPAddress: "10.0.0.1"})
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("user id = %d, want %d", got.ID, created.ID)
	}
	if got.PasswordHash != nil {
		t.Error("password hash leaked from Authenticate")
	}
	if repo.users[created.ID].LoginCount != 1 || repo.users[created.ID].LastLogin == nil {
		t.Error("login not recorded")
	}
	acts, _ := repo.Activities(ctx, created.ID, 10)
	if len(acts) != 1 || acts[0].Action != "login" {
		t.Errorf("activities = %+v, want one login entry", acts)
	}
}

func TestAuthenticateFailuresLookAlike(t *testing.T) {
	repo := newFakeUserRepo()
	users := NewUserService(repo)
	auth := NewAuthService(repo, testLogger())
	ctx := context.Background()

	created, err := users.Create(ctx, CreateUserInput{Email: "ada@example.com", Password: "s3cret"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := users.Create(ctx, CreateUserInput{Email: "nopass@example.com"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	inactive := false
	if _, err := users.Update(ctx, created.ID, models.UserPatch{IsActive: &inactive}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	tests := []struct {
		name, email, password string
	}{
		{"unknown email", "ghost@example.com", "s3cret"},
		{"wrong password", "ada@example.com", "wrong"},
		{"no credential set", "nopass@example.com", "anything"},
		{"deactivated account", "ada@example.com", "s3cret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Authenticate(ctx, tt.email, tt.password, LoginMeta{})
			if !errors.Is(err, userdomain.ErrInvalidCredentials) {
				t.Errorf("err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}
