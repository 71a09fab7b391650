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

	"github.com/ghuser/navboard/pkg/auth"
	"github.com/ghuser/navboard/pkg/config"
	"github.com/ghuser/navboard/pkg/logger"
	appsvcs "github.com/ghuser/navboard/services/navigation/application/services"
	navdomain "github.com/ghuser/navboard/services/navigation/domain"
	"github.com/ghuser/navboard/services/navigation/domain/models"
)

// memItemRepo is an in-memory ItemRepository for handler tests, with the
// same ordering contract as the Postgres implementation.
type memItemRepo struct {
	items  map[int64]*models.NavItem
	nextID int64
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: make(map[int64]*models.NavItem), nextID: 1}
}

func (m *memItemRepo) List(_ context.Context, scope models.Scope, activeOnly bool) ([]*models.NavItem, error) {
	var out []*models.NavItem
	for _, it := range m.items {
		if it.Scope() != scope || (activeOnly && !it.IsActive) {
			continue
		}
		cp := *it
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memItemRepo) GetByID(_ context.Context, id int64) (*models.NavItem, error) {
	it, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", navdomain.ErrItemNotFound, id)
	}
	cp := *it
	return &cp, nil
}

func (m *memItemRepo) count(p models.Partition) int {
	n := 0
	for _, it := range m.items {
		if it.Partition() == p {
			n++
		}
	}
	return n
}

func (m *memItemRepo) Create(_ context.Context, item *models.NavItem) (*models.NavItem, error) {
	cp := *item
	cp.ID = m.nextID
	m.nextID++
	cp.Section = models.NormalizeSection(cp.Scope(), cp.Section)
	cp.Order = m.count(cp.Partition())
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	m.items[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memItemRepo) Update(_ context.Context, id int64, patch models.ItemPatch) (*models.NavItem, error) {
	it, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", navdomain.ErrItemNotFound, id)
	}
	if patch.Name != nil {
		it.Name = *patch.Name
	}
	if patch.Target != nil {
		it.Target = *patch.Target
	}
	if patch.Order != nil {
		it.Order = *patch.Order
	}
	if patch.IsActive != nil {
		it.IsActive = *patch.IsActive
	}
	if patch.IsPublic != nil {
		it.IsPublic = *patch.IsPublic
	}
	if patch.Icon != nil {
		it.Icon = *patch.Icon
	}
	if patch.Section != nil {
		it.Section = *patch.Section
	}
	it.Section = models.NormalizeSection(it.Scope(), it.Section)
	it.UpdatedAt = time.Now()
	cp := *it
	return &cp, nil
}

func (m *memItemRepo) Delete(_ context.Context, id int64) (*models.NavItem, error) {
	it, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", navdomain.ErrItemNotFound, id)
	}
	delete(m.items, id)
	return it, nil
}

func (m *memItemRepo) Reorder(_ context.Context, moves []models.Move) error {
	for _, mv := range moves {
		if _, ok := m.items[mv.ID]; !ok {
			return fmt.Errorf("%w: id %d", navdomain.ErrItemNotFound, mv.ID)
		}
	}
	for _, mv := range moves {
		m.items[mv.ID].Order = mv.Order
	}
	return nil
}

type memSectionRepo struct {
	sections map[string]*models.Section
}

func newMemSectionRepo() *memSectionRepo {
	return &memSectionRepo{sections: map[string]*models.Section{
		models.SectionMain: {ID: models.SectionMain, Name: "Main", Order: 1},
	}}
}

func (m *memSectionRepo) List(_ context.Context) ([]*models.Section, error) {
	out := make([]*models.Section, 0, len(m.sections))
	for _, s := range m.sections {
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (m *memSectionRepo) Create(_ context.Context, s *models.Section) (*models.Section, error) {
	if _, ok := m.sections[s.ID]; ok {
		return nil, fmt.Errorf("%w: %s", navdomain.ErrSectionExists, s.ID)
	}
	cp := *s
	cp.Order = len(m.sections) + 1
	cp.CreatedAt = time.Now()
	m.sections[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memSectionRepo) Delete(_ context.Context, id string) error {
	if id == models.SectionMain {
		return navdomain.ErrSectionReserved
	}
	if _, ok := m.sections[id]; !ok {
		return fmt.Errorf("%w: %s", navdomain.ErrSectionNotFound, id)
	}
	delete(m.sections, id)
	return nil
}

// testEnv wires the navbar routes with in-memory repositories and a
// cookie-backed session store.
type testEnv struct {
	router chi.Router
	store  sessions.Store
	items  *memItemRepo
}

func newTestEnv() *testEnv {
	items := newMemItemRepo()
	svcs := &appsvcs.Services{
		Navigation: appsvcs.NewNavigationService(items, nil),
		Section:    appsvcs.NewSectionService(newMemSectionRepo(), nil),
	}
	store := sessions.NewCookieStore(
		[]byte("test-auth-key-must-be-32-bytes!!"),
		[]byte("test-enc-key-must-be-32-bytes!!!"),
	)
	log := logger.New(&config.Config{LogLevel: "error"})

	r := chi.NewRouter()
	r.Route("/navbar", func(r chi.Router) {
		r.Get("/", NewGetItemsHandler(svcs).Execute)
		r.Get("/sections", NewGetSectionsHandler(svcs).Execute)
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(store, log))
			r.Post("/", NewPostItemHandler(svcs).Execute)
			r.Put("/", NewPutItemHandler(svcs).Execute)
			r.Delete("/", NewDeleteItemHandler(svcs).Execute)
			r.Put("/reorder", NewReorderHandler(svcs).Execute)
			r.Post("/sections", NewPostSectionHandler(svcs).Execute)
			r.Delete("/sections/{id}", NewDeleteSectionHandler(svcs).Execute)
		})
	})
	return &testEnv{router: r, store: store, items: items}
}

// do sends a request through the router, attaching a valid session cookie
// unless authed is false.
func (e *testEnv) do(t *testing.T, method, target string, body any, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	if authed {
		w := httptest.NewRecorder()
		seed := httptest.NewRequest(http.MethodGet, "/", nil)
		if err := auth.IssueSession(e.store, w, seed, auth.Principal{UserID: 1, Role: "admin"}); err != nil {
			t.Fatalf("issue session: %v", err)
		}
		for _, c := range w.Result().Cookies() {
			req.AddCookie(c)
		}
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) createItem(t *testing.T, body map[string]any) NavItemResponse {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/navbar", body, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create item: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var item NavItemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode created item: %v", err)
	}
	return item
}

func TestMutationsRequireSession(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		name   string
		method string
		target string
		body   any
	}{
		{"create item", http.MethodPost, "/navbar", map[string]any{"name": "Home", "href": "/"}},
		{"update item", http.MethodPut, "/navbar", map[string]any{"id": 1, "name": "Home"}},
		{"delete item", http.MethodDelete, "/navbar?id=1", nil},
		{"reorder", http.MethodPut, "/navbar/reorder", map[string]any{"items": []map[string]any{{"id": 1, "order": 0}}}},
		{"create section", http.MethodPost, "/navbar/sections", map[string]any{"name": "Analytics"}},
		{"delete section", http.MethodDelete, "/navbar/sections/analytics", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, tt.method, tt.target, tt.body, false)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestGetItemsIsPublic(t *testing.T) {
	env := newTestEnv()
	env.createItem(t, map[string]any{"name": "Home", "href": "/", "isPublic": true})
	env.createItem(t, map[string]any{"name": "Hidden", "href": "/hidden", "isPublic": true, "isActive": false})

	rec := env.do(t, http.MethodGet, "/navbar?type=public", nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data       []NavItemResponse `json:"data"`
		Pagination struct {
			Total int `json:"total"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Name != "Home" {
		t.Errorf("data = %+v, want only the active Home item", resp.Data)
	}
	if resp.Pagination.Total != 1 {
		t.Errorf("pagination.total = %d, want 1", resp.Pagination.Total)
	}
}

func TestGetItemsBadScope(t *testing.T) {
	env := newTestEnv()
	rec := env.do(t, http.MethodGet, "/navbar?type=sidebar", nil, false)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreateItemValidation(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing name", map[string]any{"href": "/"}},
		{"missing href", map[string]any{"name": "Home"}},
		{"bad href", map[string]any{"name": "Home", "href": "not-a-url-or-path"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/navbar", tt.body, true)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400, body = %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestCreateItemAppends(t *testing.T) {
	env := newTestEnv()

	first := env.createItem(t, map[string]any{"name": "Home", "href": "/", "isPublic": true})
	// A client-supplied order is ignored; the item is appended.
	second := env.createItem(t, map[string]any{"name": "Blog", "href": "/blog", "isPublic": true, "order": 0})

	if first.Order != 0 || second.Order != 1 {
		t.Errorf("orders = %d, %d, want 0, 1", first.Order, second.Order)
	}
}

func TestUpdateItemNotFound(t *testing.T) {
	env := newTestEnv()
	rec := env.do(t, http.MethodPut, "/navbar", map[string]any{"id": 42, "name": "Ghost"}, true)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404, body = %s", rec.Code, rec.Body.String())
	}
}

func TestDeleteItemBadID(t *testing.T) {
	env := newTestEnv()

	for _, target := range []string{"/navbar", "/navbar?id=abc", "/navbar?id=-1"} {
		rec := env.do(t, http.MethodDelete, target, nil, true)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}
	}

	rec := env.do(t, http.MethodDelete, "/navbar?id=42", nil, true)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown id: status = %d, want 404", rec.Code)
	}
}

func TestDeleteItemReturnsSnapshot(t *testing.T) {
	env := newTestEnv()
	created := env.createItem(t, map[string]any{"name": "Home", "href": "/", "isPublic": true})

	rec := env.do(t, http.MethodDelete, fmt.Sprintf("/navbar?id=%d", created.ID), nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var snap NavItemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.ID != created.ID || snap.Name != "Home" {
		t.Errorf("snapshot = %+v, want the deleted item", snap)
	}
}

func TestReorderAtomicOnUnknownID(t *testing.T) {
	env := newTestEnv()
	a := env.createItem(t, map[string]any{"name": "A", "href": "/a", "isPublic": true})
	env.createItem(t, map[string]any{"name": "B", "href": "/b", "isPublic": true})

	rec := env.do(t, http.MethodPut, "/navbar/reorder", map[string]any{
		"items": []map[string]any{
			{"id": a.ID, "order": 1},
			{"id": 999, "order": 0},
		},
	}, true)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404, body = %s", rec.Code, rec.Body.String())
	}

	// The valid half of the batch must not have been applied.
	if got := env.items.items[a.ID].Order; got != 0 {
		t.Errorf("item A order = %d after failed batch, want 0", got)
	}
}

func TestReorderEmptyBatch(t *testing.T) {
	env := newTestEnv()
	rec := env.do(t, http.MethodPut, "/navbar/reorder", map[string]any{"items": []map[string]any{}}, true)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400, body = %s", rec.Code, rec.Body.String())
	}
}

func TestReorderApplied(t *testing.T) {
	env := newTestEnv()
	a := env.createItem(t, map[string]any{"name": "A", "href": "/a", "isPublic": true})
	b := env.createItem(t, map[string]any{"name": "B", "href": "/b", "isPublic": true})

	rec := env.do(t, http.MethodPut, "/navbar/reorder", map[string]any{
		"items": []map[string]any{
			{"id": b.ID, "order": 0},
			{"id": a.ID, "order": 1},
		},
	}, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	list := env.do(t, http.MethodGet, "/navbar?type=public", nil, false)
	var resp struct {
		Data []NavItemResponse `json:"data"`
	}
	if err := json.Unmarshal(list.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data[0].Name != "B" || resp.Data[1].Name != "A" {
		t.Errorf("order after reorder = %q, %q, want B, A", resp.Data[0].Name, resp.Data[1].Name)
	}
}

func TestSectionLifecycle(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/navbar/sections", map[string]any{"name": "User Reports"}, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var created SectionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID != "user-reports" {
		t.Errorf("slug = %q, want user-reports", created.ID)
	}

	rec = env.do(t, http.MethodPost, "/navbar/sections", map[string]any{"name": "user reports"}, true)
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate slug: status = %d, want 409", rec.Code)
	}

	rec = env.do(t, http.MethodDelete, "/navbar/sections/main", nil, true)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("delete main: status = %d, want 400", rec.Code)
	}

	rec = env.do(t, http.MethodDelete, "/navbar/sections/ghost", nil, true)
	if rec.Code != http.StatusNotFound {
		t.Errorf("delete unknown: status = %d, want 404", rec.Code)
	}

	rec = env.do(t, http.MethodDelete, "/navbar/sections/user-reports", nil, true)
	if rec.Code != http.StatusOK {
		t.Errorf("delete: status = %d, body = %s", rec.Code, rec.Body.String())
	}

	list := env.do(t, http.MethodGet, "/navbar/sections", nil, false)
	if list.Code != http.StatusOK {
		t.Fatalf("list: status = %d", list.Code)
	}
	var sections []SectionResponse
	if err := json.Unmarshal(list.Body.Bytes(), &sections); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(sections) != 1 || sections[0].ID != "main" {
		t.Errorf("sections = %+v, want only main", sections)
	}
}
