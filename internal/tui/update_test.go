package tui

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/tugas/internal/api"
	"github.com/julianstephens/tugas/internal/constants"
	"github.com/julianstephens/tugas/internal/models"
	"github.com/julianstephens/tugas/internal/session"
	"github.com/julianstephens/tugas/internal/storage"
	"github.com/julianstephens/tugas/internal/theme"
)

type fakeService struct {
	todos     []models.Todo
	listErr   error
	listCalls int

	deleteErr error
	deleted   []string

	loginErr    error
	registerErr error
	updateErr   error
}

func (f *fakeService) Register(ctx context.Context, draft models.Registration) error {
	return f.registerErr
}

func (f *fakeService) Login(ctx context.Context, creds models.Credentials) error {
	return f.loginErr
}

func (f *fakeService) ListTodos(ctx context.Context) ([]models.Todo, error) {
	f.listCalls++
	return f.todos, f.listErr
}

func (f *fakeService) CreateTodo(ctx context.Context, draft models.TodoDraft) (models.Todo, error) {
	return models.Todo{}, nil
}

func (f *fakeService) UpdateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	return todo, f.updateErr
}

func (f *fakeService) DeleteTodo(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

func (f *fakeService) Profile(ctx context.Context) (models.Profile, error) {
	return models.Profile{Name: "Jane", Email: "jane@example.com"}, nil
}

func (f *fakeService) UpdateName(ctx context.Context, name string) (models.Profile, error) {
	return models.Profile{Name: name, Email: "jane@example.com"}, nil
}

func (f *fakeService) UpdatePassword(ctx context.Context, current, newPassword string) error {
	return nil
}

func newTestModel(svc Service) Model {
	return NewModel(svc, session.NewMemoryStore(), theme.NewManager(storage.NewMemoryStore()))
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLoginSuccessMovesToDashboard(t *testing.T) {
	svc := &fakeService{}
	m := newTestModel(svc)
	m.route = constants.RouteLogin
	m.login.phase = constants.PhaseLoading

	next, cmd := m.Update(loginDoneMsg{})
	m = next.(Model)

	if m.route != constants.RouteDashboard {
		t.Fatalf("route = %v, want dashboard", m.route)
	}
	if m.dash.phase != constants.PhaseLoading {
		t.Errorf("dashboard phase = %v, want loading", m.dash.phase)
	}
	if cmd == nil {
		t.Fatal("expected a fetch command")
	}
	cmd()
	if svc.listCalls != 1 {
		t.Errorf("list calls = %d, want 1", svc.listCalls)
	}
}

func TestLoginFailureRephrasesAndKeepsDraft(t *testing.T) {
	svc := &fakeService{}
	m := newTestModel(svc)
	m.route = constants.RouteLogin
	m.login.draft = models.Credentials{UserID: "jdoe", Password: "secret1"}
	m.login.phase = constants.PhaseLoading

	err := &api.Error{Status: 401, Message: "Invalid user ID or password"}
	next, _ := m.Update(loginDoneMsg{err: err})
	m = next.(Model)

	if m.route != constants.RouteLogin {
		t.Fatalf("route = %v, want login", m.route)
	}
	want := "Invalid user ID or password. Please try again."
	if m.login.errMsg != want {
		t.Errorf("errMsg = %q, want %q", m.login.errMsg, want)
	}
	if m.login.draft.UserID != "jdoe" {
		t.Errorf("draft user id lost: %q", m.login.draft.UserID)
	}
}

func TestLoginFailureTransportShowsConnectivity(t *testing.T) {
	m := newTestModel(&fakeService{})
	m.route = constants.RouteLogin
	m.login.phase = constants.PhaseLoading

	next, _ := m.Update(loginDoneMsg{err: fmt.Errorf("request failed: dial tcp: no route")})
	m = next.(Model)

	if m.login.errMsg != api.ConnectivityMessage {
		t.Errorf("errMsg = %q, want connectivity message", m.login.errMsg)
	}
}

func TestRegistrationSuccessPrefillsLogin(t *testing.T) {
	m := newTestModel(&fakeService{})
	m.route = constants.RouteRegistration

	next, _ := m.Update(registerDoneMsg{userID: "jdoe"})
	m = next.(Model)

	if m.route != constants.RouteLogin {
		t.Fatalf("route = %v, want login", m.route)
	}
	if m.login.draft.UserID != "jdoe" {
		t.Errorf("login draft user id = %q, want jdoe", m.login.draft.UserID)
	}
	if m.login.banner != "Registration successful! Please login to continue." {
		t.Errorf("banner = %q", m.login.banner)
	}
}

func TestRegistrationConflictLandsOnEmailField(t *testing.T) {
	m := newTestModel(&fakeService{})
	m.route = constants.RouteRegistration

	next, _ := m.Update(registerDoneMsg{err: &api.Error{Status: 400, Message: "Email already exists"}})
	m = next.(Model)

	if m.route != constants.RouteRegistration {
		t.Fatalf("route = %v, want registration", m.route)
	}
	if got := m.reg.errs["email"]; got != "Email already exists" {
		t.Errorf("email error = %q", got)
	}
}

func TestStaleTodosResponseDropped(t *testing.T) {
	m := newTestModel(&fakeService{})
	m.route = constants.RouteDashboard
	m.dash.seq = 2
	m.dash.phase = constants.PhaseLoading

	stale := []models.Todo{{ID: "old", Title: "stale"}}
	next, _ := m.Update(todosLoadedMsg{seq: 1, todos: stale})
	m = next.(Model)

	if len(m.dash.todos) != 0 {
		t.Errorf("stale response applied: %d todos", len(m.dash.todos))
	}
	if m.dash.phase != constants.PhaseLoading {
		t.Errorf("phase = %v, want loading", m.dash.phase)
	}
}

func TestSessionRejectionReturnsToLogin(t *testing.T) {
	m := newTestModel(&fakeService{})
	m.route = constants.RouteDashboard
	m.dash.seq = 1

	err := fmt.Errorf("GET /todos: %w", api.ErrUnauthenticated)
	next, _ := m.Update(loadFailedMsg{seq: 1, err: err})
	m = next.(Model)

	if m.route != constants.RouteLogin {
		t.Fatalf("route = %v, want login", m.route)
	}
	if m.login.errMsg != "Session expired. Please login again." {
		t.Errorf("errMsg = %q", m.login.errMsg)
	}
}

func TestDeleteConfirmSendsOneRequest(t *testing.T) {
	svc := &fakeService{}
	m := newTestModel(svc)
	m.route = constants.RouteDashboard
	m.dash.phase = constants.PhaseSuccess
	m.dash.todos = []models.Todo{{ID: "abc", Title: "take out trash"}}
	m.dash.modal = modalDelete
	m.dash.deleting = &m.dash.todos[0]

	next, cmd := m.Update(keyPress("y"))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("expected delete command")
	}
	cmd()

	// A second confirm while the request is in flight must not fire
	// another delete.
	next, cmd = m.Update(keyPress("y"))
	m = next.(Model)
	if cmd != nil {
		t.Error("second confirm issued a command while busy")
	}

	if len(svc.deleted) != 1 || svc.deleted[0] != "abc" {
		t.Fatalf("deleted = %v, want [abc]", svc.deleted)
	}

	next, cmd = m.Update(todoDeletedMsg{})
	m = next.(Model)
	if m.dash.modal != modalNone {
		t.Error("modal still open after delete")
	}
	if cmd == nil {
		t.Fatal("expected a refetch after delete")
	}
	cmd()
	if svc.listCalls != 1 {
		t.Errorf("list calls = %d, want 1", svc.listCalls)
	}
}

func TestDeleteCancelClosesModal(t *testing.T) {
	svc := &fakeService{}
	m := newTestModel(svc)
	m.route = constants.RouteDashboard
	m.dash.todos = []models.Todo{{ID: "abc", Title: "take out trash"}}
	m.dash.modal = modalDelete
	m.dash.deleting = &m.dash.todos[0]

	next, _ := m.Update(keyPress("n"))
	m = next.(Model)

	if m.dash.modal != modalNone {
		t.Error("modal still open after cancel")
	}
	if len(svc.deleted) != 0 {
		t.Errorf("cancel issued a delete: %v", svc.deleted)
	}
}

func TestDeleteModalWarningsDependOnCompletion(t *testing.T) {
	m := newTestModel(&fakeService{})
	m.route = constants.RouteDashboard
	m.dash.modal = modalDelete

	incomplete := models.Todo{ID: "a", Title: "open task"}
	m.dash.deleting = &incomplete
	if got := m.viewDeleteModal(); !strings.Contains(got, "This task is not completed. Are you sure you want to delete it?") {
		t.Errorf("incomplete warning missing from %q", got)
	}

	complete := models.Todo{ID: "b", Title: "done task", IsComplete: true}
	m.dash.deleting = &complete
	if got := m.viewDeleteModal(); !strings.Contains(got, "Are you sure you want to delete this completed task?") {
		t.Errorf("completed warning missing from %q", got)
	}
}

func TestEditHashDetectsChanges(t *testing.T) {
	draft := models.TodoDraft{Title: "a", Description: "b", DueDate: "2026-09-01", Priority: models.PriorityHigh}

	if editHash(draft, false) != editHash(draft, false) {
		t.Error("identical state hashed differently")
	}
	if editHash(draft, false) == editHash(draft, true) {
		t.Error("completion flip not reflected in hash")
	}
	changed := draft
	changed.Title = "c"
	if editHash(draft, false) == editHash(changed, false) {
		t.Error("title change not reflected in hash")
	}
}

func TestCreateSuccessThenRedirect(t *testing.T) {
	svc := &fakeService{}
	m := newTestModel(svc)
	m.route = constants.RouteCreate
	m.create.phase = constants.PhaseLoading

	next, cmd := m.Update(todoCreatedMsg{})
	m = next.(Model)
	if m.create.success != "Todo created successfully!" {
		t.Errorf("success = %q", m.create.success)
	}
	if cmd == nil {
		t.Fatal("expected redirect timer")
	}

	next, cmd = m.Update(createRedirectMsg{})
	m = next.(Model)
	if m.route != constants.RouteDashboard {
		t.Fatalf("route = %v, want dashboard", m.route)
	}
	if cmd == nil {
		t.Fatal("expected fetch after redirect")
	}
	cmd()
	if svc.listCalls != 1 {
		t.Errorf("list calls = %d, want 1", svc.listCalls)
	}
}

func TestDashboardLoadPopulatesStats(t *testing.T) {
	m := newTestModel(&fakeService{})
	m.route = constants.RouteDashboard
	m.dash.seq = 1
	m.dash.phase = constants.PhaseLoading

	due := time.Now().Add(2 * time.Hour)
	todos := []models.Todo{
		{ID: "a", Title: "one", Priority: models.PriorityHigh, DueDate: &due, CreatedAt: time.Now()},
		{ID: "b", Title: "two", Priority: models.PriorityLow, IsComplete: true, CreatedAt: time.Now().Add(-time.Hour)},
	}
	next, _ := m.Update(todosLoadedMsg{seq: 1, todos: todos})
	m = next.(Model)

	if m.dash.phase != constants.PhaseSuccess {
		t.Fatalf("phase = %v, want success", m.dash.phase)
	}
	if m.dash.stats.Total != 2 || m.dash.stats.Completed != 1 || m.dash.stats.DueSoon != 1 {
		t.Errorf("stats = %+v", m.dash.stats)
	}
	if len(m.dash.recent) != 2 || m.dash.recent[0].ID != "a" {
		t.Errorf("recent = %+v", m.dash.recent)
	}
}

func TestHeldSessionStartsOnDashboard(t *testing.T) {
	sessions := session.NewMemoryStore()
	if err := sessions.Set("token", time.Now().Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
	m := NewModel(&fakeService{}, sessions, theme.NewManager(storage.NewMemoryStore()))

	if m.route != constants.RouteDashboard {
		t.Errorf("route = %v, want dashboard", m.route)
	}

	empty := NewModel(&fakeService{}, session.NewMemoryStore(), theme.NewManager(storage.NewMemoryStore()))
	if empty.route != constants.RouteOnboard {
		t.Errorf("route = %v, want onboard", empty.route)
	}
}
