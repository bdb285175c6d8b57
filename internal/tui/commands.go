package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/tugas/internal/constants"
	"github.com/julianstephens/tugas/internal/models"
)

// Messages carry the fetch sequence that issued them. Responses whose
// seq no longer matches the route's current seq are dropped, so a slow
// response can never overwrite a newer one.

type todosLoadedMsg struct {
	seq   int
	todos []models.Todo
}

type loadFailedMsg struct {
	seq int
	err error
}

type loginDoneMsg struct {
	err error
}

type registerDoneMsg struct {
	userID string
	err    error
}

type todoCreatedMsg struct {
	err error
}

type todoUpdatedMsg struct {
	err error
}

type todoDeletedMsg struct {
	err error
}

type profileLoadedMsg struct {
	seq     int
	profile models.Profile
	err     error
}

type nameUpdatedMsg struct {
	profile models.Profile
	err     error
}

type passwordUpdatedMsg struct {
	err error
}

type bannerExpiredMsg struct{}

type createRedirectMsg struct{}

func (m Model) fetchTodos(seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), constants.RequestTimeout)
		defer cancel()
		todos, err := m.svc.ListTodos(ctx)
		if err != nil {
			return loadFailedMsg{seq: seq, err: err}
		}
		return todosLoadedMsg{seq: seq, todos: todos}
	}
}

func (m Model) doLogin(creds models.Credentials) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), constants.RequestTimeout)
		defer cancel()
		return loginDoneMsg{err: m.svc.Login(ctx, creds)}
	}
}

func (m Model) doRegister(reg models.Registration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), constants.RequestTimeout)
		defer cancel()
		return registerDoneMsg{userID: reg.UserID, err: m.svc.Register(ctx, reg)}
	}
}

func (m Model) createTodo(draft models.TodoDraft) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), constants.RequestTimeout)
		defer cancel()
		_, err := m.svc.CreateTodo(ctx, draft)
		return todoCreatedMsg{err: err}
	}
}

func (m Model) updateTodo(todo models.Todo) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), constants.RequestTimeout)
		defer cancel()
		_, err := m.svc.UpdateTodo(ctx, todo)
		return todoUpdatedMsg{err: err}
	}
}

func (m Model) deleteTodo(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), constants.RequestTimeout)
		defer cancel()
		return todoDeletedMsg{err: m.svc.DeleteTodo(ctx, id)}
	}
}

func (m Model) fetchProfile(seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), constants.RequestTimeout)
		defer cancel()
		profile, err := m.svc.Profile(ctx)
		return profileLoadedMsg{seq: seq, profile: profile, err: err}
	}
}

func (m Model) updateName(name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), constants.RequestTimeout)
		defer cancel()
		profile, err := m.svc.UpdateName(ctx, name)
		return nameUpdatedMsg{profile: profile, err: err}
	}
}

func (m Model) updatePassword(change models.PasswordChange) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), constants.RequestTimeout)
		defer cancel()
		return passwordUpdatedMsg{err: m.svc.UpdatePassword(ctx, change.Current, change.New)}
	}
}

func expireBanner() tea.Cmd {
	return tea.Tick(constants.BannerDuration, func(time.Time) tea.Msg {
		return bannerExpiredMsg{}
	})
}

func scheduleCreateRedirect() tea.Cmd {
	return tea.Tick(constants.CreateRedirectDelay, func(time.Time) tea.Msg {
		return createRedirectMsg{}
	})
}
