package tui

import (
	"context"

	"github.com/julianstephens/tugas/internal/models"
)

// Service is the slice of the remote client the views depend on. Tests
// substitute a fake; production passes *api.Client.
type Service interface {
	Register(ctx context.Context, draft models.Registration) error
	Login(ctx context.Context, creds models.Credentials) error
	ListTodos(ctx context.Context) ([]models.Todo, error)
	CreateTodo(ctx context.Context, draft models.TodoDraft) (models.Todo, error)
	UpdateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)
	DeleteTodo(ctx context.Context, id string) error
	Profile(ctx context.Context) (models.Profile, error)
	UpdateName(ctx context.Context, name string) (models.Profile, error)
	UpdatePassword(ctx context.Context, current, newPassword string) error
}
