// Package cli holds the kong command implementations. Every command
// receives a Context carrying the shared remote client, session store,
// and local state; commands never build their own.
package cli

import (
	"context"
	"fmt"

	"github.com/julianstephens/tugas/internal/api"
	"github.com/julianstephens/tugas/internal/constants"
	"github.com/julianstephens/tugas/internal/session"
	"github.com/julianstephens/tugas/internal/storage"
	"github.com/julianstephens/tugas/internal/theme"
	"github.com/julianstephens/tugas/internal/validation"
)

type Context struct {
	API      *api.Client
	Sessions session.Store
	State    storage.Provider
	Themes   *theme.Manager
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), constants.RequestTimeout)
}

// requireSession fails fast when no credential is held, so commands
// report a clear message instead of a server rejection.
func (c *Context) requireSession() error {
	if _, ok := c.Sessions.Get(); !ok {
		return fmt.Errorf("not logged in. Run 'tugas login' first")
	}
	return nil
}

func printFieldErrors(errs validation.Errors) error {
	for _, e := range errs {
		fmt.Printf("  %s\n", e.Message)
	}
	return fmt.Errorf("invalid input")
}
