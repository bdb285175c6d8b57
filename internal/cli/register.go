package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/tugas/internal/api"
	"github.com/julianstephens/tugas/internal/models"
	"github.com/julianstephens/tugas/internal/validation"
)

type RegisterCmd struct{}

func (c *RegisterCmd) Run(ctx *Context) error {
	var draft models.Registration
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("User ID").
				Value(&draft.UserID),
			huh.NewInput().
				Title("Name").
				Value(&draft.Name),
			huh.NewInput().
				Title("Email").
				Value(&draft.Email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&draft.Password),
		),
	).WithTheme(huh.ThemeDracula())
	if err := form.Run(); err != nil {
		return err
	}

	if errs := validation.Registration(draft); len(errs) > 0 {
		return printFieldErrors(errs)
	}

	reqCtx, cancel := requestContext()
	defer cancel()
	if err := ctx.API.Register(reqCtx, draft); err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Status == 400 {
			msg := apiErr.Message
			if msg == "" {
				msg = "Email already registered"
			}
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("%s", api.UserMessage(err, "Registration failed. Please try again."))
	}

	fmt.Println("Registration successful! Run 'tugas login' to sign in.")
	return nil
}
