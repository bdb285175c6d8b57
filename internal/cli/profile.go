package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/tugas/internal/api"
	"github.com/julianstephens/tugas/internal/models"
	"github.com/julianstephens/tugas/internal/validation"
)

type ProfileCmd struct {
	SetName        string `help:"Update the display name." name:"set-name"`
	ChangePassword bool   `help:"Change the account password." name:"change-password"`
}

func (c *ProfileCmd) Run(ctx *Context) error {
	if err := ctx.requireSession(); err != nil {
		return err
	}

	if c.SetName != "" {
		reqCtx, cancel := requestContext()
		defer cancel()
		profile, err := ctx.API.UpdateName(reqCtx, c.SetName)
		if err != nil {
			return fmt.Errorf("%s", api.UserMessage(err, "Failed to update name. Please try again."))
		}
		fmt.Printf("Name updated to %s\n", profile.Name)
		return nil
	}

	if c.ChangePassword {
		return c.changePassword(ctx)
	}

	reqCtx, cancel := requestContext()
	defer cancel()
	profile, err := ctx.API.Profile(reqCtx)
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err, "Failed to load profile. Please try again."))
	}
	fmt.Printf("Name:  %s\nEmail: %s\n", profile.Name, profile.Email)
	return nil
}

func (c *ProfileCmd) changePassword(ctx *Context) error {
	var draft models.PasswordChange
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Current Password").
				EchoMode(huh.EchoModePassword).
				Value(&draft.Current),
			huh.NewInput().
				Title("New Password").
				EchoMode(huh.EchoModePassword).
				Value(&draft.New),
			huh.NewInput().
				Title("Confirm New Password").
				EchoMode(huh.EchoModePassword).
				Value(&draft.Confirm),
		),
	).WithTheme(huh.ThemeDracula())
	if err := form.Run(); err != nil {
		return err
	}

	if errs := validation.PasswordChange(draft); len(errs) > 0 {
		return printFieldErrors(errs)
	}

	reqCtx, cancel := requestContext()
	defer cancel()
	if err := ctx.API.UpdatePassword(reqCtx, draft.Current, draft.New); err != nil {
		return fmt.Errorf("%s", api.UserMessage(err, "Failed to update password. Please try again."))
	}
	fmt.Println("Password updated successfully")
	return nil
}
