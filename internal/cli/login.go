package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/tugas/internal/api"
	"github.com/julianstephens/tugas/internal/constants"
	"github.com/julianstephens/tugas/internal/logger"
	"github.com/julianstephens/tugas/internal/models"
	"github.com/julianstephens/tugas/internal/validation"
)

type LoginCmd struct {
	UserID string `arg:"" optional:"" help:"User ID to sign in with."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	creds := models.Credentials{UserID: c.UserID}
	if creds.UserID == "" {
		// Reuse the last signed-in user as the default.
		if last, err := ctx.State.Get(constants.StateKeyLastUserID); err == nil {
			creds.UserID = last
		}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("User ID").
				Value(&creds.UserID),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&creds.Password),
		),
	).WithTheme(huh.ThemeDracula())
	if err := form.Run(); err != nil {
		return err
	}

	if errs := validation.Login(creds); len(errs) > 0 {
		return printFieldErrors(errs)
	}

	reqCtx, cancel := requestContext()
	defer cancel()
	if err := ctx.API.Login(reqCtx, creds); err != nil {
		return fmt.Errorf("%s", api.UserMessage(err, "Login failed. Please try again."))
	}

	if err := ctx.State.Set(constants.StateKeyLastUserID, creds.UserID); err != nil {
		logger.Warn("failed to remember user id", "error", err)
	}
	fmt.Printf("Logged in as %s\n", creds.UserID)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := ctx.Sessions.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	fmt.Println("Logged out")
	return nil
}
