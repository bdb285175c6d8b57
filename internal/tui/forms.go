package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/tugas/internal/models"
)

// Form builders. Field-level checks live in internal/validation and
// run when the form completes, so every rule is applied in one place
// and failed submits keep the entered values (the inputs are bound to
// the view's draft).

func newLoginForm(draft *models.Credentials) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("User ID").
				Placeholder("Enter your User ID").
				Value(&draft.UserID),
			huh.NewInput().
				Title("Password").
				Placeholder("Enter your password").
				EchoMode(huh.EchoModePassword).
				Value(&draft.Password),
		),
	).WithTheme(huh.ThemeDracula())
}

func newRegistrationForm(draft *models.Registration) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("User ID").
				Placeholder("Enter Your User ID").
				Value(&draft.UserID),
			huh.NewInput().
				Title("Name").
				Placeholder("Enter Your Name").
				Value(&draft.Name),
			huh.NewInput().
				Title("Email").
				Placeholder("johndoe@example.com").
				Value(&draft.Email),
			huh.NewInput().
				Title("Password").
				Placeholder("Enter your password").
				EchoMode(huh.EchoModePassword).
				Value(&draft.Password),
		),
	).WithTheme(huh.ThemeDracula())
}

func priorityOptions() []huh.Option[models.Priority] {
	return []huh.Option[models.Priority]{
		huh.NewOption("High", models.PriorityHigh),
		huh.NewOption("Medium", models.PriorityMedium),
		huh.NewOption("Low", models.PriorityLow),
	}
}

func newCreateForm(draft *models.TodoDraft) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Enter task title").
				CharLimit(100).
				Value(&draft.Title),
			huh.NewText().
				Title("Description").
				Placeholder("Enter task description").
				CharLimit(500).
				Value(&draft.Description),
			huh.NewInput().
				Title("Due Date").
				Description("YYYY-MM-DD or YYYY-MM-DD HH:MM").
				Value(&draft.DueDate),
			huh.NewSelect[models.Priority]().
				Title("Priority Level").
				Options(priorityOptions()...).
				Value(&draft.Priority),
		),
	).WithTheme(huh.ThemeDracula())
}

func newEditForm(draft *models.TodoDraft, complete *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				CharLimit(100).
				Value(&draft.Title),
			huh.NewText().
				Title("Description").
				CharLimit(500).
				Value(&draft.Description),
			huh.NewInput().
				Title("Due Date").
				Description("YYYY-MM-DD or YYYY-MM-DD HH:MM").
				Value(&draft.DueDate),
			huh.NewSelect[models.Priority]().
				Title("Priority").
				Options(priorityOptions()...).
				Value(&draft.Priority),
			huh.NewConfirm().
				Title("Mark as completed").
				Value(complete),
		),
	).WithTheme(huh.ThemeDracula())
}

func newNameForm(name *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(name),
		),
	).WithTheme(huh.ThemeDracula())
}

func newPasswordForm(draft *models.PasswordChange) *huh.Form {
	return huh.NewForm(
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
}
