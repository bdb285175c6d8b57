package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/tugas/internal/api"
	"github.com/julianstephens/tugas/internal/constants"
	"github.com/julianstephens/tugas/internal/models"
	"github.com/julianstephens/tugas/internal/stats"
	"github.com/julianstephens/tugas/internal/validation"
)

type TaskListCmd struct {
	PendingOnly bool `help:"Show only incomplete tasks." name:"pending"`
	ShowIDs     bool `help:"Show task IDs." name:"show-ids"`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	if err := ctx.requireSession(); err != nil {
		return err
	}

	reqCtx, cancel := requestContext()
	defer cancel()
	todos, err := ctx.API.ListTodos(reqCtx)
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err, "Failed to load tasks. Please try again."))
	}
	if len(todos) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	s := stats.Aggregate(todos, time.Now())
	fmt.Printf("Tasks: %d total, %d completed, %d pending, %d due soon\n",
		s.Total, s.Completed, s.Pending, s.DueSoon)
	for _, t := range todos {
		if c.PendingOnly && t.IsComplete {
			continue
		}

		status := " "
		if t.IsComplete {
			status = "x"
		}
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", t.ID)
		}
		due := ""
		if t.DueDate != nil {
			due = " due " + t.DueDate.Format(constants.DateFormat)
		}
		fmt.Printf("  [%s] %s%s - %s%s\n", status, t.Title, idStr, t.Priority, due)
	}
	return nil
}

type TaskAddCmd struct {
	Title       string `arg:"" optional:"" help:"Task title."`
	Description string `help:"Task description."`
	Due         string `help:"Due date (YYYY-MM-DD or YYYY-MM-DD HH:MM)."`
	Priority    string `help:"Priority level (low, medium, high)."`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	if err := ctx.requireSession(); err != nil {
		return err
	}

	draft := models.TodoDraft{
		Title:       c.Title,
		Description: c.Description,
		DueDate:     c.Due,
		Priority:    models.Priority(c.Priority),
	}
	// Flags cover scripted use; anything missing is prompted for.
	if draft.Title == "" || draft.Description == "" || draft.DueDate == "" || draft.Priority == "" {
		if draft.Priority == "" {
			draft.Priority = models.PriorityMedium
		}
		form := huh.NewForm(
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
					Title("Priority Level").
					Options(
						huh.NewOption("High", models.PriorityHigh),
						huh.NewOption("Medium", models.PriorityMedium),
						huh.NewOption("Low", models.PriorityLow),
					).
					Value(&draft.Priority),
			),
		).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
	}

	if errs := validation.TaskDraft(draft); len(errs) > 0 {
		return printFieldErrors(errs)
	}
	if _, err := draft.DueDateTime(); err != nil {
		return fmt.Errorf("invalid due date format")
	}

	reqCtx, cancel := requestContext()
	defer cancel()
	created, err := ctx.API.CreateTodo(reqCtx, draft)
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err, "Failed to create task. Please try again."))
	}
	fmt.Printf("Created task %q\n", created.Title)
	return nil
}

type TaskDeleteCmd struct {
	ID  string `arg:"" help:"ID of the task to delete."`
	Yes bool   `help:"Skip the confirmation prompt." short:"y"`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	if err := ctx.requireSession(); err != nil {
		return err
	}

	reqCtx, cancel := requestContext()
	defer cancel()
	todos, err := ctx.API.ListTodos(reqCtx)
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err, "Failed to load tasks. Please try again."))
	}

	var target *models.Todo
	for i := range todos {
		if todos[i].ID == c.ID {
			target = &todos[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("no task with ID %s", c.ID)
	}

	if !c.Yes {
		prompt := "This task is not completed. Are you sure you want to delete it?"
		if target.IsComplete {
			prompt = "Are you sure you want to delete this completed task?"
		}
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Delete %q?", target.Title)).
					Description(prompt).
					Value(&confirmed),
			),
		).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled")
			return nil
		}
	}

	delCtx, cancelDel := requestContext()
	defer cancelDel()
	if err := ctx.API.DeleteTodo(delCtx, target.ID); err != nil {
		return fmt.Errorf("%s", api.UserMessage(err, "Failed to delete task. Please try again."))
	}
	fmt.Printf("Deleted task %q\n", target.Title)
	return nil
}
