package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/tugas/internal/constants"
	"github.com/julianstephens/tugas/internal/models"
)

const maxBarWidth = 24

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.route {
	case constants.RouteOnboard:
		body = m.viewOnboard()
	case constants.RouteLogin:
		body = m.viewLogin()
	case constants.RouteRegistration:
		body = m.viewRegistration()
	case constants.RouteDashboard:
		return m.viewDashboard()
	case constants.RouteCreate:
		body = m.viewCreate()
	case constants.RouteProfile:
		body = m.viewProfile()
	}
	return m.styles.Doc.Render(body)
}

func (m Model) viewOnboard() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(constants.AppName))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render("Manage your tasks from the terminal"))
	b.WriteString("\n\n")

	options := []string{"Login", "Register"}
	for i, opt := range options {
		if i == m.onboardCursor {
			b.WriteString(m.styles.Selected.Render("> " + opt))
		} else {
			b.WriteString("  " + opt)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render("enter select · q quit"))
	return b.String()
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Login"))
	b.WriteString("\n")
	if m.login.banner != "" {
		b.WriteString(m.styles.Success.Render(m.login.banner))
		b.WriteString("\n")
	}
	if m.login.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.login.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.login.phase == constants.PhaseLoading {
		b.WriteString(m.spin.View() + " Signing in...")
		return b.String()
	}
	if m.login.form != nil {
		b.WriteString(m.login.form.View())
	}
	b.WriteString(renderFieldErrors(m.styles, m.login.errs))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render("esc back"))
	return b.String()
}

func (m Model) viewRegistration() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Create an Account"))
	b.WriteString("\n")
	if m.reg.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.reg.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.reg.phase == constants.PhaseLoading {
		b.WriteString(m.spin.View() + " Creating account...")
		return b.String()
	}
	if m.reg.form != nil {
		b.WriteString(m.reg.form.View())
	}
	b.WriteString(renderFieldErrors(m.styles, m.reg.errs))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render("esc back"))
	return b.String()
}

func renderFieldErrors(styles Styles, errs map[string]string) string {
	if len(errs) == 0 {
		return ""
	}
	// Stable field order keeps the error list from jumping around
	// between renders.
	order := []string{
		"user_id", "name", "email", "password",
		"title", "description", "due_date", "priority",
		"current_password", "new_password", "confirm_password",
	}
	var b strings.Builder
	b.WriteString("\n")
	for _, field := range order {
		if msg, ok := errs[field]; ok {
			b.WriteString(styles.Error.Render("• " + msg))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) viewDashboard() string {
	if m.dash.modal != modalNone {
		return m.viewModal()
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Dashboard"))
	b.WriteString("\n\n")

	switch m.dash.phase {
	case constants.PhaseLoading:
		b.WriteString(m.spin.View() + " Loading tasks...")
		return m.styles.Doc.Render(b.String())
	case constants.PhaseError:
		b.WriteString(m.styles.Error.Render(m.dash.errMsg))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Subtle.Render("r retry · q quit"))
		return m.styles.Doc.Render(b.String())
	}

	b.WriteString(m.viewStatsCards())
	b.WriteString("\n\n")
	b.WriteString(m.viewPriorityChart())
	b.WriteString("\n")
	b.WriteString(m.viewRecent())
	b.WriteString("\n")
	b.WriteString(m.viewTaskList())
	b.WriteString("\n")
	b.WriteString(m.help.View(m))
	return m.styles.Doc.Render(b.String())
}

func (m Model) viewStatsCards() string {
	card := func(label string, n int) string {
		return m.styles.Card.Render(fmt.Sprintf("%d\n%s", n, label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total", m.dash.stats.Total),
		" ",
		card("Completed", m.dash.stats.Completed),
		" ",
		card("Pending", m.dash.stats.Pending),
		" ",
		card("Due Soon", m.dash.stats.DueSoon),
	)
}

func (m Model) viewPriorityChart() string {
	max := m.dash.stats.Priority.High
	if m.dash.stats.Priority.Medium > max {
		max = m.dash.stats.Priority.Medium
	}
	if m.dash.stats.Priority.Low > max {
		max = m.dash.stats.Priority.Low
	}

	bar := func(style lipgloss.Style, label string, n int) string {
		width := 0
		if max > 0 {
			width = n * maxBarWidth / max
		}
		if n > 0 && width == 0 {
			width = 1
		}
		return fmt.Sprintf("%-8s %s %d", label, style.Render(strings.Repeat("█", width)), n)
	}

	var b strings.Builder
	b.WriteString(m.styles.Subtle.Render("Priority Distribution"))
	b.WriteString("\n")
	b.WriteString(bar(m.styles.PriorityHigh, "High", m.dash.stats.Priority.High))
	b.WriteString("\n")
	b.WriteString(bar(m.styles.PriorityMedium, "Medium", m.dash.stats.Priority.Medium))
	b.WriteString("\n")
	b.WriteString(bar(m.styles.PriorityLow, "Low", m.dash.stats.Priority.Low))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewRecent() string {
	var b strings.Builder
	b.WriteString(m.styles.Subtle.Render("Recent Tasks"))
	b.WriteString("\n")
	if len(m.dash.recent) == 0 {
		b.WriteString(m.styles.Subtle.Render("  Nothing here yet"))
		b.WriteString("\n")
		return b.String()
	}
	for _, t := range m.dash.recent {
		b.WriteString("  " + m.todoLine(t, false))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewTaskList() string {
	var b strings.Builder
	b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("All Tasks (%d)", len(m.dash.todos))))
	b.WriteString("\n")
	if len(m.dash.todos) == 0 {
		b.WriteString(m.styles.Subtle.Render("  No tasks. Press n to create one."))
		b.WriteString("\n")
		return b.String()
	}
	for i, t := range m.dash.todos {
		line := m.todoLine(t, i == m.dash.cursor)
		if i == m.dash.cursor {
			line = m.styles.Selected.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) todoLine(t models.Todo, selected bool) string {
	check := "[ ]"
	if t.IsComplete {
		check = m.styles.Success.Render("[x]")
	}

	var prio string
	switch t.Priority {
	case models.PriorityHigh:
		prio = m.styles.PriorityHigh.Render("high")
	case models.PriorityMedium:
		prio = m.styles.PriorityMedium.Render("med ")
	default:
		prio = m.styles.PriorityLow.Render("low ")
	}

	title := t.Title
	if selected {
		title = m.styles.Selected.Render(title)
	}

	line := fmt.Sprintf("%s %s %s", check, prio, title)
	if t.DueDate != nil {
		line += m.styles.Subtle.Render("  due " + t.DueDate.Format(constants.DateFormat))
	}
	return line
}

func (m Model) viewModal() string {
	var content string
	switch m.dash.modal {
	case modalEdit:
		content = m.viewEditModal()
	case modalDelete:
		content = m.viewDeleteModal()
	}

	box := m.styles.Card.Render(content)
	w, h := m.width, m.height
	if w <= 0 {
		w = lipgloss.Width(box)
	}
	if h <= 0 {
		h = lipgloss.Height(box)
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) viewEditModal() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Edit Task"))
	b.WriteString("\n")
	if m.dash.modalErr != "" {
		b.WriteString(m.styles.Error.Render(m.dash.modalErr))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.dash.editBusy {
		b.WriteString(m.spin.View() + " Saving...")
		return b.String()
	}
	if m.dash.editForm != nil {
		b.WriteString(m.dash.editForm.View())
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render("esc cancel"))
	return b.String()
}

func (m Model) viewDeleteModal() string {
	var b strings.Builder
	b.WriteString(m.styles.Danger.Render("Delete Task"))
	b.WriteString("\n\n")

	if m.dash.deleting != nil {
		b.WriteString(m.dash.deleting.Title)
		b.WriteString("\n\n")
		if m.dash.deleting.IsComplete {
			b.WriteString(m.styles.Warning.Render("Are you sure you want to delete this completed task?"))
		} else {
			b.WriteString(m.styles.Warning.Render("This task is not completed. Are you sure you want to delete it?"))
		}
		b.WriteString("\n")
	}
	if m.dash.modalErr != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.dash.modalErr))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.dash.deleteBusy {
		b.WriteString(m.spin.View() + " Deleting...")
	} else {
		b.WriteString(m.styles.Subtle.Render("y/enter delete · n/esc cancel"))
	}
	return b.String()
}

func (m Model) viewCreate() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("New Task"))
	b.WriteString("\n")
	if m.create.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.create.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch m.create.phase {
	case constants.PhaseLoading:
		b.WriteString(m.spin.View() + " Creating task...")
		return b.String()
	case constants.PhaseSuccess:
		b.WriteString(m.styles.Success.Render(m.create.success))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Subtle.Render("Returning to dashboard..."))
		return b.String()
	}

	if m.create.form != nil {
		b.WriteString(m.create.form.View())
	}
	b.WriteString(renderFieldErrors(m.styles, m.create.errs))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render("esc back to dashboard"))
	return b.String()
}

func (m Model) viewProfile() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Profile"))
	b.WriteString("\n\n")

	switch m.profile.phase {
	case constants.PhaseLoading:
		b.WriteString(m.spin.View() + " Loading profile...")
		return b.String()
	case constants.PhaseError:
		b.WriteString(m.styles.Error.Render(m.profile.errMsg))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Subtle.Render("r retry · esc back"))
		return b.String()
	}

	if m.profile.nameMsg != "" {
		b.WriteString(m.styles.Success.Render(m.profile.nameMsg))
		b.WriteString("\n")
	}
	if m.profile.passMsg != "" {
		b.WriteString(m.styles.Success.Render(m.profile.passMsg))
		b.WriteString("\n")
	}

	if m.profile.editingName {
		if m.profile.namePhase == constants.PhaseLoading {
			b.WriteString(m.spin.View() + " Saving name...")
			return b.String()
		}
		if m.profile.nameErr != "" {
			b.WriteString(m.styles.Error.Render(m.profile.nameErr))
			b.WriteString("\n")
		}
		if m.profile.nameForm != nil {
			b.WriteString(m.profile.nameForm.View())
		}
		b.WriteString("\n")
		b.WriteString(m.styles.Subtle.Render("esc cancel"))
		return b.String()
	}

	b.WriteString(m.styles.Card.Render(fmt.Sprintf("Name   %s\nEmail  %s", m.profile.profile.Name, m.profile.profile.Email)))
	b.WriteString("\n\n")

	if m.profile.changingPass {
		b.WriteString(m.styles.Subtle.Render("Change Password"))
		b.WriteString("\n")
		if m.profile.passPhase == constants.PhaseLoading {
			b.WriteString(m.spin.View() + " Updating password...")
			return b.String()
		}
		if m.profile.passErr != "" {
			b.WriteString(m.styles.Error.Render(m.profile.passErr))
			b.WriteString("\n")
		}
		if m.profile.passForm != nil {
			b.WriteString(m.profile.passForm.View())
		}
		b.WriteString(renderFieldErrors(m.styles, m.profile.passErrs))
		b.WriteString("\n")
		b.WriteString(m.styles.Subtle.Render("esc cancel"))
		return b.String()
	}

	b.WriteString(m.styles.Subtle.Render("e edit name · c change password · esc back"))
	return b.String()
}
