package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mitchellh/hashstructure/v2"

	"github.com/julianstephens/tugas/internal/api"
	"github.com/julianstephens/tugas/internal/constants"
	"github.com/julianstephens/tugas/internal/logger"
	"github.com/julianstephens/tugas/internal/models"
	"github.com/julianstephens/tugas/internal/stats"
	"github.com/julianstephens/tugas/internal/validation"
)

// editState is what the edit modal hashes to decide whether a save
// actually changed anything. An unchanged record closes the modal
// without a request.
type editState struct {
	Draft    models.TodoDraft
	Complete bool
}

func editHash(draft models.TodoDraft, complete bool) uint64 {
	h, err := hashstructure.Hash(editState{Draft: draft, Complete: complete}, hashstructure.FormatV2, nil)
	if err != nil {
		return 0
	}
	return h
}

func fieldErrors(errs validation.Errors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[string(e.Field)] = e.Message
	}
	return out
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case bannerExpiredMsg:
		m.login.banner = ""
		m.profile.nameMsg = ""
		m.profile.passMsg = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Theme):
			m.styles = NewStyles(m.themes.Toggle())
			return m, nil
		}
	}

	switch m.route {
	case constants.RouteOnboard:
		return m.updateOnboard(msg)
	case constants.RouteLogin:
		return m.updateLogin(msg)
	case constants.RouteRegistration:
		return m.updateRegistration(msg)
	case constants.RouteDashboard:
		return m.updateDashboard(msg)
	case constants.RouteCreate:
		return m.updateCreate(msg)
	case constants.RouteProfile:
		return m.updateProfile(msg)
	}
	return m, nil
}

// Route transitions. Each enter* helper resets the target view's
// transient state and returns the command that kicks it off.

func (m *Model) enterLogin() tea.Cmd {
	m.route = constants.RouteLogin
	m.login.phase = constants.PhaseIdle
	m.login.errs = nil
	m.login.errMsg = ""
	m.login.form = newLoginForm(&m.login.draft)
	return m.login.form.Init()
}

func (m *Model) enterRegistration() tea.Cmd {
	m.route = constants.RouteRegistration
	m.reg = registrationView{draft: models.Registration{}}
	m.reg.form = newRegistrationForm(&m.reg.draft)
	return m.reg.form.Init()
}

func (m *Model) enterDashboard() tea.Cmd {
	m.route = constants.RouteDashboard
	m.dash.modal = modalNone
	m.dash.modalErr = ""
	m.dash.errMsg = ""
	return m.refreshDashboard()
}

func (m *Model) refreshDashboard() tea.Cmd {
	m.dash.seq++
	m.dash.phase = constants.PhaseLoading
	return m.fetchTodos(m.dash.seq)
}

func (m *Model) enterCreate() tea.Cmd {
	m.route = constants.RouteCreate
	m.create = createView{draft: models.NewTodoDraft()}
	m.create.form = newCreateForm(&m.create.draft)
	return m.create.form.Init()
}

func (m *Model) enterProfile() tea.Cmd {
	m.route = constants.RouteProfile
	m.profile = profileView{seq: m.profile.seq + 1, phase: constants.PhaseLoading}
	return m.fetchProfile(m.profile.seq)
}

// sessionExpired handles a server-side credential rejection on any
// authenticated call. The client has already dropped the stored
// credential; all that is left is to land on login with an
// explanation.
func (m *Model) sessionExpired() tea.Cmd {
	logger.Warn("session rejected, returning to login")
	cmd := m.enterLogin()
	m.login.errMsg = "Session expired. Please login again."
	return cmd
}

func (m Model) updateOnboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.onboardCursor > 0 {
			m.onboardCursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.onboardCursor < 1 {
			m.onboardCursor++
		}
	case key.Matches(keyMsg, m.keys.Enter):
		if m.onboardCursor == 0 {
			return m, m.enterLogin()
		}
		return m, m.enterRegistration()
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		if msg.err != nil {
			m.login.phase = constants.PhaseError
			m.login.errMsg = loginFailureMessage(msg.err)
			return m, m.enterLoginForm()
		}
		m.login = loginView{}
		return m, m.enterDashboard()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Back) && m.login.phase != constants.PhaseLoading {
			m.route = constants.RouteOnboard
			return m, nil
		}
	}

	if m.login.form == nil || m.login.phase == constants.PhaseLoading {
		return m, nil
	}
	form, cmd := m.login.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.login.form = f
	}
	switch m.login.form.State {
	case huh.StateAborted:
		m.route = constants.RouteOnboard
		return m, nil
	case huh.StateCompleted:
		if errs := validation.Login(m.login.draft); len(errs) > 0 {
			m.login.errs = fieldErrors(errs)
			return m, m.enterLoginForm()
		}
		m.login.errs = nil
		m.login.errMsg = ""
		m.login.banner = ""
		m.login.phase = constants.PhaseLoading
		return m, m.doLogin(m.login.draft)
	}
	return m, cmd
}

// enterLoginForm rebuilds the login form in place after a failed
// submit. The draft is untouched, so the user's input survives.
func (m *Model) enterLoginForm() tea.Cmd {
	m.login.phase = constants.PhaseIdle
	m.login.form = newLoginForm(&m.login.draft)
	return m.login.form.Init()
}

func loginFailureMessage(err error) string {
	msg := api.UserMessage(err, "Login failed. Please try again.")
	if msg == "Invalid user ID or password" {
		msg = "Invalid user ID or password. Please try again."
	}
	return msg
}

func (m Model) updateRegistration(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case registerDoneMsg:
		if msg.err != nil {
			m.applyRegistrationError(msg.err)
			return m, m.enterRegistrationForm()
		}
		userID := msg.userID
		m.reg = registrationView{}
		_ = m.enterLogin()
		m.login.draft = models.Credentials{UserID: userID}
		m.login.form = newLoginForm(&m.login.draft)
		m.login.banner = "Registration successful! Please login to continue."
		return m, tea.Batch(m.login.form.Init(), expireBanner())

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Back) && m.reg.phase != constants.PhaseLoading {
			m.route = constants.RouteOnboard
			return m, nil
		}
	}

	if m.reg.form == nil || m.reg.phase == constants.PhaseLoading {
		return m, nil
	}
	form, cmd := m.reg.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.reg.form = f
	}
	switch m.reg.form.State {
	case huh.StateAborted:
		m.route = constants.RouteOnboard
		return m, nil
	case huh.StateCompleted:
		if errs := validation.Registration(m.reg.draft); len(errs) > 0 {
			m.reg.errs = fieldErrors(errs)
			return m, m.enterRegistrationForm()
		}
		m.reg.errs = nil
		m.reg.errMsg = ""
		m.reg.phase = constants.PhaseLoading
		return m, m.doRegister(m.reg.draft)
	}
	return m, cmd
}

func (m *Model) enterRegistrationForm() tea.Cmd {
	m.reg.phase = constants.PhaseIdle
	m.reg.form = newRegistrationForm(&m.reg.draft)
	return m.reg.form.Init()
}

// applyRegistrationError maps a failed sign-up to either a field error
// or a page-level message. A 400 means the server rejected the email,
// so the message lands on that field.
func (m *Model) applyRegistrationError(err error) {
	m.reg.phase = constants.PhaseError
	var apiErr *api.Error
	switch {
	case errors.As(err, &apiErr):
		switch {
		case apiErr.Status == 400:
			msg := apiErr.Message
			if msg == "" {
				msg = "Email already registered"
			}
			if m.reg.errs == nil {
				m.reg.errs = map[string]string{}
			}
			m.reg.errs[string(validation.FieldEmail)] = msg
		case apiErr.Message != "":
			m.reg.errMsg = apiErr.Message
		default:
			m.reg.errMsg = "An unexpected error occurred. Please try again."
		}
	default:
		m.reg.errMsg = api.ConnectivityMessage
	}
}

func (m Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case todosLoadedMsg:
		if msg.seq != m.dash.seq {
			return m, nil
		}
		m.dash.phase = constants.PhaseSuccess
		m.dash.errMsg = ""
		m.dash.todos = msg.todos
		m.dash.stats = stats.Aggregate(msg.todos, time.Now())
		m.dash.recent = stats.Recent(msg.todos, constants.RecentTaskCount)
		if m.dash.cursor >= len(m.dash.todos) {
			m.dash.cursor = len(m.dash.todos) - 1
		}
		if m.dash.cursor < 0 {
			m.dash.cursor = 0
		}
		return m, nil

	case loadFailedMsg:
		if msg.seq != m.dash.seq {
			return m, nil
		}
		if errors.Is(msg.err, api.ErrUnauthenticated) {
			return m, m.sessionExpired()
		}
		m.dash.phase = constants.PhaseError
		m.dash.errMsg = api.UserMessage(msg.err, "Failed to load tasks. Please try again.")
		return m, nil

	case todoUpdatedMsg:
		m.dash.editBusy = false
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrUnauthenticated) {
				return m, m.sessionExpired()
			}
			m.dash.modalErr = api.UserMessage(msg.err, "Failed to update task. Please try again.")
			return m, m.reopenEditForm()
		}
		m.closeModal()
		return m, m.refreshDashboard()

	case todoDeletedMsg:
		m.dash.deleteBusy = false
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrUnauthenticated) {
				return m, m.sessionExpired()
			}
			m.dash.modalErr = api.UserMessage(msg.err, "Failed to delete task. Please try again.")
			return m, nil
		}
		m.closeModal()
		return m, m.refreshDashboard()
	}

	switch m.dash.modal {
	case modalEdit:
		return m.updateEditModal(msg)
	case modalDelete:
		return m.updateDeleteModal(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.dash.cursor > 0 {
			m.dash.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.dash.cursor < len(m.dash.todos)-1 {
			m.dash.cursor++
		}
	case key.Matches(keyMsg, m.keys.New):
		return m, m.enterCreate()
	case key.Matches(keyMsg, m.keys.Edit):
		return m, m.openEditModal()
	case key.Matches(keyMsg, m.keys.Delete):
		m.openDeleteModal()
	case key.Matches(keyMsg, m.keys.Refresh):
		return m, m.refreshDashboard()
	case key.Matches(keyMsg, m.keys.Profile):
		return m, m.enterProfile()
	case key.Matches(keyMsg, m.keys.Logout):
		if err := m.sessions.Clear(); err != nil {
			logger.Error("clearing session", "error", err)
		}
		m.dash = dashboardView{seq: m.dash.seq}
		return m, m.enterLogin()
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) selectedTodo() *models.Todo {
	if len(m.dash.todos) == 0 || m.dash.cursor < 0 || m.dash.cursor >= len(m.dash.todos) {
		return nil
	}
	t := m.dash.todos[m.dash.cursor]
	return &t
}

func (m *Model) openEditModal() tea.Cmd {
	todo := m.selectedTodo()
	if todo == nil {
		return nil
	}
	m.dash.modal = modalEdit
	m.dash.modalErr = ""
	m.dash.editing = todo
	m.dash.editDraft = models.DraftFromTodo(*todo)
	m.dash.editComplete = todo.IsComplete
	m.dash.editHash = editHash(m.dash.editDraft, m.dash.editComplete)
	m.dash.editForm = newEditForm(&m.dash.editDraft, &m.dash.editComplete)
	return m.dash.editForm.Init()
}

func (m *Model) reopenEditForm() tea.Cmd {
	m.dash.editForm = newEditForm(&m.dash.editDraft, &m.dash.editComplete)
	return m.dash.editForm.Init()
}

func (m *Model) openDeleteModal() {
	todo := m.selectedTodo()
	if todo == nil {
		return
	}
	m.dash.modal = modalDelete
	m.dash.modalErr = ""
	m.dash.deleting = todo
}

func (m *Model) closeModal() {
	m.dash.modal = modalNone
	m.dash.modalErr = ""
	m.dash.editing = nil
	m.dash.editForm = nil
	m.dash.editBusy = false
	m.dash.deleting = nil
	m.dash.deleteBusy = false
}

func (m Model) updateEditModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Back) && !m.dash.editBusy {
			m.closeModal()
			return m, nil
		}
	}
	if m.dash.editForm == nil || m.dash.editBusy {
		return m, nil
	}
	form, cmd := m.dash.editForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.dash.editForm = f
	}
	switch m.dash.editForm.State {
	case huh.StateAborted:
		m.closeModal()
		return m, nil
	case huh.StateCompleted:
		if errs := validation.TaskDraft(m.dash.editDraft); len(errs) > 0 {
			m.dash.modalErr = errs[0].Message
			return m, m.reopenEditForm()
		}
		due, err := m.dash.editDraft.DueDateTime()
		if err != nil {
			m.dash.modalErr = "Invalid due date format"
			return m, m.reopenEditForm()
		}
		if editHash(m.dash.editDraft, m.dash.editComplete) == m.dash.editHash {
			m.closeModal()
			return m, nil
		}
		updated := *m.dash.editing
		updated.Title = strings.TrimSpace(m.dash.editDraft.Title)
		updated.Description = strings.TrimSpace(m.dash.editDraft.Description)
		updated.DueDate = &due
		updated.Priority = m.dash.editDraft.Priority
		updated.IsComplete = m.dash.editComplete
		m.dash.modalErr = ""
		m.dash.editBusy = true
		return m, m.updateTodo(updated)
	}
	return m, cmd
}

func (m Model) updateDeleteModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.dash.deleteBusy {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Back), keyMsg.String() == "n":
		m.closeModal()
	case key.Matches(keyMsg, m.keys.Enter), keyMsg.String() == "y":
		if m.dash.deleting == nil {
			m.closeModal()
			return m, nil
		}
		m.dash.deleteBusy = true
		return m, m.deleteTodo(m.dash.deleting.ID)
	}
	return m, nil
}

func (m Model) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case todoCreatedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrUnauthenticated) {
				return m, m.sessionExpired()
			}
			m.create.phase = constants.PhaseError
			m.create.errMsg = api.UserMessage(msg.err, "Failed to create task. Please try again.")
			return m, m.enterCreateForm()
		}
		m.create.phase = constants.PhaseSuccess
		m.create.success = "Todo created successfully!"
		m.create.draft = models.NewTodoDraft()
		m.create.form = nil
		return m, scheduleCreateRedirect()

	case createRedirectMsg:
		if m.create.phase == constants.PhaseSuccess {
			m.create = createView{}
			return m, m.enterDashboard()
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Back) && m.create.phase != constants.PhaseLoading {
			m.create = createView{}
			return m, m.enterDashboard()
		}
	}

	if m.create.form == nil || m.create.phase == constants.PhaseLoading || m.create.phase == constants.PhaseSuccess {
		return m, nil
	}
	form, cmd := m.create.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.create.form = f
	}
	switch m.create.form.State {
	case huh.StateAborted:
		m.create = createView{}
		return m, m.enterDashboard()
	case huh.StateCompleted:
		errs := validation.TaskDraft(m.create.draft)
		if len(errs) == 0 {
			if _, err := m.create.draft.DueDateTime(); err != nil {
				errs = validation.Errors{{Field: validation.FieldDueDate, Message: "Invalid due date format"}}
			}
		}
		if len(errs) > 0 {
			m.create.errs = fieldErrors(errs)
			return m, m.enterCreateForm()
		}
		m.create.errs = nil
		m.create.errMsg = ""
		m.create.phase = constants.PhaseLoading
		return m, m.createTodo(m.create.draft)
	}
	return m, cmd
}

func (m *Model) enterCreateForm() tea.Cmd {
	m.create.phase = constants.PhaseIdle
	m.create.form = newCreateForm(&m.create.draft)
	return m.create.form.Init()
}

func (m Model) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.seq != m.profile.seq {
			return m, nil
		}
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrUnauthenticated) {
				return m, m.sessionExpired()
			}
			m.profile.phase = constants.PhaseError
			m.profile.errMsg = api.UserMessage(msg.err, "Failed to load profile. Please try again.")
			return m, nil
		}
		m.profile.phase = constants.PhaseSuccess
		m.profile.errMsg = ""
		m.profile.profile = msg.profile
		return m, nil

	case nameUpdatedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrUnauthenticated) {
				return m, m.sessionExpired()
			}
			m.profile.namePhase = constants.PhaseError
			m.profile.nameErr = api.UserMessage(msg.err, "Failed to update name. Please try again.")
			m.profile.nameForm = newNameForm(&m.profile.nameDraft)
			return m, m.profile.nameForm.Init()
		}
		m.profile.profile = msg.profile
		m.profile.editingName = false
		m.profile.nameForm = nil
		m.profile.namePhase = constants.PhaseSuccess
		m.profile.nameErr = ""
		m.profile.nameMsg = "Name updated successfully"
		return m, expireBanner()

	case passwordUpdatedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrUnauthenticated) {
				return m, m.sessionExpired()
			}
			m.profile.passPhase = constants.PhaseError
			m.profile.passErr = api.UserMessage(msg.err, "Failed to update password. Please try again.")
			m.profile.passForm = newPasswordForm(&m.profile.passDraft)
			return m, m.profile.passForm.Init()
		}
		m.profile.changingPass = false
		m.profile.passForm = nil
		m.profile.passDraft = models.PasswordChange{}
		m.profile.passErrs = nil
		m.profile.passErr = ""
		m.profile.passPhase = constants.PhaseSuccess
		m.profile.passMsg = "Password updated successfully"
		return m, expireBanner()
	}

	if m.profile.editingName {
		return m.updateNameForm(msg)
	}
	if m.profile.changingPass {
		return m.updatePassForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Back):
		return m, m.enterDashboard()
	case key.Matches(keyMsg, m.keys.Edit):
		if m.profile.phase != constants.PhaseSuccess {
			return m, nil
		}
		m.profile.editingName = true
		m.profile.nameDraft = m.profile.profile.Name
		m.profile.nameErr = ""
		m.profile.nameForm = newNameForm(&m.profile.nameDraft)
		return m, m.profile.nameForm.Init()
	case keyMsg.String() == "c":
		if m.profile.phase != constants.PhaseSuccess {
			return m, nil
		}
		m.profile.changingPass = true
		m.profile.passDraft = models.PasswordChange{}
		m.profile.passErrs = nil
		m.profile.passErr = ""
		m.profile.passForm = newPasswordForm(&m.profile.passDraft)
		return m, m.profile.passForm.Init()
	case key.Matches(keyMsg, m.keys.Refresh):
		m.profile.seq++
		m.profile.phase = constants.PhaseLoading
		return m, m.fetchProfile(m.profile.seq)
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateNameForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Back) && m.profile.namePhase != constants.PhaseLoading {
			m.profile.editingName = false
			m.profile.nameForm = nil
			return m, nil
		}
	}
	if m.profile.nameForm == nil || m.profile.namePhase == constants.PhaseLoading {
		return m, nil
	}
	form, cmd := m.profile.nameForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.profile.nameForm = f
	}
	switch m.profile.nameForm.State {
	case huh.StateAborted:
		m.profile.editingName = false
		m.profile.nameForm = nil
		return m, nil
	case huh.StateCompleted:
		name := strings.TrimSpace(m.profile.nameDraft)
		if name == "" {
			m.profile.namePhase = constants.PhaseIdle
			m.profile.nameErr = "Name is required"
			m.profile.nameForm = newNameForm(&m.profile.nameDraft)
			return m, m.profile.nameForm.Init()
		}
		if name == m.profile.profile.Name {
			m.profile.editingName = false
			m.profile.nameForm = nil
			return m, nil
		}
		m.profile.nameErr = ""
		m.profile.namePhase = constants.PhaseLoading
		return m, m.updateName(name)
	}
	return m, cmd
}

func (m Model) updatePassForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Back) && m.profile.passPhase != constants.PhaseLoading {
			m.profile.changingPass = false
			m.profile.passForm = nil
			return m, nil
		}
	}
	if m.profile.passForm == nil || m.profile.passPhase == constants.PhaseLoading {
		return m, nil
	}
	form, cmd := m.profile.passForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.profile.passForm = f
	}
	switch m.profile.passForm.State {
	case huh.StateAborted:
		m.profile.changingPass = false
		m.profile.passForm = nil
		return m, nil
	case huh.StateCompleted:
		if errs := validation.PasswordChange(m.profile.passDraft); len(errs) > 0 {
			m.profile.passPhase = constants.PhaseIdle
			m.profile.passErrs = fieldErrors(errs)
			m.profile.passForm = newPasswordForm(&m.profile.passDraft)
			return m, m.profile.passForm.Init()
		}
		m.profile.passErrs = nil
		m.profile.passErr = ""
		m.profile.passPhase = constants.PhaseLoading
		return m, m.updatePassword(m.profile.passDraft)
	}
	return m, cmd
}
