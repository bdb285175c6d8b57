package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/tugas/internal/constants"
	"github.com/julianstephens/tugas/internal/models"
	"github.com/julianstephens/tugas/internal/session"
	"github.com/julianstephens/tugas/internal/stats"
	"github.com/julianstephens/tugas/internal/theme"
)

// loginView backs the sign-in route. The draft survives a failed
// submit so the user can correct it; only the banner is transient.
type loginView struct {
	phase  constants.Phase
	form   *huh.Form
	draft  models.Credentials
	errs   map[string]string
	errMsg string
	banner string
}

type registrationView struct {
	phase  constants.Phase
	form   *huh.Form
	draft  models.Registration
	errs   map[string]string
	errMsg string
}

type dashModal int

const (
	modalNone dashModal = iota
	modalEdit
	modalDelete
)

// dashboardView holds the fetched list, the derived stats, and the two
// modal sub-flows. seq tags every fetch so a response from an
// abandoned request can be recognized and dropped.
type dashboardView struct {
	phase  constants.Phase
	seq    int
	todos  []models.Todo
	stats  stats.Stats
	recent []models.Todo
	cursor int
	errMsg string

	modal        dashModal
	modalErr     string
	editing      *models.Todo
	editForm     *huh.Form
	editDraft    models.TodoDraft
	editComplete bool
	editHash     uint64
	editBusy     bool
	deleting     *models.Todo
	deleteBusy   bool
}

type createView struct {
	phase   constants.Phase
	form    *huh.Form
	draft   models.TodoDraft
	errs    map[string]string
	errMsg  string
	success string
}

// profileView has two independent sub-flows: the edit-in-place name
// and the password change form, each with its own phase.
type profileView struct {
	phase   constants.Phase
	seq     int
	profile models.Profile
	errMsg  string

	editingName bool
	nameDraft   string
	nameForm    *huh.Form
	namePhase   constants.Phase
	nameMsg     string
	nameErr     string

	changingPass bool
	passForm     *huh.Form
	passDraft    models.PasswordChange
	passPhase    constants.Phase
	passErrs     map[string]string
	passErr      string
	passMsg      string
}

type Model struct {
	svc      Service
	sessions session.Store
	themes   *theme.Manager

	route  constants.Route
	keys   KeyMap
	help   help.Model
	spin   spinner.Model
	styles Styles

	width, height int
	quitting      bool
	onboardCursor int

	login   loginView
	reg     registrationView
	dash    dashboardView
	create  createView
	profile profileView
}

func NewModel(svc Service, sessions session.Store, themes *theme.Manager) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		svc:      svc,
		sessions: sessions,
		themes:   themes,
		route:    constants.RouteOnboard,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		spin:     sp,
		styles:   NewStyles(themes.Load()),
	}

	// A held credential skips onboarding straight to the dashboard;
	// if the server has since invalidated it, the fetch bounces the
	// user back to login.
	if _, ok := sessions.Get(); ok {
		m.route = constants.RouteDashboard
		m.dash.phase = constants.PhaseLoading
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	if m.route == constants.RouteDashboard {
		cmds = append(cmds, m.fetchTodos(m.dash.seq))
	}
	return tea.Batch(cmds...)
}
