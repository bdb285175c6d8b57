package constants

import "time"

// Route identifies a top-level view in the TUI.
type Route int

const (
	RouteOnboard Route = iota
	RouteLogin
	RouteRegistration
	RouteDashboard
	RouteCreate
	RouteProfile
)

// Phase is the lifecycle state of a view's remote interaction. Each
// view is in exactly one phase; loading and error can never be true at
// the same time.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

const (
	AppName           = "tugas"
	Version           = "v0.2.0"
	DefaultConfigPath = "~/.config/tugas/tugas.db"
	DefaultServerURL  = "https://tugas-gdsc.vercel.app/api/v1"

	// KeyringService is the service name under which the session
	// credential is stored in the OS keyring.
	KeyringService = "tugas"
	KeyringUser    = "session-token"

	// State store keys.
	StateKeyTheme         = "theme"
	StateKeySessionToken  = "session_token"
	StateKeySessionExpiry = "session_expiry"
	StateKeyLastUserID    = "last_user_id"

	// DateFormat is the display format for due dates (YYYY-MM-DD).
	DateFormat = "2006-01-02"

	// DateTimeFormat is the input format for due dates with a time
	// component (YYYY-MM-DD HH:MM).
	DateTimeFormat = "2006-01-02 15:04"

	// DueSoonWindow is how far ahead of now a due date counts as
	// approaching. The window excludes now itself and includes its
	// upper bound.
	DueSoonWindow = 24 * time.Hour

	// RecentTaskCount is how many tasks the dashboard lists.
	RecentTaskCount = 5

	// RequestTimeout bounds every call to the remote API.
	RequestTimeout = 15 * time.Second

	// CreateRedirectDelay is how long the create view shows its
	// success message before returning to the dashboard.
	CreateRedirectDelay = 1500 * time.Millisecond

	// BannerDuration is how long transient banners (e.g. the
	// post-registration notice on the login view) stay visible.
	BannerDuration = 5 * time.Second

	// Field length limits enforced on task drafts.
	MaxTitleLen       = 100
	MaxDescriptionLen = 500

	// MinPasswordLen is the minimum accepted password length.
	MinPasswordLen = 6
)
