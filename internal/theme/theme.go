// Package theme holds the light/dark preference. The first run adopts
// the terminal's background; every toggle persists immediately and the
// value survives restarts.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/tugas/internal/constants"
	"github.com/julianstephens/tugas/internal/logger"
	"github.com/julianstephens/tugas/internal/storage"
)

type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Manager loads, toggles, and persists the theme preference.
type Manager struct {
	state storage.Provider
	mode  Mode

	// detectDark is swappable in tests; defaults to probing the
	// terminal background.
	detectDark func() bool
}

func NewManager(state storage.Provider) *Manager {
	return &Manager{
		state:      state,
		detectDark: lipgloss.HasDarkBackground,
	}
}

// Load resolves the active mode: the persisted value when present,
// otherwise the terminal default, which is persisted so later runs
// agree with this one.
func (m *Manager) Load() Mode {
	raw, err := m.state.Get(constants.StateKeyTheme)
	if err == nil {
		switch Mode(raw) {
		case Light, Dark:
			m.mode = Mode(raw)
			return m.mode
		}
	}

	m.mode = Light
	if m.detectDark() {
		m.mode = Dark
	}
	if err := m.state.Set(constants.StateKeyTheme, string(m.mode)); err != nil {
		logger.Warn("failed to persist theme default", "error", err)
	}
	return m.mode
}

// Mode returns the active mode without touching storage.
func (m *Manager) Mode() Mode {
	if m.mode == "" {
		return m.Load()
	}
	return m.mode
}

// Set forces a specific mode and persists it.
func (m *Manager) Set(mode Mode) error {
	m.mode = mode
	return m.state.Set(constants.StateKeyTheme, string(mode))
}

// Toggle flips the mode and persists it.
func (m *Manager) Toggle() Mode {
	next := Light
	if m.Mode() == Light {
		next = Dark
	}
	m.mode = next
	if err := m.state.Set(constants.StateKeyTheme, string(next)); err != nil {
		logger.Warn("failed to persist theme", "error", err)
	}
	return next
}
