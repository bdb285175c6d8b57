package theme

import (
	"testing"

	"github.com/julianstephens/tugas/internal/constants"
	"github.com/julianstephens/tugas/internal/storage"
)

func newTestManager(state storage.Provider, darkTerminal bool) *Manager {
	m := NewManager(state)
	m.detectDark = func() bool { return darkTerminal }
	return m
}

func TestLoad_PersistedValueWins(t *testing.T) {
	state := storage.NewMemoryStore()
	if err := state.Set(constants.StateKeyTheme, "dark"); err != nil {
		t.Fatal(err)
	}

	m := newTestManager(state, false)
	if got := m.Load(); got != Dark {
		t.Errorf("Load = %v, want %v", got, Dark)
	}
}

func TestLoad_DefaultsFromTerminal(t *testing.T) {
	tests := []struct {
		name         string
		darkTerminal bool
		want         Mode
	}{
		{"dark terminal", true, Dark},
		{"light terminal", false, Light},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := storage.NewMemoryStore()
			m := newTestManager(state, tt.darkTerminal)

			if got := m.Load(); got != tt.want {
				t.Errorf("Load = %v, want %v", got, tt.want)
			}

			// The default is persisted for later runs.
			raw, err := state.Get(constants.StateKeyTheme)
			if err != nil || Mode(raw) != tt.want {
				t.Errorf("persisted theme = (%q, %v), want %q", raw, err, tt.want)
			}
		})
	}
}

func TestLoad_IgnoresGarbageValue(t *testing.T) {
	state := storage.NewMemoryStore()
	if err := state.Set(constants.StateKeyTheme, "solarized"); err != nil {
		t.Fatal(err)
	}

	m := newTestManager(state, true)
	if got := m.Load(); got != Dark {
		t.Errorf("Load with garbage persisted value = %v, want terminal default %v", got, Dark)
	}
}

func TestToggle_PersistsEachFlip(t *testing.T) {
	state := storage.NewMemoryStore()
	m := newTestManager(state, false)

	if got := m.Toggle(); got != Dark {
		t.Errorf("first Toggle = %v, want %v", got, Dark)
	}
	raw, _ := state.Get(constants.StateKeyTheme)
	if Mode(raw) != Dark {
		t.Errorf("persisted after first toggle = %q, want %q", raw, Dark)
	}

	if got := m.Toggle(); got != Light {
		t.Errorf("second Toggle = %v, want %v", got, Light)
	}
	raw, _ = state.Get(constants.StateKeyTheme)
	if Mode(raw) != Light {
		t.Errorf("persisted after second toggle = %q, want %q", raw, Light)
	}
}
