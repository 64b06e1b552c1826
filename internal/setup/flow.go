// Package setup gates the dashboard behind a preference form.
package setup

import (
	"log/slog"
	"sync"

	"github.com/preston-bernstein/city-team-dashboard/internal/domain"
	"github.com/preston-bernstein/city-team-dashboard/internal/logging"
)

// State is the visibility of the preference form.
type State int

const (
	Hidden State = iota
	Visible
)

func (s State) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// PreferenceStore persists the user's preference.
type PreferenceStore interface {
	Load() domain.Preference
	Save(pref domain.Preference) error
}

// Refresher starts a dashboard refresh for a preference.
type Refresher interface {
	Trigger(pref domain.Preference) uint64
}

// Flow is the form state machine. Submissions missing either field are ignored and leave the form visible.
type Flow struct {
	store     PreferenceStore
	refresher Refresher
	logger    *slog.Logger

	mu    sync.Mutex
	state State
	pref  domain.Preference
}

// New loads the stored preference once. The form starts visible when it is incomplete.
func New(store PreferenceStore, refresher Refresher, logger *slog.Logger) *Flow {
	pref := store.Load()
	state := Hidden
	if !pref.Complete() {
		state = Visible
	}
	return &Flow{
		store:     store,
		refresher: refresher,
		logger:    logger,
		state:     state,
		pref:      pref,
	}
}

// Start runs the initial refresh with whatever preference was loaded, complete or not.
func (f *Flow) Start() {
	f.refresher.Trigger(f.Preference())
}

// State returns the current form visibility.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Visible reports whether the form is showing.
func (f *Flow) Visible() bool {
	return f.State() == Visible
}

// Preference returns the preference the dashboard was last refreshed with.
func (f *Flow) Preference() domain.Preference {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pref
}

// Edit shows the form.
func (f *Flow) Edit() {
	f.mu.Lock()
	f.state = Visible
	f.mu.Unlock()
}

// Submit trims the fields and, when both are non-empty, persists them, hides the form and refreshes.
// It reports whether the submission was applied.
func (f *Flow) Submit(city, team string) bool {
	pref := domain.NewPreference(city, team)
	if !pref.Complete() {
		logging.Debug(f.logger, "incomplete preference ignored")
		return false
	}

	f.mu.Lock()
	if err := f.store.Save(pref); err != nil {
		logging.Error(f.logger, "preference save failed", err,
			slog.String(logging.FieldCity, pref.City),
			slog.String(logging.FieldTeam, pref.Team),
		)
	}
	f.pref = pref
	f.state = Hidden
	f.mu.Unlock()

	f.refresher.Trigger(pref)
	logging.Info(f.logger, "preference applied",
		slog.String(logging.FieldCity, pref.City),
		slog.String(logging.FieldTeam, pref.Team),
	)
	return true
}
