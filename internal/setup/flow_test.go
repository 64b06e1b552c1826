package setup

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/preston-bernstein/city-team-dashboard/internal/domain"
	"github.com/preston-bernstein/city-team-dashboard/internal/preferences"
	"github.com/preston-bernstein/city-team-dashboard/internal/testutil"
)

type recordingRefresher struct {
	mu    sync.Mutex
	prefs []domain.Preference
}

func (r *recordingRefresher) Trigger(pref domain.Preference) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prefs = append(r.prefs, pref)
	return uint64(len(r.prefs))
}

func (r *recordingRefresher) calls() []domain.Preference {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Preference(nil), r.prefs...)
}

type failingStore struct{ saved int }

func (f *failingStore) Load() domain.Preference { return domain.Preference{} }
func (f *failingStore) Save(domain.Preference) error {
	f.saved++
	return errors.New("disk full")
}

func newStore(t *testing.T, pref *domain.Preference) *preferences.Store {
	t.Helper()
	store := preferences.NewStore(preferences.NewMemorySlot(), nil)
	if pref != nil {
		if err := store.Save(*pref); err != nil {
			t.Fatalf("seed store: %v", err)
		}
	}
	return store
}

func TestInitialStateFollowsStoredPreference(t *testing.T) {
	if New(newStore(t, nil), &recordingRefresher{}, nil).State() != Visible {
		t.Fatal("expected form visible without a stored preference")
	}

	pref := testutil.SamplePreference()
	if New(newStore(t, &pref), &recordingRefresher{}, nil).State() != Hidden {
		t.Fatal("expected form hidden with a complete stored preference")
	}
}

func TestStartRefreshesWithIncompletePreference(t *testing.T) {
	refresher := &recordingRefresher{}
	flow := New(newStore(t, nil), refresher, nil)

	flow.Start()

	calls := refresher.calls()
	if len(calls) != 1 || calls[0] != (domain.Preference{}) {
		t.Fatalf("expected one refresh with the empty preference, got %v", calls)
	}
}

func TestSubmitIncompleteIsIgnored(t *testing.T) {
	store := newStore(t, nil)
	refresher := &recordingRefresher{}
	flow := New(store, refresher, nil)

	for _, in := range [][2]string{{"", "X"}, {"Paris", "   "}, {"  ", ""}} {
		if flow.Submit(in[0], in[1]) {
			t.Fatalf("expected submission %q to be rejected", in)
		}
	}

	if flow.State() != Visible {
		t.Fatal("expected form to stay visible")
	}
	if len(refresher.calls()) != 0 {
		t.Fatal("expected no refresh")
	}
	if got := store.Load(); got != (domain.Preference{}) {
		t.Fatalf("expected nothing persisted, got %+v", got)
	}
}

func TestSubmitPersistsHidesAndRefreshes(t *testing.T) {
	store := newStore(t, nil)
	refresher := &recordingRefresher{}
	flow := New(store, refresher, nil)

	if !flow.Submit("  Paris ", " Arsenal") {
		t.Fatal("expected submission to apply")
	}

	want := domain.Preference{City: "Paris", Team: "Arsenal"}
	if got := store.Load(); got != want {
		t.Fatalf("expected trimmed preference persisted, got %+v", got)
	}
	if flow.State() != Hidden {
		t.Fatal("expected form hidden")
	}
	if flow.Preference() != want {
		t.Fatalf("unexpected current preference %+v", flow.Preference())
	}
	if calls := refresher.calls(); len(calls) != 1 || calls[0] != want {
		t.Fatalf("expected one refresh for %+v, got %v", want, calls)
	}
}

func TestEditShowsForm(t *testing.T) {
	pref := testutil.SamplePreference()
	flow := New(newStore(t, &pref), &recordingRefresher{}, nil)

	flow.Edit()
	if !flow.Visible() {
		t.Fatal("expected form visible after edit")
	}
	if flow.Preference() != pref {
		t.Fatal("expected edit to keep the current preference")
	}
}

func TestSubmitSaveFailureStillRefreshes(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	store := &failingStore{}
	refresher := &recordingRefresher{}
	flow := New(store, refresher, logger)

	if !flow.Submit("Paris", "Arsenal") {
		t.Fatal("expected submission to apply")
	}
	if store.saved != 1 || len(refresher.calls()) != 1 || flow.Visible() {
		t.Fatalf("expected save attempt, refresh and hidden form")
	}
	if !strings.Contains(buf.String(), "preference save failed") {
		t.Fatalf("expected save failure logged, got %s", buf.String())
	}
}

func TestStateString(t *testing.T) {
	if Visible.String() != "visible" || Hidden.String() != "hidden" {
		t.Fatal("unexpected state names")
	}
}
