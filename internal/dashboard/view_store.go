package dashboard

import (
	"sync"

	"github.com/preston-bernstein/city-team-dashboard/internal/domain"
)

// ViewStore keeps the most recently published dashboard view.
type ViewStore struct {
	mu   sync.RWMutex
	view domain.DashboardView
	set  bool
}

// NewViewStore constructs an empty ViewStore.
func NewViewStore() *ViewStore {
	return &ViewStore{}
}

// Apply replaces the current view. A view without a theme keeps the previous theme.
func (s *ViewStore) Apply(view domain.DashboardView) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if view.Theme == nil {
		view.Theme = s.view.Theme
	}
	s.view = view
	s.set = true
}

// Current returns a copy of the current view and whether one was ever applied.
func (s *ViewStore) Current() (domain.DashboardView, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := s.view
	view.CityNews.Items = cloneItems(view.CityNews.Items)
	view.TeamNews.Items = cloneItems(view.TeamNews.Items)
	if view.Theme != nil {
		theme := *view.Theme
		view.Theme = &theme
	}
	return view, s.set
}

func cloneItems(items []domain.NewsItem) []domain.NewsItem {
	if items == nil {
		return nil
	}
	out := make([]domain.NewsItem, len(items))
	copy(out, items)
	return out
}
