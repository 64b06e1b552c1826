package testutil

import (
	"context"
	"sync"

	"github.com/preston-bernstein/city-team-dashboard/internal/domain"
)

// StubSources implements every dashboard fetcher with canned answers.
// When Block is non-nil each fetch waits for it to close or for ctx to end.
type StubSources struct {
	Facts      map[string]string
	Conditions domain.WeatherConditions
	Stats      domain.TeamStats
	News       map[string][]domain.NewsItem
	Block      <-chan struct{}

	mu    sync.Mutex
	calls map[string]int
}

// FetchFact returns Facts[topic], or "fact about <topic>".
func (s *StubSources) FetchFact(ctx context.Context, topic string) string {
	s.wait(ctx)
	s.record("fact")
	if fact, ok := s.Facts[topic]; ok {
		return fact
	}
	return "fact about " + topic
}

// FetchCityConditions returns Conditions.
func (s *StubSources) FetchCityConditions(ctx context.Context, city string) domain.WeatherConditions {
	s.wait(ctx)
	s.record("conditions")
	return s.Conditions
}

// FetchTeamStats returns Stats.
func (s *StubSources) FetchTeamStats(ctx context.Context, team string) domain.TeamStats {
	s.wait(ctx)
	s.record("stats")
	return s.Stats
}

// FetchNews returns News[query].
func (s *StubSources) FetchNews(ctx context.Context, query string) []domain.NewsItem {
	s.wait(ctx)
	s.record("news")
	return s.News[query]
}

// Calls returns how many times the named fetch ran ("fact", "conditions", "stats", "news").
func (s *StubSources) Calls(kind string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[kind]
}

// TotalCalls returns the number of fetches across all kinds.
func (s *StubSources) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

func (s *StubSources) record(kind string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = make(map[string]int)
	}
	s.calls[kind]++
}

func (s *StubSources) wait(ctx context.Context) {
	if s.Block == nil {
		return
	}
	select {
	case <-s.Block:
	case <-ctx.Done():
	}
}
