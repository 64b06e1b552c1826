// Package dashboard fans a preference out to every data source and publishes the joined view.
package dashboard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/city-team-dashboard/internal/domain"
	"github.com/preston-bernstein/city-team-dashboard/internal/logging"
	"github.com/preston-bernstein/city-team-dashboard/internal/metrics"
	"github.com/preston-bernstein/city-team-dashboard/internal/providers"
	"github.com/preston-bernstein/city-team-dashboard/internal/theme"
)

// Orchestrator runs refreshes. Starting a refresh cancels the one in flight; only the
// newest generation may publish.
type Orchestrator struct {
	sources providers.Sources
	store   *ViewStore
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time

	base context.Context
	stop context.CancelFunc
	wg   sync.WaitGroup

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	closed     bool
	status     Status
}

// Status describes the refresh history.
type Status struct {
	Generation    uint64
	InFlight      bool
	Published     int
	Discarded     int
	LastPublished time.Time
}

// IsReady reports whether a complete view has been published at least once.
func (s Status) IsReady() bool {
	return !s.LastPublished.IsZero()
}

// New constructs an Orchestrator. A nil store gets a fresh ViewStore.
func New(sources providers.Sources, store *ViewStore, logger *slog.Logger, recorder *metrics.Recorder) *Orchestrator {
	if store == nil {
		store = NewViewStore()
	}
	base, stop := context.WithCancel(context.Background())
	return &Orchestrator{
		sources: sources,
		store:   store,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
		base:    base,
		stop:    stop,
	}
}

// Store returns the view store refreshes publish into.
func (o *Orchestrator) Store() *ViewStore {
	return o.store
}

// Status returns a snapshot of the refresh history.
func (o *Orchestrator) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// Refresh publishes the loading view, waits for every source and publishes the result
// unless a newer refresh started meanwhile. It reports the joined view and whether it was published.
func (o *Orchestrator) Refresh(ctx context.Context, pref domain.Preference) (domain.DashboardView, bool) {
	runCtx, gen, ok := o.begin(ctx, pref)
	if !ok {
		return domain.DashboardView{}, false
	}
	return o.run(runCtx, gen, pref)
}

// Trigger starts a refresh in the background and returns its generation (0 after Close).
func (o *Orchestrator) Trigger(pref domain.Preference) uint64 {
	runCtx, gen, ok := o.begin(o.base, pref)
	if !ok {
		return 0
	}
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		o.run(runCtx, gen, pref)
	}()
	return gen
}

// Wait blocks until every triggered refresh has returned.
func (o *Orchestrator) Wait() {
	o.wg.Wait()
}

// Close cancels any refresh in flight and waits for triggered refreshes to return.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	o.closed = true
	if o.cancel != nil {
		o.cancel()
	}
	o.mu.Unlock()

	o.stop()
	o.wg.Wait()
}

// begin supersedes the refresh in flight and publishes the loading view for the new generation.
func (o *Orchestrator) begin(parent context.Context, pref domain.Preference) (context.Context, uint64, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return nil, 0, false
	}
	if o.cancel != nil {
		o.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	o.generation++
	o.cancel = cancel
	o.status.Generation = o.generation
	o.status.InFlight = true

	loading := domain.LoadingView(pref)
	loading.Theme = theme.Apply(pref.Team)
	loading.Generation = o.generation
	loading.UpdatedAt = o.now()
	o.store.Apply(loading)

	return ctx, o.generation, true
}

func (o *Orchestrator) run(ctx context.Context, gen uint64, pref domain.Preference) (domain.DashboardView, bool) {
	start := o.now()
	logger := logging.FromContext(ctx, o.logger)
	logging.Debug(logger, "dashboard refresh started",
		slog.Uint64(logging.FieldGeneration, gen),
		slog.String(logging.FieldCity, pref.City),
		slog.String(logging.FieldTeam, pref.Team),
	)

	view := o.collect(ctx, pref)
	view.Generation = gen
	view.UpdatedAt = o.now()

	published := o.publish(gen, view)
	elapsed := o.now().Sub(start)
	o.metrics.RecordRefresh(elapsed, published)

	if published {
		logging.Info(logger, "dashboard refreshed",
			slog.Uint64(logging.FieldGeneration, gen),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		)
	} else {
		logging.Info(logger, "dashboard refresh superseded",
			slog.Uint64(logging.FieldGeneration, gen),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		)
	}
	return view, published
}

// collect runs the six fetches concurrently. Fetchers are total, so the group never fails.
func (o *Orchestrator) collect(ctx context.Context, pref domain.Preference) domain.DashboardView {
	view := domain.DashboardView{
		CityLabel: pref.CityLabel(),
		TeamLabel: pref.TeamLabel(),
		Theme:     theme.Apply(pref.Team),
	}
	var cityNews, teamNews []domain.NewsItem

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		view.CityFact = o.sources.Facts.FetchFact(gctx, pref.City)
		return nil
	})
	g.Go(func() error {
		view.TeamFact = o.sources.Facts.FetchFact(gctx, pref.Team)
		return nil
	})
	g.Go(func() error {
		view.Conditions = o.sources.Conditions.FetchCityConditions(gctx, pref.City)
		return nil
	})
	g.Go(func() error {
		view.Stats = o.sources.Stats.FetchTeamStats(gctx, pref.Team)
		return nil
	})
	g.Go(func() error {
		cityNews = o.sources.News.FetchNews(gctx, pref.City)
		return nil
	})
	g.Go(func() error {
		teamNews = o.sources.News.FetchNews(gctx, pref.Team)
		return nil
	})
	_ = g.Wait()

	view.CityNews = domain.NewNewsPanel(pref.City, cityNews)
	view.TeamNews = domain.NewNewsPanel(pref.Team, teamNews)
	return view
}

func (o *Orchestrator) publish(gen uint64, view domain.DashboardView) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.generation {
		o.status.Discarded++
		return false
	}
	o.store.Apply(view)
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
	o.status.InFlight = false
	o.status.Published++
	o.status.LastPublished = view.UpdatedAt
	return true
}
