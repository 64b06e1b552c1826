package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	calls           int
	errors          int
	lastStatus      int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream calls and refreshes,
// mirroring them into OpenTelemetry instruments when configured.
type Recorder struct {
	mu        sync.Mutex
	stats     map[string]*sourceStats
	refreshes int
	discarded int
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*sourceStats),
		otel:  otel,
	}
}

// RecordSourceAttempt counts an upstream call. status is the HTTP status, 0 when no response arrived.
func (r *Recorder) RecordSourceAttempt(source string, status int, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(source)
	stats.calls++
	stats.lastStatus = status
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSourceAttempt(source, status, duration, err)
	}
}

// RecordRefresh tracks a completed dashboard refresh. published is false when a newer refresh superseded it.
func (r *Recorder) RecordRefresh(duration time.Duration, published bool) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.refreshes++
	if !published {
		r.discarded++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRefresh(duration, published)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// SourceCalls returns the total attempts recorded for a source.
func (r *Recorder) SourceCalls(source string) int {
	return r.Snapshot(source).Calls
}

// SourceErrors returns the total failed attempts recorded for a source.
func (r *Recorder) SourceErrors(source string) int {
	return r.Snapshot(source).Errors
}

// LastCallLatency returns the last recorded latency for a source call.
func (r *Recorder) LastCallLatency(source string) time.Duration {
	return r.Snapshot(source).LastCallLatency
}

// Refreshes returns how many refreshes finished and how many of them were discarded as stale.
func (r *Recorder) Refreshes() (total, discarded int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshes, r.discarded
}

// Snapshot returns a copy of the current stats for the source.
type Snapshot struct {
	Calls           int
	Errors          int
	LastStatus      int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(source string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[source]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastStatus:      stats.lastStatus,
		LastCallLatency: stats.lastCallLatency,
	}
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(source string) *sourceStats {
	stats, ok := r.stats[source]
	if !ok {
		stats = &sourceStats{}
		r.stats[source] = stats
	}
	return stats
}
