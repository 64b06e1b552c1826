package server

import (
	"github.com/preston-bernstein/city-team-dashboard/internal/dashboard"
	"github.com/preston-bernstein/city-team-dashboard/internal/domain"
)

// Refresher is the orchestrator behavior the server depends on.
type Refresher interface {
	Trigger(pref domain.Preference) uint64
	Status() dashboard.Status
	Close()
}
