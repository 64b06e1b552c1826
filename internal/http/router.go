package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/city-team-dashboard/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/dashboard", handler.Dashboard)
	mux.HandleFunc("/preferences", handler.Preferences)
	mux.HandleFunc("/preferences/edit", handler.EditPreferences)
	mux.HandleFunc("/theme", handler.Theme)
	mux.HandleFunc("/", handler.NotFound)
	return mux
}
