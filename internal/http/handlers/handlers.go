package handlers

import (
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/city-team-dashboard/internal/dashboard"
	"github.com/preston-bernstein/city-team-dashboard/internal/domain"
	"github.com/preston-bernstein/city-team-dashboard/internal/logging"
	"github.com/preston-bernstein/city-team-dashboard/internal/theme"
)

// ViewSource exposes the latest published dashboard view.
type ViewSource interface {
	Current() (domain.DashboardView, bool)
}

// SetupFlow is the preference form state machine.
type SetupFlow interface {
	Visible() bool
	Preference() domain.Preference
	Edit()
	Submit(city, team string) bool
}

// Handler wires HTTP routes to the dashboard and setup flow.
type Handler struct {
	views    ViewSource
	setup    SetupFlow
	logger   *slog.Logger
	statusFn func() dashboard.Status
}

// NewHandler constructs a Handler. A nil statusFn reports ready unconditionally.
func NewHandler(views ViewSource, setup SetupFlow, logger *slog.Logger, statusFn func() dashboard.Status) *Handler {
	return &Handler{
		views:    views,
		setup:    setup,
		logger:   logger,
		statusFn: statusFn,
	}
}

type setupState struct {
	Visible bool `json:"visible"`
}

type dashboardResponse struct {
	View  domain.DashboardView `json:"view"`
	Setup setupState           `json:"setup"`
}

type preferenceRequest struct {
	City string `json:"city"`
	Team string `json:"team"`
}

type preferenceResponse struct {
	City         string `json:"city"`
	Team         string `json:"team"`
	Complete     bool   `json:"complete"`
	SetupVisible bool   `json:"setupVisible"`
}

type submitResponse struct {
	Applied      bool `json:"applied"`
	SetupVisible bool `json:"setupVisible"`
}

type themeResponse struct {
	Team  string        `json:"team"`
	Theme *domain.Theme `json:"theme"`
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether a complete dashboard view has been published.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil || h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, "dashboard not ready", h.logger)
}

// Dashboard returns the current view with the form visibility.
func (h *Handler) Dashboard(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	view, ok := h.views.Current()
	if !ok {
		writeError(w, r, nethttp.StatusServiceUnavailable, "dashboard not ready", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, dashboardResponse{
		View:  view,
		Setup: setupState{Visible: h.setup.Visible()},
	}, h.logger)
}

// Preferences reads (GET) or submits (POST) the stored preference.
// Incomplete submissions are answered with applied=false and leave the form visible.
func (h *Handler) Preferences(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.Method {
	case nethttp.MethodGet:
		pref := h.setup.Preference()
		writeJSON(w, nethttp.StatusOK, preferenceResponse{
			City:         pref.City,
			Team:         pref.Team,
			Complete:     pref.Complete(),
			SetupVisible: h.setup.Visible(),
		}, h.logger)
	case nethttp.MethodPost:
		var req preferenceRequest
		if err := decodeBody(w, r, &req); err != nil {
			logging.Warn(loggerFromContext(r, h.logger), "invalid preference body", slog.Any("error", err))
			writeError(w, r, nethttp.StatusBadRequest, "invalid JSON body", h.logger)
			return
		}
		applied := h.setup.Submit(req.City, req.Team)
		writeJSON(w, nethttp.StatusOK, submitResponse{
			Applied:      applied,
			SetupVisible: h.setup.Visible(),
		}, h.logger)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

// EditPreferences shows the form.
func (h *Handler) EditPreferences(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodPost, h.logger) {
		return
	}
	h.setup.Edit()
	writeJSON(w, nethttp.StatusOK, map[string]bool{"setupVisible": h.setup.Visible()}, h.logger)
}

// Theme resolves the colors for the team query parameter.
func (h *Handler) Theme(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	team := r.URL.Query().Get("team")
	if team == "" {
		writeError(w, r, nethttp.StatusBadRequest, "team is required", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, themeResponse{Team: team, Theme: theme.Apply(team)}, h.logger)
}

// NotFound answers unknown paths with a JSON error.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}
