package handlers

import (
	"context"
	"net/http"

	"qrpay/internal/health"
)

type HealthContract interface {
	Check(ctx context.Context) health.Result
}

type Health struct {
	health HealthContract
}

func NewHealth(h HealthContract) *Health { return &Health{health: h} }

func (h *Health) Handler(w http.ResponseWriter, r *http.Request) {
	if h.health == nil {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
		return
	}
	res := h.health.Check(r.Context())
	if !res.OK {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"status": "down", "checks": res.Checks})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}
