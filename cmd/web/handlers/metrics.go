package handlers

import (
	"net/http"
)

type SnapshotContract interface {
	Snapshot() map[string]float64
}

type Metrics struct {
	svc SnapshotContract
}

func NewMetrics(svc SnapshotContract) *Metrics {
	return &Metrics{svc: svc}
}

func (h *Metrics) Handler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Snapshot())
}
