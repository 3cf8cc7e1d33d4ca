package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"qrpay/cmd/web/middleware"
	"qrpay/kit/observability"
)

type RouterConfig struct {
	Business   *Business
	QR         *QR
	Payment    *Payment
	Health     *Health
	Metrics    *Metrics
	Prometheus http.Handler
	CORS       middleware.CORSConfig
	Telemetry  *observability.Metrics
	Logger     *observability.Logger
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Observability(cfg.Telemetry, cfg.Logger))
	r.Use(middleware.CORS(cfg.CORS))

	if cfg.Health != nil {
		r.Get("/health", cfg.Health.Handler)
	}
	if cfg.Prometheus != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Prometheus)
	}

	r.Route("/api", func(r chi.Router) {
		if cfg.Business != nil {
			r.Post("/business", cfg.Business.Register)
			r.Get("/business", cfg.Business.List)
			r.Post("/business/{businessID}/deactivate", cfg.Business.Deactivate)
			r.Post("/business/{businessID}/link", cfg.Business.IssueLink)
		}
		if cfg.QR != nil {
			r.Post("/qr/validate", cfg.QR.Validate)
		}
		if cfg.Payment != nil {
			r.Post("/payments", cfg.Payment.Create)
			r.Get("/payments/{paymentID}", cfg.Payment.Get)
		}
		if cfg.Metrics != nil {
			r.Get("/metrics", cfg.Metrics.Handler)
		}
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	return r
}
