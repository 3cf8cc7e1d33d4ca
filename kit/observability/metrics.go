package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "qrpay"

type Metrics struct {
	registry *prometheus.Registry

	BusinessesRegistered  prometheus.Counter
	BusinessesDeactivated prometheus.Counter
	LinksIssued           prometheus.Counter
	LinkRejections        *prometheus.CounterVec
	SessionsOpened        prometheus.Counter
	PaymentsInitiated     prometheus.Counter
	PaymentsSucceeded     prometheus.Counter
	HTTPRequests          *prometheus.CounterVec
	HTTPDuration          *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		BusinessesRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "businesses_registered_total",
			Help: "Businesses registered.",
		}),
		BusinessesDeactivated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "businesses_deactivated_total",
			Help: "Businesses deactivated.",
		}),
		LinksIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "links_issued_total",
			Help: "Signed payment links issued.",
		}),
		LinkRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "link_rejections_total",
			Help: "Link redemptions rejected, by reason.",
		}, []string{"reason"}),
		SessionsOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "sessions_opened_total",
			Help: "Payment sessions opened from a redeemed link.",
		}),
		PaymentsInitiated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "payments_initiated_total",
			Help: "Payments created in pending state.",
		}),
		PaymentsSucceeded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "payments_succeeded_total",
			Help: "Payments transitioned to success.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
	m.registry.MustRegister(
		m.BusinessesRegistered,
		m.BusinessesDeactivated,
		m.LinksIssued,
		m.LinkRejections,
		m.SessionsOpened,
		m.PaymentsInitiated,
		m.PaymentsSucceeded,
		m.HTTPRequests,
		m.HTTPDuration,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
