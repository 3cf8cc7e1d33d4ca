package metrics

import (
	"log"
	"strings"

	"qrpay/kit/observability"
)

// Service is the write side used by bus subscribers and the read side behind /api/metrics.
type Service struct {
	m *observability.Metrics
}

func NewService(m *observability.Metrics) *Service {
	return &Service{m: m}
}

func (s *Service) BusinessesRegisteredAdd(n int64) {
	if s.m != nil {
		s.m.BusinessesRegistered.Add(float64(n))
	}
}

func (s *Service) BusinessesDeactivatedAdd(n int64) {
	if s.m != nil {
		s.m.BusinessesDeactivated.Add(float64(n))
	}
}

func (s *Service) LinksIssuedAdd(n int64) {
	if s.m != nil {
		s.m.LinksIssued.Add(float64(n))
	}
}

func (s *Service) LinkRejectionsAdd(reason string, n int64) {
	if s.m != nil {
		s.m.LinkRejections.WithLabelValues(reason).Add(float64(n))
	}
}

func (s *Service) SessionsOpenedAdd(n int64) {
	if s.m != nil {
		s.m.SessionsOpened.Add(float64(n))
	}
}

func (s *Service) PaymentsInitiatedAdd(n int64) {
	if s.m != nil {
		s.m.PaymentsInitiated.Add(float64(n))
	}
}

func (s *Service) PaymentsSucceededAdd(n int64) {
	if s.m != nil {
		s.m.PaymentsSucceeded.Add(float64(n))
	}
}

// Snapshot flattens the domain counters. Labelled series are keyed as name{label=value}.
// HTTP series are left to /metrics.
func (s *Service) Snapshot() map[string]float64 {
	out := map[string]float64{}
	if s.m == nil {
		return out
	}
	families, err := s.m.Registry().Gather()
	if err != nil {
		log.Printf("layer=service component=metrics method=Snapshot err=%v", err)
		return out
	}
	for _, mf := range families {
		name := mf.GetName()
		if mf.GetMetric() == nil || isHTTP(name) {
			continue
		}
		for _, m := range mf.GetMetric() {
			c := m.GetCounter()
			if c == nil {
				continue
			}
			key := name
			for _, lp := range m.GetLabel() {
				key += "{" + lp.GetName() + "=" + lp.GetValue() + "}"
			}
			out[key] = c.GetValue()
		}
	}
	return out
}

func isHTTP(name string) bool {
	return strings.HasPrefix(name, "qrpay_http_")
}
