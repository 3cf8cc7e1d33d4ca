package handlers

import (
	"context"

	"qrpay/internal/events"
	"qrpay/kit/broker"
)

type MetricsContract interface {
	BusinessesRegisteredAdd(n int64)
	BusinessesDeactivatedAdd(n int64)
	LinksIssuedAdd(n int64)
	LinkRejectionsAdd(reason string, n int64)
	SessionsOpenedAdd(n int64)
	PaymentsInitiatedAdd(n int64)
	PaymentsSucceededAdd(n int64)
}

type MetricsEvent struct {
	m MetricsContract
}

func NewMetricsEvent(m MetricsContract) *MetricsEvent {
	return &MetricsEvent{m: m}
}

func (h *MetricsEvent) HandleAny(ctx context.Context, evt broker.Event) error {
	if h.m == nil {
		return nil
	}

	switch e := evt.(type) {
	case events.BusinessRegistered:
		h.m.BusinessesRegisteredAdd(1)
	case events.BusinessDeactivated:
		h.m.BusinessesDeactivatedAdd(1)
	case events.LinkIssued:
		h.m.LinksIssuedAdd(1)
	case events.LinkRejected:
		h.m.LinkRejectionsAdd(e.Reason, 1)
	case events.SessionOpened:
		h.m.SessionsOpenedAdd(1)
	case events.PaymentInitiated:
		h.m.PaymentsInitiatedAdd(1)
	case events.PaymentSucceeded:
		h.m.PaymentsSucceededAdd(1)
	}
	return nil
}
