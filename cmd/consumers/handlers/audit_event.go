package handlers

import (
	"context"
	"fmt"

	"qrpay/internal/events"
	"qrpay/kit/broker"
)

type AuditorContract interface {
	Record(ctx context.Context, eventName string, fields map[string]any)
}

type AuditEvent struct {
	audit AuditorContract
}

func NewAuditEvent(a AuditorContract) *AuditEvent {
	return &AuditEvent{audit: a}
}

func (h *AuditEvent) HandleAny(ctx context.Context, evt broker.Event) error {
	if h.audit == nil {
		return nil
	}

	fields := map[string]any{"type": fmt.Sprintf("%T", evt)}
	switch e := evt.(type) {
	case events.BusinessRegistered:
		fields["business_id"] = e.BusinessID
		fields["display_name"] = e.DisplayName
		fields["payment_type"] = e.PaymentType
	case events.BusinessDeactivated:
		fields["business_id"] = e.BusinessID
	case events.LinkIssued:
		fields["business_id"] = e.BusinessID
		fields["version"] = e.Version
		fields["expires_at"] = e.ExpiresAt
	case events.LinkRejected:
		fields["business_id"] = e.BusinessID
		fields["reason"] = e.Reason
	case events.SessionOpened:
		fields["session_id"] = e.SessionID
		fields["business_id"] = e.BusinessID
		fields["expires_at"] = e.ExpiresAt
	case events.PaymentInitiated:
		fields["payment_id"] = e.PaymentID
		fields["session_id"] = e.SessionID
		fields["business_id"] = e.BusinessID
		fields["amount"] = e.Amount
	case events.PaymentSucceeded:
		fields["payment_id"] = e.PaymentID
		fields["business_id"] = e.BusinessID
		fields["amount"] = e.Amount
		fields["completed_at"] = e.CompletedAt
	}

	h.audit.Record(ctx, evt.Name(), fields)
	return nil
}
