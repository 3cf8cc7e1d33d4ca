package handlers

import (
	"context"
	"fmt"

	"qrpay/internal/events"
	"qrpay/internal/notification"
	"qrpay/kit/broker"
)

type NotifierContract interface {
	Notify(ctx context.Context, businessID string, msg string)
}

type NotificationEvent struct {
	n NotifierContract
}

func NewNotificationEvent(n NotifierContract) *NotificationEvent {
	return &NotificationEvent{n: n}
}

func (h *NotificationEvent) HandlePaymentSucceeded(ctx context.Context, evt broker.Event) error {
	if h.n == nil {
		return nil
	}
	e, ok := evt.(events.PaymentSucceeded)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnexpectedEventType, evt)
	}
	h.n.Notify(ctx, e.BusinessID, notification.PaymentReceived(e.Amount, e.PaymentID))
	return nil
}
