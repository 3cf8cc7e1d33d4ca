package handlers

import (
	"errors"

	"qrpay/kit/broker"
)

var ErrUnexpectedEventType = errors.New("unexpected event type")

// SubscriberContract defines the subscribe responsibility used to wire consumers.
type SubscriberContract interface {
	Subscribe(eventName string, h broker.Handler)
}
