package payment

import (
	"context"

	"qrpay/internal/session"
	"qrpay/kit/broker"
)

// RepositoryContract define payment repository responsibility.
type RepositoryContract interface {
	Insert(ctx context.Context, p *Payment) error
	Get(ctx context.Context, paymentID string) (*Payment, error)
	Update(ctx context.Context, p *Payment) error
}

// ServiceContract define payment service responsibility.
type ServiceContract interface {
	Initiate(ctx context.Context, req InitiateRequest) (*Payment, error)
	GetStatus(ctx context.Context, paymentID string) (*Payment, error)
	Complete(ctx context.Context, paymentID string) error
}

// SessionReaderContract define session lookup responsibility.
type SessionReaderContract interface {
	Get(ctx context.Context, sessionID string) (*session.Session, error)
}

// SchedulerContract define deferred completion responsibility.
type SchedulerContract interface {
	Schedule(paymentID string, fn func())
}

// PublisherContract define publish responsibility (broker).
type PublisherContract interface {
	Publish(ctx context.Context, evt broker.Event) []error
}
