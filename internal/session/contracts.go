package session

import (
	"context"

	"qrpay/internal/business"
	"qrpay/kit/broker"
)

// RepositoryContract define session repository responsibility.
type RepositoryContract interface {
	Insert(ctx context.Context, s *Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
}

// ServiceContract define session issuing responsibility.
type ServiceContract interface {
	Redeem(ctx context.Context, req RedeemRequest) (*Redemption, error)
}

// VerifierContract define signed link verification responsibility.
type VerifierContract interface {
	Verify(businessID string, version, expiresAt int64, signature string) bool
}

// BusinessReaderContract define business lookup responsibility.
type BusinessReaderContract interface {
	Get(ctx context.Context, businessID string) (*business.Business, error)
}

// PublisherContract define publish responsibility (broker).
type PublisherContract interface {
	Publish(ctx context.Context, evt broker.Event) []error
}
