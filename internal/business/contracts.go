package business

import (
	"context"

	"qrpay/kit/broker"
	"qrpay/kit/linksign"
)

// RepositoryContract define business repository responsibility.
type RepositoryContract interface {
	Insert(ctx context.Context, b *Business) error
	Get(ctx context.Context, businessID string) (*Business, error)
	List(ctx context.Context) ([]*Business, error)
	Update(ctx context.Context, b *Business) error
}

// ServiceContract define business service responsibility.
type ServiceContract interface {
	Register(ctx context.Context, req RegisterRequest) (*Registration, error)
	Get(ctx context.Context, businessID string) (*Business, error)
	List(ctx context.Context) ([]*Business, error)
	Deactivate(ctx context.Context, businessID string) (*Business, error)
	IssueLink(ctx context.Context, businessID string) (linksign.Link, error)
}

// LinkIssuerContract define signed link minting responsibility.
type LinkIssuerContract interface {
	Issue(ctx context.Context, businessID string, version int64) (linksign.Link, error)
}

// PublisherContract define publish responsibility (broker).
type PublisherContract interface {
	Publish(ctx context.Context, evt broker.Event) []error
}
