package business

import (
	"context"

	"github.com/stretchr/testify/mock"

	"qrpay/kit/broker"
	"qrpay/kit/linksign"
)

type RepositoryMock struct {
	mock.Mock
	RepositoryContract
}

func (m *RepositoryMock) Insert(ctx context.Context, b *Business) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *RepositoryMock) Get(ctx context.Context, businessID string) (*Business, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Business), args.Error(1)
}

func (m *RepositoryMock) List(ctx context.Context) ([]*Business, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Business), args.Error(1)
}

func (m *RepositoryMock) Update(ctx context.Context, b *Business) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

type LinkIssuerMock struct {
	mock.Mock
	LinkIssuerContract
}

func (m *LinkIssuerMock) Issue(ctx context.Context, businessID string, version int64) (linksign.Link, error) {
	args := m.Called(ctx, businessID, version)
	return args.Get(0).(linksign.Link), args.Error(1)
}

type PublisherMock struct {
	mock.Mock
	PublisherContract
}

func (m *PublisherMock) Publish(ctx context.Context, evt broker.Event) []error {
	args := m.Called(ctx, evt)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]error)
}

type fixedIDs struct{ id string }

func (f fixedIDs) New(prefix string) string { return prefix + "_" + f.id }
