package session

import (
	"context"

	"github.com/stretchr/testify/mock"

	"qrpay/internal/business"
	"qrpay/kit/broker"
)

type RepositoryMock struct {
	mock.Mock
	RepositoryContract
}

func (m *RepositoryMock) Insert(ctx context.Context, s *Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *RepositoryMock) Get(ctx context.Context, sessionID string) (*Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

type VerifierMock struct {
	mock.Mock
	VerifierContract
}

func (m *VerifierMock) Verify(businessID string, version, expiresAt int64, signature string) bool {
	args := m.Called(businessID, version, expiresAt, signature)
	return args.Bool(0)
}

type BusinessReaderMock struct {
	mock.Mock
	BusinessReaderContract
}

func (m *BusinessReaderMock) Get(ctx context.Context, businessID string) (*business.Business, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.Business), args.Error(1)
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

type seqIDs struct{ n int }

func (s *seqIDs) New(prefix string) string {
	s.n++
	return prefix + "_" + string(rune('a'+s.n-1))
}
