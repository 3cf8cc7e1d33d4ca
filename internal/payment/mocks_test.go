package payment

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"qrpay/internal/session"
	"qrpay/kit/broker"
)

type RepositoryMock struct {
	mock.Mock
	RepositoryContract
}

func (m *RepositoryMock) Insert(ctx context.Context, p *Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *RepositoryMock) Get(ctx context.Context, paymentID string) (*Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Payment), args.Error(1)
}

func (m *RepositoryMock) Update(ctx context.Context, p *Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type SessionReaderMock struct {
	mock.Mock
	SessionReaderContract
}

func (m *SessionReaderMock) Get(ctx context.Context, sessionID string) (*session.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
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

// manualScheduler holds scheduled completions until the test fires them.
type manualScheduler struct {
	mu      sync.Mutex
	pending map[string]func()
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{pending: make(map[string]func())}
}

func (m *manualScheduler) Schedule(paymentID string, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending[paymentID] = fn
}

func (m *manualScheduler) fire(paymentID string) bool {
	m.mu.Lock()
	fn, ok := m.pending[paymentID]
	delete(m.pending, paymentID)
	m.mu.Unlock()
	if ok {
		fn()
	}
	return ok
}

type fixedIDs struct{ id string }

func (f fixedIDs) New(prefix string) string { return prefix + "_" + f.id }
