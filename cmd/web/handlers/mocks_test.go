package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"qrpay/internal/business"
	"qrpay/internal/health"
	"qrpay/internal/payment"
	"qrpay/internal/session"
	"qrpay/kit/linksign"
)

type businessServiceMock struct {
	mock.Mock
	BusinessServiceContract
}

func (m *businessServiceMock) Register(ctx context.Context, req business.RegisterRequest) (*business.Registration, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*business.Registration)
	return r, args.Error(1)
}

func (m *businessServiceMock) List(ctx context.Context) ([]*business.Business, error) {
	args := m.Called(ctx)
	bs, _ := args.Get(0).([]*business.Business)
	return bs, args.Error(1)
}

func (m *businessServiceMock) Deactivate(ctx context.Context, businessID string) (*business.Business, error) {
	args := m.Called(ctx, businessID)
	b, _ := args.Get(0).(*business.Business)
	return b, args.Error(1)
}

func (m *businessServiceMock) IssueLink(ctx context.Context, businessID string) (linksign.Link, error) {
	args := m.Called(ctx, businessID)
	l, _ := args.Get(0).(linksign.Link)
	return l, args.Error(1)
}

type sessionServiceMock struct {
	mock.Mock
	SessionServiceContract
}

func (m *sessionServiceMock) Redeem(ctx context.Context, req session.RedeemRequest) (*session.Redemption, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*session.Redemption)
	return r, args.Error(1)
}

type paymentServiceMock struct {
	mock.Mock
	PaymentServiceContract
}

func (m *paymentServiceMock) Initiate(ctx context.Context, req payment.InitiateRequest) (*payment.Payment, error) {
	args := m.Called(ctx, req)
	p, _ := args.Get(0).(*payment.Payment)
	return p, args.Error(1)
}

func (m *paymentServiceMock) GetStatus(ctx context.Context, paymentID string) (*payment.Payment, error) {
	args := m.Called(ctx, paymentID)
	p, _ := args.Get(0).(*payment.Payment)
	return p, args.Error(1)
}

type healthMock struct {
	mock.Mock
	HealthContract
}

func (m *healthMock) Check(ctx context.Context) health.Result {
	args := m.Called(ctx)
	return args.Get(0).(health.Result)
}
