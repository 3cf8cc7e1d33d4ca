package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"qrpay/kit/broker"
)

type AuditorMock struct {
	mock.Mock
	AuditorContract
}

func (m *AuditorMock) Record(ctx context.Context, eventName string, fields map[string]any) {
	m.Called(ctx, eventName, fields)
}

type MetricsMock struct {
	mock.Mock
	MetricsContract
}

func (m *MetricsMock) BusinessesRegisteredAdd(n int64)  { m.Called(n) }
func (m *MetricsMock) BusinessesDeactivatedAdd(n int64) { m.Called(n) }
func (m *MetricsMock) LinksIssuedAdd(n int64)           { m.Called(n) }
func (m *MetricsMock) SessionsOpenedAdd(n int64)        { m.Called(n) }
func (m *MetricsMock) PaymentsInitiatedAdd(n int64)     { m.Called(n) }
func (m *MetricsMock) PaymentsSucceededAdd(n int64)     { m.Called(n) }

func (m *MetricsMock) LinkRejectionsAdd(reason string, n int64) { m.Called(reason, n) }

type NotifierMock struct {
	mock.Mock
	NotifierContract
}

func (m *NotifierMock) Notify(ctx context.Context, businessID string, msg string) {
	m.Called(ctx, businessID, msg)
}

type SubscriberMock struct {
	mock.Mock
	SubscriberContract
}

func (m *SubscriberMock) Subscribe(eventName string, h broker.Handler) {
	m.Called(eventName, h)
}
