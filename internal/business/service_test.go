package business

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"qrpay/internal/events"
	"qrpay/kit/db"
	"qrpay/kit/linksign"
)

var (
	fixedNow  = time.UnixMilli(1700000000123)
	errRender = errors.New("render failed")
)

func TestBusinessService_Register(t *testing.T) {
	ctx := context.Background()
	link := linksign.Link{URL: "https://pay.example.com/pay/biz_x?v=1&exp=1700003600&sig=abc", Image: "data:image/png;base64,AA", Version: 1, ExpiresAt: 1700003600}

	var tests = []struct {
		name        string
		req         RegisterRequest
		service     func() ServiceContract
		expected    *Registration
		expectedErr error
	}{
		{
			name: "missing display name",
			req:  RegisterRequest{DisplayName: "   "},
			service: func() ServiceContract {
				return NewService(nil, new(RepositoryMock), new(LinkIssuerMock), fixedIDs{id: "x"})
			},
			expectedErr: ErrInvalidBusiness,
		},
		{
			name: "link error leaves store untouched",
			req:  RegisterRequest{DisplayName: "Joe's Cafe"},
			service: func() ServiceContract {
				links := new(LinkIssuerMock)
				links.On("Issue", ctx, "biz_x", int64(1)).Return(linksign.Link{}, errRender)
				return NewService(nil, new(RepositoryMock), links, fixedIDs{id: "x"})
			},
			expectedErr: errRender,
		},
		{
			name: "insert error",
			req:  RegisterRequest{DisplayName: "Joe's Cafe"},
			service: func() ServiceContract {
				repo := new(RepositoryMock)
				repo.On("Insert", ctx, mock.AnythingOfType("*business.Business")).Return(db.ErrInternal)
				links := new(LinkIssuerMock)
				links.On("Issue", ctx, "biz_x", int64(1)).Return(link, nil)
				return NewService(nil, repo, links, fixedIDs{id: "x"})
			},
			expectedErr: db.ErrInternal,
		},
		{
			name: "success applies defaults and publishes",
			req:  RegisterRequest{DisplayName: "Joe's Cafe"},
			service: func() ServiceContract {
				repo := new(RepositoryMock)
				repo.On("Insert", ctx, mock.AnythingOfType("*business.Business")).Return(nil)
				links := new(LinkIssuerMock)
				links.On("Issue", ctx, "biz_x", int64(1)).Return(link, nil)
				pub := new(PublisherMock)
				pub.On("Publish", ctx, mock.AnythingOfType("events.BusinessRegistered")).Return(nil).Once()
				pub.On("Publish", ctx, mock.AnythingOfType("events.LinkIssued")).Return(nil).Once()
				return NewService(pub, repo, links, fixedIDs{id: "x"}).WithClock(func() time.Time { return fixedNow })
			},
			expected: &Registration{
				Business: &Business{
					ID:             "biz_x",
					DisplayName:    "Joe's Cafe",
					PaymentType:    DefaultPaymentType,
					PaymentDetails: map[string]any{},
					LinkVersion:    1,
					Active:         true,
					CreatedAt:      fixedNow.UnixMilli(),
				},
				Link: link,
			},
		},
		{
			name: "keeps provided fields",
			req:  RegisterRequest{DisplayName: "Mama Mboga", Message: "karibu", PaymentType: "till", PaymentDetails: map[string]any{"till": "123456"}},
			service: func() ServiceContract {
				repo := new(RepositoryMock)
				repo.On("Insert", ctx, mock.AnythingOfType("*business.Business")).Return(nil)
				links := new(LinkIssuerMock)
				links.On("Issue", ctx, "biz_x", int64(1)).Return(link, nil)
				return NewService(nil, repo, links, fixedIDs{id: "x"}).WithClock(func() time.Time { return fixedNow })
			},
			expected: &Registration{
				Business: &Business{
					ID:             "biz_x",
					DisplayName:    "Mama Mboga",
					Message:        "karibu",
					PaymentType:    "till",
					PaymentDetails: map[string]any{"till": "123456"},
					LinkVersion:    1,
					Active:         true,
					CreatedAt:      fixedNow.UnixMilli(),
				},
				Link: link,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := tt.service()
			got, err := svc.Register(ctx, tt.req)
			if tt.expectedErr != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestBusinessService_Register_InvalidIsDBInvalid(t *testing.T) {
	svc := NewService(nil, new(RepositoryMock), new(LinkIssuerMock), nil)
	_, err := svc.Register(context.Background(), RegisterRequest{})
	require.True(t, db.IsInvalid(err))
	require.ErrorIs(t, err, ErrInvalidBusiness)
}

func TestBusinessService_Deactivate(t *testing.T) {
	ctx := context.Background()

	var tests = []struct {
		name        string
		service     func() ServiceContract
		expectedErr error
	}{
		{
			name: "not found",
			service: func() ServiceContract {
				repo := new(RepositoryMock)
				repo.On("Get", ctx, "biz_1").Return(nil, db.ErrNotFound)
				return NewService(nil, repo, nil, nil)
			},
			expectedErr: ErrBusinessNotFound,
		},
		{
			name: "already inactive is a no-op",
			service: func() ServiceContract {
				repo := new(RepositoryMock)
				repo.On("Get", ctx, "biz_1").Return(&Business{ID: "biz_1", Active: false}, nil)
				return NewService(nil, repo, nil, nil)
			},
		},
		{
			name: "update error",
			service: func() ServiceContract {
				repo := new(RepositoryMock)
				repo.On("Get", ctx, "biz_1").Return(&Business{ID: "biz_1", Active: true}, nil)
				repo.On("Update", ctx, mock.MatchedBy(func(b *Business) bool { return !b.Active })).Return(db.ErrInternal)
				return NewService(nil, repo, nil, nil)
			},
			expectedErr: db.ErrInternal,
		},
		{
			name: "success publishes",
			service: func() ServiceContract {
				repo := new(RepositoryMock)
				repo.On("Get", ctx, "biz_1").Return(&Business{ID: "biz_1", Active: true}, nil)
				repo.On("Update", ctx, mock.MatchedBy(func(b *Business) bool { return !b.Active })).Return(nil)
				pub := new(PublisherMock)
				pub.On("Publish", ctx, mock.MatchedBy(func(e events.BusinessDeactivated) bool { return e.BusinessID == "biz_1" })).Return(nil)
				return NewService(pub, repo, nil, nil)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := tt.service().Deactivate(ctx, "biz_1")
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			require.False(t, b.Active)
		})
	}
}

func TestBusinessService_IssueLink(t *testing.T) {
	ctx := context.Background()
	link := linksign.Link{URL: "u", Version: 1, ExpiresAt: 10}

	var tests = []struct {
		name        string
		service     func() ServiceContract
		expected    linksign.Link
		expectedErr error
	}{
		{
			name: "unknown business",
			service: func() ServiceContract {
				repo := new(RepositoryMock)
				repo.On("Get", ctx, "biz_1").Return(nil, db.ErrNotFound)
				return NewService(nil, repo, nil, nil)
			},
			expectedErr: ErrBusinessNotFound,
		},
		{
			name: "inactive business",
			service: func() ServiceContract {
				repo := new(RepositoryMock)
				repo.On("Get", ctx, "biz_1").Return(&Business{ID: "biz_1", LinkVersion: 1, Active: false}, nil)
				return NewService(nil, repo, nil, nil)
			},
			expectedErr: ErrBusinessNotFound,
		},
		{
			name: "issues current version",
			service: func() ServiceContract {
				repo := new(RepositoryMock)
				repo.On("Get", ctx, "biz_1").Return(&Business{ID: "biz_1", LinkVersion: 1, Active: true}, nil)
				links := new(LinkIssuerMock)
				links.On("Issue", ctx, "biz_1", int64(1)).Return(link, nil)
				pub := new(PublisherMock)
				pub.On("Publish", ctx, mock.AnythingOfType("events.LinkIssued")).Return(nil)
				return NewService(pub, repo, links, nil)
			},
			expected: link,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.service().IssueLink(ctx, "biz_1")
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestBusinessService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(RepositoryMock)
	repo.On("List", ctx).Return([]*Business{{ID: "biz_1"}, {ID: "biz_2"}}, nil)

	got, err := NewService(nil, repo, nil, nil).List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "biz_1", got[0].ID)
}

func TestBusiness_Public(t *testing.T) {
	b := &Business{ID: "biz_1", DisplayName: "Joe's Cafe", Message: "hi", PaymentType: "pochi", PaymentDetails: map[string]any{"phone": "0700"}}
	require.Equal(t, PublicView{ID: "biz_1", DisplayName: "Joe's Cafe", Message: "hi", PaymentType: "pochi"}, b.Public())
}
