package session

import (
	"context"
	"errors"
	"log"
	"time"

	"qrpay/internal/business"
	"qrpay/kit/broker"
	"qrpay/kit/db"
	"qrpay/kit/idgen"
)

type Redemption struct {
	Session  *Session
	Business business.PublicView
}

type Service struct {
	bus        PublisherContract
	repository RepositoryContract
	businesses BusinessReaderContract
	verifier   VerifierContract
	ids        idgen.Generator
	ttl        time.Duration
	nowFn      func() time.Time
}

func NewService(bus PublisherContract, repo RepositoryContract, businesses BusinessReaderContract, verifier VerifierContract, ids idgen.Generator, ttl time.Duration) *Service {
	if ids == nil {
		ids = idgen.NewRandom()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		bus:        bus,
		repository: repo,
		businesses: businesses,
		verifier:   verifier,
		ids:        ids,
		ttl:        ttl,
		nowFn:      time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.nowFn = now
	return s
}

// Redeem checks a scanned link and opens a session. Checks run in a fixed order
// (parameters, signature, expiry, business) and nothing is written until all pass.
// A link is not consumed: every successful redemption opens a new session.
func (s *Service) Redeem(ctx context.Context, req RedeemRequest) (*Redemption, error) {
	if err := ValidateRedeemRequest(req); err != nil {
		log.Printf("layer=service component=session method=Redeem business_id=%s err=%v", req.BusinessID, err)
		s.reject(ctx, req.BusinessID, ReasonMissingParameters)
		return nil, err
	}
	version, expiresAt := *req.Version, *req.ExpiresAt

	if !s.verifier.Verify(req.BusinessID, version, expiresAt, req.Signature) {
		log.Printf("layer=service component=session method=Redeem business_id=%s err=%v", req.BusinessID, ErrInvalidSignature)
		s.reject(ctx, req.BusinessID, ReasonInvalidSignature)
		return nil, ErrInvalidSignature
	}

	now := s.nowFn()
	if now.Unix() > expiresAt {
		log.Printf("layer=service component=session method=Redeem business_id=%s expires_at=%d err=%v", req.BusinessID, expiresAt, ErrLinkExpired)
		s.reject(ctx, req.BusinessID, ReasonLinkExpired)
		return nil, ErrLinkExpired
	}

	b, err := s.businesses.Get(ctx, req.BusinessID)
	if err != nil {
		if !db.IsNotFound(err) && !errors.Is(err, business.ErrBusinessNotFound) {
			log.Printf("layer=service component=session method=Redeem business_id=%s err=%v", req.BusinessID, err)
			return nil, err
		}
		b = nil
	}
	if b == nil || !b.Active {
		log.Printf("layer=service component=session method=Redeem business_id=%s err=%v", req.BusinessID, ErrBusinessNotFound)
		s.reject(ctx, req.BusinessID, ReasonBusinessNotFound)
		return nil, ErrBusinessNotFound
	}

	sess := ToSession(s.ids.New(idgen.PrefixSession), b.ID, now, s.ttl)
	if err := s.repository.Insert(ctx, sess); err != nil {
		log.Printf("layer=service component=session method=Redeem business_id=%s session_id=%s err=%v", b.ID, sess.ID, err)
		return nil, err
	}

	s.publish(ctx, ToSessionOpenedEvent(sess))
	return &Redemption{Session: sess, Business: b.Public()}, nil
}

func (s *Service) reject(ctx context.Context, businessID, reason string) {
	s.publish(ctx, ToLinkRejectedEvent(businessID, reason))
}

func (s *Service) publish(ctx context.Context, evt broker.Event) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(ctx, evt)
}
