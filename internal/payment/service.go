package payment

import (
	"context"
	"errors"
	"log"
	"time"

	"qrpay/kit/broker"
	"qrpay/kit/db"
	"qrpay/kit/idgen"
)

type Service struct {
	bus        PublisherContract
	repository RepositoryContract
	sessions   SessionReaderContract
	scheduler  SchedulerContract
	ids        idgen.Generator
	nowFn      func() time.Time
}

func NewService(bus PublisherContract, repo RepositoryContract, sessions SessionReaderContract, scheduler SchedulerContract, ids idgen.Generator) *Service {
	if ids == nil {
		ids = idgen.NewRandom()
	}
	return &Service{
		bus:        bus,
		repository: repo,
		sessions:   sessions,
		scheduler:  scheduler,
		ids:        ids,
		nowFn:      time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.nowFn = now
	return s
}

// Initiate records a pending payment against an open session and schedules its
// completion. The session is not consumed.
func (s *Service) Initiate(ctx context.Context, req InitiateRequest) (*Payment, error) {
	if err := ValidateInitiateRequest(req); err != nil {
		log.Printf("layer=service component=payment method=Initiate session_id=%s amount=%v err=%v", req.SessionID, req.Amount, err)
		return nil, err
	}

	sess, err := s.sessions.Get(ctx, req.SessionID)
	if err != nil {
		log.Printf("layer=service component=payment method=Initiate session_id=%s err=%v", req.SessionID, err)
		if db.IsNotFound(err) {
			return nil, errors.Join(ErrSessionNotFound, err)
		}
		return nil, err
	}

	now := s.nowFn()
	if sess.Expired(now.UnixMilli()) {
		log.Printf("layer=service component=payment method=Initiate session_id=%s expires_at=%d err=%v", sess.ID, sess.ExpiresAt, ErrSessionExpired)
		return nil, ErrSessionExpired
	}

	p := ToPendingPayment(s.ids.New(idgen.PrefixPayment), sess, req.Amount, now)
	if err := s.repository.Insert(ctx, p); err != nil {
		log.Printf("layer=service component=payment method=Initiate payment_id=%s session_id=%s err=%v", p.ID, sess.ID, err)
		return nil, err
	}

	if s.scheduler != nil {
		id := p.ID
		s.scheduler.Schedule(id, func() {
			_ = s.Complete(context.Background(), id)
		})
	}

	s.publish(ctx, ToPaymentInitiatedEvent(p))
	return p, nil
}

func (s *Service) GetStatus(ctx context.Context, paymentID string) (*Payment, error) {
	p, err := s.repository.Get(ctx, paymentID)
	if err != nil {
		log.Printf("layer=service component=payment method=GetStatus payment_id=%s err=%v", paymentID, err)
		if db.IsNotFound(err) {
			return nil, errors.Join(ErrPaymentNotFound, err)
		}
		return nil, err
	}
	return p, nil
}

// Complete moves a pending payment to success. It re-reads the record so a payment
// that disappeared in the meantime is reported rather than recreated.
func (s *Service) Complete(ctx context.Context, paymentID string) error {
	p, err := s.repository.Get(ctx, paymentID)
	if err != nil {
		log.Printf("layer=service component=payment method=Complete payment_id=%s err=%v", paymentID, err)
		if db.IsNotFound(err) {
			return errors.Join(ErrPaymentNotFound, err)
		}
		return err
	}
	if p.Status == StatusSuccess {
		return nil
	}

	p.Status = StatusSuccess
	p.CompletedAt = s.nowFn().UnixMilli()
	if err := s.repository.Update(ctx, p); err != nil {
		log.Printf("layer=service component=payment method=Complete payment_id=%s err=%v", paymentID, err)
		return err
	}

	s.publish(ctx, ToPaymentSucceededEvent(p))
	return nil
}

func (s *Service) publish(ctx context.Context, evt broker.Event) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(ctx, evt)
}
