package business

import (
	"context"
	"errors"
	"log"
	"time"

	"qrpay/kit/broker"
	"qrpay/kit/db"
	"qrpay/kit/idgen"
	"qrpay/kit/linksign"
)

type Registration struct {
	Business *Business
	Link     linksign.Link
}

type Service struct {
	bus        PublisherContract
	repository RepositoryContract
	links      LinkIssuerContract
	ids        idgen.Generator
	nowFn      func() time.Time
}

func NewService(bus PublisherContract, repo RepositoryContract, links LinkIssuerContract, ids idgen.Generator) *Service {
	if ids == nil {
		ids = idgen.NewRandom()
	}
	return &Service{
		bus:        bus,
		repository: repo,
		links:      links,
		ids:        ids,
		nowFn:      time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.nowFn = now
	return s
}

// Register stores a new active business at link version 1 and mints its first signed link.
// The link is minted before the insert so a rendering failure leaves nothing behind.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Registration, error) {
	if err := ValidateRegisterRequest(req); err != nil {
		log.Printf("layer=service component=business method=Register err=%v", err)
		return nil, errors.Join(db.ErrInvalid, err)
	}

	b := ToBusiness(s.ids.New(idgen.PrefixBusiness), req, s.nowFn().UnixMilli())
	link, err := s.links.Issue(ctx, b.ID, b.LinkVersion)
	if err != nil {
		log.Printf("layer=service component=business method=Register business_id=%s err=%v", b.ID, err)
		return nil, err
	}
	if err := s.repository.Insert(ctx, b); err != nil {
		log.Printf("layer=service component=business method=Register business_id=%s err=%v", b.ID, err)
		return nil, err
	}

	s.publish(ctx, ToBusinessRegisteredEvent(b))
	s.publish(ctx, ToLinkIssuedEvent(b.ID, link))
	return &Registration{Business: b, Link: link}, nil
}

func (s *Service) Get(ctx context.Context, businessID string) (*Business, error) {
	b, err := s.repository.Get(ctx, businessID)
	if err != nil {
		log.Printf("layer=service component=business method=Get business_id=%s err=%v", businessID, err)
		if db.IsNotFound(err) {
			return nil, errors.Join(ErrBusinessNotFound, err)
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) List(ctx context.Context) ([]*Business, error) {
	bs, err := s.repository.List(ctx)
	if err != nil {
		log.Printf("layer=service component=business method=List err=%v", err)
		return nil, err
	}
	return bs, nil
}

// Deactivate clears the active flag. Sessions already opened keep working until they expire.
func (s *Service) Deactivate(ctx context.Context, businessID string) (*Business, error) {
	b, err := s.Get(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if !b.Active {
		return b, nil
	}
	b.Active = false
	if err := s.repository.Update(ctx, b); err != nil {
		log.Printf("layer=service component=business method=Deactivate business_id=%s err=%v", businessID, err)
		return nil, err
	}
	s.publish(ctx, ToBusinessDeactivatedEvent(businessID))
	return b, nil
}

// IssueLink mints a fresh link for the business's current version.
func (s *Service) IssueLink(ctx context.Context, businessID string) (linksign.Link, error) {
	b, err := s.Get(ctx, businessID)
	if err != nil {
		return linksign.Link{}, err
	}
	if !b.Active {
		log.Printf("layer=service component=business method=IssueLink business_id=%s err=inactive", businessID)
		return linksign.Link{}, ErrBusinessNotFound
	}
	link, err := s.links.Issue(ctx, b.ID, b.LinkVersion)
	if err != nil {
		log.Printf("layer=service component=business method=IssueLink business_id=%s err=%v", businessID, err)
		return linksign.Link{}, err
	}
	s.publish(ctx, ToLinkIssuedEvent(b.ID, link))
	return link, nil
}

func (s *Service) publish(ctx context.Context, evt broker.Event) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(ctx, evt)
}
