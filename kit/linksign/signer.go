package linksign

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var (
	ErrSecretRequired = errors.New("linksign: secret required")
	ErrInvalidTTL     = errors.New("linksign: ttl must be positive")
)

const DefaultTTL = 60 * time.Minute

// Renderer turns the link URL into a scannable image (data URL).
type Renderer interface {
	Render(ctx context.Context, content string) (string, error)
}

type Config struct {
	Secret  string
	BaseURL string
	TTL     time.Duration
}

// Link is the bundle handed to a business: the signed URL, its QR image and expiry.
type Link struct {
	URL       string
	Image     string
	Version   int64
	ExpiresAt int64
	Signature string
}

type Signer struct {
	secret   []byte
	baseURL  string
	ttl      time.Duration
	renderer Renderer
	nowFn    func() time.Time
}

func New(cfg Config, renderer Renderer) (*Signer, error) {
	secret := []byte(strings.TrimSpace(cfg.Secret))
	if len(secret) == 0 {
		return nil, ErrSecretRequired
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	if ttl < 0 {
		return nil, ErrInvalidTTL
	}
	return &Signer{
		secret:   secret,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		ttl:      ttl,
		renderer: renderer,
		nowFn:    time.Now,
	}, nil
}

// WithClock replaces the time source used by Issue.
func (s *Signer) WithClock(now func() time.Time) *Signer {
	s.nowFn = now
	return s
}

// canonical is the only encoding of signed fields. Sign and Verify both go through it.
func canonical(businessID string, version, expiresAt int64) []byte {
	return []byte(businessID + ":" + strconv.FormatInt(version, 10) + ":" + strconv.FormatInt(expiresAt, 10))
}

func (s *Signer) Sign(businessID string, version, expiresAt int64) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(canonical(businessID, version, expiresAt))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *Signer) Verify(businessID string, version, expiresAt int64, signature string) bool {
	expected := s.Sign(businessID, version, expiresAt)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Issue mints a link valid for the configured TTL from now.
func (s *Signer) Issue(ctx context.Context, businessID string, version int64) (Link, error) {
	expiresAt := s.nowFn().Add(s.ttl).Unix()
	sig := s.Sign(businessID, version, expiresAt)
	link := Link{
		URL:       s.URL(businessID, version, expiresAt, sig),
		Version:   version,
		ExpiresAt: expiresAt,
		Signature: sig,
	}
	if s.renderer == nil {
		return link, nil
	}
	img, err := s.renderer.Render(ctx, link.URL)
	if err != nil {
		return Link{}, fmt.Errorf("linksign: render %s: %w", businessID, err)
	}
	link.Image = img
	return link, nil
}

// URL keeps the query order v, exp, sig.
func (s *Signer) URL(businessID string, version, expiresAt int64, signature string) string {
	return fmt.Sprintf("%s/pay/%s?v=%d&exp=%d&sig=%s", s.baseURL, url.PathEscape(businessID), version, expiresAt, signature)
}
