package session

import (
	"time"

	"qrpay/internal/events"
)

const (
	ReasonMissingParameters = "missing_parameters"
	ReasonInvalidSignature  = "invalid_signature"
	ReasonLinkExpired       = "link_expired"
	ReasonBusinessNotFound  = "business_not_found"
)

func ToRedeemRequest(businessID string, version, expiresAt *int64, signature string) RedeemRequest {
	return RedeemRequest{BusinessID: businessID, Version: version, ExpiresAt: expiresAt, Signature: signature}
}

func ToSession(sessionID, businessID string, now time.Time, ttl time.Duration) *Session {
	created := now.UnixMilli()
	return &Session{ID: sessionID, BusinessID: businessID, ExpiresAt: created + ttl.Milliseconds(), CreatedAt: created}
}

func ToSessionOpenedEvent(s *Session) events.SessionOpened {
	return events.SessionOpened{SessionID: s.ID, BusinessID: s.BusinessID, ExpiresAt: s.ExpiresAt, At: time.Now().UTC()}
}

func ToLinkRejectedEvent(businessID, reason string) events.LinkRejected {
	return events.LinkRejected{BusinessID: businessID, Reason: reason, At: time.Now().UTC()}
}
