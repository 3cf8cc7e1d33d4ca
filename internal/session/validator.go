package session

import (
	"errors"
	"strings"
)

var (
	ErrMissingParameters = errors.New("session: missing link parameters")
	ErrInvalidSignature  = errors.New("session: invalid link signature")
	ErrLinkExpired       = errors.New("session: link expired")
	ErrBusinessNotFound  = errors.New("session: business not found")
)

// RedeemRequest carries the query values of a scanned link. Version and ExpiresAt are
// pointers so an absent field can be told apart from a zero one.
type RedeemRequest struct {
	BusinessID string
	Version    *int64
	ExpiresAt  *int64
	Signature  string
}

func ValidateRedeemRequest(r RedeemRequest) error {
	if strings.TrimSpace(r.BusinessID) == "" || r.Version == nil || r.ExpiresAt == nil || *r.ExpiresAt == 0 || r.Signature == "" {
		return ErrMissingParameters
	}
	return nil
}
