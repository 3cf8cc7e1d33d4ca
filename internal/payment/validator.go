package payment

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrInvalidRequest  = errors.New("payment: session id and amount required")
	ErrSessionNotFound = errors.New("payment: session not found")
	ErrSessionExpired  = errors.New("payment: session expired")
	ErrPaymentNotFound = errors.New("payment: not found")
)

type InitiateRequest struct {
	SessionID string
	Amount    float64
}

func ValidateInitiateRequest(r InitiateRequest) error {
	if strings.TrimSpace(r.SessionID) == "" {
		return ErrInvalidRequest
	}
	if math.IsNaN(r.Amount) || math.IsInf(r.Amount, 0) || r.Amount <= 0 {
		return ErrInvalidRequest
	}
	return nil
}
