package events

import "time"

type BusinessRegistered struct {
	BusinessID  string    `json:"business_id"`
	DisplayName string    `json:"display_name"`
	PaymentType string    `json:"payment_type"`
	At          time.Time `json:"at"`
}

func (BusinessRegistered) Name() string { return "business.registered" }

type BusinessDeactivated struct {
	BusinessID string    `json:"business_id"`
	At         time.Time `json:"at"`
}

func (BusinessDeactivated) Name() string { return "business.deactivated" }

type LinkIssued struct {
	BusinessID string    `json:"business_id"`
	Version    int64     `json:"version"`
	ExpiresAt  int64     `json:"expires_at"`
	At         time.Time `json:"at"`
}

func (LinkIssued) Name() string { return "link.issued" }

// LinkRejected never carries the presented signature.
type LinkRejected struct {
	BusinessID string    `json:"business_id"`
	Reason     string    `json:"reason"`
	At         time.Time `json:"at"`
}

func (LinkRejected) Name() string { return "link.rejected" }

type SessionOpened struct {
	SessionID  string    `json:"session_id"`
	BusinessID string    `json:"business_id"`
	ExpiresAt  int64     `json:"expires_at"`
	At         time.Time `json:"at"`
}

func (SessionOpened) Name() string { return "session.opened" }

type PaymentInitiated struct {
	PaymentID  string    `json:"payment_id"`
	SessionID  string    `json:"session_id"`
	BusinessID string    `json:"business_id"`
	Amount     float64   `json:"amount"`
	At         time.Time `json:"at"`
}

func (PaymentInitiated) Name() string { return "payment.initiated" }

type PaymentSucceeded struct {
	PaymentID   string    `json:"payment_id"`
	BusinessID  string    `json:"business_id"`
	Amount      float64   `json:"amount"`
	CompletedAt int64     `json:"completed_at"`
	At          time.Time `json:"at"`
}

func (PaymentSucceeded) Name() string { return "payment.succeeded" }
