package payment

import (
	"time"

	"qrpay/internal/events"
	"qrpay/internal/session"
)

func ToInitiateRequest(sessionID string, amount float64) InitiateRequest {
	return InitiateRequest{SessionID: sessionID, Amount: amount}
}

func ToPendingPayment(paymentID string, s *session.Session, amount float64, now time.Time) *Payment {
	return &Payment{
		ID:         paymentID,
		SessionID:  s.ID,
		BusinessID: s.BusinessID,
		Amount:     amount,
		Status:     StatusPending,
		CreatedAt:  now.UnixMilli(),
	}
}

func ToPaymentInitiatedEvent(p *Payment) events.PaymentInitiated {
	return events.PaymentInitiated{PaymentID: p.ID, SessionID: p.SessionID, BusinessID: p.BusinessID, Amount: p.Amount, At: time.Now().UTC()}
}

func ToPaymentSucceededEvent(p *Payment) events.PaymentSucceeded {
	return events.PaymentSucceeded{PaymentID: p.ID, BusinessID: p.BusinessID, Amount: p.Amount, CompletedAt: p.CompletedAt, At: time.Now().UTC()}
}
