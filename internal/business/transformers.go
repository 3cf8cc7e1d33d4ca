package business

import (
	"time"

	"qrpay/internal/events"
	"qrpay/kit/linksign"
)

func ToRegisterRequest(displayName, message, paymentType string, details map[string]any) RegisterRequest {
	return RegisterRequest{DisplayName: displayName, Message: message, PaymentType: paymentType, PaymentDetails: details}
}

// ToBusiness applies registration defaults.
func ToBusiness(businessID string, req RegisterRequest, createdAt int64) *Business {
	paymentType := req.PaymentType
	if paymentType == "" {
		paymentType = DefaultPaymentType
	}
	details := req.PaymentDetails
	if details == nil {
		details = map[string]any{}
	}
	return &Business{
		ID:             businessID,
		DisplayName:    req.DisplayName,
		Message:        req.Message,
		PaymentType:    paymentType,
		PaymentDetails: details,
		LinkVersion:    InitialLinkVersion,
		Active:         true,
		CreatedAt:      createdAt,
	}
}

func ToBusinessRegisteredEvent(b *Business) events.BusinessRegistered {
	return events.BusinessRegistered{BusinessID: b.ID, DisplayName: b.DisplayName, PaymentType: b.PaymentType, At: time.Now().UTC()}
}

func ToBusinessDeactivatedEvent(businessID string) events.BusinessDeactivated {
	return events.BusinessDeactivated{BusinessID: businessID, At: time.Now().UTC()}
}

func ToLinkIssuedEvent(businessID string, link linksign.Link) events.LinkIssued {
	return events.LinkIssued{BusinessID: businessID, Version: link.Version, ExpiresAt: link.ExpiresAt, At: time.Now().UTC()}
}
