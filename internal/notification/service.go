package notification

import (
	"context"
	"fmt"

	"qrpay/kit/observability"
)

// Service delivers notices to a business. Delivery is a structured log line.
type Service struct {
	logger *observability.Logger
}

func NewService(logger *observability.Logger) *Service {
	return &Service{logger: logger}
}

func (s *Service) Notify(ctx context.Context, businessID string, msg string) {
	if s.logger == nil {
		return
	}
	s.logger.Info("notify", "business_id", businessID, "notice", msg)
}

func PaymentReceived(amount float64, paymentID string) string {
	return fmt.Sprintf("payment received: %.2f (%s)", amount, paymentID)
}
