package handlers

import "qrpay/internal/events"

// Subscribe wires every consumer onto the bus. Nil handlers are skipped.
func Subscribe(bus SubscriberContract, audit *AuditEvent, metrics *MetricsEvent, notify *NotificationEvent) {
	all := []string{
		(events.BusinessRegistered{}).Name(),
		(events.BusinessDeactivated{}).Name(),
		(events.LinkIssued{}).Name(),
		(events.LinkRejected{}).Name(),
		(events.SessionOpened{}).Name(),
		(events.PaymentInitiated{}).Name(),
		(events.PaymentSucceeded{}).Name(),
	}

	for _, name := range all {
		if audit != nil {
			bus.Subscribe(name, audit.HandleAny)
		}
		if metrics != nil {
			bus.Subscribe(name, metrics.HandleAny)
		}
	}

	if notify != nil {
		bus.Subscribe((events.PaymentSucceeded{}).Name(), notify.HandlePaymentSucceeded)
	}
}
