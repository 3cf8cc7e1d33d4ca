package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	consumerhandlers "qrpay/cmd/consumers/handlers"
	"qrpay/cmd/web/config"
	"qrpay/cmd/web/handlers"
	"qrpay/cmd/web/middleware"
	"qrpay/cmd/web/validator"
	"qrpay/internal/audit"
	"qrpay/internal/business"
	"qrpay/internal/health"
	"qrpay/internal/metrics"
	"qrpay/internal/notification"
	"qrpay/internal/payment"
	"qrpay/internal/session"
	"qrpay/kit/broker"
	"qrpay/kit/db"
	"qrpay/kit/linksign"
	"qrpay/kit/observability"
	"qrpay/kit/qr"
)

type app struct {
	handler   http.Handler
	completer *payment.Completer
	closers   []func() error
}

type repositories struct {
	businesses business.RepositoryContract
	sessions   session.RepositoryContract
	payments   payment.RepositoryContract
	ping       func(ctx context.Context) error
	close      func() error
}

func openRepositories(cfg config.StoreConfig) (repositories, error) {
	if cfg.Driver == db.DriverMemory {
		return repositories{
			businesses: business.NewInMemoryRepository(),
			sessions:   session.NewInMemoryRepository(),
			payments:   payment.NewInMemoryRepository(),
			ping:       func(ctx context.Context) error { return nil },
			close:      func() error { return nil },
		}, nil
	}

	gdb, err := db.Open(cfg.DSN)
	if err != nil {
		return repositories{}, err
	}
	fail := func(err error) (repositories, error) {
		_ = db.Close(gdb)
		return repositories{}, err
	}
	bizRepo, err := business.NewSQLRepository(gdb)
	if err != nil {
		return fail(err)
	}
	sessRepo, err := session.NewSQLRepository(gdb)
	if err != nil {
		return fail(err)
	}
	payRepo, err := payment.NewSQLRepository(gdb)
	if err != nil {
		return fail(err)
	}
	return repositories{
		businesses: bizRepo,
		sessions:   sessRepo,
		payments:   payRepo,
		ping:       func(ctx context.Context) error { return db.Ping(ctx, gdb) },
		close:      func() error { return db.Close(gdb) },
	}, nil
}

func build(cfg config.Config, logger *observability.Logger) (*app, error) {
	telemetry := observability.NewMetrics()
	bus := broker.New()

	repos, err := openRepositories(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	a := &app{closers: []func() error{repos.close}}

	var auditSvc *audit.Service
	if cfg.AuditPath != "" {
		auditSvc, err = audit.NewServiceWithFile(logger, cfg.AuditPath)
		if err != nil {
			_ = a.close()
			return nil, fmt.Errorf("open audit log: %w", err)
		}
		a.closers = append(a.closers, auditSvc.Close)
	} else {
		auditSvc = audit.NewService(logger)
	}
	metricsSvc := metrics.NewService(telemetry)
	consumerhandlers.Subscribe(bus,
		consumerhandlers.NewAuditEvent(auditSvc),
		consumerhandlers.NewMetricsEvent(metricsSvc),
		consumerhandlers.NewNotificationEvent(notification.NewService(logger)),
	)
	a.closers = append(a.closers, func() error { bus.Close(); return nil })

	signer, err := linksign.New(linksign.Config{Secret: cfg.Link.Secret, BaseURL: cfg.Link.BaseURL, TTL: cfg.Link.TTL}, qr.NewPNGRenderer())
	if err != nil {
		_ = a.close()
		return nil, err
	}

	businessSvc := business.NewService(bus, repos.businesses, signer, nil)
	sessionSvc := session.NewService(bus, repos.sessions, businessSvc, signer, nil, cfg.Session.TTL)
	a.completer = payment.NewCompleter(cfg.Payment.ProcessingDelay)
	paymentSvc := payment.NewService(bus, repos.payments, repos.sessions, a.completer, nil)

	healthSvc := health.NewService(cfg.HealthTTL, map[string]health.CheckFunc{
		"store": health.StoreCheck(repos.ping, time.Second),
	})

	jsonV := validator.NewJSON()
	a.handler = handlers.NewRouter(handlers.RouterConfig{
		Business:   handlers.NewBusiness(jsonV, businessSvc),
		QR:         handlers.NewQR(jsonV, sessionSvc),
		Payment:    handlers.NewPayment(jsonV, paymentSvc),
		Health:     handlers.NewHealth(healthSvc),
		Metrics:    handlers.NewMetrics(metricsSvc),
		Prometheus: telemetry.Handler(),
		CORS:       middleware.CORSConfig{AllowedOrigins: cfg.CORS.AllowedOrigins},
		Telemetry:  telemetry,
		Logger:     logger,
	})
	return a, nil
}

// shutdown waits for scheduled completions before releasing the store.
func (a *app) shutdown(ctx context.Context) error {
	var errs []error
	if a.completer != nil {
		if err := a.completer.Wait(ctx); err != nil {
			errs = append(errs, fmt.Errorf("wait for completions: %w", err))
		}
	}
	if err := a.close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (a *app) close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
