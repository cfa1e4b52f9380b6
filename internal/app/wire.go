package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"PlanSync/config"
	"PlanSync/internal/domain/gateway"
	"PlanSync/internal/domain/plan"
	"PlanSync/internal/external/kafka"
	"PlanSync/internal/external/stripe"
	"PlanSync/internal/messaging"
	"PlanSync/internal/webhook"
	"PlanSync/pkg/health"
)

// Deps holds everything built from Config that the entry points share.
type Deps struct {
	Handler   *webhook.ProductSyncHandler
	Publisher messaging.Publisher
	Health    *health.Registry
}

// Wire builds the sync pipeline from cfg. The processor client is created
// here and injected, never read from package state.
func Wire(cfg config.Config, l *slog.Logger) (*Deps, error) {
	mode, err := webhook.ParseMode(cfg.ResponseMode)
	if err != nil {
		return nil, fmt.Errorf("app - Wire - response mode: %w", err)
	}

	stripeClient := stripe.New(
		cfg.StripeBaseURL,
		cfg.StripeSecretKey,
		cfg.StripeAPIVersion,
		&http.Client{Timeout: cfg.HTTPStripeClientTimeout},
	)

	registry := health.NewRegistry(
		health.NewHTTPChecker("stripe", cfg.StripeBaseURL, &http.Client{Timeout: health.DefaultTimeout}),
	)

	var publisher messaging.Publisher = messaging.NopPublisher{}
	if cfg.KafkaEnabled() {
		l.Info("Kafka publisher enabled",
			slog.Any("brokers", cfg.KafkaBrokers),
			slog.String("topic", cfg.KafkaPlansTopic))
		publisher = kafka.NewPublisher(l, cfg.KafkaBrokers, cfg.KafkaPlansTopic)
		registry.RegisterOptional(health.NewKafkaChecker(cfg.KafkaBrokers, cfg.KafkaPlansTopic))
	}

	service := plan.NewPlanService(
		plan.NewDecoder(cfg.ContentTypeID, cfg.ContentLocale),
		stripeClient,
		publisher,
		plan.Settings{
			Currency: cfg.PlanCurrency,
			Interval: gateway.Interval(cfg.PlanInterval),
		},
		l,
	)

	return &Deps{
		Handler:   webhook.NewProductSyncHandler(service, mode, l),
		Publisher: publisher,
		Health:    registry,
	}, nil
}

func (d *Deps) Close() error {
	return d.Publisher.Close()
}
