package plan

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"PlanSync/internal/domain/gateway"
	"PlanSync/internal/messaging"
	"PlanSync/pkg/metrics"
)

// Settings are the fixed price attributes applied to every plan.
type Settings struct {
	Currency string
	Interval gateway.Interval
}

type PlanService struct {
	decoder   *Decoder
	provider  gateway.Provider
	publisher messaging.Publisher
	settings  Settings
	logger    *slog.Logger
}

func NewPlanService(
	decoder *Decoder,
	provider gateway.Provider,
	publisher messaging.Publisher,
	settings Settings,
	l *slog.Logger,
) *PlanService {
	if settings.Currency == "" {
		settings.Currency = DefaultCurrency
	}
	if settings.Interval == "" {
		settings.Interval = DefaultInterval
	}
	if publisher == nil {
		publisher = messaging.NopPublisher{}
	}
	if l == nil {
		l = slog.Default()
	}

	return &PlanService{
		decoder:   decoder,
		provider:  provider,
		publisher: publisher,
		settings:  settings,
		logger:    l,
	}
}

// Sync handles one raw notification body. The returned error is non-nil only
// for ErrMalformedInput; every other failure is reported in Outcome.Err.
func (s *PlanService) Sync(ctx context.Context, body []byte) (Outcome, error) {
	decision, err := s.decoder.Decode(body)
	if err != nil {
		if errors.Is(err, ErrMalformedInput) {
			metrics.SyncOutcomes.WithLabelValues("malformed").Inc()
			return Outcome{}, err
		}
		s.logger.WarnContext(ctx, "Rejected product notification", slog.Any("error", err))
		return s.failed(s.decoder.contentType, err), nil
	}

	if decision.Skip {
		s.logger.DebugContext(ctx, "Skipping notification", slog.String("content_type", decision.ContentType))
		metrics.SyncOutcomes.WithLabelValues(string(StatusSkipped)).Inc()
		return Outcome{Status: StatusSkipped, ContentType: decision.ContentType}, nil
	}

	p, err := s.CreatePlan(ctx, decision.Change)
	if err != nil {
		return s.failed(decision.ContentType, err), nil
	}

	metrics.SyncOutcomes.WithLabelValues(string(StatusCreated)).Inc()
	return Outcome{Status: StatusCreated, ContentType: decision.ContentType, Plan: p}, nil
}

// CreatePlan creates the processor product, then a recurring price for it.
// A failed price leaves the product in place; nothing is rolled back.
func (s *PlanService) CreatePlan(ctx context.Context, change ProductChange) (Plan, error) {
	amount, ok, err := MinorUnits(change.Price)
	if err != nil {
		return Plan{}, &ValidationError{Field: "price", Reason: err.Error()}
	}
	if !ok {
		return Plan{}, &ValidationError{Field: "price", Reason: "does not start with an integer amount"}
	}

	log := s.logger.With(slog.String("entry_id", change.EntryID))

	product, err := s.createProduct(ctx, change.Name)
	if err != nil {
		log.ErrorContext(ctx, "Failed to create product", slog.Any("error", err))
		return Plan{}, &StepError{Step: StepCreateProduct, Err: err}
	}
	log.InfoContext(ctx, "Product created", slog.String("product_id", product.ID))

	price, err := s.createPrice(ctx, gateway.PriceRequest{
		UnitAmount: amount,
		Currency:   s.settings.Currency,
		Interval:   s.settings.Interval,
		ProductID:  product.ID,
		Metadata:   map[string]string{MetadataEntryKey: change.EntryID},
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to create price, product left without price",
			slog.String("product_id", product.ID), slog.Any("error", err))
		return Plan{}, &StepError{Step: StepCreatePrice, ProductID: product.ID, Err: err}
	}
	log.InfoContext(ctx, "Price created",
		slog.String("product_id", product.ID),
		slog.String("price_id", price.ID),
		slog.Int64("unit_amount", amount))

	p := Plan{
		EntryID:    change.EntryID,
		ProductID:  product.ID,
		PriceID:    price.ID,
		UnitAmount: amount,
		Currency:   s.settings.Currency,
		Interval:   s.settings.Interval,
	}
	s.publishCreated(ctx, p)

	return p, nil
}

func (s *PlanService) createProduct(ctx context.Context, name string) (gateway.Product, error) {
	start := time.Now()
	product, err := s.provider.CreateProduct(ctx, gateway.ProductRequest{Name: name})
	observeGateway("create_product", start, err)
	return product, err
}

func (s *PlanService) createPrice(ctx context.Context, req gateway.PriceRequest) (gateway.Price, error) {
	start := time.Now()
	price, err := s.provider.CreatePrice(ctx, req)
	observeGateway("create_price", start, err)
	return price, err
}

// publishCreated is best effort: the plan exists in the processor either way.
func (s *PlanService) publishCreated(ctx context.Context, p Plan) {
	env, err := messaging.NewEnvelope(p.EntryID, EventPlanCreated, p)
	if err == nil {
		err = s.publisher.Publish(ctx, env)
	}
	if err != nil {
		metrics.EventsPublished.WithLabelValues(EventPlanCreated, "error").Inc()
		s.logger.WarnContext(ctx, "Failed to publish plan event",
			slog.String("price_id", p.PriceID), slog.Any("error", err))
		return
	}
	metrics.EventsPublished.WithLabelValues(EventPlanCreated, "ok").Inc()
}

func (s *PlanService) failed(contentType string, err error) Outcome {
	metrics.SyncOutcomes.WithLabelValues(string(StatusFailed)).Inc()
	return Outcome{Status: StatusFailed, ContentType: contentType, Err: err}
}

func observeGateway(op string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.GatewayRequestDuration.WithLabelValues(op, status).Observe(time.Since(start).Seconds())
}
