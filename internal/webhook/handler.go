package webhook

import (
	"context"
	"log/slog"

	"PlanSync/internal/domain/plan"
)

// ProductSyncHandler is the transport-neutral entry point shared by the
// Lambda adapter and the HTTP server.
type ProductSyncHandler struct {
	processor Processor
	mode      Mode
	logger    *slog.Logger
}

func NewProductSyncHandler(p Processor, mode Mode, l *slog.Logger) *ProductSyncHandler {
	if l == nil {
		l = slog.Default()
	}
	return &ProductSyncHandler{processor: p, mode: mode, logger: l}
}

func (h *ProductSyncHandler) Mode() Mode {
	return h.mode
}

// Handle processes one notification body. A parse failure is returned as an
// error and is left to the caller's fault handling; every other result,
// including processor failures, is rendered into the Response.
func (h *ProductSyncHandler) Handle(ctx context.Context, body []byte) (Response, error) {
	h.logger.DebugContext(ctx, "Notification received", slog.Int("bytes", len(body)))

	outcome, err := h.processor.Sync(ctx, body)
	if err != nil {
		h.logger.ErrorContext(ctx, "Unparseable notification", slog.Any("error", err))
		return Response{}, err
	}

	resp := Shape(h.mode, outcome)
	if outcome.Status == plan.StatusFailed {
		h.logger.ErrorContext(ctx, "Plan sync failed", slog.Any("error", outcome.Err))
	}
	return resp, nil
}
