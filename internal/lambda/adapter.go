// Package lambda adapts API Gateway proxy events to the product sync handler.
package lambda

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"PlanSync/internal/webhook"
	"PlanSync/pkg/correlation"

	"github.com/aws/aws-lambda-go/events"
)

type Adapter struct {
	handler *webhook.ProductSyncHandler
	logger  *slog.Logger
}

func NewAdapter(h *webhook.ProductSyncHandler, l *slog.Logger) *Adapter {
	if l == nil {
		l = slog.Default()
	}
	return &Adapter{handler: h, logger: l}
}

// Handle returns a nil response for notifications that are not applicable,
// which the runtime serializes as null. Malformed bodies fail the invocation.
func (a *Adapter) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
	ctx = correlation.Ensure(ctx, requestCorrelationID(req))

	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return nil, fmt.Errorf("lambda - Handle - base64: %w", err)
		}
		body = decoded
	}

	resp, err := a.handler.Handle(ctx, body)
	if err != nil {
		return nil, err
	}
	if resp.Skipped() && resp.StatusCode == nil {
		a.logger.DebugContext(ctx, "Notification skipped")
		return nil, nil
	}

	out := &events.APIGatewayProxyResponse{
		Headers: resp.Headers,
		Body:    resp.Body,
	}
	if resp.StatusCode != nil {
		out.StatusCode = *resp.StatusCode
	}
	return out, nil
}

func requestCorrelationID(req events.APIGatewayProxyRequest) string {
	for k, v := range req.Headers {
		if strings.EqualFold(k, correlation.HeaderName) && v != "" {
			return v
		}
	}
	return req.RequestContext.RequestID
}
