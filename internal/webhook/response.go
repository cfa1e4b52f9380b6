package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"PlanSync/internal/domain/gateway"
	"PlanSync/internal/domain/plan"
	"PlanSync/pkg/pointers"
)

// Mode selects how outcomes are rendered.
type Mode string

const (
	// ModeLegacy sets a status code on success only. Failures are a bare
	// body and skipped notifications have no value.
	ModeLegacy Mode = "legacy"
	// ModeNormalized always sets a status code and CORS headers.
	ModeNormalized Mode = "normalized"
)

func ParseMode(raw string) (Mode, error) {
	switch Mode(raw) {
	case "", ModeLegacy:
		return ModeLegacy, nil
	case ModeNormalized:
		return ModeNormalized, nil
	default:
		return "", fmt.Errorf("unknown response mode %q", raw)
	}
}

// Response mirrors the serverless proxy response shape.
// A nil StatusCode means the field is absent.
type Response struct {
	StatusCode *int              `json:"statusCode,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body,omitempty"`

	skipped bool
}

// Skipped reports that the notification was not applicable and produced no value.
func (r Response) Skipped() bool {
	return r.skipped
}

type messageBody struct {
	Message string `json:"message"`
}

func corsHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":      "*",
		"Access-Control-Allow-Credentials": "true",
	}
}

func jsonBody(msg string) string {
	b, _ := json.Marshal(messageBody{Message: msg})
	return string(b)
}

// Shape renders an outcome according to mode.
func Shape(mode Mode, outcome plan.Outcome) Response {
	switch outcome.Status {
	case plan.StatusCreated:
		return Response{
			StatusCode: pointers.Ptr(http.StatusOK),
			Headers:    corsHeaders(),
			Body:       jsonBody(fmt.Sprintf("create plan %s success", outcome.Plan.PriceID)),
		}

	case plan.StatusFailed:
		resp := Response{
			Body: jsonBody("Failed to create plan " + plan.FaultMessage(outcome.Err)),
		}
		if mode == ModeNormalized {
			resp.StatusCode = pointers.Ptr(failureStatus(outcome.Err))
			resp.Headers = corsHeaders()
		}
		return resp

	default:
		if mode == ModeNormalized {
			return Response{
				StatusCode: pointers.Ptr(http.StatusNoContent),
				Headers:    corsHeaders(),
				skipped:    true,
			}
		}
		return Response{skipped: true}
	}
}

func failureStatus(err error) int {
	var validationErr *plan.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, gateway.ErrProvider):
		return http.StatusBadGateway
	default:
		var stepErr *plan.StepError
		if errors.As(err, &stepErr) {
			return http.StatusBadGateway
		}
		return http.StatusInternalServerError
	}
}
