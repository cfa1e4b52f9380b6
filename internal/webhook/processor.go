package webhook

import (
	"context"

	"PlanSync/internal/domain/plan"
)

// Processor turns a raw notification body into a sync outcome.
// The error return is reserved for bodies that cannot be parsed at all.
type Processor interface {
	Sync(ctx context.Context, body []byte) (plan.Outcome, error)
}
