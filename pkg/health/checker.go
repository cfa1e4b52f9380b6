package health

import (
	"context"
	"time"
)

// DefaultTimeout bounds a whole readiness round.
const DefaultTimeout = 5 * time.Second

type Status string

const (
	StatusUp Status = "up"
	// StatusDegraded means an optional dependency is down; the service still
	// answers webhooks.
	StatusDegraded Status = "degraded"
	StatusDown     Status = "down"
)

type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Checker probes one dependency.
type Checker interface {
	Name() string
	Check(ctx context.Context) Result
}
