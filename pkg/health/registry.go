package health

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	checker  Checker
	optional bool
}

// Registry holds the dependency checkers behind the readiness probe.
type Registry struct {
	entries []entry
}

// NewRegistry creates a registry where every given checker is required.
func NewRegistry(checkers ...Checker) *Registry {
	r := &Registry{}
	for _, c := range checkers {
		r.Register(c)
	}
	return r
}

// Register adds a required checker: when it is down the service is not ready.
// Not safe to call once probes are being served.
func (r *Registry) Register(c Checker) {
	r.entries = append(r.entries, entry{checker: c})
}

// RegisterOptional adds a checker whose failure only degrades readiness.
func (r *Registry) RegisterOptional(c Checker) {
	r.entries = append(r.entries, entry{checker: c, optional: true})
}

type CheckResult struct {
	Name       string `json:"name"`
	Status     Status `json:"status"`
	Optional   bool   `json:"optional,omitempty"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

type ReadinessResponse struct {
	Status Status        `json:"status"`
	Checks []CheckResult `json:"checks,omitempty"`
}

// CheckAll runs all registered checkers in parallel.
func (r *Registry) CheckAll(ctx context.Context) ReadinessResponse {
	if len(r.entries) == 0 {
		return ReadinessResponse{Status: StatusUp}
	}

	results := make([]CheckResult, len(r.entries))
	var wg sync.WaitGroup

	for i, e := range r.entries {
		wg.Add(1)
		go func(idx int, e entry) {
			defer wg.Done()
			start := time.Now()
			res := e.checker.Check(ctx)
			results[idx] = CheckResult{
				Name:       e.checker.Name(),
				Status:     res.Status,
				Optional:   e.optional,
				Message:    res.Message,
				DurationMs: time.Since(start).Milliseconds(),
			}
		}(i, e)
	}

	wg.Wait()

	overall := StatusUp
	for _, res := range results {
		if res.Status != StatusDown {
			continue
		}
		if !res.Optional {
			overall = StatusDown
			break
		}
		overall = StatusDegraded
	}

	return ReadinessResponse{Status: overall, Checks: results}
}
