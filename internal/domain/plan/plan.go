package plan

import "PlanSync/internal/domain/gateway"

const (
	DefaultCurrency = "cad"
	DefaultInterval = gateway.IntervalMonth

	// MetadataEntryKey links a processor price back to its content entry.
	MetadataEntryKey = "contentfulProductId"

	EventPlanCreated = "plan.created"
)

// Plan is a product and recurring price pair created for one content entry.
type Plan struct {
	EntryID    string           `json:"entry_id"`
	ProductID  string           `json:"product_id"`
	PriceID    string           `json:"price_id"`
	UnitAmount int64            `json:"unit_amount"`
	Currency   string           `json:"currency"`
	Interval   gateway.Interval `json:"interval"`
}

type Status string

const (
	StatusSkipped Status = "skipped"
	StatusCreated Status = "created"
	StatusFailed  Status = "failed"
)

// Outcome is the result of handling one notification.
// Err is set only for StatusFailed; Plan only for StatusCreated.
type Outcome struct {
	Status      Status
	ContentType string
	Plan        Plan
	Err         error
}

func (o Outcome) Skipped() bool {
	return o.Status == StatusSkipped
}
