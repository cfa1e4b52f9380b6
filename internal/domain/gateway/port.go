package gateway

import (
	"context"
	"errors"
)

//go:generate mockgen -source port.go -destination mock_port.go -package gateway

// ErrProvider wraps every failure reported by the payment processor.
var ErrProvider = errors.New("payment provider error")

// Provider creates billing objects in the payment processor.
// No idempotency keys are sent: every call creates a new object.
type Provider interface {
	CreateProduct(ctx context.Context, req ProductRequest) (Product, error)
	CreatePrice(ctx context.Context, req PriceRequest) (Price, error)
}

type ProductRequest struct {
	Name string
}

type Product struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Interval string

const (
	IntervalDay   Interval = "day"
	IntervalWeek  Interval = "week"
	IntervalMonth Interval = "month"
	IntervalYear  Interval = "year"
)

type PriceRequest struct {
	UnitAmount int64
	Currency   string
	Interval   Interval
	ProductID  string
	Metadata   map[string]string
}

type Price struct {
	ID         string            `json:"id"`
	ProductID  string            `json:"product"`
	UnitAmount int64             `json:"unit_amount"`
	Currency   string            `json:"currency"`
	Metadata   map[string]string `json:"metadata"`
}
