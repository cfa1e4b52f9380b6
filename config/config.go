package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Not marked required: a missing key is rejected by the processor on first use.
	StripeSecretKey         string        `env:"STRIPE_SECRET_KEY"`
	StripeBaseURL           string        `env:"STRIPE_BASE_URL" envDefault:"https://api.stripe.com"`
	StripeAPIVersion        string        `env:"STRIPE_API_VERSION" envDefault:"2020-03-02"`
	HTTPStripeClientTimeout time.Duration `env:"HTTP_STRIPE_CLIENT_TIMEOUT" envDefault:"20s"`

	ContentTypeID string `env:"CONTENT_TYPE_ID" envDefault:"product"`
	ContentLocale string `env:"CONTENT_LOCALE" envDefault:"en-US"`
	PlanCurrency  string `env:"PLAN_CURRENCY" envDefault:"cad"`
	PlanInterval  string `env:"PLAN_INTERVAL" envDefault:"month"`

	// "legacy": only success sets a status code; "normalized": every response does
	ResponseMode string `env:"RESPONSE_MODE" envDefault:"legacy"`

	// Plan-created events are published only when brokers are configured
	KafkaBrokers    []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaPlansTopic string   `env:"KAFKA_PLANS_TOPIC" envDefault:"plans.created"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c Config) ConsoleLogs() bool {
	return c.LogFormat == "console"
}

func (c Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}
