//go:build integration
// +build integration

package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"PlanSync/config"
	"PlanSync/internal/app"
	"PlanSync/internal/controller/rest"
	"PlanSync/internal/controller/rest/handlers"
	"PlanSync/internal/domain/plan"
	"PlanSync/internal/messaging"
	"PlanSync/pkg/correlation"
	"PlanSync/pkg/testinfra"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mappingsPath = "../internal/external/stripe/testdata/mappings"

const goldPlan = `{
	"sys": {"id": "entry-1", "contentType": {"sys": {"id": "product"}}},
	"fields": {"productName": {"en-US": "Gold Plan"}, "price": {"en-US": "19.99"}}
}`

func setupTestServer(t *testing.T, cfg config.Config) *httptest.Server {
	t.Helper()
	l := slog.New(slog.NewTextHandler(io.Discard, nil))

	deps, err := app.Wire(cfg, l)
	require.NoError(t, err)
	t.Cleanup(func() { _ = deps.Close() })

	engine := app.NewGinEngine(l)
	rest.NewRouter(handlers.NewProductHandler(deps.Handler), deps.Health).SetUp(engine)

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)
	return server
}

func baseConfig(stripeURL string) config.Config {
	return config.Config{
		LogLevel:                "debug",
		StripeSecretKey:         "sk_test_wiremock",
		StripeBaseURL:           stripeURL,
		StripeAPIVersion:        "2020-03-02",
		HTTPStripeClientTimeout: 5 * time.Second,
		ContentTypeID:           plan.DefaultContentType,
		ContentLocale:           plan.DefaultLocale,
		PlanCurrency:            plan.DefaultCurrency,
		PlanInterval:            "month",
		ResponseMode:            "legacy",
	}
}

func postNotification(t *testing.T, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url+"/webhooks/contentful/products", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(correlation.HeaderName, "it-corr-1")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestProductSync_EndToEnd(t *testing.T) {
	ctx := context.Background()

	wm, err := testinfra.NewWiremock(ctx, mappingsPath)
	require.NoError(t, err)
	t.Cleanup(func() { wm.Cleanup(ctx) })

	kc, err := testinfra.NewKafka(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { kc.Cleanup(ctx) })

	cfg := baseConfig(wm.BaseURL)
	cfg.KafkaBrokers = kc.Brokers
	cfg.KafkaPlansTopic = kc.PlansTopic

	server := setupTestServer(t, cfg)

	t.Run("creates product and price, publishes plan.created", func(t *testing.T) {
		// when
		resp := postNotification(t, server.URL, goldPlan)

		// then
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "create plan price_wm_1 success", body["message"])

		reader := kafka.NewReader(kafka.ReaderConfig{
			Brokers:   kc.Brokers,
			Topic:     kc.PlansTopic,
			Partition: 0,
			MaxWait:   500 * time.Millisecond,
		})
		defer reader.Close()

		readCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
		defer cancel()
		msg, err := reader.ReadMessage(readCtx)
		require.NoError(t, err)

		var env messaging.Envelope
		require.NoError(t, json.Unmarshal(msg.Value, &env))
		assert.Equal(t, "entry-1", env.Key)
		assert.Equal(t, plan.EventPlanCreated, env.Type)

		var created plan.Plan
		require.NoError(t, json.Unmarshal(env.Payload, &created))
		assert.Equal(t, "prod_wm_1", created.ProductID)
		assert.Equal(t, "price_wm_1", created.PriceID)
		assert.Equal(t, int64(1900), created.UnitAmount)

		headers := map[string]string{}
		for _, h := range msg.Headers {
			headers[h.Key] = string(h.Value)
		}
		assert.Equal(t, "it-corr-1", headers[correlation.KafkaHeaderName])
	})

	t.Run("skips other content types", func(t *testing.T) {
		// when
		resp := postNotification(t, server.URL, `{"sys":{"id":"a","contentType":{"sys":{"id":"article"}}}}`)

		// then
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("readiness includes kafka", func(t *testing.T) {
		// when
		resp, err := http.Get(server.URL + "/health/ready")
		require.NoError(t, err)
		defer resp.Body.Close()

		// then
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestProductSync_ProcessorFailure(t *testing.T) {
	ctx := context.Background()

	wm, err := testinfra.NewWiremock(ctx, mappingsPath)
	require.NoError(t, err)
	t.Cleanup(func() { wm.Cleanup(ctx) })

	tests := []struct {
		name       string
		mode       string
		wantStatus int
	}{
		{name: "legacy", mode: "legacy", wantStatus: http.StatusOK},
		{name: "normalized", mode: "normalized", wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// given: no product mapping matches this name
			cfg := baseConfig(wm.BaseURL)
			cfg.ResponseMode = tt.mode
			server := setupTestServer(t, cfg)

			body := strings.Replace(goldPlan, "Gold Plan", "Unknown Plan", 1)

			// when
			resp := postNotification(t, server.URL, body)

			// then
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var got map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
			assert.True(t, strings.HasPrefix(got["message"], "Failed to create plan "), got["message"])
		})
	}
}
