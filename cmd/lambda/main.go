package main

import (
	"log"
	"log/slog"

	"PlanSync/config"
	"PlanSync/internal/app"
	plansynclambda "PlanSync/internal/lambda"
	"PlanSync/pkg/logger"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	logger.Setup(logger.Options{Level: cfg.LogLevel, Console: cfg.ConsoleLogs()})

	deps, err := app.Wire(cfg, slog.Default())
	if err != nil {
		log.Fatalf("Wire error: %s", err)
	}

	adapter := plansynclambda.NewAdapter(deps.Handler, slog.Default())
	lambda.Start(adapter.Handle)
}
