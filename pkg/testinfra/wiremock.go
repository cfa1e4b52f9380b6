//go:build integration
// +build integration

package testinfra

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type WiremockContainer struct {
	Container testcontainers.Container
	BaseURL   string
}

// NewWiremock starts WireMock with the stub mappings found in mappingsPath.
func NewWiremock(ctx context.Context, mappingsPath string) (*WiremockContainer, error) {
	absPath, err := filepath.Abs(mappingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	req := testcontainers.ContainerRequest{
		Image:        "wiremock/wiremock:3.9.1",
		ExposedPorts: []string{"8080/tcp"},
		WaitingFor:   wait.ForHTTP("/__admin/mappings").WithPort("8080/tcp"),
		Cmd:          []string{"--global-response-templating", "--disable-gzip", "--verbose"},
		Mounts: testcontainers.Mounts(
			testcontainers.BindMount(absPath, "/home/wiremock/mappings"),
		),
	}

	container, err := testcontainers.GenericContainer(ctx,
		testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start wiremock container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get wiremock host: %w", err)
	}
	port, err := container.MappedPort(ctx, "8080/tcp")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get wiremock port: %w", err)
	}

	return &WiremockContainer{
		Container: container,
		BaseURL:   fmt.Sprintf("http://%s:%s", host, port.Port()),
	}, nil
}

func (c *WiremockContainer) Cleanup(ctx context.Context) {
	if c.Container != nil {
		_ = c.Container.Terminate(ctx)
	}
}
