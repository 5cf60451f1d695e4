package grpc

import (
	"context"
	"fmt"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// ClientDialOptions returns dial options for loopback probe clients.
func ClientDialOptions() []gogrpc.DialOption {
	return []gogrpc.DialOption{
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
		gogrpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}
}

// Probe connects to addr and waits until service reports SERVING.
func Probe(ctx context.Context, addr, service string, logf func(string, ...any)) error {
	if addr == "" {
		return fmt.Errorf("health address is required")
	}
	conn, err := gogrpc.NewClient(addr, ClientDialOptions()...)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	defer conn.Close()
	return WaitForHealth(ctx, conn, service, logf)
}
