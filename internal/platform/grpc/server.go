package grpc

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"sync"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthServer serves grpc.health.v1 for the process and named services.
type HealthServer struct {
	listener   net.Listener
	grpcServer *gogrpc.Server
	health     *health.Server
	services   []string
	closeOnce  sync.Once
}

// NewHealthServer listens on addr and registers services as NOT_SERVING
// until MarkServing is called.
func NewHealthServer(addr string, services ...string) (*HealthServer, error) {
	if addr == "" {
		return nil, errors.New("health address is required")
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	grpcServer := gogrpc.NewServer(gogrpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	s := &HealthServer{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		services:   append([]string{""}, services...),
	}
	s.setAll(grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	return s, nil
}

// Addr returns the listener address.
func (s *HealthServer) Addr() string {
	return s.listener.Addr().String()
}

// MarkServing flips every registered service to SERVING.
func (s *HealthServer) MarkServing() {
	s.setAll(grpc_health_v1.HealthCheckResponse_SERVING)
}

// MarkNotServing flips every registered service to NOT_SERVING.
func (s *HealthServer) MarkNotServing() {
	s.setAll(grpc_health_v1.HealthCheckResponse_NOT_SERVING)
}

func (s *HealthServer) setAll(status grpc_health_v1.HealthCheckResponse_ServingStatus) {
	for _, service := range s.services {
		s.health.SetServingStatus(service, status)
	}
}

// Serve blocks until ctx ends or the server fails.
func (s *HealthServer) Serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log.Printf("health server listening at %v", s.listener.Addr())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		s.Close()
		<-serveErr
		return nil
	case err := <-serveErr:
		if errors.Is(err, gogrpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve health: %w", err)
	}
}

// Close shuts down health reporting and stops the server.
func (s *HealthServer) Close() {
	s.closeOnce.Do(func() {
		s.health.Shutdown()
		s.grpcServer.GracefulStop()
	})
}
