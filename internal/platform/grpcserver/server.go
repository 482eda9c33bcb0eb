package grpcserver

import (
	"context"
	"net"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/tair/packing-checklist/pkg/auth"
	"github.com/tair/packing-checklist/pkg/logger"
)

// Server is the gRPC endpoint of the service. Besides the services registered
// through Registrar it exposes the standard health service, reporting readiness
// of the backing store, and server reflection.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
	name   string
}

// New creates a gRPC server with the tracing, logging, metrics, auth and error interceptors
func New(serviceName string, tokens *auth.Manager, metrics *Metrics) *Server {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			RecoveryInterceptor,
			LoggingInterceptor,
			metrics.UnaryInterceptor,
			AuthInterceptor(tokens, "/grpc.health.v1.Health/"),
			ErrorInterceptor,
		),
	)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	reflection.Register(srv)

	return &Server{grpc: srv, health: hs, name: serviceName}
}

// Registrar exposes the underlying server for service registration
func (s *Server) Registrar() grpc.ServiceRegistrar {
	return s.grpc
}

// SetServing reports the overall and per-service health status
func (s *Server) SetServing(serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(s.name, st)
}

// WatchReadiness runs check every interval and publishes the result as health status until ctx is done
func (s *Server) WatchReadiness(ctx context.Context, interval time.Duration, check func(context.Context) error) {
	report := func() {
		cctx, cancel := context.WithTimeout(ctx, interval)
		defer cancel()
		err := check(cctx)
		if err != nil {
			logger.Warn(ctx).Err(err).Msg("Readiness check failed")
		}
		s.SetServing(err == nil)
	}

	report()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			report()
		}
	}
}

// Serve accepts connections on lis until Stop is called
func (s *Server) Serve(lis net.Listener) error {
	logger.Logger.Info().Str("addr", lis.Addr().String()).Msg("gRPC server starting")
	return s.grpc.Serve(lis)
}

// Stop marks the server as not serving and drains in-flight calls
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
