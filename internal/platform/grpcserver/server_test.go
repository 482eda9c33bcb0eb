package grpcserver

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/tair/packing-checklist/internal/platform/httpmw"
	"github.com/tair/packing-checklist/pkg/apperrors"
	"github.com/tair/packing-checklist/pkg/auth"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
		msg  string
	}{
		{apperrors.New(apperrors.KindNotFound, "op", "checklist not found"), codes.NotFound, "checklist not found"},
		{apperrors.New(apperrors.KindForbidden, "op", "nope"), codes.PermissionDenied, "nope"},
		{apperrors.New(apperrors.KindAlreadyShared, "op", "shared"), codes.FailedPrecondition, "shared"},
		{apperrors.New(apperrors.KindInvalidInput, "op", "bad"), codes.InvalidArgument, "bad"},
		{apperrors.Store("op", errors.New("deadlock detected")), codes.Internal, "internal error"},
	}

	for _, tt := range tests {
		st, ok := status.FromError(ToStatus(tt.err))
		require.True(t, ok)
		assert.Equal(t, tt.code, st.Code())
		assert.Equal(t, tt.msg, st.Message())
	}
	assert.NoError(t, ToStatus(nil))
}

func TestAuthInterceptor(t *testing.T) {
	tokens := auth.NewManager("secret", time.Hour)
	intercept := AuthInterceptor(tokens, "/grpc.health.v1.Health/")
	var seen httpmw.Principal
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		seen, _ = httpmw.PrincipalFromContext(ctx)
		return "ok", nil
	}

	_, err := intercept(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}, handler)
	require.NoError(t, err)

	_, err = intercept(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/checklist.v1.Checklists/Get"}, handler)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	token, err := tokens.Generate(5, auth.AuthorityUser)
	require.NoError(t, err)
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+token))
	_, err = intercept(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/checklist.v1.Checklists/Get"}, handler)
	require.NoError(t, err)
	assert.Equal(t, uint(5), seen.UserID)
}

func TestErrorInterceptorKeepsStatuses(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/x/Y"}

	_, err := ErrorInterceptor(context.Background(), nil, info, func(context.Context, interface{}) (interface{}, error) {
		return nil, apperrors.New(apperrors.KindNotFavorite, "op", "not a favorite")
	})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = ErrorInterceptor(context.Background(), nil, info, func(context.Context, interface{}) (interface{}, error) {
		return nil, status.Error(codes.Aborted, "aborted")
	})
	assert.Equal(t, codes.Aborted, status.Code(err))
}

func TestRecoveryInterceptor(t *testing.T) {
	_, err := RecoveryInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/x/Y"},
		func(context.Context, interface{}) (interface{}, error) { panic("boom") })
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestHealthReflectsReadiness(t *testing.T) {
	srv := New("checklist-service", auth.NewManager("secret", time.Hour), NewMetrics(prometheus.NewRegistry(), "checklist"))
	lis := bufconn.Listen(1 << 20)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	client := healthpb.NewHealthClient(conn)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ready := make(chan error, 1)
	ready <- errors.New("database down")
	go srv.WatchReadiness(ctx, time.Hour, func(context.Context) error { return <-ready })

	require.Eventually(t, func() bool {
		resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "checklist-service"})
		return err == nil && resp.Status == healthpb.HealthCheckResponse_NOT_SERVING
	}, 2*time.Second, 10*time.Millisecond)

	srv.SetServing(true)
	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
}
