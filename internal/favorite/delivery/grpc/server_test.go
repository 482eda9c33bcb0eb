package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/tair/packing-checklist/internal/checklist/repository"
	"github.com/tair/packing-checklist/internal/facade"
	"github.com/tair/packing-checklist/internal/favorite/domain"
	favrepository "github.com/tair/packing-checklist/internal/favorite/repository"
	"github.com/tair/packing-checklist/internal/platform/grpcserver"
	"github.com/tair/packing-checklist/pkg/auth"
)

type client struct {
	t       *testing.T
	conn    *grpc.ClientConn
	tokens  *auth.Manager
	reviews *favrepository.MemoryFavoriteStore
}

func newClient(t *testing.T) *client {
	t.Helper()
	reviews := favrepository.NewMemoryFavoriteStore()
	reviews.SeedReviews(
		domain.ItemReview{ID: 7, UserID: 5, ItemID: 2, Title: "Universal adapter", Likes: 3},
		domain.ItemReview{ID: 8, UserID: 5, ItemID: 1, Title: "Passport wallet"},
	)
	reg := prometheus.NewRegistry()
	svc, err := facade.InitializeServiceWithStores(repository.NewMemoryChecklistStore(), reviews, facade.NoopPublisher{}, reg)
	require.NoError(t, err)

	tokens := auth.NewManager("test-secret", time.Hour)
	srv := grpcserver.New("checklist-service", tokens, grpcserver.NewMetrics(reg, "checklist"))
	Register(srv.Registrar(), NewFavoriteGRPCServer(svc))

	lis := bufconn.Listen(1 << 20)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(grpcserver.JSONCodecName)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &client{t: t, conn: conn, tokens: tokens, reviews: reviews}
}

func (c *client) invoke(userID uint, method string, req, resp interface{}) error {
	c.t.Helper()
	ctx := context.Background()
	if userID != 0 {
		token, err := c.tokens.Generate(userID, auth.AuthorityUser)
		require.NoError(c.t, err)
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
	}
	return c.conn.Invoke(ctx, "/"+ServiceName+"/"+method, req, resp)
}

func favorite(b bool) *bool { return &b }

func TestSetFavoriteOverGRPC(t *testing.T) {
	c := newClient(t)

	for i := 0; i < 2; i++ {
		var res domain.Result
		require.NoError(t, c.invoke(42, "SetFavorite", &SetFavoriteRequest{ReviewID: 7, Favorite: favorite(true)}, &res))
		assert.Equal(t, domain.Result{Liked: true, Likes: 4}, res)
	}

	var got domain.Summary
	require.NoError(t, c.invoke(42, "GetFavorite", &GetFavoriteRequest{ReviewID: 7}, &got))
	assert.Equal(t, "Universal adapter", got.Title)
	assert.Equal(t, 4, got.Likes)

	var list ListFavoritesResponse
	require.NoError(t, c.invoke(42, "ListFavorites", &ListFavoritesRequest{}, &list))
	require.Len(t, list.Favorites, 1)
	assert.Equal(t, uint(7), list.Favorites[0].ReviewID)

	var res domain.Result
	require.NoError(t, c.invoke(42, "SetFavorite", &SetFavoriteRequest{ReviewID: 7, Favorite: favorite(false)}, &res))
	assert.Equal(t, domain.Result{Liked: false, Likes: 3}, res)
}

func TestFavoriteErrorsOverGRPC(t *testing.T) {
	c := newClient(t)
	c.reviews.DeleteReview(8, time.Now())

	tests := []struct {
		name   string
		userID uint
		method string
		req    interface{}
		code   codes.Code
	}{
		{"no token", 0, "ListFavorites", &ListFavoritesRequest{}, codes.Unauthenticated},
		{"missing desired state", 42, "SetFavorite", &SetFavoriteRequest{ReviewID: 7}, codes.InvalidArgument},
		{"unknown review", 42, "SetFavorite", &SetFavoriteRequest{ReviewID: 99, Favorite: favorite(true)}, codes.NotFound},
		{"deleted review", 42, "SetFavorite", &SetFavoriteRequest{ReviewID: 8, Favorite: favorite(true)}, codes.FailedPrecondition},
		{"not a favorite", 42, "GetFavorite", &GetFavoriteRequest{ReviewID: 7}, codes.NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp domain.Result
			err := c.invoke(tt.userID, tt.method, tt.req, &resp)
			assert.Equal(t, tt.code, status.Code(err), err)
		})
	}
}
