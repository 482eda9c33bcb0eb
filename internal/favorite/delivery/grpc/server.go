package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/tair/packing-checklist/internal/favorite/domain"
	"github.com/tair/packing-checklist/internal/platform/httpmw"
	"github.com/tair/packing-checklist/pkg/apperrors"
	"github.com/tair/packing-checklist/pkg/logger"
)

// ServiceName is the full gRPC name of the favorite service. Messages use the json codec.
const ServiceName = "checklist.v1.FavoriteService"

// SetFavoriteRequest brings the caller's favorite on a review to the desired state
type SetFavoriteRequest struct {
	ReviewID uint  `json:"review_id"`
	Favorite *bool `json:"favorite"`
}

// GetFavoriteRequest asks for the caller's favorite on one review
type GetFavoriteRequest struct {
	ReviewID uint `json:"review_id"`
}

// ListFavoritesRequest asks for all active favorites of the caller
type ListFavoritesRequest struct{}

// ListFavoritesResponse holds the caller's favorites, newest first
type ListFavoritesResponse struct {
	Favorites []domain.Summary `json:"favorites"`
}

// FavoriteService is the part of the facade this server drives
type FavoriteService interface {
	SetFavorite(ctx context.Context, userID, reviewID uint, desired bool) (domain.Result, error)
	ListFavorites(ctx context.Context, userID uint) ([]domain.Summary, error)
	GetFavorite(ctx context.Context, userID, reviewID uint) (*domain.Summary, error)
}

type favoriteServer interface {
	SetFavorite(ctx context.Context, req *SetFavoriteRequest) (*domain.Result, error)
	GetFavorite(ctx context.Context, req *GetFavoriteRequest) (*domain.Summary, error)
	ListFavorites(ctx context.Context, req *ListFavoritesRequest) (*ListFavoritesResponse, error)
}

// FavoriteGRPCServer serves favorites over gRPC. Domain errors are returned as is
// and mapped to statuses by the server's error interceptor.
type FavoriteGRPCServer struct {
	svc FavoriteService
}

// NewFavoriteGRPCServer creates a new gRPC server
func NewFavoriteGRPCServer(svc FavoriteService) *FavoriteGRPCServer {
	return &FavoriteGRPCServer{svc: svc}
}

// Register adds the favorite service to r
func Register(r grpc.ServiceRegistrar, srv *FavoriteGRPCServer) {
	r.RegisterService(&serviceDesc, srv)
}

func callerID(ctx context.Context) uint {
	p, _ := httpmw.PrincipalFromContext(ctx)
	return p.UserID
}

// SetFavorite favorites or unfavorites a review
func (s *FavoriteGRPCServer) SetFavorite(ctx context.Context, req *SetFavoriteRequest) (*domain.Result, error) {
	if req.Favorite == nil {
		return nil, apperrors.New(apperrors.KindInvalidInput, "grpc.SetFavorite", "favorite is required")
	}

	logger.Debug(ctx).
		Uint("review_id", req.ReviewID).
		Bool("favorite", *req.Favorite).
		Msg("gRPC: SetFavorite called")

	res, err := s.svc.SetFavorite(ctx, callerID(ctx), req.ReviewID, *req.Favorite)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// GetFavorite returns the caller's favorite on a review
func (s *FavoriteGRPCServer) GetFavorite(ctx context.Context, req *GetFavoriteRequest) (*domain.Summary, error) {
	return s.svc.GetFavorite(ctx, callerID(ctx), req.ReviewID)
}

// ListFavorites returns the caller's favorites
func (s *FavoriteGRPCServer) ListFavorites(ctx context.Context, _ *ListFavoritesRequest) (*ListFavoritesResponse, error) {
	out, err := s.svc.ListFavorites(ctx, callerID(ctx))
	if err != nil {
		return nil, err
	}
	return &ListFavoritesResponse{Favorites: out}, nil
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*favoriteServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("SetFavorite", favoriteServer.SetFavorite),
		unary("GetFavorite", favoriteServer.GetFavorite),
		unary("ListFavorites", favoriteServer.ListFavorites),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "favorite",
}

// unary builds the method descriptor for call, running it through the server's interceptor chain
func unary[Req, Resp any](name string, call func(favoriteServer, context.Context, *Req) (Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(favoriteServer), ctx, req.(*Req))
			}
			if interceptor == nil {
				return handler(ctx, in)
			}
			return interceptor(ctx, in, &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}, handler)
		},
	}
}
