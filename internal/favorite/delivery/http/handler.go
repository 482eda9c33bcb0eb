package http

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/packing-checklist/internal/favorite/domain"
	"github.com/tair/packing-checklist/internal/platform/httpmw"
	"github.com/tair/packing-checklist/pkg/apperrors"
)

// FavoriteService is the part of the facade this handler drives
type FavoriteService interface {
	SetFavorite(ctx context.Context, userID, reviewID uint, desired bool) (domain.Result, error)
	ListFavorites(ctx context.Context, userID uint) ([]domain.Summary, error)
	GetFavorite(ctx context.Context, userID, reviewID uint) (*domain.Summary, error)
}

// FavoriteHandler handles HTTP requests for review favorites
type FavoriteHandler struct {
	svc FavoriteService
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(svc FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{svc: svc}
}

type setFavoriteRequest struct {
	Favorite *bool `json:"favorite"`
}

func callerID(r *http.Request) uint {
	p, _ := httpmw.PrincipalFromContext(r.Context())
	return p.UserID
}

// SetFavorite handles PUT /api/reviews/{id}/favorite
func (h *FavoriteHandler) SetFavorite(w http.ResponseWriter, r *http.Request) {
	reviewID, err := httpmw.PathID(r, "id")
	if err != nil {
		httpmw.RespondError(w, r, err)
		return
	}

	var req setFavoriteRequest
	if err := httpmw.DecodeJSON(r, &req); err != nil {
		httpmw.RespondError(w, r, err)
		return
	}
	if req.Favorite == nil {
		httpmw.RespondError(w, r, apperrors.New(apperrors.KindInvalidInput, "http.SetFavorite", "favorite is required"))
		return
	}

	res, err := h.svc.SetFavorite(r.Context(), callerID(r), reviewID, *req.Favorite)
	if err != nil {
		httpmw.RespondError(w, r, err)
		return
	}
	httpmw.RespondOK(w, http.StatusOK, "", res)
}

// ListFavorites handles GET /api/favorites
func (h *FavoriteHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ListFavorites(r.Context(), callerID(r))
	if err != nil {
		httpmw.RespondError(w, r, err)
		return
	}
	httpmw.RespondOK(w, http.StatusOK, "", out)
}

// GetFavorite handles GET /api/favorites/{reviewId}
func (h *FavoriteHandler) GetFavorite(w http.ResponseWriter, r *http.Request) {
	reviewID, err := httpmw.PathID(r, "reviewId")
	if err != nil {
		httpmw.RespondError(w, r, err)
		return
	}

	out, err := h.svc.GetFavorite(r.Context(), callerID(r), reviewID)
	if err != nil {
		httpmw.RespondError(w, r, err)
		return
	}
	httpmw.RespondOK(w, http.StatusOK, "", out)
}

// RegisterRoutes registers all favorite routes. A nil limiter disables rate limiting of toggles.
func (h *FavoriteHandler) RegisterRoutes(router *mux.Router, authn func(http.Handler) http.Handler, limiter httpmw.Limiter, metrics *httpmw.Metrics) {
	var toggle http.Handler = http.HandlerFunc(h.SetFavorite)
	if limiter != nil {
		toggle = httpmw.RateLimitMiddleware(limiter)(toggle)
	}

	router.Handle("/api/reviews/{id:[0-9]+}/favorite",
		metrics.Wrap("/api/reviews/{id}/favorite", authn(toggle))).Methods(http.MethodPut)
	router.Handle("/api/favorites",
		metrics.Wrap("/api/favorites", authn(http.HandlerFunc(h.ListFavorites)))).Methods(http.MethodGet)
	router.Handle("/api/favorites/{reviewId:[0-9]+}",
		metrics.Wrap("/api/favorites/{reviewId}", authn(http.HandlerFunc(h.GetFavorite)))).Methods(http.MethodGet)
}
