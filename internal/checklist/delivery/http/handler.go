package http

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/packing-checklist/internal/checklist/domain"
	"github.com/tair/packing-checklist/internal/facade"
	"github.com/tair/packing-checklist/internal/platform/httpmw"
)

// ChecklistService is the part of the facade this handler drives
type ChecklistService interface {
	CreateChecklist(ctx context.Context, userID uint, in facade.CreateChecklistInput) (*domain.Checklist, error)
	DeleteChecklist(ctx context.Context, actor domain.Actor, checklistID uint) error
	EditChecklist(ctx context.Context, actor domain.Actor, checklistID uint, in facade.EditChecklistInput) (*facade.EditResult, error)
	ShareChecklist(ctx context.Context, actor domain.Actor, checklistID uint) error
	UnshareChecklist(ctx context.Context, actor domain.Actor, checklistID uint) error
	ListMyChecklists(ctx context.Context, userID uint) ([]domain.Checklist, error)
	GetChecklist(ctx context.Context, actor domain.Actor, checklistID uint) (*domain.Checklist, error)
	ListShared(ctx context.Context, userID uint) ([]domain.Checklist, error)
	GetShared(ctx context.Context, checklistID uint) (*domain.Checklist, error)
	ListPublicShared(ctx context.Context, sort string) ([]domain.Checklist, error)
}

// ChecklistHandler handles HTTP requests for checklists
type ChecklistHandler struct {
	svc ChecklistService
}

// NewChecklistHandler creates a new checklist handler
func NewChecklistHandler(svc ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{svc: svc}
}

func actorOf(r *http.Request) domain.Actor {
	p, _ := httpmw.PrincipalFromContext(r.Context())
	return domain.Actor{UserID: p.UserID, Authority: domain.Authority(p.Authority)}
}

// CreateChecklist handles POST /api/checklists
func (h *ChecklistHandler) CreateChecklist(w http.ResponseWriter, r *http.Request) {
	var req facade.CreateChecklistInput
	if err := httpmw.DecodeJSON(r, &req); err != nil {
		httpmw.RespondError(w, r, err)
		return
	}

	c, err := h.svc.CreateChecklist(r.Context(), actorOf(r).UserID, req)
	if err != nil {
		httpmw.RespondError(w, r, err)
		return
	}

	httpmw.RespondOK(w, http.StatusCreated, "Checklist created successfully", c)
}

// ListMyChecklists handles GET /api/checklists
func (h *ChecklistHandler) ListMyChecklists(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ListMyChecklists(r.Context(), actorOf(r).UserID)
	if err != nil {
		httpmw.RespondError(w, r, err)
		return
	}
	httpmw.RespondOK(w, http.StatusOK, "", out)
}

// GetChecklist handles GET /api/checklists/{id}
func (h *ChecklistHandler) GetChecklist(w http.ResponseWriter, r *http.Request) {
	id, err := httpmw.PathID(r, "id")
	if err != nil {
		httpmw.RespondError(w, r, err)
		return
	}

	c, err := h.svc.GetChecklist(r.Context(), actorOf(r), id)
	if err != nil {
		httpmw.RespondError(w, r, err)
		return
	}
	httpmw.RespondOK(w, http.StatusOK, "", c)
}

// EditChecklist handles PATCH /api/checklists/{id}
func (h *ChecklistHandler) EditChecklist(w http.ResponseWriter, r *http.Request) {
	id, err := httpmw.PathID(r, "id")
	if err != nil {
		httpmw.RespondError(w, r, err)
		return
	}

	var req facade.EditChecklistInput
	if err := httpmw.DecodeJSON(r, &req); err != nil {
		httpmw.RespondError(w, r, err)
		return
	}

	res, err := h.svc.EditChecklist(r.Context(), actorOf(r), id, req)
	if err != nil {
		httpmw.RespondError(w, r, err)
		return
	}
	httpmw.RespondOK(w, http.StatusOK, "Checklist updated successfully", res)
}

// DeleteChecklist handles DELETE /api/checklists/{id}
func (h *ChecklistHandler) DeleteChecklist(w http.ResponseWriter, r *http.Request) {
	id, err := httpmw.PathID(r, "id")
	if err != nil {
		httpmw.RespondError(w, r, err)
		return
	}

	if err := h.svc.DeleteChecklist(r.Context(), actorOf(r), id); err != nil {
		httpmw.RespondError(w, r, err)
		return
	}
	httpmw.RespondOK(w, http.StatusOK, "Checklist deleted successfully", nil)
}

// ShareChecklist handles PUT /api/checklists/{id}/share
func (h *ChecklistHandler) ShareChecklist(w http.ResponseWriter, r *http.Request) {
	id, err := httpmw.PathID(r, "id")
	if err != nil {
		httpmw.RespondError(w, r, err)
		return
	}

	if err := h.svc.ShareChecklist(r.Context(), actorOf(r), id); err != nil {
		httpmw.RespondError(w, r, err)
		return
	}
	httpmw.RespondOK(w, http.StatusOK, "Checklist shared", nil)
}

// UnshareChecklist handles DELETE /api/checklists/{id}/share
func (h *ChecklistHandler) UnshareChecklist(w http.ResponseWriter, r *http.Request) {
	id, err := httpmw.PathID(r, "id")
	if err != nil {
		httpmw.RespondError(w, r, err)
		return
	}

	if err := h.svc.UnshareChecklist(r.Context(), actorOf(r), id); err != nil {
		httpmw.RespondError(w, r, err)
		return
	}
	httpmw.RespondOK(w, http.StatusOK, "Checklist unshared", nil)
}

// ListMyShared handles GET /api/checklists/shared
func (h *ChecklistHandler) ListMyShared(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ListShared(r.Context(), actorOf(r).UserID)
	if err != nil {
		httpmw.RespondError(w, r, err)
		return
	}
	httpmw.RespondOK(w, http.StatusOK, "", out)
}

// ListPublicShared handles GET /api/shared/checklists
func (h *ChecklistHandler) ListPublicShared(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ListPublicShared(r.Context(), r.URL.Query().Get("sort"))
	if err != nil {
		httpmw.RespondError(w, r, err)
		return
	}
	httpmw.RespondOK(w, http.StatusOK, "", out)
}

// GetPublicShared handles GET /api/shared/checklists/{id}
func (h *ChecklistHandler) GetPublicShared(w http.ResponseWriter, r *http.Request) {
	id, err := httpmw.PathID(r, "id")
	if err != nil {
		httpmw.RespondError(w, r, err)
		return
	}

	c, err := h.svc.GetShared(r.Context(), id)
	if err != nil {
		httpmw.RespondError(w, r, err)
		return
	}
	httpmw.RespondOK(w, http.StatusOK, "", c)
}

// RegisterRoutes registers all checklist routes. authn guards every route outside /api/shared.
func (h *ChecklistHandler) RegisterRoutes(router *mux.Router, authn func(http.Handler) http.Handler, metrics *httpmw.Metrics) {
	route := func(path, method string, fn http.HandlerFunc, protected bool) {
		var handler http.Handler = fn
		if protected {
			handler = authn(handler)
		}
		router.Handle(path, metrics.Wrap(path, handler)).Methods(method)
	}

	route("/api/checklists", http.MethodPost, h.CreateChecklist, true)
	route("/api/checklists", http.MethodGet, h.ListMyChecklists, true)
	route("/api/checklists/shared", http.MethodGet, h.ListMyShared, true)
	route("/api/checklists/{id:[0-9]+}", http.MethodGet, h.GetChecklist, true)
	route("/api/checklists/{id:[0-9]+}", http.MethodPatch, h.EditChecklist, true)
	route("/api/checklists/{id:[0-9]+}", http.MethodDelete, h.DeleteChecklist, true)
	route("/api/checklists/{id:[0-9]+}/share", http.MethodPut, h.ShareChecklist, true)
	route("/api/checklists/{id:[0-9]+}/share", http.MethodDelete, h.UnshareChecklist, true)
	route("/api/shared/checklists", http.MethodGet, h.ListPublicShared, false)
	route("/api/shared/checklists/{id:[0-9]+}", http.MethodGet, h.GetPublicShared, false)
}
