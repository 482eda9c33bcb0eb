package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation for the Checklist Service
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// CreateChecklist godoc
// @Summary Create a checklist
// @Description Create a checklist with its initial items in one transaction
// @Tags Checklists
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body facade.CreateChecklistInput true "Checklist header and items"
// @Success 201 {object} object{success=bool,message=string,data=domain.Checklist}
// @Failure 400 {object} object{success=bool,error=string,code=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/checklists [post]
func (h *ChecklistHandler) CreateChecklistDoc() {}

// ListMyChecklists godoc
// @Summary List my checklists
// @Description List the caller's active checklists, newest first
// @Tags Checklists
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=[]domain.Checklist}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/checklists [get]
func (h *ChecklistHandler) ListMyChecklistsDoc() {}

// GetChecklist godoc
// @Summary Get a checklist
// @Description Get one checklist with its visible items (owner or admin)
// @Tags Checklists
// @Security BearerAuth
// @Produce json
// @Param id path int true "Checklist ID"
// @Success 200 {object} object{success=bool,data=domain.Checklist}
// @Failure 403 {object} object{success=bool,error=string,code=string}
// @Failure 404 {object} object{success=bool,error=string,code=string}
// @Router /api/checklists/{id} [get]
func (h *ChecklistHandler) GetChecklistDoc() {}

// EditChecklist godoc
// @Summary Edit checklist items
// @Description Add items, remove items and toggle packing bags, applied in that order
// @Tags Checklists
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Checklist ID"
// @Param request body facade.EditChecklistInput true "Item changes"
// @Success 200 {object} object{success=bool,message=string,data=facade.EditResult}
// @Failure 400 {object} object{success=bool,error=string,code=string}
// @Failure 403 {object} object{success=bool,error=string,code=string}
// @Failure 404 {object} object{success=bool,error=string,code=string}
// @Router /api/checklists/{id} [patch]
func (h *ChecklistHandler) EditChecklistDoc() {}

// DeleteChecklist godoc
// @Summary Delete a checklist
// @Description Soft-delete a checklist and its items. Deleting twice succeeds.
// @Tags Checklists
// @Security BearerAuth
// @Produce json
// @Param id path int true "Checklist ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 403 {object} object{success=bool,error=string,code=string}
// @Failure 404 {object} object{success=bool,error=string,code=string}
// @Router /api/checklists/{id} [delete]
func (h *ChecklistHandler) DeleteChecklistDoc() {}

// ShareChecklist godoc
// @Summary Share a checklist
// @Tags Sharing
// @Security BearerAuth
// @Produce json
// @Param id path int true "Checklist ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string,code=string}
// @Failure 403 {object} object{success=bool,error=string,code=string}
// @Failure 409 {object} object{success=bool,error=string,code=string}
// @Router /api/checklists/{id}/share [put]
func (h *ChecklistHandler) ShareChecklistDoc() {}

// UnshareChecklist godoc
// @Summary Unshare a checklist
// @Tags Sharing
// @Security BearerAuth
// @Produce json
// @Param id path int true "Checklist ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string,code=string}
// @Failure 403 {object} object{success=bool,error=string,code=string}
// @Failure 409 {object} object{success=bool,error=string,code=string}
// @Router /api/checklists/{id}/share [delete]
func (h *ChecklistHandler) UnshareChecklistDoc() {}

// ListMyShared godoc
// @Summary List my shared checklists
// @Tags Sharing
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=[]domain.Checklist}
// @Router /api/checklists/shared [get]
func (h *ChecklistHandler) ListMySharedDoc() {}

// ListPublicShared godoc
// @Summary Browse shared checklists
// @Tags Sharing
// @Produce json
// @Param sort query string false "recent or likes" Enums(recent, likes)
// @Success 200 {object} object{success=bool,data=[]domain.Checklist}
// @Failure 400 {object} object{success=bool,error=string,code=string}
// @Router /api/shared/checklists [get]
func (h *ChecklistHandler) ListPublicSharedDoc() {}

// GetPublicShared godoc
// @Summary Get a shared checklist
// @Tags Sharing
// @Produce json
// @Param id path int true "Checklist ID"
// @Success 200 {object} object{success=bool,data=domain.Checklist}
// @Failure 404 {object} object{success=bool,error=string,code=string}
// @Router /api/shared/checklists/{id} [get]
func (h *ChecklistHandler) GetPublicSharedDoc() {}
