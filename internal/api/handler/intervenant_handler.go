package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Vectra777/module-intervenants/internal/dto"
	"github.com/Vectra777/module-intervenants/internal/service"
	"github.com/Vectra777/module-intervenants/pkg/response"
)

// IntervenantHandler handlers HTTP du module intervenants.
type IntervenantHandler struct {
	intervenantSvc service.IntervenantService
}

// NewIntervenantHandler crée un IntervenantHandler.
func NewIntervenantHandler(intervenantSvc service.IntervenantService) *IntervenantHandler {
	return &IntervenantHandler{intervenantSvc: intervenantSvc}
}

// List liste les intervenants, avec filtres optionnels.
// GET /intervenants
func (h *IntervenantHandler) List(c *gin.Context) {
	var req dto.IntervenantListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Parametres de recherche invalides")
		return
	}

	intervenants, err := h.intervenantSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, intervenants)
}

// Get détail d'un intervenant.
// GET /intervenants/:id
func (h *IntervenantHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	intervenant, err := h.intervenantSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, intervenant)
}

// Create crée un intervenant.
// POST /intervenants
func (h *IntervenantHandler) Create(c *gin.Context) {
	var req dto.CreateIntervenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Corps de requete invalide")
		return
	}
	if err := req.Normalize(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	intervenant, err := h.intervenantSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Created(c, intervenant)
}

// Update met à jour partiellement un intervenant.
// PUT /intervenants/:id
func (h *IntervenantHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateIntervenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Corps de requete invalide")
		return
	}
	if err := req.Normalize(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	intervenant, err := h.intervenantSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, intervenant)
}

// Delete supprime un intervenant et ses affectations.
// DELETE /intervenants/:id
func (h *IntervenantHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.intervenantSvc.Delete(c.Request.Context(), id); err != nil {
		response.AppError(c, err)
		return
	}

	response.NoContent(c)
}

// ListEtudes liste les études auxquelles l'intervenant est affecté.
// GET /intervenants/:id/etudes
func (h *IntervenantHandler) ListEtudes(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	etudes, err := h.intervenantSvc.ListEtudes(c.Request.Context(), id)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, etudes)
}
