package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Vectra777/module-intervenants/internal/dto"
	"github.com/Vectra777/module-intervenants/internal/service"
	"github.com/Vectra777/module-intervenants/pkg/response"
)

// EtudeHandler handlers HTTP du module études, y compris les ressources
// imbriquées (intervenants liés, coût total).
type EtudeHandler struct {
	etudeSvc       service.EtudeService
	affectationSvc service.AffectationService
	costSvc        service.CostService
}

// NewEtudeHandler crée un EtudeHandler.
func NewEtudeHandler(etudeSvc service.EtudeService, affectationSvc service.AffectationService, costSvc service.CostService) *EtudeHandler {
	return &EtudeHandler{etudeSvc: etudeSvc, affectationSvc: affectationSvc, costSvc: costSvc}
}

// List liste les études.
// GET /etudes
func (h *EtudeHandler) List(c *gin.Context) {
	etudes, err := h.etudeSvc.List(c.Request.Context())
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, etudes)
}

// Get détail d'une étude.
// GET /etudes/:id
func (h *EtudeHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	etude, err := h.etudeSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, etude)
}

// Create crée une étude.
// POST /etudes
func (h *EtudeHandler) Create(c *gin.Context) {
	var req dto.CreateEtudeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Corps de requete invalide")
		return
	}
	if err := req.Normalize(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	etude, err := h.etudeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Created(c, etude)
}

// Update met à jour partiellement une étude.
// PUT /etudes/:id
func (h *EtudeHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateEtudeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Corps de requete invalide")
		return
	}
	if err := req.Normalize(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	etude, err := h.etudeSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, etude)
}

// Delete supprime une étude et ses affectations.
// DELETE /etudes/:id
func (h *EtudeHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.etudeSvc.Delete(c.Request.Context(), id); err != nil {
		response.AppError(c, err)
		return
	}

	response.NoContent(c)
}

// ListIntervenants liste les intervenants affectés à l'étude.
// GET /etudes/:id/intervenants
func (h *EtudeHandler) ListIntervenants(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	intervenants, err := h.etudeSvc.ListIntervenants(c.Request.Context(), id)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, intervenants)
}

// LinkIntervenant affecte un intervenant à l'étude (ressource imbriquée).
// POST /etudes/:id/intervenants/:intervenant_id
func (h *EtudeHandler) LinkIntervenant(c *gin.Context) {
	etudeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	intervenantID, ok := parseIDParam(c, "intervenant_id")
	if !ok {
		return
	}

	var req dto.CreateAffectationLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Corps de requete invalide")
		return
	}
	if err := req.Normalize(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	affectation, err := h.affectationSvc.CreateLink(c.Request.Context(), etudeID, intervenantID, &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Created(c, affectation)
}

// UnlinkIntervenant supprime l'affectation désignée par le couple.
// DELETE /etudes/:id/intervenants/:intervenant_id
func (h *EtudeHandler) UnlinkIntervenant(c *gin.Context) {
	etudeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	intervenantID, ok := parseIDParam(c, "intervenant_id")
	if !ok {
		return
	}

	if err := h.affectationSvc.DeleteLink(c.Request.Context(), etudeID, intervenantID); err != nil {
		response.AppError(c, err)
		return
	}

	response.NoContent(c)
}

// CoutTotal totaux d'effort et de coût de l'étude.
// GET /etudes/:id/cout-total
func (h *EtudeHandler) CoutTotal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	totals, err := h.costSvc.ComputeTotals(c.Request.Context(), id)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, totals)
}
