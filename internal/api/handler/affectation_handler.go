package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Vectra777/module-intervenants/internal/dto"
	"github.com/Vectra777/module-intervenants/internal/service"
	"github.com/Vectra777/module-intervenants/pkg/response"
)

// AffectationHandler handlers HTTP du module affectations.
type AffectationHandler struct {
	affectationSvc service.AffectationService
}

// NewAffectationHandler crée un AffectationHandler.
func NewAffectationHandler(affectationSvc service.AffectationService) *AffectationHandler {
	return &AffectationHandler{affectationSvc: affectationSvc}
}

// List liste les affectations.
// GET /affectations
func (h *AffectationHandler) List(c *gin.Context) {
	affectations, err := h.affectationSvc.List(c.Request.Context())
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, affectations)
}

// Get détail d'une affectation.
// GET /affectations/:id
func (h *AffectationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	affectation, err := h.affectationSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, affectation)
}

// Create crée une affectation.
// POST /affectations
func (h *AffectationHandler) Create(c *gin.Context) {
	var req dto.CreateAffectationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Corps de requete invalide")
		return
	}
	if err := req.Normalize(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	affectation, err := h.affectationSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Created(c, affectation)
}

// Update met à jour partiellement une affectation.
// PUT /affectations/:id
func (h *AffectationHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateAffectationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Corps de requete invalide")
		return
	}
	if err := req.Normalize(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	affectation, err := h.affectationSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, affectation)
}

// Delete supprime une affectation.
// DELETE /affectations/:id
func (h *AffectationHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.affectationSvc.Delete(c.Request.Context(), id); err != nil {
		response.AppError(c, err)
		return
	}

	response.NoContent(c)
}
