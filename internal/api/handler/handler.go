package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Vectra777/module-intervenants/internal/service"
	"github.com/Vectra777/module-intervenants/pkg/response"
)

// Handler point d'entrée agrégé de tous les handlers HTTP.
type Handler struct {
	Intervenant *IntervenantHandler
	Etude       *EtudeHandler
	Affectation *AffectationHandler
}

// NewHandler crée l'agrégat Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Intervenant: NewIntervenantHandler(svc.Intervenant),
		Etude:       NewEtudeHandler(svc.Etude, svc.Affectation, svc.Cost),
		Affectation: NewAffectationHandler(svc.Affectation),
	}
}

// parseIDParam lit un identifiant numérique du chemin; répond 400 et
// renvoie false s'il est absent ou invalide.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "Identifiant invalide")
		return 0, false
	}
	return uint(id), true
}
