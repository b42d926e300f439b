package service

import (
	"go.uber.org/zap"

	"github.com/Vectra777/module-intervenants/internal/repository"
)

// Service point d'entrée agrégé de tous les services métier.
type Service struct {
	Intervenant IntervenantService
	Etude       EtudeService
	Affectation AffectationService
	Cost        CostService
}

// NewService crée l'agrégat Service.
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Intervenant: NewIntervenantService(repo, logger),
		Etude:       NewEtudeService(repo, logger),
		Affectation: NewAffectationService(repo, logger),
		Cost:        NewCostService(repo, logger),
	}
}
