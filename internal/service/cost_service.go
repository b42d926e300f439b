package service

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/Vectra777/module-intervenants/internal/dto"
	"github.com/Vectra777/module-intervenants/internal/repository"
)

// deviseCoutTotal devise des montants agrégés.
const deviseCoutTotal = "EUR"

// CostService agrégation des coûts d'une étude.
type CostService interface {
	ComputeTotals(ctx context.Context, etudeID uint) (*dto.EtudeCoutTotalResponse, error)
}

type costService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCostService crée une instance de CostService.
func NewCostService(repo *repository.Repository, logger *zap.Logger) CostService {
	return &costService{repo: repo, logger: logger}
}

// ComputeTotals somme les JEH et le coût (jeh × tjm) des affectations de
// l'étude via une seule requête jointe. L'arrondi à 2 décimales se fait ici,
// en sortie, jamais dans l'agrégation elle-même.
func (s *costService) ComputeTotals(ctx context.Context, etudeID uint) (*dto.EtudeCoutTotalResponse, error) {
	if _, err := getEtudeOr404(ctx, s.repo, etudeID); err != nil {
		return nil, err
	}

	totals, err := s.repo.Affectation.CostTotals(ctx, etudeID)
	if err != nil {
		s.logger.Error("échec du calcul des totaux de l'étude", zap.Uint("etude_id", etudeID), zap.Error(err))
		return nil, err
	}

	return &dto.EtudeCoutTotalResponse{
		EtudeID:   etudeID,
		TotalJEH:  round2(totals.TotalJEH),
		CoutTotal: round2(totals.CoutTotal),
		Devise:    deviseCoutTotal,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
