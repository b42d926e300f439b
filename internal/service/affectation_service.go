package service

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Vectra777/module-intervenants/internal/dto"
	"github.com/Vectra777/module-intervenants/internal/model"
	"github.com/Vectra777/module-intervenants/internal/repository"
	"github.com/Vectra777/module-intervenants/pkg/apperror"
)

// AffectationService interface métier des affectations. C'est le point de
// coordination : il vérifie l'existence des deux références et l'unicité du
// couple (intervenant, etude) avant toute écriture.
type AffectationService interface {
	List(ctx context.Context) ([]dto.AffectationResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.AffectationResponse, error)
	Create(ctx context.Context, req *dto.CreateAffectationRequest) (*dto.AffectationResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateAffectationRequest) (*dto.AffectationResponse, error)
	Delete(ctx context.Context, id uint) error
	CreateLink(ctx context.Context, etudeID, intervenantID uint, req *dto.CreateAffectationLinkRequest) (*dto.AffectationResponse, error)
	DeleteLink(ctx context.Context, etudeID, intervenantID uint) error
}

type affectationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAffectationService crée une instance de AffectationService.
func NewAffectationService(repo *repository.Repository, logger *zap.Logger) AffectationService {
	return &affectationService{repo: repo, logger: logger}
}

// getAffectationOr404 charge une affectation ou renvoie NotFound.
func getAffectationOr404(ctx context.Context, repo *repository.Repository, id uint) (*model.Affectation, error) {
	affectation, err := repo.Affectation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Affectation introuvable")
		}
		return nil, err
	}
	return affectation, nil
}

// ensureRefsExist vérifie l'existence des deux références en propageant
// l'erreur NotFound du service concerné.
func (s *affectationService) ensureRefsExist(ctx context.Context, intervenantID, etudeID uint) error {
	if _, err := getIntervenantOr404(ctx, s.repo, intervenantID); err != nil {
		return err
	}
	if _, err := getEtudeOr404(ctx, s.repo, etudeID); err != nil {
		return err
	}
	return nil
}

// pairExists cherche une affectation portant le même couple, en excluant
// éventuellement la ligne en cours de modification.
func (s *affectationService) pairExists(ctx context.Context, etudeID, intervenantID, excludeID uint) (bool, error) {
	existing, err := s.repo.Affectation.GetByPair(ctx, etudeID, intervenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != excludeID, nil
}

// ────────────────────── List ──────────────────────

func (s *affectationService) List(ctx context.Context) ([]dto.AffectationResponse, error) {
	affectations, err := s.repo.Affectation.List(ctx)
	if err != nil {
		s.logger.Error("échec de la liste des affectations", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AffectationResponse, 0, len(affectations))
	for i := range affectations {
		result = append(result, *toAffectationResponse(&affectations[i]))
	}

	return result, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *affectationService) GetByID(ctx context.Context, id uint) (*dto.AffectationResponse, error) {
	affectation, err := getAffectationOr404(ctx, s.repo, id)
	if err != nil {
		if !apperror.IsNotFound(err) {
			s.logger.Error("échec de la lecture de l'affectation", zap.Uint("id", id), zap.Error(err))
		}
		return nil, err
	}

	return toAffectationResponse(affectation), nil
}

// ────────────────────── Create ──────────────────────

func (s *affectationService) Create(ctx context.Context, req *dto.CreateAffectationRequest) (*dto.AffectationResponse, error) {
	if err := s.ensureRefsExist(ctx, req.IntervenantID, req.EtudeID); err != nil {
		return nil, err
	}

	exists, err := s.pairExists(ctx, req.EtudeID, req.IntervenantID, 0)
	if err != nil {
		s.logger.Error("échec du contrôle d'unicité du couple", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("Cet intervenant est deja affecte a cette etude")
	}

	affectation := &model.Affectation{
		IntervenantID: req.IntervenantID,
		EtudeID:       req.EtudeID,
		JEH:           req.JEH,
		Phases:        pq.StringArray(req.Phases),
	}

	if err := s.repo.Affectation.Create(ctx, affectation); err != nil {
		// course entre créateurs concurrents : la contrainte unique a tranché
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("Impossible de creer l'affectation (doublon ou contrainte)")
		}
		s.logger.Error("échec de la création de l'affectation", zap.Error(err))
		return nil, err
	}

	return toAffectationResponse(affectation), nil
}

// ────────────────────── Update ──────────────────────

// Update applique une mise à jour partielle. Les identifiants effectifs sont
// les valeurs fournies ou, à défaut, les valeurs stockées; si le couple
// effectif change, les références et l'unicité sont re-vérifiées en excluant
// la ligne en cours.
func (s *affectationService) Update(ctx context.Context, id uint, req *dto.UpdateAffectationRequest) (*dto.AffectationResponse, error) {
	affectation, err := getAffectationOr404(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}

	nextIntervenantID := affectation.IntervenantID
	if req.IntervenantID != nil {
		nextIntervenantID = *req.IntervenantID
	}
	nextEtudeID := affectation.EtudeID
	if req.EtudeID != nil {
		nextEtudeID = *req.EtudeID
	}

	if nextIntervenantID != affectation.IntervenantID || nextEtudeID != affectation.EtudeID {
		if err := s.ensureRefsExist(ctx, nextIntervenantID, nextEtudeID); err != nil {
			return nil, err
		}
		exists, err := s.pairExists(ctx, nextEtudeID, nextIntervenantID, affectation.ID)
		if err != nil {
			s.logger.Error("échec du contrôle d'unicité du couple", zap.Error(err))
			return nil, err
		}
		if exists {
			return nil, apperror.Conflict("Cet intervenant est deja affecte a cette etude")
		}
	}

	affectation.IntervenantID = nextIntervenantID
	affectation.EtudeID = nextEtudeID
	if req.JEH != nil {
		affectation.JEH = *req.JEH
	}
	if req.Phases != nil {
		affectation.Phases = pq.StringArray(*req.Phases)
	}

	if err := s.repo.Affectation.Update(ctx, affectation); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("Impossible de modifier l'affectation (doublon ou contrainte)")
		}
		s.logger.Error("échec de la mise à jour de l'affectation", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return toAffectationResponse(affectation), nil
}

// ────────────────────── Delete ──────────────────────

func (s *affectationService) Delete(ctx context.Context, id uint) error {
	if _, err := getAffectationOr404(ctx, s.repo, id); err != nil {
		return err
	}

	if err := s.repo.Affectation.Delete(ctx, id); err != nil {
		s.logger.Error("échec de la suppression de l'affectation", zap.Uint("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ────────────────────── CreateLink / DeleteLink ──────────────────────

// CreateLink crée une affectation dont le couple vient du chemin de la
// ressource imbriquée; sémantique identique à Create.
func (s *affectationService) CreateLink(ctx context.Context, etudeID, intervenantID uint, req *dto.CreateAffectationLinkRequest) (*dto.AffectationResponse, error) {
	return s.Create(ctx, &dto.CreateAffectationRequest{
		IntervenantID: intervenantID,
		EtudeID:       etudeID,
		JEH:           req.JEH,
		Phases:        req.Phases,
	})
}

// DeleteLink supprime l'affectation désignée par son couple (etude, intervenant).
func (s *affectationService) DeleteLink(ctx context.Context, etudeID, intervenantID uint) error {
	affectation, err := s.repo.Affectation.GetByPair(ctx, etudeID, intervenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Affectation introuvable pour ce couple etude/intervenant")
		}
		s.logger.Error("échec de la recherche de l'affectation par couple", zap.Error(err))
		return err
	}

	if err := s.repo.Affectation.Delete(ctx, affectation.ID); err != nil {
		s.logger.Error("échec de la suppression de l'affectation", zap.Uint("id", affectation.ID), zap.Error(err))
		return err
	}

	return nil
}

// toAffectationResponse convertit le modèle en réponse API.
func toAffectationResponse(m *model.Affectation) *dto.AffectationResponse {
	phases := []string(m.Phases)
	if phases == nil {
		phases = []string{}
	}
	return &dto.AffectationResponse{
		ID:            m.ID,
		IntervenantID: m.IntervenantID,
		EtudeID:       m.EtudeID,
		JEH:           m.JEH,
		Phases:        phases,
	}
}
