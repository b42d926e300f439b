package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Vectra777/module-intervenants/internal/dto"
	"github.com/Vectra777/module-intervenants/internal/model"
	"github.com/Vectra777/module-intervenants/internal/repository"
	"github.com/Vectra777/module-intervenants/pkg/apperror"
)

// EtudeService interface métier des études.
type EtudeService interface {
	List(ctx context.Context) ([]dto.EtudeResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.EtudeResponse, error)
	Create(ctx context.Context, req *dto.CreateEtudeRequest) (*dto.EtudeResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateEtudeRequest) (*dto.EtudeResponse, error)
	Delete(ctx context.Context, id uint) error
	ListIntervenants(ctx context.Context, id uint) ([]dto.IntervenantResponse, error)
}

type etudeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEtudeService crée une instance de EtudeService.
func NewEtudeService(repo *repository.Repository, logger *zap.Logger) EtudeService {
	return &etudeService{repo: repo, logger: logger}
}

// getEtudeOr404 charge une étude ou renvoie l'erreur NotFound du module,
// partagée par les services qui vérifient cette référence.
func getEtudeOr404(ctx context.Context, repo *repository.Repository, id uint) (*model.Etude, error) {
	etude, err := repo.Etude.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Etude introuvable")
		}
		return nil, err
	}
	return etude, nil
}

// ────────────────────── List ──────────────────────

func (s *etudeService) List(ctx context.Context) ([]dto.EtudeResponse, error) {
	etudes, err := s.repo.Etude.List(ctx)
	if err != nil {
		s.logger.Error("échec de la liste des études", zap.Error(err))
		return nil, err
	}

	result := make([]dto.EtudeResponse, 0, len(etudes))
	for i := range etudes {
		result = append(result, *toEtudeResponse(&etudes[i]))
	}

	return result, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *etudeService) GetByID(ctx context.Context, id uint) (*dto.EtudeResponse, error) {
	etude, err := getEtudeOr404(ctx, s.repo, id)
	if err != nil {
		if !apperror.IsNotFound(err) {
			s.logger.Error("échec de la lecture de l'étude", zap.Uint("id", id), zap.Error(err))
		}
		return nil, err
	}

	return toEtudeResponse(etude), nil
}

// ────────────────────── Create ──────────────────────

func (s *etudeService) Create(ctx context.Context, req *dto.CreateEtudeRequest) (*dto.EtudeResponse, error) {
	dateDebut, dateFin, err := parseDateRange(req.DateDebut, req.DateFin)
	if err != nil {
		return nil, err
	}

	etude := &model.Etude{
		Nom:         req.Nom,
		Description: req.Description,
		DateDebut:   dateDebut,
		DateFin:     dateFin,
	}

	if err := s.repo.Etude.Create(ctx, etude); err != nil {
		s.logger.Error("échec de la création de l'étude", zap.Error(err))
		return nil, err
	}

	return toEtudeResponse(etude), nil
}

// ────────────────────── Update ──────────────────────

// Update applique une mise à jour partielle. La cohérence des dates est
// re-vérifiée sur les valeurs fusionnées : une seule borne fournie est
// comparée à la borne existante.
func (s *etudeService) Update(ctx context.Context, id uint, req *dto.UpdateEtudeRequest) (*dto.EtudeResponse, error) {
	etude, err := getEtudeOr404(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}

	nextDebut := etude.DateDebut
	nextFin := etude.DateFin
	if req.DateDebut != nil {
		if nextDebut, err = time.Parse(dto.DateLayout, *req.DateDebut); err != nil {
			return nil, apperror.BusinessRule("Date invalide")
		}
	}
	if req.DateFin != nil {
		if nextFin, err = time.Parse(dto.DateLayout, *req.DateFin); err != nil {
			return nil, apperror.BusinessRule("Date invalide")
		}
	}
	if nextFin.Before(nextDebut) {
		return nil, apperror.BusinessRule("dateFin doit etre superieure ou egale a dateDebut")
	}

	if req.Nom != nil {
		etude.Nom = *req.Nom
	}
	if req.Description != nil {
		etude.Description = emptyAsNil(req.Description)
	}
	etude.DateDebut = nextDebut
	etude.DateFin = nextFin

	if err := s.repo.Etude.Update(ctx, etude); err != nil {
		s.logger.Error("échec de la mise à jour de l'étude", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return toEtudeResponse(etude), nil
}

// ────────────────────── Delete ──────────────────────

func (s *etudeService) Delete(ctx context.Context, id uint) error {
	if _, err := getEtudeOr404(ctx, s.repo, id); err != nil {
		return err
	}

	if err := s.repo.Etude.Delete(ctx, id); err != nil {
		s.logger.Error("échec de la suppression de l'étude", zap.Uint("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ────────────────────── ListIntervenants ──────────────────────

func (s *etudeService) ListIntervenants(ctx context.Context, id uint) ([]dto.IntervenantResponse, error) {
	if _, err := getEtudeOr404(ctx, s.repo, id); err != nil {
		return nil, err
	}

	intervenants, err := s.repo.Etude.ListIntervenants(ctx, id)
	if err != nil {
		s.logger.Error("échec de la liste des intervenants de l'étude", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	result := make([]dto.IntervenantResponse, 0, len(intervenants))
	for i := range intervenants {
		result = append(result, *toIntervenantResponse(&intervenants[i]))
	}

	return result, nil
}

// parseDateRange parse les deux bornes et vérifie l'invariant fin >= debut.
func parseDateRange(debut, fin string) (time.Time, time.Time, error) {
	dateDebut, err := time.Parse(dto.DateLayout, debut)
	if err != nil {
		return time.Time{}, time.Time{}, apperror.BusinessRule("Date invalide")
	}
	dateFin, err := time.Parse(dto.DateLayout, fin)
	if err != nil {
		return time.Time{}, time.Time{}, apperror.BusinessRule("Date invalide")
	}
	if dateFin.Before(dateDebut) {
		return time.Time{}, time.Time{}, apperror.BusinessRule("dateFin doit etre superieure ou egale a dateDebut")
	}
	return dateDebut, dateFin, nil
}

// toEtudeResponse convertit le modèle en réponse API.
func toEtudeResponse(m *model.Etude) *dto.EtudeResponse {
	return &dto.EtudeResponse{
		ID:          m.ID,
		Nom:         m.Nom,
		Description: m.Description,
		DateDebut:   m.DateDebut.Format(dto.DateLayout),
		DateFin:     m.DateFin.Format(dto.DateLayout),
	}
}
