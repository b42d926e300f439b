package service

import (
	"context"
	"errors"
	"strings"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Vectra777/module-intervenants/internal/dto"
	"github.com/Vectra777/module-intervenants/internal/model"
	"github.com/Vectra777/module-intervenants/internal/repository"
	"github.com/Vectra777/module-intervenants/pkg/apperror"
)

// defaultNbJoursDisponibles fenêtre de disponibilité appliquée quand le
// champ est omis à la création.
const defaultNbJoursDisponibles = 5

// IntervenantService interface métier des intervenants.
type IntervenantService interface {
	List(ctx context.Context, req *dto.IntervenantListRequest) ([]dto.IntervenantResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.IntervenantResponse, error)
	Create(ctx context.Context, req *dto.CreateIntervenantRequest) (*dto.IntervenantResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateIntervenantRequest) (*dto.IntervenantResponse, error)
	Delete(ctx context.Context, id uint) error
	ListEtudes(ctx context.Context, id uint) ([]dto.EtudeResponse, error)
}

type intervenantService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewIntervenantService crée une instance de IntervenantService.
func NewIntervenantService(repo *repository.Repository, logger *zap.Logger) IntervenantService {
	return &intervenantService{repo: repo, logger: logger}
}

// getIntervenantOr404 charge un intervenant ou renvoie l'erreur NotFound du
// module, partagée par les services qui vérifient cette référence.
func getIntervenantOr404(ctx context.Context, repo *repository.Repository, id uint) (*model.Intervenant, error) {
	intervenant, err := repo.Intervenant.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Intervenant introuvable")
		}
		return nil, err
	}
	return intervenant, nil
}

// ────────────────────── List ──────────────────────

func (s *intervenantService) List(ctx context.Context, req *dto.IntervenantListRequest) ([]dto.IntervenantResponse, error) {
	intervenants, err := s.repo.Intervenant.List(ctx)
	if err != nil {
		s.logger.Error("échec de la liste des intervenants", zap.Error(err))
		return nil, err
	}

	var search, competence, disponibilite string
	if req != nil {
		search = strings.ToLower(strings.TrimSpace(req.Search))
		competence = strings.ToLower(strings.TrimSpace(req.Competence))
		disponibilite = strings.ToLower(strings.TrimSpace(req.Disponibilite))
	}

	result := make([]dto.IntervenantResponse, 0, len(intervenants))
	for i := range intervenants {
		if !matchesIntervenant(&intervenants[i], search, competence, disponibilite) {
			continue
		}
		result = append(result, *toIntervenantResponse(&intervenants[i]))
	}

	return result, nil
}

// matchesIntervenant applique les trois sous-filtres combinés en ET,
// tous insensibles à la casse.
func matchesIntervenant(m *model.Intervenant, search, competence, disponibilite string) bool {
	if disponibilite != "" && strings.ToLower(string(m.Disponibilite)) != disponibilite {
		return false
	}

	if competence != "" {
		found := false
		for _, c := range m.Competences {
			if strings.Contains(strings.ToLower(c), competence) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if search != "" {
		parts := append([]string{m.Nom, string(m.Disponibilite)}, m.Competences...)
		haystack := strings.ToLower(strings.Join(parts, " "))
		if !strings.Contains(haystack, search) {
			return false
		}
	}

	return true
}

// ────────────────────── GetByID ──────────────────────

func (s *intervenantService) GetByID(ctx context.Context, id uint) (*dto.IntervenantResponse, error) {
	intervenant, err := getIntervenantOr404(ctx, s.repo, id)
	if err != nil {
		if !apperror.IsNotFound(err) {
			s.logger.Error("échec de la lecture de l'intervenant", zap.Uint("id", id), zap.Error(err))
		}
		return nil, err
	}

	return toIntervenantResponse(intervenant), nil
}

// ────────────────────── Create ──────────────────────

func (s *intervenantService) Create(ctx context.Context, req *dto.CreateIntervenantRequest) (*dto.IntervenantResponse, error) {
	nbJours := defaultNbJoursDisponibles
	if req.NbJoursDisponibles != nil {
		nbJours = *req.NbJoursDisponibles
	}

	intervenant := &model.Intervenant{
		Nom:                req.Nom,
		Email:              req.Email,
		Telephone:          req.Telephone,
		Competences:        pq.StringArray(req.Competences),
		Disponibilite:      model.Disponibilite(req.Disponibilite),
		NbJoursDisponibles: nbJours,
		TJM:                req.TJM,
	}

	if err := s.repo.Intervenant.Create(ctx, intervenant); err != nil {
		s.logger.Error("échec de la création de l'intervenant", zap.Error(err))
		return nil, err
	}

	return toIntervenantResponse(intervenant), nil
}

// ────────────────────── Update ──────────────────────

func (s *intervenantService) Update(ctx context.Context, id uint, req *dto.UpdateIntervenantRequest) (*dto.IntervenantResponse, error) {
	intervenant, err := getIntervenantOr404(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}

	if req.Nom != nil {
		intervenant.Nom = *req.Nom
	}
	if req.Email != nil {
		intervenant.Email = emptyAsNil(req.Email)
	}
	if req.Telephone != nil {
		intervenant.Telephone = emptyAsNil(req.Telephone)
	}
	if req.Competences != nil {
		intervenant.Competences = pq.StringArray(*req.Competences)
	}
	if req.Disponibilite != nil {
		intervenant.Disponibilite = model.Disponibilite(*req.Disponibilite)
	}
	if req.NbJoursDisponibles != nil {
		intervenant.NbJoursDisponibles = *req.NbJoursDisponibles
	}
	if req.TJM != nil {
		intervenant.TJM = *req.TJM
	}

	if err := s.repo.Intervenant.Update(ctx, intervenant); err != nil {
		s.logger.Error("échec de la mise à jour de l'intervenant", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return toIntervenantResponse(intervenant), nil
}

// ────────────────────── Delete ──────────────────────

func (s *intervenantService) Delete(ctx context.Context, id uint) error {
	if _, err := getIntervenantOr404(ctx, s.repo, id); err != nil {
		return err
	}

	if err := s.repo.Intervenant.Delete(ctx, id); err != nil {
		s.logger.Error("échec de la suppression de l'intervenant", zap.Uint("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ────────────────────── ListEtudes ──────────────────────

func (s *intervenantService) ListEtudes(ctx context.Context, id uint) ([]dto.EtudeResponse, error) {
	if _, err := getIntervenantOr404(ctx, s.repo, id); err != nil {
		return nil, err
	}

	etudes, err := s.repo.Intervenant.ListEtudes(ctx, id)
	if err != nil {
		s.logger.Error("échec de la liste des études de l'intervenant", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	result := make([]dto.EtudeResponse, 0, len(etudes))
	for i := range etudes {
		result = append(result, *toEtudeResponse(&etudes[i]))
	}

	return result, nil
}

// toIntervenantResponse convertit le modèle en réponse API.
func toIntervenantResponse(m *model.Intervenant) *dto.IntervenantResponse {
	competences := []string(m.Competences)
	if competences == nil {
		competences = []string{}
	}
	return &dto.IntervenantResponse{
		ID:                 m.ID,
		Nom:                m.Nom,
		Email:              m.Email,
		Telephone:          m.Telephone,
		Competences:        competences,
		Disponibilite:      string(m.Disponibilite),
		NbJoursDisponibles: m.NbJoursDisponibles,
		TJM:                m.TJM,
	}
}

// emptyAsNil interprète une valeur fournie blanche comme « effacer le champ ».
func emptyAsNil(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	return value
}
