package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Vectra777/module-intervenants/internal/model"
)

// IntervenantRepository accès aux données des intervenants.
type IntervenantRepository interface {
	Create(ctx context.Context, intervenant *model.Intervenant) error
	GetByID(ctx context.Context, id uint) (*model.Intervenant, error)
	List(ctx context.Context) ([]model.Intervenant, error)
	Update(ctx context.Context, intervenant *model.Intervenant) error
	Delete(ctx context.Context, id uint) error
	ListEtudes(ctx context.Context, intervenantID uint) ([]model.Etude, error)
}

type intervenantRepo struct {
	db *gorm.DB
}

// NewIntervenantRepo crée une instance de IntervenantRepository.
func NewIntervenantRepo(db *gorm.DB) IntervenantRepository {
	return &intervenantRepo{db: db}
}

func (r *intervenantRepo) Create(ctx context.Context, intervenant *model.Intervenant) error {
	return r.db.WithContext(ctx).Create(intervenant).Error
}

func (r *intervenantRepo) GetByID(ctx context.Context, id uint) (*model.Intervenant, error) {
	var intervenant model.Intervenant
	err := r.db.WithContext(ctx).First(&intervenant, id).Error
	if err != nil {
		return nil, err
	}
	return &intervenant, nil
}

func (r *intervenantRepo) List(ctx context.Context) ([]model.Intervenant, error) {
	var intervenants []model.Intervenant
	err := r.db.WithContext(ctx).Order("id DESC").Find(&intervenants).Error
	return intervenants, err
}

func (r *intervenantRepo) Update(ctx context.Context, intervenant *model.Intervenant) error {
	return r.db.WithContext(ctx).Save(intervenant).Error
}

// Delete supprime l'intervenant; ses affectations partent en cascade
// via la contrainte ON DELETE CASCADE.
func (r *intervenantRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Intervenant{}, id).Error
}

func (r *intervenantRepo) ListEtudes(ctx context.Context, intervenantID uint) ([]model.Etude, error) {
	var etudes []model.Etude
	err := r.db.WithContext(ctx).
		Model(&model.Etude{}).
		Joins("JOIN affectations ON affectations.etude_id = etudes.id").
		Where("affectations.intervenant_id = ?", intervenantID).
		Order("etudes.id DESC").
		Find(&etudes).Error
	return etudes, err
}
