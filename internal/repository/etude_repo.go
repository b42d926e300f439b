package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Vectra777/module-intervenants/internal/model"
)

// EtudeRepository accès aux données des études.
type EtudeRepository interface {
	Create(ctx context.Context, etude *model.Etude) error
	GetByID(ctx context.Context, id uint) (*model.Etude, error)
	List(ctx context.Context) ([]model.Etude, error)
	Update(ctx context.Context, etude *model.Etude) error
	Delete(ctx context.Context, id uint) error
	ListIntervenants(ctx context.Context, etudeID uint) ([]model.Intervenant, error)
}

type etudeRepo struct {
	db *gorm.DB
}

// NewEtudeRepo crée une instance de EtudeRepository.
func NewEtudeRepo(db *gorm.DB) EtudeRepository {
	return &etudeRepo{db: db}
}

func (r *etudeRepo) Create(ctx context.Context, etude *model.Etude) error {
	return r.db.WithContext(ctx).Create(etude).Error
}

func (r *etudeRepo) GetByID(ctx context.Context, id uint) (*model.Etude, error) {
	var etude model.Etude
	err := r.db.WithContext(ctx).First(&etude, id).Error
	if err != nil {
		return nil, err
	}
	return &etude, nil
}

func (r *etudeRepo) List(ctx context.Context) ([]model.Etude, error) {
	var etudes []model.Etude
	err := r.db.WithContext(ctx).Order("id DESC").Find(&etudes).Error
	return etudes, err
}

func (r *etudeRepo) Update(ctx context.Context, etude *model.Etude) error {
	return r.db.WithContext(ctx).Save(etude).Error
}

// Delete supprime l'étude; ses affectations partent en cascade.
func (r *etudeRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Etude{}, id).Error
}

func (r *etudeRepo) ListIntervenants(ctx context.Context, etudeID uint) ([]model.Intervenant, error) {
	var intervenants []model.Intervenant
	err := r.db.WithContext(ctx).
		Model(&model.Intervenant{}).
		Joins("JOIN affectations ON affectations.intervenant_id = intervenants.id").
		Where("affectations.etude_id = ?", etudeID).
		Order("intervenants.id DESC").
		Find(&intervenants).Error
	return intervenants, err
}
