package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Vectra777/module-intervenants/internal/model"
)

// CostTotals agrégat de coût d'une étude, sommes brutes non arrondies.
type CostTotals struct {
	TotalJEH  float64 `gorm:"column:total_jeh"`
	CoutTotal float64 `gorm:"column:cout_total"`
}

// AffectationRepository accès aux données des affectations.
type AffectationRepository interface {
	Create(ctx context.Context, affectation *model.Affectation) error
	GetByID(ctx context.Context, id uint) (*model.Affectation, error)
	GetByPair(ctx context.Context, etudeID, intervenantID uint) (*model.Affectation, error)
	List(ctx context.Context) ([]model.Affectation, error)
	Update(ctx context.Context, affectation *model.Affectation) error
	Delete(ctx context.Context, id uint) error
	CostTotals(ctx context.Context, etudeID uint) (*CostTotals, error)
}

type affectationRepo struct {
	db *gorm.DB
}

// NewAffectationRepo crée une instance de AffectationRepository.
func NewAffectationRepo(db *gorm.DB) AffectationRepository {
	return &affectationRepo{db: db}
}

func (r *affectationRepo) Create(ctx context.Context, affectation *model.Affectation) error {
	return r.db.WithContext(ctx).Create(affectation).Error
}

func (r *affectationRepo) GetByID(ctx context.Context, id uint) (*model.Affectation, error) {
	var affectation model.Affectation
	err := r.db.WithContext(ctx).First(&affectation, id).Error
	if err != nil {
		return nil, err
	}
	return &affectation, nil
}

func (r *affectationRepo) GetByPair(ctx context.Context, etudeID, intervenantID uint) (*model.Affectation, error) {
	var affectation model.Affectation
	err := r.db.WithContext(ctx).
		Where("etude_id = ? AND intervenant_id = ?", etudeID, intervenantID).
		First(&affectation).Error
	if err != nil {
		return nil, err
	}
	return &affectation, nil
}

func (r *affectationRepo) List(ctx context.Context) ([]model.Affectation, error) {
	var affectations []model.Affectation
	err := r.db.WithContext(ctx).Order("id DESC").Find(&affectations).Error
	return affectations, err
}

func (r *affectationRepo) Update(ctx context.Context, affectation *model.Affectation) error {
	return r.db.WithContext(ctx).Save(affectation).Error
}

func (r *affectationRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Affectation{}, id).Error
}

// CostTotals calcule en une seule requête jointe la somme des JEH et le coût
// total (jeh × tjm) des affectations d'une étude. Lecture unique et cohérente :
// pas de relecture du taux par intervenant après coup.
func (r *affectationRepo) CostTotals(ctx context.Context, etudeID uint) (*CostTotals, error) {
	var totals CostTotals
	err := r.db.WithContext(ctx).
		Model(&model.Affectation{}).
		Select("COALESCE(SUM(affectations.jeh), 0) AS total_jeh, COALESCE(SUM(affectations.jeh * intervenants.tjm), 0) AS cout_total").
		Joins("JOIN intervenants ON intervenants.id = affectations.intervenant_id").
		Where("affectations.etude_id = ?", etudeID).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}
