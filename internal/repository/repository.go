package repository

import "gorm.io/gorm"

// Repository point d'entrée agrégé de tous les repositories.
type Repository struct {
	Intervenant IntervenantRepository
	Etude       EtudeRepository
	Affectation AffectationRepository
}

// NewRepository crée l'agrégat Repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Intervenant: NewIntervenantRepo(db),
		Etude:       NewEtudeRepo(db),
		Affectation: NewAffectationRepo(db),
	}
}
