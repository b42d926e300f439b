package dto

import (
	"errors"
	"strings"
)

// ── Module études ──

// CreateEtudeRequest création d'une étude. Les dates sont au format
// 2006-01-02; la cohérence debut/fin est vérifiée par le service.
type CreateEtudeRequest struct {
	Nom         string  `json:"nom"         binding:"required,max=255"`
	Description *string `json:"description"`
	DateDebut   string  `json:"date_debut"  binding:"required,datetime=2006-01-02"`
	DateFin     string  `json:"date_fin"    binding:"required,datetime=2006-01-02"`
}

// Normalize applique les règles du pré-filtre.
func (r *CreateEtudeRequest) Normalize() error {
	r.Nom = strings.TrimSpace(r.Nom)
	if r.Nom == "" {
		return errors.New("Le nom est obligatoire")
	}
	r.Description = blankToNil(r.Description)
	return nil
}

// UpdateEtudeRequest mise à jour partielle d'une étude.
type UpdateEtudeRequest struct {
	Nom         *string `json:"nom"         binding:"omitempty,max=255"`
	Description *string `json:"description"`
	DateDebut   *string `json:"date_debut"  binding:"omitempty,datetime=2006-01-02"`
	DateFin     *string `json:"date_fin"    binding:"omitempty,datetime=2006-01-02"`
}

// Normalize trime les champs fournis; un nom fourni ne peut pas devenir vide.
func (r *UpdateEtudeRequest) Normalize() error {
	if r.Nom != nil {
		trimmed := strings.TrimSpace(*r.Nom)
		if trimmed == "" {
			return errors.New("Le nom ne peut pas etre vide")
		}
		r.Nom = &trimmed
	}
	r.Description = trimOptional(r.Description)
	return nil
}

// EtudeResponse représentation API d'une étude.
type EtudeResponse struct {
	ID          uint    `json:"id"`
	Nom         string  `json:"nom"`
	Description *string `json:"description"`
	DateDebut   string  `json:"date_debut"`
	DateFin     string  `json:"date_fin"`
}

// EtudeCoutTotalResponse totaux d'effort et de coût d'une étude,
// arrondis à 2 décimales en sortie.
type EtudeCoutTotalResponse struct {
	EtudeID   uint    `json:"etude_id"`
	TotalJEH  float64 `json:"total_jeh"`
	CoutTotal float64 `json:"cout_total"`
	Devise    string  `json:"devise"`
}
