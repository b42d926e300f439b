package dto

import (
	"errors"
	"strings"
)

// ── Module intervenants ──

// CreateIntervenantRequest création d'un intervenant.
type CreateIntervenantRequest struct {
	Nom                string   `json:"nom"                  binding:"required,max=255"`
	Email              *string  `json:"email"                binding:"omitempty,max=255"`
	Telephone          *string  `json:"telephone"            binding:"omitempty,max=32"`
	Competences        []string `json:"competences"`
	Disponibilite      string   `json:"disponibilite"        binding:"required,oneof=Disponible Indisponible Occupé"`
	NbJoursDisponibles *int     `json:"nb_jours_disponibles" binding:"omitempty,gte=0,lte=7"`
	TJM                float64  `json:"tjm"                  binding:"required,gt=0"`
}

// Normalize applique les règles du pré-filtre : nom trimé non vide,
// champs optionnels blancs ramenés à absent, compétences nettoyées.
func (r *CreateIntervenantRequest) Normalize() error {
	r.Nom = strings.TrimSpace(r.Nom)
	if r.Nom == "" {
		return errors.New("Le nom est obligatoire")
	}
	r.Email = blankToNil(r.Email)
	r.Telephone = blankToNil(r.Telephone)
	r.Competences = normalizeList(r.Competences)
	return nil
}

// UpdateIntervenantRequest mise à jour partielle : seuls les champs
// renseignés sont appliqués.
type UpdateIntervenantRequest struct {
	Nom                *string   `json:"nom"                  binding:"omitempty,max=255"`
	Email              *string   `json:"email"                binding:"omitempty,max=255"`
	Telephone          *string   `json:"telephone"            binding:"omitempty,max=32"`
	Competences        *[]string `json:"competences"`
	Disponibilite      *string   `json:"disponibilite"        binding:"omitempty,oneof=Disponible Indisponible Occupé"`
	NbJoursDisponibles *int      `json:"nb_jours_disponibles" binding:"omitempty,gte=0,lte=7"`
	TJM                *float64  `json:"tjm"                  binding:"omitempty,gt=0"`
}

// Normalize trime les champs fournis; un nom fourni ne peut pas devenir vide.
func (r *UpdateIntervenantRequest) Normalize() error {
	if r.Nom != nil {
		trimmed := strings.TrimSpace(*r.Nom)
		if trimmed == "" {
			return errors.New("Le nom ne peut pas etre vide")
		}
		r.Nom = &trimmed
	}
	r.Email = trimOptional(r.Email)
	r.Telephone = trimOptional(r.Telephone)
	if r.Competences != nil {
		normalized := normalizeList(*r.Competences)
		r.Competences = &normalized
	}
	return nil
}

// IntervenantListRequest filtres combinables de la liste des intervenants.
type IntervenantListRequest struct {
	Search        string `form:"search"`
	Competence    string `form:"competence"`
	Disponibilite string `form:"disponibilite"`
}

// IntervenantResponse représentation API d'un intervenant.
type IntervenantResponse struct {
	ID                 uint     `json:"id"`
	Nom                string   `json:"nom"`
	Email              *string  `json:"email"`
	Telephone          *string  `json:"telephone"`
	Competences        []string `json:"competences"`
	Disponibilite      string   `json:"disponibilite"`
	NbJoursDisponibles int      `json:"nb_jours_disponibles"`
	TJM                float64  `json:"tjm"`
}

// blankToNil trime puis ramène une valeur blanche à absent (création).
func blankToNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
