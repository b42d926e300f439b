package dto

// ── Module affectations ──

// CreateAffectationRequest création d'une affectation par le corps de requête.
type CreateAffectationRequest struct {
	IntervenantID uint     `json:"intervenant_id" binding:"required"`
	EtudeID       uint     `json:"etude_id"       binding:"required"`
	JEH           float64  `json:"jeh"            binding:"required,gt=0"`
	Phases        []string `json:"phases"`
}

// Normalize applique les règles du pré-filtre.
func (r *CreateAffectationRequest) Normalize() error {
	r.Phases = normalizeList(r.Phases)
	return nil
}

// UpdateAffectationRequest mise à jour partielle d'une affectation.
type UpdateAffectationRequest struct {
	IntervenantID *uint     `json:"intervenant_id" binding:"omitempty,gt=0"`
	EtudeID       *uint     `json:"etude_id"       binding:"omitempty,gt=0"`
	JEH           *float64  `json:"jeh"            binding:"omitempty,gt=0"`
	Phases        *[]string `json:"phases"`
}

// Normalize nettoie les phases si elles sont fournies.
func (r *UpdateAffectationRequest) Normalize() error {
	if r.Phases != nil {
		normalized := normalizeList(*r.Phases)
		r.Phases = &normalized
	}
	return nil
}

// CreateAffectationLinkRequest création par ressource imbriquée :
// le couple (etude, intervenant) vient du chemin, pas du corps.
type CreateAffectationLinkRequest struct {
	JEH    float64  `json:"jeh" binding:"required,gt=0"`
	Phases []string `json:"phases"`
}

// Normalize applique les règles du pré-filtre.
func (r *CreateAffectationLinkRequest) Normalize() error {
	r.Phases = normalizeList(r.Phases)
	return nil
}

// AffectationResponse représentation API d'une affectation.
type AffectationResponse struct {
	ID            uint     `json:"id"`
	IntervenantID uint     `json:"intervenant_id"`
	EtudeID       uint     `json:"etude_id"`
	JEH           float64  `json:"jeh"`
	Phases        []string `json:"phases"`
}
