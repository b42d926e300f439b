package model

import "github.com/lib/pq"

// Disponibilite statut de disponibilité d'un intervenant.
// Les valeurs correspondent à l'enum PostgreSQL disponibilite_enum.
type Disponibilite string

const (
	DisponibiliteDisponible   Disponibilite = "Disponible"
	DisponibiliteIndisponible Disponibilite = "Indisponible"
	DisponibiliteOccupe       Disponibilite = "Occupé"
)

// Intervenant ressource externe staffable, table intervenants.
type Intervenant struct {
	ID                 uint           `gorm:"primaryKey"                                 json:"id"`
	Nom                string         `gorm:"type:varchar(255);not null;index:ix_intervenants_nom" json:"nom"`
	Email              *string        `gorm:"type:varchar(255)"                          json:"email"`
	Telephone          *string        `gorm:"type:varchar(32)"                           json:"telephone"`
	Competences        pq.StringArray `gorm:"type:text[];not null;default:'{}'"          json:"competences"`
	Disponibilite      Disponibilite  `gorm:"type:disponibilite_enum;not null"           json:"disponibilite"`
	NbJoursDisponibles int            `gorm:"not null;check:nb_jours_disponibles >= 0 AND nb_jours_disponibles <= 7" json:"nb_jours_disponibles"`
	TJM                float64        `gorm:"column:tjm;not null;check:tjm > 0"          json:"tjm"`
	BaseModel

	// Associations
	Affectations []Affectation `gorm:"foreignKey:IntervenantID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName fixe le nom de table.
func (Intervenant) TableName() string { return "intervenants" }
