package model

import "github.com/lib/pq"

// Affectation lien intervenant/étude avec charge en JEH, table affectations.
// Un même couple (intervenant_id, etude_id) ne peut exister qu'une fois :
// la contrainte unique en base reste le dernier rempart face aux créations
// concurrentes, le pré-contrôle du service ne fait que raccourcir le chemin.
type Affectation struct {
	ID            uint           `gorm:"primaryKey"                                                    json:"id"`
	IntervenantID uint           `gorm:"not null;uniqueIndex:uq_affectations_intervenant_etude"        json:"intervenant_id"`
	EtudeID       uint           `gorm:"not null;uniqueIndex:uq_affectations_intervenant_etude"        json:"etude_id"`
	JEH           float64        `gorm:"column:jeh;not null;check:jeh > 0"                             json:"jeh"`
	Phases        pq.StringArray `gorm:"type:text[];not null;default:'{}'"                             json:"phases"`
	BaseModel

	// Associations
	Intervenant *Intervenant `gorm:"foreignKey:IntervenantID;constraint:OnDelete:CASCADE" json:"-"`
	Etude       *Etude       `gorm:"foreignKey:EtudeID;constraint:OnDelete:CASCADE"       json:"-"`
}

// TableName fixe le nom de table.
func (Affectation) TableName() string { return "affectations" }
