package model

import "time"

// Etude étude/projet borné dans le temps, table etudes.
// Invariant : date_fin >= date_debut (contrainte check côté base,
// re-vérifiée par le service sur mise à jour partielle).
type Etude struct {
	ID          uint      `gorm:"primaryKey"                        json:"id"`
	Nom         string    `gorm:"type:varchar(255);not null"        json:"nom"`
	Description *string   `gorm:"type:text"                         json:"description"`
	DateDebut   time.Time `gorm:"type:date;not null"                json:"date_debut"`
	DateFin     time.Time `gorm:"type:date;not null"                json:"date_fin"`
	BaseModel

	// Associations
	Affectations []Affectation `gorm:"foreignKey:EtudeID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName fixe le nom de table.
func (Etude) TableName() string { return "etudes" }
