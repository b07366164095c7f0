package model

import (
	"time"
)

// Renovacao links a predecessor policy to its successor. The unique index on
// ApoliceAntigaID enforces "at most one renewal per policy" at the storage
// level, so two racing renewal transactions cannot both commit.
type Renovacao struct {
	ID              uint      `gorm:"primaryKey"`
	ApoliceAntigaID uint      `gorm:"uniqueIndex;not null"`
	ApoliceNovaID   uint      `gorm:"not null;index"`
	DataRenovacao   time.Time `gorm:"type:date;not null"`
	Observacoes     *string
	CreatedAt       time.Time

	ApoliceAntiga *Apolice `gorm:"foreignKey:ApoliceAntigaID"`
	ApoliceNova   *Apolice `gorm:"foreignKey:ApoliceNovaID"`
}

func (Renovacao) TableName() string { return "renovacoes" }
