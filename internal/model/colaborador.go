package model

import (
	"time"
)

// Colaborador is an employee of the brokerage. Perfil is a closed enum
// (see scope package) instead of the free-text job title the legacy system
// stored; DataContratacao keeps the HR date for the production reports.
type Colaborador struct {
	ID              uint   `gorm:"primaryKey"`
	Nome            string `gorm:"not null"`
	Email           string `gorm:"uniqueIndex;not null"`
	SenhaHash       string `gorm:"not null"`
	Perfil          string `gorm:"size:20;not null;default:'CORRETOR'"`
	DataContratacao *time.Time
	Ativo           bool `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Colaborador) TableName() string { return "colaboradores" }
