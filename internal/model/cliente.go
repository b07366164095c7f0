package model

import (
	"time"
)

// Cliente is a natural or legal person. CpfCnpj is unique across the whole
// base. Clients that own policies are soft-deactivated, never hard-deleted.
type Cliente struct {
	ID            uint   `gorm:"primaryKey"`
	Nome          string `gorm:"index;not null"`
	CpfCnpj       string `gorm:"uniqueIndex;not null"`
	Email         *string
	Telefone      *string
	Endereco      *string
	ColaboradorID uint `gorm:"not null;index"`
	Ativo         bool `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Colaborador *Colaborador `gorm:"foreignKey:ColaboradorID"`
}

func (Cliente) TableName() string { return "clientes" }
