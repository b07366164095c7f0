package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Seguradora is a partner underwriting company. PercentualComissaoPadrao is
// the default insurer-side rate suggested when issuing a policy with them.
type Seguradora struct {
	ID                       uint   `gorm:"primaryKey"`
	Nome                     string `gorm:"index;not null"`
	Cnpj                     string `gorm:"uniqueIndex;not null"`
	PercentualComissaoPadrao decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	ContatoComercial         *string
	Telefone                 *string
	Email                    *string
	Ativa                    bool `gorm:"not null;default:true"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

func (Seguradora) TableName() string { return "seguradoras" }
