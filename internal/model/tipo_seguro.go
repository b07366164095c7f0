package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoSeguro is a coverage category (auto, vida, residencial…). The
// percentage range bounds the insurer-side commission negotiable for
// policies of this type.
type TipoSeguro struct {
	ID                    uint   `gorm:"primaryKey"`
	Nome                  string `gorm:"uniqueIndex;not null"`
	Descricao             *string
	PercentualComissaoMin decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	PercentualComissaoMax decimal.Decimal `gorm:"type:decimal(5,2);not null;default:100"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (TipoSeguro) TableName() string { return "tipos_seguro" }
