package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stored policy statuses. VENCENDO and VENCIDA are presentation-time
// classifications derived from the coverage end date — they are never written
// to the row, so there is no background job to keep them fresh.
const (
	ApoliceAtiva     = "ATIVA"
	ApoliceRenovada  = "RENOVADA"
	ApoliceCancelada = "CANCELADA"

	ApoliceVencendo = "VENCENDO"
	ApoliceVencida  = "VENCIDA"
)

// Apolice is the central entity: an insurance contract with a coverage period,
// a premium and two independent commission rates. The commission amounts are
// derived (premium × rate / 100) and recomputed whenever premium or rate
// changes; they are never accepted from clients.
type Apolice struct {
	ID            uint   `gorm:"primaryKey"`
	NumeroApolice string `gorm:"uniqueIndex;not null"`
	ClienteID     uint   `gorm:"not null;index"`
	SeguradoraID  uint   `gorm:"not null;index"`
	TipoSeguroID  uint   `gorm:"not null;index"`
	ColaboradorID uint   `gorm:"not null;index"`

	ValorPremio                   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PercentualComissaoSeguradora  decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	PercentualComissaoColaborador decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	ComissaoSeguradora            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ComissaoColaborador           decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	InicioVigencia time.Time `gorm:"type:date;not null"`
	FimVigencia    time.Time `gorm:"type:date;not null;index"`

	Status        string           `gorm:"size:20;not null;default:'ATIVA';index"`
	ValorFranquia *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Observacoes   *string

	CreatedAt time.Time
	UpdatedAt time.Time

	Cliente     *Cliente     `gorm:"foreignKey:ClienteID"`
	Seguradora  *Seguradora  `gorm:"foreignKey:SeguradoraID"`
	TipoSeguro  *TipoSeguro  `gorm:"foreignKey:TipoSeguroID"`
	Colaborador *Colaborador `gorm:"foreignKey:ColaboradorID"`
}

func (Apolice) TableName() string { return "apolices" }

// StatusExibicao classifies the policy for display as of a given date.
// RENOVADA and CANCELADA pass through unchanged; an ATIVA policy whose end
// date already passed reads VENCIDA, and one ending within diasAviso days
// reads VENCENDO. Re-running with a later asOf moves policies between
// classifications with no migration step.
func (a *Apolice) StatusExibicao(asOf time.Time, diasAviso int) string {
	if a.Status != ApoliceAtiva {
		return a.Status
	}
	dia := truncateDia(asOf)
	fim := truncateDia(a.FimVigencia)
	switch {
	case fim.Before(dia):
		return ApoliceVencida
	case !fim.After(dia.AddDate(0, 0, diasAviso)):
		return ApoliceVencendo
	default:
		return ApoliceAtiva
	}
}

// VenceEntre reports whether the coverage end falls in [asOf, asOf+dias],
// inclusive on both ends. Used by the expiry scanner.
func (a *Apolice) VenceEntre(asOf time.Time, dias int) bool {
	dia := truncateDia(asOf)
	fim := truncateDia(a.FimVigencia)
	return !fim.Before(dia) && !fim.After(dia.AddDate(0, 0, dias))
}

func truncateDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
