package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Claim statuses. The lifecycle is independent of the policy's status; the
// only coupling is that a policy with claims cannot be deleted.
const (
	SinistroAberto    = "ABERTO"
	SinistroEmAnalise = "EM_ANALISE"
	SinistroAprovado  = "APROVADO"
	SinistroNegado    = "NEGADO"
	SinistroPago      = "PAGO"
	SinistroEncerrado = "ENCERRADO"
)

// Sinistro is a reported loss event against a policy. Protocolo is generated
// from a DB sequence at creation and never reused.
type Sinistro struct {
	ID              uint      `gorm:"primaryKey"`
	ApoliceID       uint      `gorm:"not null;index"`
	Protocolo       string    `gorm:"uniqueIndex;not null"`
	DataOcorrencia  time.Time `gorm:"type:date;not null"`
	DataComunicacao time.Time `gorm:"type:date;not null"`
	Descricao       string    `gorm:"not null"`
	ValorReclamado  decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0"`
	ValorIndenizado *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Status          string           `gorm:"size:20;not null;default:'ABERTO';index"`
	Observacoes     *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Apolice *Apolice `gorm:"foreignKey:ApoliceID"`
}

func (Sinistro) TableName() string { return "sinistros" }

// StatusSinistroValido reports whether s is one of the closed claim statuses.
func StatusSinistroValido(s string) bool {
	switch s {
	case SinistroAberto, SinistroEmAnalise, SinistroAprovado, SinistroNegado, SinistroPago, SinistroEncerrado:
		return true
	}
	return false
}
