package dto

import "github.com/shopspring/decimal"

type CriarSeguradoraRequest struct {
	Nome                     string          `json:"nome" validate:"required"`
	Cnpj                     string          `json:"cnpj" validate:"required"`
	PercentualComissaoPadrao decimal.Decimal `json:"percentualComissaoPadrao" validate:"min=0,max=100"`
	ContatoComercial         *string         `json:"contatoComercial"`
	Telefone                 *string         `json:"telefone"`
	Email                    *string         `json:"email" validate:"omitempty,email"`
}

type AtualizarSeguradoraRequest struct {
	Nome                     string           `json:"nome"`
	PercentualComissaoPadrao *decimal.Decimal `json:"percentualComissaoPadrao"`
	ContatoComercial         *string          `json:"contatoComercial"`
	Telefone                 *string          `json:"telefone"`
	Email                    *string          `json:"email" validate:"omitempty,email"`
	Ativa                    *bool            `json:"ativa"`
}

type SeguradoraResponse struct {
	ID                       uint            `json:"id"`
	Nome                     string          `json:"nome"`
	Cnpj                     string          `json:"cnpj"`
	PercentualComissaoPadrao decimal.Decimal `json:"percentualComissaoPadrao"`
	ContatoComercial         *string         `json:"contatoComercial,omitempty"`
	Telefone                 *string         `json:"telefone,omitempty"`
	Email                    *string         `json:"email,omitempty"`
	Ativa                    bool            `json:"ativa"`
}
