package dto

import "github.com/shopspring/decimal"

type CriarTipoSeguroRequest struct {
	Nome                  string          `json:"nome" validate:"required"`
	Descricao             *string         `json:"descricao"`
	PercentualComissaoMin decimal.Decimal `json:"percentualComissaoMin" validate:"min=0,max=100"`
	PercentualComissaoMax decimal.Decimal `json:"percentualComissaoMax" validate:"min=0,max=100"`
}

type AtualizarTipoSeguroRequest struct {
	Nome                  string           `json:"nome"`
	Descricao             *string          `json:"descricao"`
	PercentualComissaoMin *decimal.Decimal `json:"percentualComissaoMin"`
	PercentualComissaoMax *decimal.Decimal `json:"percentualComissaoMax"`
}

type TipoSeguroResponse struct {
	ID                    uint            `json:"id"`
	Nome                  string          `json:"nome"`
	Descricao             *string         `json:"descricao,omitempty"`
	PercentualComissaoMin decimal.Decimal `json:"percentualComissaoMin"`
	PercentualComissaoMax decimal.Decimal `json:"percentualComissaoMax"`
}
