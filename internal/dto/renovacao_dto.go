package dto

import "github.com/shopspring/decimal"

// RenovarApoliceRequest creates the successor policy. Every override is
// optional: omitted fields copy the predecessor's values, per the renewal
// contract.
type RenovarApoliceRequest struct {
	NumeroApolice  string          `json:"numeroApolice" validate:"required"`
	ValorPremio    decimal.Decimal `json:"valorPremio" validate:"required"`
	InicioVigencia string          `json:"inicioVigencia" validate:"required,datetime=2006-01-02"`
	FimVigencia    string          `json:"fimVigencia" validate:"required,datetime=2006-01-02"`

	ClienteID     *uint `json:"clienteId"`
	SeguradoraID  *uint `json:"seguradoraId"`
	TipoSeguroID  *uint `json:"tipoSeguroId"`
	ColaboradorID *uint `json:"colaboradorId"`

	PercentualComissaoSeguradora  *decimal.Decimal `json:"percentualComissaoSeguradora"`
	PercentualComissaoColaborador *decimal.Decimal `json:"percentualComissaoColaborador"`

	Observacoes *string `json:"observacoes"`

	// GerarTarefa creates a follow-up task due on the successor's new end
	// date, assigned to the agent of record.
	GerarTarefa bool `json:"gerarTarefa"`
}

type RenovacaoResponse struct {
	ID              uint    `json:"id"`
	ApoliceAntigaID uint    `json:"apoliceAntigaId"`
	NumeroAntiga    string  `json:"numeroAntiga,omitempty"`
	ApoliceNovaID   uint    `json:"apoliceNovaId"`
	NumeroNova      string  `json:"numeroNova,omitempty"`
	DataRenovacao   string  `json:"dataRenovacao"`
	Observacoes     *string `json:"observacoes,omitempty"`
}

// RenovarApoliceResponse returns the audit link plus the successor as issued.
type RenovarApoliceResponse struct {
	Renovacao   RenovacaoResponse `json:"renovacao"`
	ApoliceNova ApoliceResponse   `json:"apoliceNova"`
}
