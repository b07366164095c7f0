package dto

import "github.com/shopspring/decimal"

type CriarSinistroRequest struct {
	ApoliceID       uint            `json:"apoliceId" validate:"required"`
	DataOcorrencia  string          `json:"dataOcorrencia" validate:"required,datetime=2006-01-02"`
	DataComunicacao string          `json:"dataComunicacao" validate:"required,datetime=2006-01-02"`
	Descricao       string          `json:"descricao" validate:"required"`
	ValorReclamado  decimal.Decimal `json:"valorReclamado" validate:"min=0"`
	Observacoes     *string         `json:"observacoes"`
}

type AtualizarSinistroRequest struct {
	Descricao       string           `json:"descricao"`
	Status          string           `json:"status" validate:"omitempty,oneof=ABERTO EM_ANALISE APROVADO NEGADO PAGO ENCERRADO"`
	ValorReclamado  *decimal.Decimal `json:"valorReclamado"`
	ValorIndenizado *decimal.Decimal `json:"valorIndenizado"`
	Observacoes     *string          `json:"observacoes"`
}

type SinistroResponse struct {
	ID              uint             `json:"id"`
	ApoliceID       uint             `json:"apoliceId"`
	NumeroApolice   string           `json:"numeroApolice,omitempty"`
	Protocolo       string           `json:"protocolo"`
	DataOcorrencia  string           `json:"dataOcorrencia"`
	DataComunicacao string           `json:"dataComunicacao"`
	Descricao       string           `json:"descricao"`
	ValorReclamado  decimal.Decimal  `json:"valorReclamado"`
	ValorIndenizado *decimal.Decimal `json:"valorIndenizado,omitempty"`
	Status          string           `json:"status"`
	Observacoes     *string          `json:"observacoes,omitempty"`
}

type SinistroFilter struct {
	Status    string `form:"status"`
	ApoliceID uint   `form:"apolice_id"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
}

type SinistroListResponse struct {
	Data  []SinistroResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
