package dto

import "github.com/shopspring/decimal"

type CriarClienteRequest struct {
	Nome     string  `json:"nome" validate:"required"`
	CpfCnpj  string  `json:"cpfCnpj" validate:"required"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Telefone *string `json:"telefone"`
	Endereco *string `json:"endereco"`
	// ColaboradorID is only honored for ADMINISTRADOR/GERENTE; corretores
	// always own the clients they create.
	ColaboradorID *uint `json:"colaboradorId"`
}

type AtualizarClienteRequest struct {
	Nome     string  `json:"nome"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Telefone *string `json:"telefone"`
	Endereco *string `json:"endereco"`
}

type ClienteResponse struct {
	ID            uint    `json:"id"`
	Nome          string  `json:"nome"`
	CpfCnpj       string  `json:"cpfCnpj"`
	Email         *string `json:"email,omitempty"`
	Telefone      *string `json:"telefone,omitempty"`
	Endereco      *string `json:"endereco,omitempty"`
	ColaboradorID uint    `json:"colaboradorId"`
	Colaborador   string  `json:"colaborador,omitempty"`
	Ativo         bool    `json:"ativo"`
}

type ClienteFilter struct {
	Texto string `form:"texto"`
	Page  int    `form:"page"`
	Limit int    `form:"limit"`
}

type ClienteListResponse struct {
	Data  []ClienteResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// ClienteDetalheResponse is the client file: the record plus its policies and
// active-portfolio aggregates.
type ClienteDetalheResponse struct {
	Cliente          ClienteResponse   `json:"cliente"`
	Apolices         []ApoliceResponse `json:"apolices"`
	ApolicesAtivas   int               `json:"apolicesAtivas"`
	ValorTotalAtivo  decimal.Decimal   `json:"valorTotalAtivo"`
	TotalSinistros   int               `json:"totalSinistros"`
	TarefasPendentes int               `json:"tarefasPendentes"`
}
