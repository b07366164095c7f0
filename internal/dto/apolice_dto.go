package dto

import "github.com/shopspring/decimal"

type CriarApoliceRequest struct {
	NumeroApolice string `json:"numeroApolice" validate:"required"`
	ClienteID     uint   `json:"clienteId" validate:"required"`
	SeguradoraID  uint   `json:"seguradoraId" validate:"required"`
	TipoSeguroID  uint   `json:"tipoSeguroId" validate:"required"`
	// ColaboradorID defaults to the requester when omitted; corretores may
	// only issue policies in their own name.
	ColaboradorID *uint `json:"colaboradorId"`

	ValorPremio                   decimal.Decimal `json:"valorPremio" validate:"required"`
	PercentualComissaoSeguradora  decimal.Decimal `json:"percentualComissaoSeguradora" validate:"min=0,max=100"`
	PercentualComissaoColaborador decimal.Decimal `json:"percentualComissaoColaborador" validate:"min=0,max=100"`

	InicioVigencia string `json:"inicioVigencia" validate:"required,datetime=2006-01-02"`
	FimVigencia    string `json:"fimVigencia" validate:"required,datetime=2006-01-02"`

	ValorFranquia *decimal.Decimal `json:"valorFranquia"`
	Observacoes   *string          `json:"observacoes"`
}

type AtualizarApoliceRequest struct {
	ValorPremio                   *decimal.Decimal `json:"valorPremio"`
	PercentualComissaoSeguradora  *decimal.Decimal `json:"percentualComissaoSeguradora"`
	PercentualComissaoColaborador *decimal.Decimal `json:"percentualComissaoColaborador"`
	InicioVigencia                *string          `json:"inicioVigencia" validate:"omitempty,datetime=2006-01-02"`
	FimVigencia                   *string          `json:"fimVigencia" validate:"omitempty,datetime=2006-01-02"`
	ValorFranquia                 *decimal.Decimal `json:"valorFranquia"`
	Observacoes                   *string          `json:"observacoes"`
}

// CancelarApoliceRequest terminates a policy manually. Confirmar must be true:
// cancellation is irreversible and the UI asks for explicit confirmation.
type CancelarApoliceRequest struct {
	Confirmar bool    `json:"confirmar"`
	Motivo    *string `json:"motivo"`
}

type ApoliceResponse struct {
	ID            uint   `json:"id"`
	NumeroApolice string `json:"numeroApolice"`
	ClienteID     uint   `json:"clienteId"`
	Cliente       string `json:"cliente,omitempty"`
	SeguradoraID  uint   `json:"seguradoraId"`
	Seguradora    string `json:"seguradora,omitempty"`
	TipoSeguroID  uint   `json:"tipoSeguroId"`
	TipoSeguro    string `json:"tipoSeguro,omitempty"`
	ColaboradorID uint   `json:"colaboradorId"`
	Colaborador   string `json:"colaborador,omitempty"`

	ValorPremio                   decimal.Decimal `json:"valorPremio"`
	PercentualComissaoSeguradora  decimal.Decimal `json:"percentualComissaoSeguradora"`
	PercentualComissaoColaborador decimal.Decimal `json:"percentualComissaoColaborador"`
	ComissaoSeguradora            decimal.Decimal `json:"comissaoSeguradora"`
	ComissaoColaborador           decimal.Decimal `json:"comissaoColaborador"`

	InicioVigencia string `json:"inicioVigencia"`
	FimVigencia    string `json:"fimVigencia"`

	// Status is the stored status; StatusExibicao adds the computed
	// VENCENDO/VENCIDA classification as of today.
	Status         string `json:"status"`
	StatusExibicao string `json:"statusExibicao"`

	ValorFranquia *decimal.Decimal `json:"valorFranquia,omitempty"`
	Observacoes   *string          `json:"observacoes,omitempty"`
}

type ApoliceFilter struct {
	Status        string `form:"status"`
	ClienteID     uint   `form:"cliente_id"`
	SeguradoraID  uint   `form:"seguradora_id"`
	ColaboradorID uint   `form:"colaborador_id"`
	Texto         string `form:"texto"`
	Page          int    `form:"page"`
	Limit         int    `form:"limit"`
}

// ApoliceResumo mirrors the summary block of the legacy policy listing.
type ApoliceResumo struct {
	TotalApolices        int64           `json:"totalApolices"`
	ApolicesAtivas       int64           `json:"apolicesAtivas"`
	ApolicesVencendo     int64           `json:"apolicesVencendo"`
	ValorTotalPremios    decimal.Decimal `json:"valorTotalPremios"`
	ComissoesSeguradora  decimal.Decimal `json:"comissoesSeguradora"`
	ComissoesColaborador decimal.Decimal `json:"comissoesColaborador"`
}

type ApoliceListResponse struct {
	Data   []ApoliceResponse `json:"data"`
	Resumo ApoliceResumo     `json:"resumo"`
	Total  int64             `json:"total"`
	Page   int               `json:"page"`
	Limit  int               `json:"limit"`
}
