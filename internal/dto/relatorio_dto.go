package dto

import "github.com/shopspring/decimal"

// DashboardResponse carries the landing-page counters. All amounts are raw
// decimals; locale formatting belongs to the presentation layer.
type DashboardResponse struct {
	ApolicesAtivas       int64           `json:"apolicesAtivas"`
	ApolicesVencendo     int64           `json:"apolicesVencendo"`
	ValorTotalPremios    decimal.Decimal `json:"valorTotalPremios"`
	ComissoesSeguradora  decimal.Decimal `json:"comissoesSeguradora"`
	ComissoesColaborador decimal.Decimal `json:"comissoesColaborador"`
	TarefasPendentes     int64           `json:"tarefasPendentes"`
	TarefasAtrasadas     int64           `json:"tarefasAtrasadas"`
	SinistrosAbertos     int64           `json:"sinistrosAbertos"`
	TotalClientes        int64           `json:"totalClientes"`
}

type ProducaoColaboradorItem struct {
	ColaboradorID   uint            `json:"colaboradorId"`
	Nome            string          `json:"nome"`
	ApolicesAtivas  int64           `json:"apolicesAtivas"`
	ValorPremios    decimal.Decimal `json:"valorPremios"`
	ComissaoDevida  decimal.Decimal `json:"comissaoDevida"`
}

type ProducaoSeguradoraItem struct {
	SeguradoraID       uint            `json:"seguradoraId"`
	Nome               string          `json:"nome"`
	ApolicesAtivas     int64           `json:"apolicesAtivas"`
	ValorPremios       decimal.Decimal `json:"valorPremios"`
	ComissaoCorretora  decimal.Decimal `json:"comissaoCorretora"`
	TotalRenovacoes    int64           `json:"totalRenovacoes"`
	ApolicesEncerradas int64           `json:"apolicesEncerradas"`
	TaxaRenovacao      decimal.Decimal `json:"taxaRenovacao"`
}
