package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ChristianALins/cliver-seguros/internal/dto"
	"github.com/ChristianALins/cliver-seguros/internal/model"
	"github.com/ChristianALins/cliver-seguros/internal/scope"
)

// RelatorioRepository holds the aggregate queries behind the management
// reports. Everything is computed in SQL; the service layer only derives
// ratios and handles caching.
type RelatorioRepository interface {
	Dashboard(ctx context.Context, sc scope.Scope, asOf time.Time, diasAviso int) (*dto.DashboardResponse, error)
	ProducaoPorColaborador(ctx context.Context, sc scope.Scope) ([]dto.ProducaoColaboradorItem, error)
	ProducaoPorSeguradora(ctx context.Context, sc scope.Scope) ([]dto.ProducaoSeguradoraItem, error)
}

type relatorioRepo struct{ db *gorm.DB }

func NewRelatorioRepository(db *gorm.DB) RelatorioRepository { return &relatorioRepo{db: db} }

func (r *relatorioRepo) Dashboard(ctx context.Context, sc scope.Scope, asOf time.Time, diasAviso int) (*dto.DashboardResponse, error) {
	var d dto.DashboardResponse
	limite := asOf.AddDate(0, 0, diasAviso)

	apolices := func() *gorm.DB {
		return sc.Aplicar(r.db.WithContext(ctx).Model(&model.Apolice{}), "colaborador_id")
	}
	if err := apolices().Where("status = ?", model.ApoliceAtiva).Count(&d.ApolicesAtivas).Error; err != nil {
		return nil, err
	}
	if err := apolices().
		Where("status = ? AND fim_vigencia BETWEEN ? AND ?", model.ApoliceAtiva, asOf, limite).
		Count(&d.ApolicesVencendo).Error; err != nil {
		return nil, err
	}

	type somas struct {
		Premios             decimal.NullDecimal
		ComissaoSeguradora  decimal.NullDecimal
		ComissaoColaborador decimal.NullDecimal
	}
	var s somas
	if err := apolices().
		Where("status = ?", model.ApoliceAtiva).
		Select("SUM(valor_premio) AS premios, SUM(comissao_seguradora) AS comissao_seguradora, SUM(comissao_colaborador) AS comissao_colaborador").
		Scan(&s).Error; err != nil {
		return nil, err
	}
	d.ValorTotalPremios = s.Premios.Decimal
	d.ComissoesSeguradora = s.ComissaoSeguradora.Decimal
	d.ComissoesColaborador = s.ComissaoColaborador.Decimal

	tarefas := func() *gorm.DB {
		return sc.Aplicar(r.db.WithContext(ctx).Model(&model.Tarefa{}), "colaborador_id")
	}
	if err := tarefas().Where("status = ?", model.TarefaPendente).Count(&d.TarefasPendentes).Error; err != nil {
		return nil, err
	}
	if err := tarefas().
		Where("status = ? AND data_vencimento < ?", model.TarefaPendente, asOf).
		Count(&d.TarefasAtrasadas).Error; err != nil {
		return nil, err
	}

	sinistros := r.db.WithContext(ctx).Model(&model.Sinistro{}).
		Where("sinistros.status IN ?", []string{model.SinistroAberto, model.SinistroEmAnalise})
	if !sc.Irrestrito() {
		sinistros = sinistros.
			Joins("JOIN apolices ON apolices.id = sinistros.apolice_id").
			Where("apolices.colaborador_id = ?", sc.ColaboradorID)
	}
	if err := sinistros.Count(&d.SinistrosAbertos).Error; err != nil {
		return nil, err
	}

	clientes := sc.Aplicar(r.db.WithContext(ctx).Model(&model.Cliente{}), "colaborador_id").
		Where("ativo = true")
	if err := clientes.Count(&d.TotalClientes).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *relatorioRepo) ProducaoPorColaborador(ctx context.Context, sc scope.Scope) ([]dto.ProducaoColaboradorItem, error) {
	type linha struct {
		ColaboradorID  uint
		Nome           string
		ApolicesAtivas int64
		ValorPremios   decimal.NullDecimal
		ComissaoDevida decimal.NullDecimal
	}
	var linhas []linha

	q := r.db.WithContext(ctx).Model(&model.Apolice{}).
		Select(`apolices.colaborador_id,
			colaboradores.nome,
			COUNT(*) AS apolices_ativas,
			SUM(apolices.valor_premio) AS valor_premios,
			SUM(apolices.comissao_colaborador) AS comissao_devida`).
		Joins("JOIN colaboradores ON colaboradores.id = apolices.colaborador_id").
		Where("apolices.status = ?", model.ApoliceAtiva).
		Group("apolices.colaborador_id, colaboradores.nome").
		Order("valor_premios DESC, apolices.colaborador_id ASC")
	q = sc.Aplicar(q, "apolices.colaborador_id")

	if err := q.Scan(&linhas).Error; err != nil {
		return nil, err
	}
	itens := make([]dto.ProducaoColaboradorItem, len(linhas))
	for i, l := range linhas {
		itens[i] = dto.ProducaoColaboradorItem{
			ColaboradorID:  l.ColaboradorID,
			Nome:           l.Nome,
			ApolicesAtivas: l.ApolicesAtivas,
			ValorPremios:   l.ValorPremios.Decimal,
			ComissaoDevida: l.ComissaoDevida.Decimal,
		}
	}
	return itens, nil
}

func (r *relatorioRepo) ProducaoPorSeguradora(ctx context.Context, sc scope.Scope) ([]dto.ProducaoSeguradoraItem, error) {
	type linha struct {
		SeguradoraID       uint
		Nome               string
		ApolicesAtivas     int64
		ValorPremios       decimal.NullDecimal
		ComissaoCorretora  decimal.NullDecimal
		TotalRenovacoes    int64
		ApolicesEncerradas int64
	}
	var linhas []linha

	// One row per insurer, counters split by stored status with FILTER so
	// a single scan of apolices yields all figures.
	sql := `SELECT seguradoras.id AS seguradora_id,
		seguradoras.nome,
		COUNT(*) FILTER (WHERE apolices.status = @ativa) AS apolices_ativas,
		SUM(apolices.valor_premio) FILTER (WHERE apolices.status = @ativa) AS valor_premios,
		SUM(apolices.comissao_seguradora) FILTER (WHERE apolices.status = @ativa) AS comissao_corretora,
		COUNT(*) FILTER (WHERE apolices.status = @renovada) AS total_renovacoes,
		COUNT(*) FILTER (WHERE apolices.status IN (@renovada, @cancelada)) AS apolices_encerradas
	FROM seguradoras
	JOIN apolices ON apolices.seguradora_id = seguradoras.id`
	if !sc.Irrestrito() {
		sql += " AND apolices.colaborador_id = @colaborador"
	}
	sql += `
	GROUP BY seguradoras.id, seguradoras.nome
	ORDER BY valor_premios DESC NULLS LAST, seguradoras.id ASC`

	params := map[string]interface{}{
		"ativa":       model.ApoliceAtiva,
		"renovada":    model.ApoliceRenovada,
		"cancelada":   model.ApoliceCancelada,
		"colaborador": sc.ColaboradorID,
	}
	if err := r.db.WithContext(ctx).Raw(sql, params).Scan(&linhas).Error; err != nil {
		return nil, err
	}
	itens := make([]dto.ProducaoSeguradoraItem, len(linhas))
	for i, l := range linhas {
		itens[i] = dto.ProducaoSeguradoraItem{
			SeguradoraID:       l.SeguradoraID,
			Nome:               l.Nome,
			ApolicesAtivas:     l.ApolicesAtivas,
			ValorPremios:       l.ValorPremios.Decimal,
			ComissaoCorretora:  l.ComissaoCorretora.Decimal,
			TotalRenovacoes:    l.TotalRenovacoes,
			ApolicesEncerradas: l.ApolicesEncerradas,
		}
	}
	return itens, nil
}
