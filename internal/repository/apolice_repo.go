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

// ApoliceRepository is the storage boundary of the policy lifecycle engine.
// Listing methods take the caller's scope so filtering happens in SQL, never
// after the fact in memory.
type ApoliceRepository interface {
	Create(ctx context.Context, tx *gorm.DB, a *model.Apolice) error
	FindByID(ctx context.Context, id uint) (*model.Apolice, error)
	FindByNumero(ctx context.Context, numero string) (*model.Apolice, error)
	List(ctx context.Context, sc scope.Scope, filter dto.ApoliceFilter) ([]model.Apolice, int64, error)
	ListByCliente(ctx context.Context, clienteID uint) ([]model.Apolice, error)
	ListVencendo(ctx context.Context, sc scope.Scope, de, ate time.Time) ([]model.Apolice, error)
	Resumo(ctx context.Context, sc scope.Scope, asOf time.Time, diasAviso int) (*dto.ApoliceResumo, error)
	Update(ctx context.Context, a *model.Apolice) error
	UpdateStatusTx(tx *gorm.DB, id uint, status string) error
	Delete(ctx context.Context, id uint) error
	CountRenovacoes(ctx context.Context, apoliceID uint) (int64, error)
	CountSinistros(ctx context.Context, apoliceID uint) (int64, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type apoliceRepo struct{ db *gorm.DB }

func NewApoliceRepository(db *gorm.DB) ApoliceRepository { return &apoliceRepo{db: db} }

func (r *apoliceRepo) DB() *gorm.DB { return r.db }

func (r *apoliceRepo) Create(ctx context.Context, tx *gorm.DB, a *model.Apolice) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(a).Error
}

func (r *apoliceRepo) FindByID(ctx context.Context, id uint) (*model.Apolice, error) {
	var a model.Apolice
	err := r.db.WithContext(ctx).
		Preload("Cliente").Preload("Seguradora").Preload("TipoSeguro").Preload("Colaborador").
		First(&a, id).Error
	return &a, err
}

func (r *apoliceRepo) FindByNumero(ctx context.Context, numero string) (*model.Apolice, error) {
	var a model.Apolice
	err := r.db.WithContext(ctx).Where("numero_apolice = ?", numero).First(&a).Error
	return &a, err
}

func (r *apoliceRepo) List(ctx context.Context, sc scope.Scope, filter dto.ApoliceFilter) ([]model.Apolice, int64, error) {
	var apolices []model.Apolice
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := sc.Aplicar(r.db.WithContext(ctx).Model(&model.Apolice{}), "apolices.colaborador_id")

	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("apolices.status = ?", filter.Status)
	}
	if filter.ClienteID != 0 {
		q = q.Where("apolices.cliente_id = ?", filter.ClienteID)
	}
	if filter.SeguradoraID != 0 {
		q = q.Where("apolices.seguradora_id = ?", filter.SeguradoraID)
	}
	if filter.ColaboradorID != 0 {
		q = q.Where("apolices.colaborador_id = ?", filter.ColaboradorID)
	}
	if filter.Texto != "" {
		like := "%" + filter.Texto + "%"
		q = q.Joins("JOIN clientes ON clientes.id = apolices.cliente_id").
			Where("apolices.numero_apolice ILIKE ? OR clientes.nome ILIKE ?", like, like)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Cliente").Preload("Seguradora").Preload("TipoSeguro").Preload("Colaborador").
		Order("apolices.fim_vigencia ASC, apolices.id ASC").
		Offset(offset).Limit(filter.Limit).
		Find(&apolices).Error
	return apolices, total, err
}

func (r *apoliceRepo) ListByCliente(ctx context.Context, clienteID uint) ([]model.Apolice, error) {
	var apolices []model.Apolice
	err := r.db.WithContext(ctx).
		Preload("Seguradora").Preload("TipoSeguro").
		Where("cliente_id = ?", clienteID).
		Order("fim_vigencia ASC, id ASC").
		Find(&apolices).Error
	return apolices, err
}

// ListVencendo returns ATIVA policies without a renewal record whose coverage
// ends inside [de, ate], soonest first, id as deterministic tie-break.
func (r *apoliceRepo) ListVencendo(ctx context.Context, sc scope.Scope, de, ate time.Time) ([]model.Apolice, error) {
	var apolices []model.Apolice
	q := sc.Aplicar(r.db.WithContext(ctx).Model(&model.Apolice{}), "apolices.colaborador_id")
	err := q.
		Preload("Cliente").Preload("Seguradora").Preload("TipoSeguro").Preload("Colaborador").
		Where("apolices.status = ?", model.ApoliceAtiva).
		Where("NOT EXISTS (SELECT 1 FROM renovacoes WHERE renovacoes.apolice_antiga_id = apolices.id)").
		Where("apolices.fim_vigencia BETWEEN ? AND ?", de, ate).
		Order("apolices.fim_vigencia ASC, apolices.id ASC").
		Find(&apolices).Error
	return apolices, err
}

func (r *apoliceRepo) Resumo(ctx context.Context, sc scope.Scope, asOf time.Time, diasAviso int) (*dto.ApoliceResumo, error) {
	var resumo dto.ApoliceResumo
	limite := asOf.AddDate(0, 0, diasAviso)

	base := func() *gorm.DB {
		return sc.Aplicar(r.db.WithContext(ctx).Model(&model.Apolice{}), "colaborador_id")
	}

	if err := base().Count(&resumo.TotalApolices).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", model.ApoliceAtiva).Count(&resumo.ApolicesAtivas).Error; err != nil {
		return nil, err
	}
	if err := base().
		Where("status = ? AND fim_vigencia BETWEEN ? AND ?", model.ApoliceAtiva, asOf, limite).
		Count(&resumo.ApolicesVencendo).Error; err != nil {
		return nil, err
	}

	type somas struct {
		Premios             decimal.NullDecimal
		ComissaoSeguradora  decimal.NullDecimal
		ComissaoColaborador decimal.NullDecimal
	}
	var s somas
	if err := base().
		Where("status = ?", model.ApoliceAtiva).
		Select("SUM(valor_premio) AS premios, SUM(comissao_seguradora) AS comissao_seguradora, SUM(comissao_colaborador) AS comissao_colaborador").
		Scan(&s).Error; err != nil {
		return nil, err
	}
	resumo.ValorTotalPremios = s.Premios.Decimal
	resumo.ComissoesSeguradora = s.ComissaoSeguradora.Decimal
	resumo.ComissoesColaborador = s.ComissaoColaborador.Decimal
	return &resumo, nil
}

func (r *apoliceRepo) Update(ctx context.Context, a *model.Apolice) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *apoliceRepo) UpdateStatusTx(tx *gorm.DB, id uint, status string) error {
	return tx.Model(&model.Apolice{}).Where("id = ?", id).Update("status", status).Error
}

func (r *apoliceRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Apolice{}, id).Error
}

// CountRenovacoes counts renewal links on either side: a policy referenced as
// predecessor or successor is part of an audit chain and cannot be removed.
func (r *apoliceRepo) CountRenovacoes(ctx context.Context, apoliceID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Renovacao{}).
		Where("apolice_antiga_id = ? OR apolice_nova_id = ?", apoliceID, apoliceID).
		Count(&n).Error
	return n, err
}

func (r *apoliceRepo) CountSinistros(ctx context.Context, apoliceID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Sinistro{}).Where("apolice_id = ?", apoliceID).Count(&n).Error
	return n, err
}
