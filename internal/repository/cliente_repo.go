package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ChristianALins/cliver-seguros/internal/dto"
	"github.com/ChristianALins/cliver-seguros/internal/model"
	"github.com/ChristianALins/cliver-seguros/internal/scope"
)

type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uint) (*model.Cliente, error)
	FindByCpfCnpj(ctx context.Context, doc string) (*model.Cliente, error)
	List(ctx context.Context, sc scope.Scope, filter dto.ClienteFilter) ([]model.Cliente, int64, error)
	Update(ctx context.Context, c *model.Cliente) error
	SoftDelete(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
	CountApolices(ctx context.Context, clienteID uint) (int64, error)
	CountSinistros(ctx context.Context, clienteID uint) (int64, error)
	CountTarefasPendentes(ctx context.Context, clienteID uint) (int64, error)
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uint) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Preload("Colaborador").First(&c, id).Error
	return &c, err
}

func (r *clienteRepo) FindByCpfCnpj(ctx context.Context, doc string) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Where("cpf_cnpj = ?", doc).First(&c).Error
	return &c, err
}

func (r *clienteRepo) List(ctx context.Context, sc scope.Scope, filter dto.ClienteFilter) ([]model.Cliente, int64, error) {
	var clientes []model.Cliente
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := sc.Aplicar(r.db.WithContext(ctx).Model(&model.Cliente{}), "colaborador_id")
	if filter.Texto != "" {
		like := "%" + filter.Texto + "%"
		q = q.Where("nome ILIKE ? OR cpf_cnpj ILIKE ?", like, like)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Colaborador").
		Order("nome ASC").
		Offset(offset).Limit(filter.Limit).
		Find(&clientes).Error
	return clientes, total, err
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Cliente{}).Where("id = ?", id).Update("ativo", false).Error
}

func (r *clienteRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Cliente{}, id).Error
}

func (r *clienteRepo) CountApolices(ctx context.Context, clienteID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Apolice{}).Where("cliente_id = ?", clienteID).Count(&n).Error
	return n, err
}

func (r *clienteRepo) CountSinistros(ctx context.Context, clienteID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Sinistro{}).
		Joins("JOIN apolices ON apolices.id = sinistros.apolice_id").
		Where("apolices.cliente_id = ?", clienteID).
		Count(&n).Error
	return n, err
}

func (r *clienteRepo) CountTarefasPendentes(ctx context.Context, clienteID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Tarefa{}).
		Where("cliente_id = ? AND status = ?", clienteID, model.TarefaPendente).
		Count(&n).Error
	return n, err
}
