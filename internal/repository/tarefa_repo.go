package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ChristianALins/cliver-seguros/internal/dto"
	"github.com/ChristianALins/cliver-seguros/internal/model"
	"github.com/ChristianALins/cliver-seguros/internal/scope"
)

// prioridadeOrdem sorts URGENTE before BAIXA inside a same-day group.
const prioridadeOrdem = "CASE prioridade WHEN 'URGENTE' THEN 4 WHEN 'ALTA' THEN 3 WHEN 'MEDIA' THEN 2 WHEN 'BAIXA' THEN 1 ELSE 0 END DESC"

type TarefaRepository interface {
	Create(ctx context.Context, t *model.Tarefa) error
	CreateTx(tx *gorm.DB, t *model.Tarefa) error
	FindByID(ctx context.Context, id uint) (*model.Tarefa, error)
	List(ctx context.Context, sc scope.Scope, filter dto.TarefaFilter) ([]model.Tarefa, int64, error)
	ListPendentes(ctx context.Context, sc scope.Scope) ([]model.Tarefa, error)
	ListAtrasadas(ctx context.Context, sc scope.Scope, asOf time.Time) ([]model.Tarefa, error)
	Update(ctx context.Context, t *model.Tarefa) error
	Delete(ctx context.Context, id uint) error
}

type tarefaRepo struct{ db *gorm.DB }

func NewTarefaRepository(db *gorm.DB) TarefaRepository { return &tarefaRepo{db: db} }

func (r *tarefaRepo) Create(ctx context.Context, t *model.Tarefa) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tarefaRepo) CreateTx(tx *gorm.DB, t *model.Tarefa) error {
	return tx.Create(t).Error
}

func (r *tarefaRepo) FindByID(ctx context.Context, id uint) (*model.Tarefa, error) {
	var t model.Tarefa
	err := r.db.WithContext(ctx).Preload("Colaborador").First(&t, id).Error
	return &t, err
}

func (r *tarefaRepo) List(ctx context.Context, sc scope.Scope, filter dto.TarefaFilter) ([]model.Tarefa, int64, error) {
	var tarefas []model.Tarefa
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := sc.Aplicar(r.db.WithContext(ctx).Model(&model.Tarefa{}), "colaborador_id")
	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("status = ?", filter.Status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Colaborador").
		Order("data_vencimento ASC, " + prioridadeOrdem + ", id ASC").
		Offset(offset).Limit(filter.Limit).
		Find(&tarefas).Error
	return tarefas, total, err
}

// ListPendentes orders by due date ascending, then priority rank descending,
// then id — the deterministic ordering of the pending-task projection.
func (r *tarefaRepo) ListPendentes(ctx context.Context, sc scope.Scope) ([]model.Tarefa, error) {
	var tarefas []model.Tarefa
	err := sc.Aplicar(r.db.WithContext(ctx).Model(&model.Tarefa{}), "colaborador_id").
		Preload("Colaborador").
		Where("status = ?", model.TarefaPendente).
		Order("data_vencimento ASC, " + prioridadeOrdem + ", id ASC").
		Find(&tarefas).Error
	return tarefas, err
}

func (r *tarefaRepo) ListAtrasadas(ctx context.Context, sc scope.Scope, asOf time.Time) ([]model.Tarefa, error) {
	var tarefas []model.Tarefa
	err := sc.Aplicar(r.db.WithContext(ctx).Model(&model.Tarefa{}), "colaborador_id").
		Preload("Colaborador").
		Where("status = ? AND data_vencimento < ?", model.TarefaPendente, asOf).
		Order("data_vencimento ASC, id ASC").
		Find(&tarefas).Error
	return tarefas, err
}

func (r *tarefaRepo) Update(ctx context.Context, t *model.Tarefa) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *tarefaRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Tarefa{}, id).Error
}
