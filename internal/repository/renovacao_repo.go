package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ChristianALins/cliver-seguros/internal/model"
	"github.com/ChristianALins/cliver-seguros/internal/scope"
)

type RenovacaoRepository interface {
	// CreateTx runs inside the renewal transaction.
	CreateTx(tx *gorm.DB, r *model.Renovacao) error
	FindByID(ctx context.Context, id uint) (*model.Renovacao, error)
	ExisteParaApolice(ctx context.Context, apoliceAntigaID uint) (bool, error)
	List(ctx context.Context, sc scope.Scope) ([]model.Renovacao, error)
}

type renovacaoRepo struct{ db *gorm.DB }

func NewRenovacaoRepository(db *gorm.DB) RenovacaoRepository { return &renovacaoRepo{db: db} }

func (r *renovacaoRepo) CreateTx(tx *gorm.DB, ren *model.Renovacao) error {
	return tx.Create(ren).Error
}

func (r *renovacaoRepo) FindByID(ctx context.Context, id uint) (*model.Renovacao, error) {
	var ren model.Renovacao
	err := r.db.WithContext(ctx).
		Preload("ApoliceAntiga").Preload("ApoliceNova").
		First(&ren, id).Error
	return &ren, err
}

func (r *renovacaoRepo) ExisteParaApolice(ctx context.Context, apoliceAntigaID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Renovacao{}).
		Where("apolice_antiga_id = ?", apoliceAntigaID).
		Count(&n).Error
	return n > 0, err
}

// List is scoped through the predecessor's agent of record.
func (r *renovacaoRepo) List(ctx context.Context, sc scope.Scope) ([]model.Renovacao, error) {
	var rens []model.Renovacao
	q := r.db.WithContext(ctx).Model(&model.Renovacao{})
	if !sc.Irrestrito() {
		q = q.Joins("JOIN apolices ON apolices.id = renovacoes.apolice_antiga_id").
			Where("apolices.colaborador_id = ?", sc.ColaboradorID)
	}
	err := q.
		Preload("ApoliceAntiga").Preload("ApoliceNova").
		Order("renovacoes.data_renovacao DESC, renovacoes.id DESC").
		Find(&rens).Error
	return rens, err
}
