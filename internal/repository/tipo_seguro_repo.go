package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ChristianALins/cliver-seguros/internal/model"
)

type TipoSeguroRepository interface {
	Create(ctx context.Context, t *model.TipoSeguro) error
	FindByID(ctx context.Context, id uint) (*model.TipoSeguro, error)
	List(ctx context.Context) ([]model.TipoSeguro, error)
	Update(ctx context.Context, t *model.TipoSeguro) error
	Delete(ctx context.Context, id uint) error
	CountApolices(ctx context.Context, tipoID uint) (int64, error)
}

type tipoSeguroRepo struct{ db *gorm.DB }

func NewTipoSeguroRepository(db *gorm.DB) TipoSeguroRepository { return &tipoSeguroRepo{db: db} }

func (r *tipoSeguroRepo) Create(ctx context.Context, t *model.TipoSeguro) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tipoSeguroRepo) FindByID(ctx context.Context, id uint) (*model.TipoSeguro, error) {
	var t model.TipoSeguro
	err := r.db.WithContext(ctx).First(&t, id).Error
	return &t, err
}

func (r *tipoSeguroRepo) List(ctx context.Context) ([]model.TipoSeguro, error) {
	var ts []model.TipoSeguro
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&ts).Error
	return ts, err
}

func (r *tipoSeguroRepo) Update(ctx context.Context, t *model.TipoSeguro) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *tipoSeguroRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.TipoSeguro{}, id).Error
}

func (r *tipoSeguroRepo) CountApolices(ctx context.Context, tipoID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Apolice{}).Where("tipo_seguro_id = ?", tipoID).Count(&n).Error
	return n, err
}
