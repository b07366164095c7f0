package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ChristianALins/cliver-seguros/internal/model"
)

type SeguradoraRepository interface {
	Create(ctx context.Context, s *model.Seguradora) error
	FindByID(ctx context.Context, id uint) (*model.Seguradora, error)
	FindByCnpj(ctx context.Context, cnpj string) (*model.Seguradora, error)
	List(ctx context.Context, incluirInativas bool) ([]model.Seguradora, error)
	Update(ctx context.Context, s *model.Seguradora) error
	SoftDelete(ctx context.Context, id uint) error
}

type seguradoraRepo struct{ db *gorm.DB }

func NewSeguradoraRepository(db *gorm.DB) SeguradoraRepository { return &seguradoraRepo{db: db} }

func (r *seguradoraRepo) Create(ctx context.Context, s *model.Seguradora) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *seguradoraRepo) FindByID(ctx context.Context, id uint) (*model.Seguradora, error) {
	var s model.Seguradora
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *seguradoraRepo) FindByCnpj(ctx context.Context, cnpj string) (*model.Seguradora, error) {
	var s model.Seguradora
	err := r.db.WithContext(ctx).Where("cnpj = ?", cnpj).First(&s).Error
	return &s, err
}

func (r *seguradoraRepo) List(ctx context.Context, incluirInativas bool) ([]model.Seguradora, error) {
	var ss []model.Seguradora
	q := r.db.WithContext(ctx).Order("nome ASC")
	if !incluirInativas {
		q = q.Where("ativa = true")
	}
	err := q.Find(&ss).Error
	return ss, err
}

func (r *seguradoraRepo) Update(ctx context.Context, s *model.Seguradora) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *seguradoraRepo) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Seguradora{}).Where("id = ?", id).Update("ativa", false).Error
}
