package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ChristianALins/cliver-seguros/internal/model"
)

// ColaboradorRepository defines the data access contract for employees.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ColaboradorRepository interface {
	Create(ctx context.Context, c *model.Colaborador) error
	FindByID(ctx context.Context, id uint) (*model.Colaborador, error)
	FindByEmail(ctx context.Context, email string) (*model.Colaborador, error)
	List(ctx context.Context, incluirInativos bool) ([]model.Colaborador, error)
	Update(ctx context.Context, c *model.Colaborador) error
	SoftDelete(ctx context.Context, id uint) error
	Reativar(ctx context.Context, id uint) error
}

type colaboradorRepo struct{ db *gorm.DB }

func NewColaboradorRepository(db *gorm.DB) ColaboradorRepository { return &colaboradorRepo{db: db} }

func (r *colaboradorRepo) Create(ctx context.Context, c *model.Colaborador) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *colaboradorRepo) FindByID(ctx context.Context, id uint) (*model.Colaborador, error) {
	var c model.Colaborador
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *colaboradorRepo) FindByEmail(ctx context.Context, email string) (*model.Colaborador, error) {
	var c model.Colaborador
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&c).Error
	return &c, err
}

func (r *colaboradorRepo) List(ctx context.Context, incluirInativos bool) ([]model.Colaborador, error) {
	var cs []model.Colaborador
	q := r.db.WithContext(ctx).Order("nome ASC")
	if !incluirInativos {
		q = q.Where("ativo = true")
	}
	err := q.Find(&cs).Error
	return cs, err
}

func (r *colaboradorRepo) Update(ctx context.Context, c *model.Colaborador) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *colaboradorRepo) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Colaborador{}).Where("id = ?", id).Update("ativo", false).Error
}

func (r *colaboradorRepo) Reativar(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Colaborador{}).Where("id = ?", id).Update("ativo", true).Error
}
