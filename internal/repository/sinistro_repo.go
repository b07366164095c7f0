package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ChristianALins/cliver-seguros/internal/dto"
	"github.com/ChristianALins/cliver-seguros/internal/model"
	"github.com/ChristianALins/cliver-seguros/internal/scope"
)

type SinistroRepository interface {
	Create(ctx context.Context, s *model.Sinistro) error
	FindByID(ctx context.Context, id uint) (*model.Sinistro, error)
	List(ctx context.Context, sc scope.Scope, filter dto.SinistroFilter) ([]model.Sinistro, int64, error)
	Update(ctx context.Context, s *model.Sinistro) error
	Delete(ctx context.Context, id uint) error
	NextProtocolo(ctx context.Context) (int, error)
}

type sinistroRepo struct{ db *gorm.DB }

func NewSinistroRepository(db *gorm.DB) SinistroRepository { return &sinistroRepo{db: db} }

func (r *sinistroRepo) Create(ctx context.Context, s *model.Sinistro) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sinistroRepo) FindByID(ctx context.Context, id uint) (*model.Sinistro, error) {
	var s model.Sinistro
	err := r.db.WithContext(ctx).Preload("Apolice").First(&s, id).Error
	return &s, err
}

// List scopes claims through the policy's agent of record.
func (r *sinistroRepo) List(ctx context.Context, sc scope.Scope, filter dto.SinistroFilter) ([]model.Sinistro, int64, error) {
	var sinistros []model.Sinistro
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Sinistro{})
	if !sc.Irrestrito() {
		q = q.Joins("JOIN apolices ON apolices.id = sinistros.apolice_id").
			Where("apolices.colaborador_id = ?", sc.ColaboradorID)
	}
	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("sinistros.status = ?", filter.Status)
	}
	if filter.ApoliceID != 0 {
		q = q.Where("sinistros.apolice_id = ?", filter.ApoliceID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Apolice").
		Order("sinistros.data_ocorrencia DESC, sinistros.id DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&sinistros).Error
	return sinistros, total, err
}

func (r *sinistroRepo) Update(ctx context.Context, s *model.Sinistro) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *sinistroRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Sinistro{}, id).Error
}

// NextProtocolo draws from a PostgreSQL sequence so protocol numbers are
// atomic and never reused, even across racing requests.
func (r *sinistroRepo) NextProtocolo(ctx context.Context) (int, error) {
	var num int
	err := r.db.WithContext(ctx).Raw("SELECT nextval('sinistros_protocolo_seq')").Scan(&num).Error
	return num, err
}
