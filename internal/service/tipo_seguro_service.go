package service

import (
	"context"
	"fmt"

	"github.com/ChristianALins/cliver-seguros/internal/comissao"
	"github.com/ChristianALins/cliver-seguros/internal/domainerr"
	"github.com/ChristianALins/cliver-seguros/internal/dto"
	"github.com/ChristianALins/cliver-seguros/internal/model"
	"github.com/ChristianALins/cliver-seguros/internal/repository"
)

type TipoSeguroService interface {
	Criar(ctx context.Context, req dto.CriarTipoSeguroRequest) (*dto.TipoSeguroResponse, error)
	Obter(ctx context.Context, id uint) (*dto.TipoSeguroResponse, error)
	Listar(ctx context.Context) ([]dto.TipoSeguroResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarTipoSeguroRequest) (*dto.TipoSeguroResponse, error)
	Excluir(ctx context.Context, id uint) error
}

type tipoSeguroService struct {
	repo repository.TipoSeguroRepository
}

func NewTipoSeguroService(repo repository.TipoSeguroRepository) TipoSeguroService {
	return &tipoSeguroService{repo: repo}
}

func (s *tipoSeguroService) Criar(ctx context.Context, req dto.CriarTipoSeguroRequest) (*dto.TipoSeguroResponse, error) {
	if !comissao.PercentualValido(req.PercentualComissaoMin) || !comissao.PercentualValido(req.PercentualComissaoMax) {
		return nil, domainerr.Invalid("percentualComissao", "percentuais devem estar entre 0 e 100")
	}
	if req.PercentualComissaoMin.GreaterThan(req.PercentualComissaoMax) {
		return nil, domainerr.Invalid("percentualComissaoMin", "percentual mínimo não pode exceder o máximo")
	}

	t := &model.TipoSeguro{
		Nome:                  req.Nome,
		Descricao:             req.Descricao,
		PercentualComissaoMin: req.PercentualComissaoMin,
		PercentualComissaoMax: req.PercentualComissaoMax,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, domainerr.Storage(err)
	}
	resp := tipoSeguroToResponse(t)
	return &resp, nil
}

func (s *tipoSeguroService) Obter(ctx context.Context, id uint) (*dto.TipoSeguroResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, traduzErro(err, "tipo de seguro")
	}
	resp := tipoSeguroToResponse(t)
	return &resp, nil
}

func (s *tipoSeguroService) Listar(ctx context.Context) ([]dto.TipoSeguroResponse, error) {
	ts, err := s.repo.List(ctx)
	if err != nil {
		return nil, domainerr.Storage(err)
	}
	resp := make([]dto.TipoSeguroResponse, len(ts))
	for i := range ts {
		resp[i] = tipoSeguroToResponse(&ts[i])
	}
	return resp, nil
}

func (s *tipoSeguroService) Atualizar(ctx context.Context, id uint, req dto.AtualizarTipoSeguroRequest) (*dto.TipoSeguroResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, traduzErro(err, "tipo de seguro")
	}
	if req.Nome != "" {
		t.Nome = req.Nome
	}
	if req.Descricao != nil {
		t.Descricao = req.Descricao
	}
	if req.PercentualComissaoMin != nil {
		if !comissao.PercentualValido(*req.PercentualComissaoMin) {
			return nil, domainerr.Invalid("percentualComissaoMin", "percentual deve estar entre 0 e 100")
		}
		t.PercentualComissaoMin = *req.PercentualComissaoMin
	}
	if req.PercentualComissaoMax != nil {
		if !comissao.PercentualValido(*req.PercentualComissaoMax) {
			return nil, domainerr.Invalid("percentualComissaoMax", "percentual deve estar entre 0 e 100")
		}
		t.PercentualComissaoMax = *req.PercentualComissaoMax
	}
	if t.PercentualComissaoMin.GreaterThan(t.PercentualComissaoMax) {
		return nil, domainerr.Invalid("percentualComissaoMin", "percentual mínimo não pode exceder o máximo")
	}
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, domainerr.Storage(err)
	}
	resp := tipoSeguroToResponse(t)
	return &resp, nil
}

func (s *tipoSeguroService) Excluir(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return traduzErro(err, "tipo de seguro")
	}
	n, err := s.repo.CountApolices(ctx, id)
	if err != nil {
		return domainerr.Storage(err)
	}
	if n > 0 {
		return domainerr.HasDependents(
			fmt.Sprintf("tipo de seguro possui %d apólice(s) emitida(s)", n), int(n))
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return domainerr.Storage(err)
	}
	return nil
}

func tipoSeguroToResponse(t *model.TipoSeguro) dto.TipoSeguroResponse {
	return dto.TipoSeguroResponse{
		ID:                    t.ID,
		Nome:                  t.Nome,
		Descricao:             t.Descricao,
		PercentualComissaoMin: t.PercentualComissaoMin,
		PercentualComissaoMax: t.PercentualComissaoMax,
	}
}
