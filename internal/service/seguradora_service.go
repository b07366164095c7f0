package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ChristianALins/cliver-seguros/internal/comissao"
	"github.com/ChristianALins/cliver-seguros/internal/domainerr"
	"github.com/ChristianALins/cliver-seguros/internal/dto"
	"github.com/ChristianALins/cliver-seguros/internal/model"
	"github.com/ChristianALins/cliver-seguros/internal/repository"
)

type SeguradoraService interface {
	Criar(ctx context.Context, req dto.CriarSeguradoraRequest) (*dto.SeguradoraResponse, error)
	Obter(ctx context.Context, id uint) (*dto.SeguradoraResponse, error)
	Listar(ctx context.Context, incluirInativas bool) ([]dto.SeguradoraResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarSeguradoraRequest) (*dto.SeguradoraResponse, error)
	Desativar(ctx context.Context, id uint) error
}

type seguradoraService struct {
	repo repository.SeguradoraRepository
}

func NewSeguradoraService(repo repository.SeguradoraRepository) SeguradoraService {
	return &seguradoraService{repo: repo}
}

func (s *seguradoraService) Criar(ctx context.Context, req dto.CriarSeguradoraRequest) (*dto.SeguradoraResponse, error) {
	if !comissao.PercentualValido(req.PercentualComissaoPadrao) {
		return nil, domainerr.Invalid("percentualComissaoPadrao", "percentual deve estar entre 0 e 100")
	}
	if _, err := s.repo.FindByCnpj(ctx, req.Cnpj); err == nil {
		return nil, domainerr.Duplicate("cnpj", "já existe seguradora com este CNPJ")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerr.Storage(err)
	}

	sg := &model.Seguradora{
		Nome:                     req.Nome,
		Cnpj:                     req.Cnpj,
		PercentualComissaoPadrao: req.PercentualComissaoPadrao,
		ContatoComercial:         req.ContatoComercial,
		Telefone:                 req.Telefone,
		Email:                    req.Email,
		Ativa:                    true,
	}
	if err := s.repo.Create(ctx, sg); err != nil {
		return nil, domainerr.Storage(err)
	}
	resp := seguradoraToResponse(sg)
	return &resp, nil
}

func (s *seguradoraService) Obter(ctx context.Context, id uint) (*dto.SeguradoraResponse, error) {
	sg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, traduzErro(err, "seguradora")
	}
	resp := seguradoraToResponse(sg)
	return &resp, nil
}

func (s *seguradoraService) Listar(ctx context.Context, incluirInativas bool) ([]dto.SeguradoraResponse, error) {
	sgs, err := s.repo.List(ctx, incluirInativas)
	if err != nil {
		return nil, domainerr.Storage(err)
	}
	resp := make([]dto.SeguradoraResponse, len(sgs))
	for i := range sgs {
		resp[i] = seguradoraToResponse(&sgs[i])
	}
	return resp, nil
}

func (s *seguradoraService) Atualizar(ctx context.Context, id uint, req dto.AtualizarSeguradoraRequest) (*dto.SeguradoraResponse, error) {
	sg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, traduzErro(err, "seguradora")
	}
	if req.Nome != "" {
		sg.Nome = req.Nome
	}
	if req.PercentualComissaoPadrao != nil {
		if !comissao.PercentualValido(*req.PercentualComissaoPadrao) {
			return nil, domainerr.Invalid("percentualComissaoPadrao", "percentual deve estar entre 0 e 100")
		}
		sg.PercentualComissaoPadrao = *req.PercentualComissaoPadrao
	}
	if req.ContatoComercial != nil {
		sg.ContatoComercial = req.ContatoComercial
	}
	if req.Telefone != nil {
		sg.Telefone = req.Telefone
	}
	if req.Email != nil {
		sg.Email = req.Email
	}
	if req.Ativa != nil {
		sg.Ativa = *req.Ativa
	}
	if err := s.repo.Update(ctx, sg); err != nil {
		return nil, domainerr.Storage(err)
	}
	resp := seguradoraToResponse(sg)
	return &resp, nil
}

// Desativar soft-deletes: existing policies keep pointing at the insurer, it
// just stops being offered for new business.
func (s *seguradoraService) Desativar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return traduzErro(err, "seguradora")
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return domainerr.Storage(err)
	}
	return nil
}

func seguradoraToResponse(sg *model.Seguradora) dto.SeguradoraResponse {
	return dto.SeguradoraResponse{
		ID:                       sg.ID,
		Nome:                     sg.Nome,
		Cnpj:                     sg.Cnpj,
		PercentualComissaoPadrao: sg.PercentualComissaoPadrao,
		ContatoComercial:         sg.ContatoComercial,
		Telefone:                 sg.Telefone,
		Email:                    sg.Email,
		Ativa:                    sg.Ativa,
	}
}
