package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ChristianALins/cliver-seguros/internal/domainerr"
	"github.com/ChristianALins/cliver-seguros/internal/dto"
	"github.com/ChristianALins/cliver-seguros/internal/model"
	"github.com/ChristianALins/cliver-seguros/internal/repository"
	"github.com/ChristianALins/cliver-seguros/internal/scope"
)

type ClienteService interface {
	Criar(ctx context.Context, sc scope.Scope, req dto.CriarClienteRequest) (*dto.ClienteResponse, error)
	Obter(ctx context.Context, sc scope.Scope, id uint) (*dto.ClienteResponse, error)
	Detalhe(ctx context.Context, sc scope.Scope, id uint) (*dto.ClienteDetalheResponse, error)
	Listar(ctx context.Context, sc scope.Scope, filter dto.ClienteFilter) (*dto.ClienteListResponse, error)
	Atualizar(ctx context.Context, sc scope.Scope, id uint, req dto.AtualizarClienteRequest) (*dto.ClienteResponse, error)
	Excluir(ctx context.Context, sc scope.Scope, id uint) error
}

type clienteService struct {
	repo        repository.ClienteRepository
	apoliceRepo repository.ApoliceRepository
	diasAviso   int
	agora       func() time.Time
}

func NewClienteService(repo repository.ClienteRepository, apoliceRepo repository.ApoliceRepository, diasAviso int) ClienteService {
	return &clienteService{repo: repo, apoliceRepo: apoliceRepo, diasAviso: diasAviso, agora: time.Now}
}

func (s *clienteService) Criar(ctx context.Context, sc scope.Scope, req dto.CriarClienteRequest) (*dto.ClienteResponse, error) {
	if _, err := s.repo.FindByCpfCnpj(ctx, req.CpfCnpj); err == nil {
		return nil, domainerr.Duplicate("cpfCnpj", "já existe cliente com este CPF/CNPJ")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerr.Storage(err)
	}

	colaboradorID := sc.ColaboradorID
	if req.ColaboradorID != nil {
		if err := sc.Autorizar(*req.ColaboradorID); err != nil {
			return nil, err
		}
		colaboradorID = *req.ColaboradorID
	}

	c := &model.Cliente{
		Nome:          req.Nome,
		CpfCnpj:       req.CpfCnpj,
		Email:         req.Email,
		Telefone:      req.Telefone,
		Endereco:      req.Endereco,
		ColaboradorID: colaboradorID,
		Ativo:         true,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, domainerr.Storage(err)
	}
	resp := clienteToResponse(c)
	return &resp, nil
}

func (s *clienteService) Obter(ctx context.Context, sc scope.Scope, id uint) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, traduzErro(err, "cliente")
	}
	if err := sc.Autorizar(c.ColaboradorID); err != nil {
		return nil, err
	}
	resp := clienteToResponse(c)
	return &resp, nil
}

// Detalhe assembles the client file: record, policies and active-portfolio
// aggregates in one response.
func (s *clienteService) Detalhe(ctx context.Context, sc scope.Scope, id uint) (*dto.ClienteDetalheResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, traduzErro(err, "cliente")
	}
	if err := sc.Autorizar(c.ColaboradorID); err != nil {
		return nil, err
	}

	apolices, err := s.apoliceRepo.ListByCliente(ctx, id)
	if err != nil {
		return nil, domainerr.Storage(err)
	}
	sinistros, err := s.repo.CountSinistros(ctx, id)
	if err != nil {
		return nil, domainerr.Storage(err)
	}
	tarefas, err := s.repo.CountTarefasPendentes(ctx, id)
	if err != nil {
		return nil, domainerr.Storage(err)
	}

	det := &dto.ClienteDetalheResponse{
		Cliente:          clienteToResponse(c),
		Apolices:         make([]dto.ApoliceResponse, len(apolices)),
		TotalSinistros:   int(sinistros),
		TarefasPendentes: int(tarefas),
		ValorTotalAtivo:  decimal.Zero,
	}
	asOf := s.agora()
	for i := range apolices {
		det.Apolices[i] = *apoliceToResponse(&apolices[i], asOf, s.diasAviso)
		if apolices[i].Status == model.ApoliceAtiva {
			det.ApolicesAtivas++
			det.ValorTotalAtivo = det.ValorTotalAtivo.Add(apolices[i].ValorPremio)
		}
	}
	return det, nil
}

func (s *clienteService) Listar(ctx context.Context, sc scope.Scope, filter dto.ClienteFilter) (*dto.ClienteListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	clientes, total, err := s.repo.List(ctx, sc, filter)
	if err != nil {
		return nil, domainerr.Storage(err)
	}
	resp := &dto.ClienteListResponse{
		Data:  make([]dto.ClienteResponse, len(clientes)),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	for i := range clientes {
		resp.Data[i] = clienteToResponse(&clientes[i])
	}
	return resp, nil
}

func (s *clienteService) Atualizar(ctx context.Context, sc scope.Scope, id uint, req dto.AtualizarClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, traduzErro(err, "cliente")
	}
	if err := sc.Autorizar(c.ColaboradorID); err != nil {
		return nil, err
	}
	if req.Nome != "" {
		c.Nome = req.Nome
	}
	if req.Email != nil {
		c.Email = req.Email
	}
	if req.Telefone != nil {
		c.Telefone = req.Telefone
	}
	if req.Endereco != nil {
		c.Endereco = req.Endereco
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, domainerr.Storage(err)
	}
	resp := clienteToResponse(c)
	return &resp, nil
}

// Excluir removes a client. With policies on file the record is only
// deactivated: the policy history must survive the client leaving.
func (s *clienteService) Excluir(ctx context.Context, sc scope.Scope, id uint) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return traduzErro(err, "cliente")
	}
	if err := sc.Autorizar(c.ColaboradorID); err != nil {
		return err
	}
	n, err := s.repo.CountApolices(ctx, id)
	if err != nil {
		return domainerr.Storage(err)
	}
	if n > 0 {
		if err := s.repo.SoftDelete(ctx, id); err != nil {
			return domainerr.Storage(err)
		}
		return nil
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return domainerr.Storage(err)
	}
	return nil
}

func clienteToResponse(c *model.Cliente) dto.ClienteResponse {
	resp := dto.ClienteResponse{
		ID:            c.ID,
		Nome:          c.Nome,
		CpfCnpj:       c.CpfCnpj,
		Email:         c.Email,
		Telefone:      c.Telefone,
		Endereco:      c.Endereco,
		ColaboradorID: c.ColaboradorID,
		Ativo:         c.Ativo,
	}
	if c.Colaborador != nil {
		resp.Colaborador = c.Colaborador.Nome
	}
	return resp
}
