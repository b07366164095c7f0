package service

import (
	"context"
	"fmt"

	"github.com/ChristianALins/cliver-seguros/internal/domainerr"
	"github.com/ChristianALins/cliver-seguros/internal/dto"
	"github.com/ChristianALins/cliver-seguros/internal/model"
	"github.com/ChristianALins/cliver-seguros/internal/repository"
	"github.com/ChristianALins/cliver-seguros/internal/scope"
)

// SinistroService manages claims. A claim always hangs off a policy; the
// policy's agent of record is what binds it to a corretor's scope.
type SinistroService interface {
	Criar(ctx context.Context, sc scope.Scope, req dto.CriarSinistroRequest) (*dto.SinistroResponse, error)
	Obter(ctx context.Context, sc scope.Scope, id uint) (*dto.SinistroResponse, error)
	Listar(ctx context.Context, sc scope.Scope, filter dto.SinistroFilter) (*dto.SinistroListResponse, error)
	Atualizar(ctx context.Context, sc scope.Scope, id uint, req dto.AtualizarSinistroRequest) (*dto.SinistroResponse, error)
	Excluir(ctx context.Context, sc scope.Scope, id uint) error
}

type sinistroService struct {
	repo        repository.SinistroRepository
	apoliceRepo repository.ApoliceRepository
}

func NewSinistroService(repo repository.SinistroRepository, apoliceRepo repository.ApoliceRepository) SinistroService {
	return &sinistroService{repo: repo, apoliceRepo: apoliceRepo}
}

func (s *sinistroService) Criar(ctx context.Context, sc scope.Scope, req dto.CriarSinistroRequest) (*dto.SinistroResponse, error) {
	apolice, err := s.apoliceRepo.FindByID(ctx, req.ApoliceID)
	if err != nil {
		return nil, traduzErro(err, "apólice")
	}
	if err := sc.Autorizar(apolice.ColaboradorID); err != nil {
		return nil, err
	}

	ocorrencia, err := parseData("dataOcorrencia", req.DataOcorrencia)
	if err != nil {
		return nil, err
	}
	comunicacao, err := parseData("dataComunicacao", req.DataComunicacao)
	if err != nil {
		return nil, err
	}
	if comunicacao.Before(ocorrencia) {
		return nil, domainerr.Invalid("dataComunicacao", "comunicação não pode preceder a ocorrência")
	}
	if req.ValorReclamado.IsNegative() {
		return nil, domainerr.Invalid("valorReclamado", "valor reclamado não pode ser negativo")
	}

	n, err := s.repo.NextProtocolo(ctx)
	if err != nil {
		return nil, domainerr.Storage(err)
	}

	sin := &model.Sinistro{
		ApoliceID:       req.ApoliceID,
		Protocolo:       fmt.Sprintf("SIN-%06d", n),
		DataOcorrencia:  ocorrencia,
		DataComunicacao: comunicacao,
		Descricao:       req.Descricao,
		ValorReclamado:  req.ValorReclamado,
		Status:          model.SinistroAberto,
		Observacoes:     req.Observacoes,
	}
	if err := s.repo.Create(ctx, sin); err != nil {
		return nil, domainerr.Storage(err)
	}
	sin.Apolice = apolice
	resp := sinistroToResponse(sin)
	return &resp, nil
}

func (s *sinistroService) Obter(ctx context.Context, sc scope.Scope, id uint) (*dto.SinistroResponse, error) {
	sin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, traduzErro(err, "sinistro")
	}
	if sin.Apolice != nil {
		if err := sc.Autorizar(sin.Apolice.ColaboradorID); err != nil {
			return nil, err
		}
	}
	resp := sinistroToResponse(sin)
	return &resp, nil
}

func (s *sinistroService) Listar(ctx context.Context, sc scope.Scope, filter dto.SinistroFilter) (*dto.SinistroListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	sinistros, total, err := s.repo.List(ctx, sc, filter)
	if err != nil {
		return nil, domainerr.Storage(err)
	}
	resp := &dto.SinistroListResponse{
		Data:  make([]dto.SinistroResponse, len(sinistros)),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	for i := range sinistros {
		resp.Data[i] = sinistroToResponse(&sinistros[i])
	}
	return resp, nil
}

func (s *sinistroService) Atualizar(ctx context.Context, sc scope.Scope, id uint, req dto.AtualizarSinistroRequest) (*dto.SinistroResponse, error) {
	sin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, traduzErro(err, "sinistro")
	}
	if sin.Apolice != nil {
		if err := sc.Autorizar(sin.Apolice.ColaboradorID); err != nil {
			return nil, err
		}
	}

	if req.Descricao != "" {
		sin.Descricao = req.Descricao
	}
	if req.ValorReclamado != nil {
		if req.ValorReclamado.IsNegative() {
			return nil, domainerr.Invalid("valorReclamado", "valor reclamado não pode ser negativo")
		}
		sin.ValorReclamado = *req.ValorReclamado
	}
	if req.ValorIndenizado != nil {
		if req.ValorIndenizado.IsNegative() {
			return nil, domainerr.Invalid("valorIndenizado", "valor indenizado não pode ser negativo")
		}
		sin.ValorIndenizado = req.ValorIndenizado
	}
	if req.Observacoes != nil {
		sin.Observacoes = req.Observacoes
	}
	if req.Status != "" {
		if !model.StatusSinistroValido(req.Status) {
			return nil, domainerr.Invalid("status", "status de sinistro desconhecido: "+req.Status)
		}
		if req.Status == model.SinistroPago && sin.ValorIndenizado == nil {
			return nil, domainerr.Invalid("valorIndenizado", "sinistro pago exige valor indenizado")
		}
		sin.Status = req.Status
	}

	if err := s.repo.Update(ctx, sin); err != nil {
		return nil, domainerr.Storage(err)
	}
	resp := sinistroToResponse(sin)
	return &resp, nil
}

func (s *sinistroService) Excluir(ctx context.Context, sc scope.Scope, id uint) error {
	sin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return traduzErro(err, "sinistro")
	}
	if sin.Apolice != nil {
		if err := sc.Autorizar(sin.Apolice.ColaboradorID); err != nil {
			return err
		}
	}
	if sin.Status != model.SinistroAberto {
		return domainerr.Invalid("status", "somente sinistros abertos podem ser excluídos")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return domainerr.Storage(err)
	}
	return nil
}

func sinistroToResponse(sin *model.Sinistro) dto.SinistroResponse {
	resp := dto.SinistroResponse{
		ID:              sin.ID,
		ApoliceID:       sin.ApoliceID,
		Protocolo:       sin.Protocolo,
		DataOcorrencia:  formatData(sin.DataOcorrencia),
		DataComunicacao: formatData(sin.DataComunicacao),
		Descricao:       sin.Descricao,
		ValorReclamado:  sin.ValorReclamado,
		ValorIndenizado: sin.ValorIndenizado,
		Status:          sin.Status,
		Observacoes:     sin.Observacoes,
	}
	if sin.Apolice != nil {
		resp.NumeroApolice = sin.Apolice.NumeroApolice
	}
	return resp
}
