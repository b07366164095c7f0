package service

import (
	"context"
	"time"

	"github.com/ChristianALins/cliver-seguros/internal/domainerr"
	"github.com/ChristianALins/cliver-seguros/internal/dto"
	"github.com/ChristianALins/cliver-seguros/internal/model"
	"github.com/ChristianALins/cliver-seguros/internal/repository"
	"github.com/ChristianALins/cliver-seguros/internal/scope"
)

// TarefaService manages follow-up tasks. Listing projections are read-only:
// an overdue task shows up in ListarAtrasadas without its row changing, the
// same way policy expiry is computed at display time.
type TarefaService interface {
	Criar(ctx context.Context, sc scope.Scope, req dto.CriarTarefaRequest) (*dto.TarefaResponse, error)
	Obter(ctx context.Context, sc scope.Scope, id uint) (*dto.TarefaResponse, error)
	Listar(ctx context.Context, sc scope.Scope, filter dto.TarefaFilter) (*dto.TarefaListResponse, error)
	ListarPendentes(ctx context.Context, sc scope.Scope) ([]dto.TarefaResponse, error)
	ListarAtrasadas(ctx context.Context, sc scope.Scope) ([]dto.TarefaResponse, error)
	Atualizar(ctx context.Context, sc scope.Scope, id uint, req dto.AtualizarTarefaRequest) (*dto.TarefaResponse, error)
	Concluir(ctx context.Context, sc scope.Scope, id uint, req dto.ConcluirTarefaRequest) (*dto.TarefaResponse, error)
	Excluir(ctx context.Context, sc scope.Scope, id uint) error
}

type tarefaService struct {
	repo  repository.TarefaRepository
	agora func() time.Time
}

func NewTarefaService(repo repository.TarefaRepository) TarefaService {
	return &tarefaService{repo: repo, agora: time.Now}
}

func (s *tarefaService) Criar(ctx context.Context, sc scope.Scope, req dto.CriarTarefaRequest) (*dto.TarefaResponse, error) {
	vencimento, err := parseData("dataVencimento", req.DataVencimento)
	if err != nil {
		return nil, err
	}
	prioridade := req.Prioridade
	if prioridade == "" {
		prioridade = model.PrioridadeMedia
	}
	if !model.PrioridadeValida(prioridade) {
		return nil, domainerr.Invalid("prioridade", "prioridade desconhecida: "+prioridade)
	}

	colaboradorID := sc.ColaboradorID
	if req.ColaboradorID != nil {
		if err := sc.Autorizar(*req.ColaboradorID); err != nil {
			return nil, err
		}
		colaboradorID = *req.ColaboradorID
	}

	t := &model.Tarefa{
		Titulo:         req.Titulo,
		ClienteID:      req.ClienteID,
		ApoliceID:      req.ApoliceID,
		ColaboradorID:  colaboradorID,
		DataVencimento: vencimento,
		Prioridade:     prioridade,
		Status:         model.TarefaPendente,
		Observacoes:    req.Observacoes,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, domainerr.Storage(err)
	}
	resp := tarefaToResponse(t)
	return &resp, nil
}

func (s *tarefaService) Obter(ctx context.Context, sc scope.Scope, id uint) (*dto.TarefaResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, traduzErro(err, "tarefa")
	}
	if err := sc.Autorizar(t.ColaboradorID); err != nil {
		return nil, err
	}
	resp := tarefaToResponse(t)
	return &resp, nil
}

func (s *tarefaService) Listar(ctx context.Context, sc scope.Scope, filter dto.TarefaFilter) (*dto.TarefaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Status != "" && filter.Status != "all" && !model.StatusTarefaValido(filter.Status) {
		return nil, domainerr.Invalid("status", "status de tarefa desconhecido: "+filter.Status)
	}
	tarefas, total, err := s.repo.List(ctx, sc, filter)
	if err != nil {
		return nil, domainerr.Storage(err)
	}
	resp := &dto.TarefaListResponse{
		Data:  make([]dto.TarefaResponse, len(tarefas)),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	for i := range tarefas {
		resp.Data[i] = tarefaToResponse(&tarefas[i])
	}
	return resp, nil
}

// ListarPendentes returns open tasks due soonest first, priority breaking the
// tie inside a day, id last for a stable order.
func (s *tarefaService) ListarPendentes(ctx context.Context, sc scope.Scope) ([]dto.TarefaResponse, error) {
	tarefas, err := s.repo.ListPendentes(ctx, sc)
	if err != nil {
		return nil, domainerr.Storage(err)
	}
	return tarefasToResponse(tarefas), nil
}

func (s *tarefaService) ListarAtrasadas(ctx context.Context, sc scope.Scope) ([]dto.TarefaResponse, error) {
	tarefas, err := s.repo.ListAtrasadas(ctx, sc, hoje(s.agora()))
	if err != nil {
		return nil, domainerr.Storage(err)
	}
	return tarefasToResponse(tarefas), nil
}

func (s *tarefaService) Atualizar(ctx context.Context, sc scope.Scope, id uint, req dto.AtualizarTarefaRequest) (*dto.TarefaResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, traduzErro(err, "tarefa")
	}
	if err := sc.Autorizar(t.ColaboradorID); err != nil {
		return nil, err
	}
	if t.Status == model.TarefaConcluida {
		return nil, domainerr.Invalid("status", "tarefa concluída não pode ser alterada")
	}

	if req.Titulo != "" {
		t.Titulo = req.Titulo
	}
	if req.DataVencimento != nil {
		vencimento, err := parseData("dataVencimento", *req.DataVencimento)
		if err != nil {
			return nil, err
		}
		t.DataVencimento = vencimento
	}
	if req.Prioridade != "" {
		if !model.PrioridadeValida(req.Prioridade) {
			return nil, domainerr.Invalid("prioridade", "prioridade desconhecida: "+req.Prioridade)
		}
		t.Prioridade = req.Prioridade
	}
	if req.Status != "" {
		// CONCLUIDA only via Concluir, which demands the outcome.
		if req.Status == model.TarefaConcluida {
			return nil, domainerr.Invalid("status", "use a operação de conclusão para encerrar a tarefa")
		}
		if !model.StatusTarefaValido(req.Status) {
			return nil, domainerr.Invalid("status", "status de tarefa desconhecido: "+req.Status)
		}
		t.Status = req.Status
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, domainerr.Storage(err)
	}
	resp := tarefaToResponse(t)
	return &resp, nil
}

// Concluir closes a task recording what came of it. The outcome is required:
// a closed task with no recorded result is useless for the production audit.
func (s *tarefaService) Concluir(ctx context.Context, sc scope.Scope, id uint, req dto.ConcluirTarefaRequest) (*dto.TarefaResponse, error) {
	if req.Resultado == "" {
		return nil, domainerr.Invalid("resultado", "conclusão exige o resultado da tarefa")
	}
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, traduzErro(err, "tarefa")
	}
	if err := sc.Autorizar(t.ColaboradorID); err != nil {
		return nil, err
	}
	switch t.Status {
	case model.TarefaConcluida:
		return nil, domainerr.Invalid("status", "tarefa já concluída")
	case model.TarefaCancelada:
		return nil, domainerr.Invalid("status", "tarefa cancelada não pode ser concluída")
	}

	t.Status = model.TarefaConcluida
	t.Resultado = &req.Resultado
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, domainerr.Storage(err)
	}
	resp := tarefaToResponse(t)
	return &resp, nil
}

func (s *tarefaService) Excluir(ctx context.Context, sc scope.Scope, id uint) error {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return traduzErro(err, "tarefa")
	}
	if err := sc.Autorizar(t.ColaboradorID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return domainerr.Storage(err)
	}
	return nil
}

func tarefasToResponse(tarefas []model.Tarefa) []dto.TarefaResponse {
	resp := make([]dto.TarefaResponse, len(tarefas))
	for i := range tarefas {
		resp[i] = tarefaToResponse(&tarefas[i])
	}
	return resp
}

func tarefaToResponse(t *model.Tarefa) dto.TarefaResponse {
	resp := dto.TarefaResponse{
		ID:             t.ID,
		Titulo:         t.Titulo,
		ClienteID:      t.ClienteID,
		ApoliceID:      t.ApoliceID,
		ColaboradorID:  t.ColaboradorID,
		DataVencimento: formatData(t.DataVencimento),
		Prioridade:     t.Prioridade,
		Status:         t.Status,
		Resultado:      t.Resultado,
		Observacoes:    t.Observacoes,
	}
	if t.Colaborador != nil {
		resp.Colaborador = t.Colaborador.Nome
	}
	return resp
}
