package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ChristianALins/cliver-seguros/internal/comissao"
	"github.com/ChristianALins/cliver-seguros/internal/domainerr"
	"github.com/ChristianALins/cliver-seguros/internal/dto"
	"github.com/ChristianALins/cliver-seguros/internal/model"
	"github.com/ChristianALins/cliver-seguros/internal/repository"
	"github.com/ChristianALins/cliver-seguros/internal/scope"
)

// RenovacaoService runs the renewal workflow: issue a successor policy, record
// the audit link and retire the predecessor, all in one transaction. The
// unique index on renovacoes.apolice_antiga_id is the last line of defense
// against two racing renewals of the same policy.
type RenovacaoService interface {
	Renovar(ctx context.Context, sc scope.Scope, apoliceAntigaID uint, req dto.RenovarApoliceRequest) (*dto.RenovarApoliceResponse, error)
	Listar(ctx context.Context, sc scope.Scope) ([]dto.RenovacaoResponse, error)
}

type renovacaoService struct {
	apoliceRepo repository.ApoliceRepository
	repo        repository.RenovacaoRepository
	tarefaRepo  repository.TarefaRepository
	tipoRepo    repository.TipoSeguroRepository
	diasAviso   int
	agora       func() time.Time
}

func NewRenovacaoService(
	apoliceRepo repository.ApoliceRepository,
	repo repository.RenovacaoRepository,
	tarefaRepo repository.TarefaRepository,
	tipoRepo repository.TipoSeguroRepository,
	diasAviso int,
) RenovacaoService {
	return &renovacaoService{
		apoliceRepo: apoliceRepo,
		repo:        repo,
		tarefaRepo:  tarefaRepo,
		tipoRepo:    tipoRepo,
		diasAviso:   diasAviso,
		agora:       time.Now,
	}
}

func (s *renovacaoService) Renovar(ctx context.Context, sc scope.Scope, apoliceAntigaID uint, req dto.RenovarApoliceRequest) (*dto.RenovarApoliceResponse, error) {
	antiga, err := s.apoliceRepo.FindByID(ctx, apoliceAntigaID)
	if err != nil {
		return nil, traduzErro(err, "apólice")
	}
	if err := sc.Autorizar(antiga.ColaboradorID); err != nil {
		return nil, err
	}
	switch antiga.Status {
	case model.ApoliceRenovada:
		return nil, domainerr.AlreadyRenewed(antiga.NumeroApolice)
	case model.ApoliceCancelada:
		return nil, domainerr.Invalid("status", "apólice cancelada não pode ser renovada")
	}
	if renovada, err := s.repo.ExisteParaApolice(ctx, apoliceAntigaID); err != nil {
		return nil, domainerr.Storage(err)
	} else if renovada {
		return nil, domainerr.AlreadyRenewed(antiga.NumeroApolice)
	}

	inicio, err := parseData("inicioVigencia", req.InicioVigencia)
	if err != nil {
		return nil, err
	}
	fim, err := parseData("fimVigencia", req.FimVigencia)
	if err != nil {
		return nil, err
	}
	if !fim.After(inicio) {
		return nil, domainerr.Invalid("fimVigencia", "fim de vigência deve ser posterior ao início")
	}
	if req.NumeroApolice == antiga.NumeroApolice {
		return nil, domainerr.DuplicatePolicyNumber(req.NumeroApolice)
	}
	if _, err := s.apoliceRepo.FindByNumero(ctx, req.NumeroApolice); err == nil {
		return nil, domainerr.DuplicatePolicyNumber(req.NumeroApolice)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerr.Storage(err)
	}

	// Omitted fields inherit the predecessor's values.
	nova := &model.Apolice{
		NumeroApolice:                 req.NumeroApolice,
		ClienteID:                     antiga.ClienteID,
		SeguradoraID:                  antiga.SeguradoraID,
		TipoSeguroID:                  antiga.TipoSeguroID,
		ColaboradorID:                 antiga.ColaboradorID,
		ValorPremio:                   req.ValorPremio,
		PercentualComissaoSeguradora:  antiga.PercentualComissaoSeguradora,
		PercentualComissaoColaborador: antiga.PercentualComissaoColaborador,
		InicioVigencia:                inicio,
		FimVigencia:                   fim,
		Status:                        model.ApoliceAtiva,
		ValorFranquia:                 antiga.ValorFranquia,
		Observacoes:                   req.Observacoes,
	}
	if req.ClienteID != nil {
		nova.ClienteID = *req.ClienteID
	}
	if req.SeguradoraID != nil {
		nova.SeguradoraID = *req.SeguradoraID
	}
	if req.TipoSeguroID != nil {
		nova.TipoSeguroID = *req.TipoSeguroID
	}
	if req.ColaboradorID != nil {
		if err := sc.Autorizar(*req.ColaboradorID); err != nil {
			return nil, err
		}
		nova.ColaboradorID = *req.ColaboradorID
	}
	if req.PercentualComissaoSeguradora != nil {
		nova.PercentualComissaoSeguradora = *req.PercentualComissaoSeguradora
	}
	if req.PercentualComissaoColaborador != nil {
		nova.PercentualComissaoColaborador = *req.PercentualComissaoColaborador
	}

	tipo, err := s.tipoRepo.FindByID(ctx, nova.TipoSeguroID)
	if err != nil {
		return nil, traduzErro(err, "tipo de seguro")
	}
	if nova.PercentualComissaoSeguradora.LessThan(tipo.PercentualComissaoMin) ||
		nova.PercentualComissaoSeguradora.GreaterThan(tipo.PercentualComissaoMax) {
		return nil, domainerr.Invalid("percentualComissaoSeguradora",
			fmt.Sprintf("percentual fora da faixa do tipo %s (%s a %s)",
				tipo.Nome, tipo.PercentualComissaoMin.String(), tipo.PercentualComissaoMax.String()))
	}

	// Commissions are recomputed from the successor's own premium and rates,
	// never copied from the predecessor.
	if nova.ComissaoSeguradora, err = comissao.Calcular(nova.ValorPremio, nova.PercentualComissaoSeguradora); err != nil {
		return nil, err
	}
	if nova.ComissaoColaborador, err = comissao.Calcular(nova.ValorPremio, nova.PercentualComissaoColaborador); err != nil {
		return nil, err
	}

	ren := &model.Renovacao{
		ApoliceAntigaID: apoliceAntigaID,
		DataRenovacao:   hoje(s.agora()),
		Observacoes:     req.Observacoes,
	}

	// All three writes commit together or not at all. A partially renewed
	// policy must never be observable.
	err = runTx(ctx, s.apoliceRepo.DB(), func(tx *gorm.DB) error {
		if err := s.apoliceRepo.Create(ctx, tx, nova); err != nil {
			return domainerr.Storage(err)
		}
		ren.ApoliceNovaID = nova.ID
		if err := s.repo.CreateTx(tx, ren); err != nil {
			return domainerr.Storage(err)
		}
		if err := s.apoliceRepo.UpdateStatusTx(tx, apoliceAntigaID, model.ApoliceRenovada); err != nil {
			return domainerr.Storage(err)
		}
		if req.GerarTarefa {
			titulo := "Acompanhar renovação da apólice " + nova.NumeroApolice
			tarefa := &model.Tarefa{
				Titulo:         titulo,
				ClienteID:      &nova.ClienteID,
				ApoliceID:      &nova.ID,
				ColaboradorID:  nova.ColaboradorID,
				DataVencimento: fim,
				Prioridade:     model.PrioridadeMedia,
				Status:         model.TarefaPendente,
			}
			if err := s.tarefaRepo.CreateTx(tx, tarefa); err != nil {
				return domainerr.Storage(err)
			}
		}
		return nil
	})
	if err != nil {
		var de *domainerr.Error
		if errors.As(err, &de) {
			return nil, err
		}
		return nil, domainerr.Storage(err)
	}

	return &dto.RenovarApoliceResponse{
		Renovacao:   renovacaoToResponse(ren, antiga.NumeroApolice, nova.NumeroApolice),
		ApoliceNova: *apoliceToResponse(nova, s.agora(), s.diasAviso),
	}, nil
}

func (s *renovacaoService) Listar(ctx context.Context, sc scope.Scope) ([]dto.RenovacaoResponse, error) {
	rens, err := s.repo.List(ctx, sc)
	if err != nil {
		return nil, domainerr.Storage(err)
	}
	resp := make([]dto.RenovacaoResponse, len(rens))
	for i := range rens {
		var antiga, nova string
		if rens[i].ApoliceAntiga != nil {
			antiga = rens[i].ApoliceAntiga.NumeroApolice
		}
		if rens[i].ApoliceNova != nil {
			nova = rens[i].ApoliceNova.NumeroApolice
		}
		resp[i] = renovacaoToResponse(&rens[i], antiga, nova)
	}
	return resp, nil
}

func renovacaoToResponse(r *model.Renovacao, numeroAntiga, numeroNova string) dto.RenovacaoResponse {
	return dto.RenovacaoResponse{
		ID:              r.ID,
		ApoliceAntigaID: r.ApoliceAntigaID,
		NumeroAntiga:    numeroAntiga,
		ApoliceNovaID:   r.ApoliceNovaID,
		NumeroNova:      numeroNova,
		DataRenovacao:   formatData(r.DataRenovacao),
		Observacoes:     r.Observacoes,
	}
}
