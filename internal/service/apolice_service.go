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

// ApoliceService runs the policy lifecycle: issuance with commission
// calculation, display-time expiry classification, manual cancellation and
// guarded deletion. Renewal lives in RenovacaoService.
type ApoliceService interface {
	Criar(ctx context.Context, sc scope.Scope, req dto.CriarApoliceRequest) (*dto.ApoliceResponse, error)
	Obter(ctx context.Context, sc scope.Scope, id uint) (*dto.ApoliceResponse, error)
	Listar(ctx context.Context, sc scope.Scope, filter dto.ApoliceFilter) (*dto.ApoliceListResponse, error)
	ListarVencendo(ctx context.Context, sc scope.Scope, dias int) ([]dto.ApoliceResponse, error)
	Atualizar(ctx context.Context, sc scope.Scope, id uint, req dto.AtualizarApoliceRequest) (*dto.ApoliceResponse, error)
	Cancelar(ctx context.Context, sc scope.Scope, id uint, req dto.CancelarApoliceRequest) (*dto.ApoliceResponse, error)
	Excluir(ctx context.Context, sc scope.Scope, id uint) error
}

type apoliceService struct {
	repo           repository.ApoliceRepository
	clienteRepo    repository.ClienteRepository
	seguradoraRepo repository.SeguradoraRepository
	tipoRepo       repository.TipoSeguroRepository
	diasAviso      int
	agora          func() time.Time
}

func NewApoliceService(
	repo repository.ApoliceRepository,
	clienteRepo repository.ClienteRepository,
	seguradoraRepo repository.SeguradoraRepository,
	tipoRepo repository.TipoSeguroRepository,
	diasAviso int,
) ApoliceService {
	return &apoliceService{
		repo:           repo,
		clienteRepo:    clienteRepo,
		seguradoraRepo: seguradoraRepo,
		tipoRepo:       tipoRepo,
		diasAviso:      diasAviso,
		agora:          time.Now,
	}
}

func (s *apoliceService) Criar(ctx context.Context, sc scope.Scope, req dto.CriarApoliceRequest) (*dto.ApoliceResponse, error) {
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

	colaboradorID := sc.ColaboradorID
	if req.ColaboradorID != nil {
		if err := sc.Autorizar(*req.ColaboradorID); err != nil {
			return nil, err
		}
		colaboradorID = *req.ColaboradorID
	}

	cliente, err := s.clienteRepo.FindByID(ctx, req.ClienteID)
	if err != nil {
		return nil, traduzErro(err, "cliente")
	}
	if err := sc.Autorizar(cliente.ColaboradorID); err != nil {
		return nil, err
	}

	seguradora, err := s.seguradoraRepo.FindByID(ctx, req.SeguradoraID)
	if err != nil {
		return nil, traduzErro(err, "seguradora")
	}
	if !seguradora.Ativa {
		return nil, domainerr.Invalid("seguradoraId", "seguradora inativa não pode emitir apólices")
	}

	tipo, err := s.tipoRepo.FindByID(ctx, req.TipoSeguroID)
	if err != nil {
		return nil, traduzErro(err, "tipo de seguro")
	}
	if req.PercentualComissaoSeguradora.LessThan(tipo.PercentualComissaoMin) ||
		req.PercentualComissaoSeguradora.GreaterThan(tipo.PercentualComissaoMax) {
		return nil, domainerr.Invalid("percentualComissaoSeguradora",
			fmt.Sprintf("percentual fora da faixa do tipo %s (%s a %s)",
				tipo.Nome, tipo.PercentualComissaoMin.String(), tipo.PercentualComissaoMax.String()))
	}

	comSeg, err := comissao.Calcular(req.ValorPremio, req.PercentualComissaoSeguradora)
	if err != nil {
		return nil, err
	}
	comColab, err := comissao.Calcular(req.ValorPremio, req.PercentualComissaoColaborador)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByNumero(ctx, req.NumeroApolice); err == nil {
		return nil, domainerr.DuplicatePolicyNumber(req.NumeroApolice)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerr.Storage(err)
	}

	a := &model.Apolice{
		NumeroApolice:                 req.NumeroApolice,
		ClienteID:                     req.ClienteID,
		SeguradoraID:                  req.SeguradoraID,
		TipoSeguroID:                  req.TipoSeguroID,
		ColaboradorID:                 colaboradorID,
		ValorPremio:                   req.ValorPremio,
		PercentualComissaoSeguradora:  req.PercentualComissaoSeguradora,
		PercentualComissaoColaborador: req.PercentualComissaoColaborador,
		ComissaoSeguradora:            comSeg,
		ComissaoColaborador:           comColab,
		InicioVigencia:                inicio,
		FimVigencia:                   fim,
		Status:                        model.ApoliceAtiva,
		ValorFranquia:                 req.ValorFranquia,
		Observacoes:                   req.Observacoes,
	}
	if err := s.repo.Create(ctx, nil, a); err != nil {
		return nil, domainerr.Storage(err)
	}
	return s.toResponse(a), nil
}

func (s *apoliceService) Obter(ctx context.Context, sc scope.Scope, id uint) (*dto.ApoliceResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, traduzErro(err, "apólice")
	}
	if err := sc.Autorizar(a.ColaboradorID); err != nil {
		return nil, err
	}
	return s.toResponse(a), nil
}

func (s *apoliceService) Listar(ctx context.Context, sc scope.Scope, filter dto.ApoliceFilter) (*dto.ApoliceListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.ColaboradorID != 0 {
		if err := sc.Autorizar(filter.ColaboradorID); err != nil {
			return nil, err
		}
	}

	apolices, total, err := s.repo.List(ctx, sc, filter)
	if err != nil {
		return nil, domainerr.Storage(err)
	}
	resumo, err := s.repo.Resumo(ctx, sc, hoje(s.agora()), s.diasAviso)
	if err != nil {
		return nil, domainerr.Storage(err)
	}

	resp := &dto.ApoliceListResponse{
		Data:   make([]dto.ApoliceResponse, len(apolices)),
		Resumo: *resumo,
		Total:  total,
		Page:   filter.Page,
		Limit:  filter.Limit,
	}
	for i := range apolices {
		resp.Data[i] = *s.toResponse(&apolices[i])
	}
	return resp, nil
}

// ListarVencendo is the expiry scan: ATIVA policies without a successor whose
// coverage ends between today and today+dias, soonest first. Read-only and
// idempotent; nothing is written to the scanned rows.
func (s *apoliceService) ListarVencendo(ctx context.Context, sc scope.Scope, dias int) ([]dto.ApoliceResponse, error) {
	if dias <= 0 {
		dias = s.diasAviso
	}
	de := hoje(s.agora())
	ate := de.AddDate(0, 0, dias)

	apolices, err := s.repo.ListVencendo(ctx, sc, de, ate)
	if err != nil {
		return nil, domainerr.Storage(err)
	}
	resp := make([]dto.ApoliceResponse, len(apolices))
	for i := range apolices {
		resp[i] = *s.toResponse(&apolices[i])
	}
	return resp, nil
}

func (s *apoliceService) Atualizar(ctx context.Context, sc scope.Scope, id uint, req dto.AtualizarApoliceRequest) (*dto.ApoliceResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, traduzErro(err, "apólice")
	}
	if err := sc.Autorizar(a.ColaboradorID); err != nil {
		return nil, err
	}
	if a.Status != model.ApoliceAtiva {
		return nil, domainerr.Invalid("status", "somente apólices ativas podem ser alteradas")
	}

	if req.InicioVigencia != nil {
		inicio, err := parseData("inicioVigencia", *req.InicioVigencia)
		if err != nil {
			return nil, err
		}
		a.InicioVigencia = inicio
	}
	if req.FimVigencia != nil {
		fim, err := parseData("fimVigencia", *req.FimVigencia)
		if err != nil {
			return nil, err
		}
		a.FimVigencia = fim
	}
	if !a.FimVigencia.After(a.InicioVigencia) {
		return nil, domainerr.Invalid("fimVigencia", "fim de vigência deve ser posterior ao início")
	}

	if req.ValorPremio != nil {
		a.ValorPremio = *req.ValorPremio
	}
	if req.PercentualComissaoSeguradora != nil {
		tipo, err := s.tipoRepo.FindByID(ctx, a.TipoSeguroID)
		if err != nil {
			return nil, traduzErro(err, "tipo de seguro")
		}
		if req.PercentualComissaoSeguradora.LessThan(tipo.PercentualComissaoMin) ||
			req.PercentualComissaoSeguradora.GreaterThan(tipo.PercentualComissaoMax) {
			return nil, domainerr.Invalid("percentualComissaoSeguradora",
				fmt.Sprintf("percentual fora da faixa do tipo %s (%s a %s)",
					tipo.Nome, tipo.PercentualComissaoMin.String(), tipo.PercentualComissaoMax.String()))
		}
		a.PercentualComissaoSeguradora = *req.PercentualComissaoSeguradora
	}
	if req.PercentualComissaoColaborador != nil {
		a.PercentualComissaoColaborador = *req.PercentualComissaoColaborador
	}
	if req.ValorFranquia != nil {
		a.ValorFranquia = req.ValorFranquia
	}
	if req.Observacoes != nil {
		a.Observacoes = req.Observacoes
	}

	// Commission amounts are derived values: always recomputed from the
	// current premium and rates, never patched directly.
	if a.ComissaoSeguradora, err = comissao.Calcular(a.ValorPremio, a.PercentualComissaoSeguradora); err != nil {
		return nil, err
	}
	if a.ComissaoColaborador, err = comissao.Calcular(a.ValorPremio, a.PercentualComissaoColaborador); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, domainerr.Storage(err)
	}
	return s.toResponse(a), nil
}

func (s *apoliceService) Cancelar(ctx context.Context, sc scope.Scope, id uint, req dto.CancelarApoliceRequest) (*dto.ApoliceResponse, error) {
	if !req.Confirmar {
		return nil, domainerr.Invalid("confirmar", "cancelamento exige confirmação explícita")
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, traduzErro(err, "apólice")
	}
	if err := sc.Autorizar(a.ColaboradorID); err != nil {
		return nil, err
	}
	switch a.Status {
	case model.ApoliceCancelada:
		return nil, domainerr.Invalid("status", "apólice já está cancelada")
	case model.ApoliceRenovada:
		return nil, domainerr.Invalid("status", "apólice renovada não pode ser cancelada")
	}

	a.Status = model.ApoliceCancelada
	if req.Motivo != nil && *req.Motivo != "" {
		nota := "Cancelada em " + formatData(s.agora()) + ": " + *req.Motivo
		if a.Observacoes != nil && *a.Observacoes != "" {
			nota = *a.Observacoes + "\n" + nota
		}
		a.Observacoes = &nota
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, domainerr.Storage(err)
	}
	return s.toResponse(a), nil
}

// Excluir hard-deletes a policy, refused while claims or renewal links still
// reference it. The dependent count travels in the error so the UI can say
// exactly what blocks the removal.
func (s *apoliceService) Excluir(ctx context.Context, sc scope.Scope, id uint) error {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return traduzErro(err, "apólice")
	}
	if err := sc.Autorizar(a.ColaboradorID); err != nil {
		return err
	}

	sinistros, err := s.repo.CountSinistros(ctx, id)
	if err != nil {
		return domainerr.Storage(err)
	}
	renovacoes, err := s.repo.CountRenovacoes(ctx, id)
	if err != nil {
		return domainerr.Storage(err)
	}
	if total := sinistros + renovacoes; total > 0 {
		return domainerr.HasDependents(
			fmt.Sprintf("apólice possui %d sinistro(s) e %d renovação(ões) vinculados", sinistros, renovacoes),
			int(total))
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return domainerr.Storage(err)
	}
	return nil
}

func (s *apoliceService) toResponse(a *model.Apolice) *dto.ApoliceResponse {
	return apoliceToResponse(a, s.agora(), s.diasAviso)
}

func apoliceToResponse(a *model.Apolice, asOf time.Time, diasAviso int) *dto.ApoliceResponse {
	resp := &dto.ApoliceResponse{
		ID:                            a.ID,
		NumeroApolice:                 a.NumeroApolice,
		ClienteID:                     a.ClienteID,
		SeguradoraID:                  a.SeguradoraID,
		TipoSeguroID:                  a.TipoSeguroID,
		ColaboradorID:                 a.ColaboradorID,
		ValorPremio:                   a.ValorPremio,
		PercentualComissaoSeguradora:  a.PercentualComissaoSeguradora,
		PercentualComissaoColaborador: a.PercentualComissaoColaborador,
		ComissaoSeguradora:            a.ComissaoSeguradora,
		ComissaoColaborador:           a.ComissaoColaborador,
		InicioVigencia:                formatData(a.InicioVigencia),
		FimVigencia:                   formatData(a.FimVigencia),
		Status:                        a.Status,
		StatusExibicao:                a.StatusExibicao(asOf, diasAviso),
		ValorFranquia:                 a.ValorFranquia,
		Observacoes:                   a.Observacoes,
	}
	if a.Cliente != nil {
		resp.Cliente = a.Cliente.Nome
	}
	if a.Seguradora != nil {
		resp.Seguradora = a.Seguradora.Nome
	}
	if a.TipoSeguro != nil {
		resp.TipoSeguro = a.TipoSeguro.Nome
	}
	if a.Colaborador != nil {
		resp.Colaborador = a.Colaborador.Nome
	}
	return resp
}
