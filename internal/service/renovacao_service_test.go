package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChristianALins/cliver-seguros/internal/domainerr"
	"github.com/ChristianALins/cliver-seguros/internal/dto"
	"github.com/ChristianALins/cliver-seguros/internal/model"
)

// fixtureRenovacao seeds an active policy AP-100 owned by agent 10, premium
// 2500 with rates 15/10, under coverage type [5,30].
func fixtureRenovacao() (*memStore, RenovacaoService) {
	st := newMemStore()
	st.tipos[1] = &model.TipoSeguro{ID: 1, Nome: "Auto", PercentualComissaoMin: dec("5"), PercentualComissaoMax: dec("30")}
	st.apolices[1] = &model.Apolice{
		ID: 1, NumeroApolice: "AP-100", ClienteID: 3, SeguradoraID: 4, TipoSeguroID: 1,
		ColaboradorID:                 10,
		ValorPremio:                   dec("2500.00"),
		PercentualComissaoSeguradora:  dec("15"),
		PercentualComissaoColaborador: dec("10"),
		ComissaoSeguradora:            dec("375.00"),
		ComissaoColaborador:           dec("250.00"),
		InicioVigencia:                time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		FimVigencia:                   time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:                        model.ApoliceAtiva,
	}
	st.seq = 10
	svc := NewRenovacaoService(&stubApoliceRepo{st}, &stubRenovacaoRepo{st}, &stubTarefaRepo{st}, &stubTipoSeguroRepo{st}, 30)
	return st, svc
}

func reqRenovar(numero string) dto.RenovarApoliceRequest {
	return dto.RenovarApoliceRequest{
		NumeroApolice:  numero,
		ValorPremio:    dec("2600.00"),
		InicioVigencia: "2027-01-01",
		FimVigencia:    "2028-01-01",
	}
}

func TestRenovarFluxoCompleto(t *testing.T) {
	st, svc := fixtureRenovacao()

	req := reqRenovar("AP-101")
	req.GerarTarefa = true
	resp, err := svc.Renovar(context.Background(), scCorretor10, 1, req)
	require.NoError(t, err)

	// Successor inherits everything not overridden, with its own commissions.
	nova := resp.ApoliceNova
	assert.Equal(t, "AP-101", nova.NumeroApolice)
	assert.Equal(t, model.ApoliceAtiva, nova.Status)
	assert.Equal(t, uint(3), nova.ClienteID)
	assert.Equal(t, uint(4), nova.SeguradoraID)
	assert.Equal(t, uint(10), nova.ColaboradorID)
	assert.True(t, nova.ComissaoSeguradora.Equal(dec("390.00")), "comissão seguradora: %s", nova.ComissaoSeguradora)
	assert.True(t, nova.ComissaoColaborador.Equal(dec("260.00")), "comissão colaborador: %s", nova.ComissaoColaborador)

	// Predecessor retired, link recorded.
	assert.Equal(t, model.ApoliceRenovada, st.apolices[1].Status)
	require.Len(t, st.renovacoes, 1)
	assert.Equal(t, uint(1), resp.Renovacao.ApoliceAntigaID)
	assert.Equal(t, nova.ID, resp.Renovacao.ApoliceNovaID)
	assert.Equal(t, "AP-100", resp.Renovacao.NumeroAntiga)
	assert.Equal(t, "AP-101", resp.Renovacao.NumeroNova)

	// Follow-up task due on the successor's end date.
	require.Len(t, st.tarefas, 1)
	for _, tarefa := range st.tarefas {
		assert.Contains(t, tarefa.Titulo, "AP-101")
		assert.Equal(t, model.TarefaPendente, tarefa.Status)
		assert.Equal(t, model.PrioridadeMedia, tarefa.Prioridade)
		assert.Equal(t, uint(10), tarefa.ColaboradorID)
		require.NotNil(t, tarefa.ApoliceID)
		assert.Equal(t, nova.ID, *tarefa.ApoliceID)
		assert.Equal(t, "2028-01-01", formatData(tarefa.DataVencimento))
	}
}

func TestRenovarSemTarefa(t *testing.T) {
	st, svc := fixtureRenovacao()

	_, err := svc.Renovar(context.Background(), scGerente, 1, reqRenovar("AP-101"))
	require.NoError(t, err)
	assert.Empty(t, st.tarefas)
}

func TestRenovarSegundaVez(t *testing.T) {
	st, svc := fixtureRenovacao()

	_, err := svc.Renovar(context.Background(), scGerente, 1, reqRenovar("AP-101"))
	require.NoError(t, err)

	_, err = svc.Renovar(context.Background(), scGerente, 1, reqRenovar("AP-102"))
	require.Error(t, err)
	assert.Equal(t, domainerr.KindAlreadyRenewed, domainerr.KindOf(err))
	assert.Len(t, st.renovacoes, 1)
	assert.Len(t, st.apolices, 2)
}

// A stale ATIVA status does not bypass the guard when the link already exists.
func TestRenovarComLinkExistente(t *testing.T) {
	st, svc := fixtureRenovacao()
	st.renovacoes[5] = &model.Renovacao{ID: 5, ApoliceAntigaID: 1, ApoliceNovaID: 99, DataRenovacao: time.Now()}

	_, err := svc.Renovar(context.Background(), scGerente, 1, reqRenovar("AP-103"))
	require.Error(t, err)
	assert.Equal(t, domainerr.KindAlreadyRenewed, domainerr.KindOf(err))
}

func TestRenovarCancelada(t *testing.T) {
	st, svc := fixtureRenovacao()
	st.apolices[1].Status = model.ApoliceCancelada

	_, err := svc.Renovar(context.Background(), scGerente, 1, reqRenovar("AP-104"))
	require.Error(t, err)
	assert.Equal(t, domainerr.KindInvalidArgument, domainerr.KindOf(err))
}

func TestRenovarNumeroDuplicado(t *testing.T) {
	st, svc := fixtureRenovacao()

	// Reusing the predecessor's own number.
	_, err := svc.Renovar(context.Background(), scGerente, 1, reqRenovar("AP-100"))
	assert.Equal(t, domainerr.KindDuplicatePolicyNumber, domainerr.KindOf(err))

	// Or any other existing policy's number.
	st.apolices[2] = &model.Apolice{ID: 2, NumeroApolice: "AP-200", ColaboradorID: 10, Status: model.ApoliceAtiva}
	_, err = svc.Renovar(context.Background(), scGerente, 1, reqRenovar("AP-200"))
	assert.Equal(t, domainerr.KindDuplicatePolicyNumber, domainerr.KindOf(err))

	// Nothing committed: predecessor untouched, no link.
	assert.Equal(t, model.ApoliceAtiva, st.apolices[1].Status)
	assert.Empty(t, st.renovacoes)
}

func TestRenovarForaDoEscopo(t *testing.T) {
	st, svc := fixtureRenovacao()

	_, err := svc.Renovar(context.Background(), scCorretor20, 1, reqRenovar("AP-105"))
	require.Error(t, err)
	assert.Equal(t, domainerr.KindForbidden, domainerr.KindOf(err))
	assert.Equal(t, model.ApoliceAtiva, st.apolices[1].Status)
}

func TestRenovarComPercentualAjustado(t *testing.T) {
	_, svc := fixtureRenovacao()

	req := reqRenovar("AP-106")
	req.PercentualComissaoSeguradora = decPtr("20")
	resp, err := svc.Renovar(context.Background(), scGerente, 1, req)
	require.NoError(t, err)
	assert.True(t, resp.ApoliceNova.ComissaoSeguradora.Equal(dec("520.00")),
		"comissão seguradora: %s", resp.ApoliceNova.ComissaoSeguradora)
}

func TestRenovarPercentualForaDaFaixa(t *testing.T) {
	st, svc := fixtureRenovacao()

	req := reqRenovar("AP-107")
	req.PercentualComissaoSeguradora = decPtr("40")
	_, err := svc.Renovar(context.Background(), scGerente, 1, req)
	require.Error(t, err)
	assert.Equal(t, domainerr.KindInvalidArgument, domainerr.KindOf(err))
	assert.Equal(t, model.ApoliceAtiva, st.apolices[1].Status)
	assert.Empty(t, st.renovacoes)
}

func TestRenovarVigenciaInvertida(t *testing.T) {
	_, svc := fixtureRenovacao()

	req := reqRenovar("AP-108")
	req.InicioVigencia = "2028-01-01"
	req.FimVigencia = "2027-01-01"
	_, err := svc.Renovar(context.Background(), scGerente, 1, req)
	assert.Equal(t, domainerr.KindInvalidArgument, domainerr.KindOf(err))
}

func TestListarRenovacoesPorEscopo(t *testing.T) {
	st, svc := fixtureRenovacao()

	_, err := svc.Renovar(context.Background(), scGerente, 1, reqRenovar("AP-109"))
	require.NoError(t, err)

	lista, err := svc.Listar(context.Background(), scCorretor10)
	require.NoError(t, err)
	assert.Len(t, lista, 1)

	lista, err = svc.Listar(context.Background(), scCorretor20)
	require.NoError(t, err)
	assert.Empty(t, lista)
}
