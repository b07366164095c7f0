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

func fixtureCliente() (*memStore, ClienteService) {
	st := newMemStore()
	svc := NewClienteService(&stubClienteRepo{st}, &stubApoliceRepo{st}, 30)
	return st, svc
}

func TestCriarClienteDocumentoDuplicado(t *testing.T) {
	st, svc := fixtureCliente()

	_, err := svc.Criar(context.Background(), scCorretor10, dto.CriarClienteRequest{
		Nome: "João Pereira", CpfCnpj: "98765432100",
	})
	require.NoError(t, err)

	_, err = svc.Criar(context.Background(), scCorretor10, dto.CriarClienteRequest{
		Nome: "Homônimo", CpfCnpj: "98765432100",
	})
	require.Error(t, err)
	assert.Equal(t, domainerr.KindDuplicate, domainerr.KindOf(err))
	assert.Len(t, st.clientes, 1)
}

func TestCriarClienteAtribuicao(t *testing.T) {
	_, svc := fixtureCliente()

	// A broker always owns their own clients.
	resp, err := svc.Criar(context.Background(), scCorretor10, dto.CriarClienteRequest{
		Nome: "Ana Lima", CpfCnpj: "11122233344",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(10), resp.ColaboradorID)
	assert.True(t, resp.Ativo)

	_, err = svc.Criar(context.Background(), scCorretor10, dto.CriarClienteRequest{
		Nome: "Alheio", CpfCnpj: "55566677788", ColaboradorID: uintPtr(20),
	})
	assert.Equal(t, domainerr.KindForbidden, domainerr.KindOf(err))

	// A manager assigns to whoever they want.
	resp, err = svc.Criar(context.Background(), scGerente, dto.CriarClienteRequest{
		Nome: "Da carteira do 20", CpfCnpj: "99988877766", ColaboradorID: uintPtr(20),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(20), resp.ColaboradorID)
}

func TestDetalheClienteAgregados(t *testing.T) {
	st, svc := fixtureCliente()
	st.clientes[1] = &model.Cliente{ID: 1, Nome: "Carlos Nunes", CpfCnpj: "12312312312", ColaboradorID: 10, Ativo: true}

	fim := time.Now().UTC().AddDate(1, 0, 0)
	st.apolices[1] = &model.Apolice{ID: 1, NumeroApolice: "AP-D-01", ClienteID: 1, ColaboradorID: 10,
		ValorPremio: dec("1000.00"), FimVigencia: fim, Status: model.ApoliceAtiva}
	st.apolices[2] = &model.Apolice{ID: 2, NumeroApolice: "AP-D-02", ClienteID: 1, ColaboradorID: 10,
		ValorPremio: dec("2000.00"), FimVigencia: fim, Status: model.ApoliceAtiva}
	st.apolices[3] = &model.Apolice{ID: 3, NumeroApolice: "AP-D-03", ClienteID: 1, ColaboradorID: 10,
		ValorPremio: dec("5000.00"), FimVigencia: fim, Status: model.ApoliceCancelada}
	st.sinistros[1] = &model.Sinistro{ID: 1, ApoliceID: 1, Protocolo: "SIN-000001", Status: model.SinistroAberto}
	clienteID := uint(1)
	st.tarefas[1] = &model.Tarefa{ID: 1, Titulo: "pendente", ClienteID: &clienteID, ColaboradorID: 10,
		DataVencimento: fim, Prioridade: model.PrioridadeMedia, Status: model.TarefaPendente}
	st.tarefas[2] = &model.Tarefa{ID: 2, Titulo: "feita", ClienteID: &clienteID, ColaboradorID: 10,
		DataVencimento: fim, Prioridade: model.PrioridadeMedia, Status: model.TarefaConcluida}

	det, err := svc.Detalhe(context.Background(), scCorretor10, 1)
	require.NoError(t, err)
	assert.Len(t, det.Apolices, 3)
	assert.Equal(t, 2, det.ApolicesAtivas)
	assert.True(t, det.ValorTotalAtivo.Equal(dec("3000.00")), "valor total ativo: %s", det.ValorTotalAtivo)
	assert.Equal(t, 1, det.TotalSinistros)
	assert.Equal(t, 1, det.TarefasPendentes)

	_, err = svc.Detalhe(context.Background(), scCorretor20, 1)
	assert.Equal(t, domainerr.KindForbidden, domainerr.KindOf(err))
}

// A client with policy history is only deactivated; one without is removed.
func TestExcluirClientePreservaHistorico(t *testing.T) {
	st, svc := fixtureCliente()
	st.clientes[1] = &model.Cliente{ID: 1, Nome: "Com apólices", CpfCnpj: "10101010101", ColaboradorID: 10, Ativo: true}
	st.clientes[2] = &model.Cliente{ID: 2, Nome: "Sem apólices", CpfCnpj: "20202020202", ColaboradorID: 10, Ativo: true}
	st.apolices[1] = &model.Apolice{ID: 1, NumeroApolice: "AP-H-01", ClienteID: 1, ColaboradorID: 10, Status: model.ApoliceRenovada}

	require.NoError(t, svc.Excluir(context.Background(), scGerente, 1))
	require.Contains(t, st.clientes, uint(1), "registro com histórico permanece")
	assert.False(t, st.clientes[1].Ativo)

	require.NoError(t, svc.Excluir(context.Background(), scGerente, 2))
	assert.NotContains(t, st.clientes, uint(2))
}
