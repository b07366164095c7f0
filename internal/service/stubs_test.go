package service

// In-memory repository stubs shared by the service tests. They emulate the
// filtering and ordering the SQL layer performs so the services can be
// exercised without a database (runTx receives a nil *gorm.DB and runs the
// callback directly).

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/ChristianALins/cliver-seguros/internal/dto"
	"github.com/ChristianALins/cliver-seguros/internal/model"
	"github.com/ChristianALins/cliver-seguros/internal/repository"
	"github.com/ChristianALins/cliver-seguros/internal/scope"
)

type memStore struct {
	apolices    map[uint]*model.Apolice
	renovacoes  map[uint]*model.Renovacao
	tarefas     map[uint]*model.Tarefa
	clientes    map[uint]*model.Cliente
	seguradoras map[uint]*model.Seguradora
	tipos       map[uint]*model.TipoSeguro
	sinistros   map[uint]*model.Sinistro
	seq         uint
}

func newMemStore() *memStore {
	return &memStore{
		apolices:    make(map[uint]*model.Apolice),
		renovacoes:  make(map[uint]*model.Renovacao),
		tarefas:     make(map[uint]*model.Tarefa),
		clientes:    make(map[uint]*model.Cliente),
		seguradoras: make(map[uint]*model.Seguradora),
		tipos:       make(map[uint]*model.TipoSeguro),
		sinistros:   make(map[uint]*model.Sinistro),
	}
}

func (m *memStore) nextID() uint {
	m.seq++
	return m.seq
}

// ── ApoliceRepository ────────────────────────────────────────────────────────

type stubApoliceRepo struct{ *memStore }

var _ repository.ApoliceRepository = (*stubApoliceRepo)(nil)

func (r *stubApoliceRepo) DB() *gorm.DB { return nil }

func (r *stubApoliceRepo) Create(_ context.Context, _ *gorm.DB, a *model.Apolice) error {
	if a.ID == 0 {
		a.ID = r.nextID()
	}
	clone := *a
	r.apolices[a.ID] = &clone
	return nil
}

func (r *stubApoliceRepo) FindByID(_ context.Context, id uint) (*model.Apolice, error) {
	a, ok := r.apolices[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubApoliceRepo) FindByNumero(_ context.Context, numero string) (*model.Apolice, error) {
	for _, a := range r.apolices {
		if a.NumeroApolice == numero {
			clone := *a
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubApoliceRepo) List(_ context.Context, sc scope.Scope, filter dto.ApoliceFilter) ([]model.Apolice, int64, error) {
	var out []model.Apolice
	for _, a := range r.apolices {
		if !sc.PodeAcessar(a.ColaboradorID) {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && a.Status != filter.Status {
			continue
		}
		if filter.ClienteID != 0 && a.ClienteID != filter.ClienteID {
			continue
		}
		out = append(out, *a)
	}
	ordenarPorVigencia(out)
	return out, int64(len(out)), nil
}

func (r *stubApoliceRepo) ListByCliente(_ context.Context, clienteID uint) ([]model.Apolice, error) {
	var out []model.Apolice
	for _, a := range r.apolices {
		if a.ClienteID == clienteID {
			out = append(out, *a)
		}
	}
	ordenarPorVigencia(out)
	return out, nil
}

func (r *stubApoliceRepo) ListVencendo(_ context.Context, sc scope.Scope, de, ate time.Time) ([]model.Apolice, error) {
	var out []model.Apolice
	for _, a := range r.apolices {
		if !sc.PodeAcessar(a.ColaboradorID) || a.Status != model.ApoliceAtiva {
			continue
		}
		if r.temRenovacao(a.ID) {
			continue
		}
		if a.FimVigencia.Before(de) || a.FimVigencia.After(ate) {
			continue
		}
		out = append(out, *a)
	}
	ordenarPorVigencia(out)
	return out, nil
}

func (r *stubApoliceRepo) Resumo(_ context.Context, sc scope.Scope, asOf time.Time, diasAviso int) (*dto.ApoliceResumo, error) {
	resumo := &dto.ApoliceResumo{}
	for _, a := range r.apolices {
		if !sc.PodeAcessar(a.ColaboradorID) {
			continue
		}
		resumo.TotalApolices++
		if a.Status == model.ApoliceAtiva {
			resumo.ApolicesAtivas++
			resumo.ValorTotalPremios = resumo.ValorTotalPremios.Add(a.ValorPremio)
			resumo.ComissoesSeguradora = resumo.ComissoesSeguradora.Add(a.ComissaoSeguradora)
			resumo.ComissoesColaborador = resumo.ComissoesColaborador.Add(a.ComissaoColaborador)
			if a.VenceEntre(asOf, diasAviso) {
				resumo.ApolicesVencendo++
			}
		}
	}
	return resumo, nil
}

func (r *stubApoliceRepo) Update(_ context.Context, a *model.Apolice) error {
	clone := *a
	r.apolices[a.ID] = &clone
	return nil
}

func (r *stubApoliceRepo) UpdateStatusTx(_ *gorm.DB, id uint, status string) error {
	a, ok := r.apolices[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.Status = status
	return nil
}

func (r *stubApoliceRepo) Delete(_ context.Context, id uint) error {
	delete(r.apolices, id)
	return nil
}

func (r *stubApoliceRepo) CountRenovacoes(_ context.Context, apoliceID uint) (int64, error) {
	var n int64
	for _, ren := range r.renovacoes {
		if ren.ApoliceAntigaID == apoliceID || ren.ApoliceNovaID == apoliceID {
			n++
		}
	}
	return n, nil
}

func (r *stubApoliceRepo) CountSinistros(_ context.Context, apoliceID uint) (int64, error) {
	var n int64
	for _, s := range r.sinistros {
		if s.ApoliceID == apoliceID {
			n++
		}
	}
	return n, nil
}

func (r *stubApoliceRepo) temRenovacao(apoliceID uint) bool {
	for _, ren := range r.renovacoes {
		if ren.ApoliceAntigaID == apoliceID {
			return true
		}
	}
	return false
}

func ordenarPorVigencia(apolices []model.Apolice) {
	sort.Slice(apolices, func(i, j int) bool {
		if !apolices[i].FimVigencia.Equal(apolices[j].FimVigencia) {
			return apolices[i].FimVigencia.Before(apolices[j].FimVigencia)
		}
		return apolices[i].ID < apolices[j].ID
	})
}

// ── RenovacaoRepository ──────────────────────────────────────────────────────

type stubRenovacaoRepo struct{ *memStore }

var _ repository.RenovacaoRepository = (*stubRenovacaoRepo)(nil)

func (r *stubRenovacaoRepo) CreateTx(_ *gorm.DB, ren *model.Renovacao) error {
	if ren.ID == 0 {
		ren.ID = r.nextID()
	}
	clone := *ren
	r.renovacoes[ren.ID] = &clone
	return nil
}

func (r *stubRenovacaoRepo) FindByID(_ context.Context, id uint) (*model.Renovacao, error) {
	ren, ok := r.renovacoes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *ren
	return &clone, nil
}

func (r *stubRenovacaoRepo) ExisteParaApolice(_ context.Context, apoliceAntigaID uint) (bool, error) {
	for _, ren := range r.renovacoes {
		if ren.ApoliceAntigaID == apoliceAntigaID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubRenovacaoRepo) List(_ context.Context, sc scope.Scope) ([]model.Renovacao, error) {
	var out []model.Renovacao
	for _, ren := range r.renovacoes {
		antiga, ok := r.apolices[ren.ApoliceAntigaID]
		if !ok || !sc.PodeAcessar(antiga.ColaboradorID) {
			continue
		}
		out = append(out, *ren)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// ── TarefaRepository ─────────────────────────────────────────────────────────

type stubTarefaRepo struct{ *memStore }

var _ repository.TarefaRepository = (*stubTarefaRepo)(nil)

func (r *stubTarefaRepo) Create(_ context.Context, t *model.Tarefa) error {
	if t.ID == 0 {
		t.ID = r.nextID()
	}
	clone := *t
	r.tarefas[t.ID] = &clone
	return nil
}

func (r *stubTarefaRepo) CreateTx(_ *gorm.DB, t *model.Tarefa) error {
	return r.Create(context.Background(), t)
}

func (r *stubTarefaRepo) FindByID(_ context.Context, id uint) (*model.Tarefa, error) {
	t, ok := r.tarefas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTarefaRepo) List(_ context.Context, sc scope.Scope, filter dto.TarefaFilter) ([]model.Tarefa, int64, error) {
	var out []model.Tarefa
	for _, t := range r.tarefas {
		if !sc.PodeAcessar(t.ColaboradorID) {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && t.Status != filter.Status {
			continue
		}
		out = append(out, *t)
	}
	ordenarTarefas(out)
	return out, int64(len(out)), nil
}

func (r *stubTarefaRepo) ListPendentes(_ context.Context, sc scope.Scope) ([]model.Tarefa, error) {
	var out []model.Tarefa
	for _, t := range r.tarefas {
		if sc.PodeAcessar(t.ColaboradorID) && t.Status == model.TarefaPendente {
			out = append(out, *t)
		}
	}
	ordenarTarefas(out)
	return out, nil
}

func (r *stubTarefaRepo) ListAtrasadas(_ context.Context, sc scope.Scope, asOf time.Time) ([]model.Tarefa, error) {
	var out []model.Tarefa
	for _, t := range r.tarefas {
		if sc.PodeAcessar(t.ColaboradorID) && t.Status == model.TarefaPendente && t.DataVencimento.Before(asOf) {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DataVencimento.Equal(out[j].DataVencimento) {
			return out[i].DataVencimento.Before(out[j].DataVencimento)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *stubTarefaRepo) Update(_ context.Context, t *model.Tarefa) error {
	clone := *t
	r.tarefas[t.ID] = &clone
	return nil
}

func (r *stubTarefaRepo) Delete(_ context.Context, id uint) error {
	delete(r.tarefas, id)
	return nil
}

func ordenarTarefas(tarefas []model.Tarefa) {
	sort.Slice(tarefas, func(i, j int) bool {
		if !tarefas[i].DataVencimento.Equal(tarefas[j].DataVencimento) {
			return tarefas[i].DataVencimento.Before(tarefas[j].DataVencimento)
		}
		ri, rj := model.PrioridadeRank(tarefas[i].Prioridade), model.PrioridadeRank(tarefas[j].Prioridade)
		if ri != rj {
			return ri > rj
		}
		return tarefas[i].ID < tarefas[j].ID
	})
}

// ── ClienteRepository ────────────────────────────────────────────────────────

type stubClienteRepo struct{ *memStore }

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	if c.ID == 0 {
		c.ID = r.nextID()
	}
	clone := *c
	r.clientes[c.ID] = &clone
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uint) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubClienteRepo) FindByCpfCnpj(_ context.Context, doc string) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.CpfCnpj == doc {
			clone := *c
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClienteRepo) List(_ context.Context, sc scope.Scope, _ dto.ClienteFilter) ([]model.Cliente, int64, error) {
	var out []model.Cliente
	for _, c := range r.clientes {
		if sc.PodeAcessar(c.ColaboradorID) {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, int64(len(out)), nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	clone := *c
	r.clientes[c.ID] = &clone
	return nil
}

func (r *stubClienteRepo) SoftDelete(_ context.Context, id uint) error {
	c, ok := r.clientes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Ativo = false
	return nil
}

func (r *stubClienteRepo) Delete(_ context.Context, id uint) error {
	delete(r.clientes, id)
	return nil
}

func (r *stubClienteRepo) CountApolices(_ context.Context, clienteID uint) (int64, error) {
	var n int64
	for _, a := range r.apolices {
		if a.ClienteID == clienteID {
			n++
		}
	}
	return n, nil
}

func (r *stubClienteRepo) CountSinistros(_ context.Context, clienteID uint) (int64, error) {
	var n int64
	for _, s := range r.sinistros {
		if a, ok := r.apolices[s.ApoliceID]; ok && a.ClienteID == clienteID {
			n++
		}
	}
	return n, nil
}

func (r *stubClienteRepo) CountTarefasPendentes(_ context.Context, clienteID uint) (int64, error) {
	var n int64
	for _, t := range r.tarefas {
		if t.ClienteID != nil && *t.ClienteID == clienteID && t.Status == model.TarefaPendente {
			n++
		}
	}
	return n, nil
}

// ── SeguradoraRepository ─────────────────────────────────────────────────────

type stubSeguradoraRepo struct{ *memStore }

var _ repository.SeguradoraRepository = (*stubSeguradoraRepo)(nil)

func (r *stubSeguradoraRepo) Create(_ context.Context, s *model.Seguradora) error {
	if s.ID == 0 {
		s.ID = r.nextID()
	}
	clone := *s
	r.seguradoras[s.ID] = &clone
	return nil
}

func (r *stubSeguradoraRepo) FindByID(_ context.Context, id uint) (*model.Seguradora, error) {
	s, ok := r.seguradoras[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubSeguradoraRepo) FindByCnpj(_ context.Context, cnpj string) (*model.Seguradora, error) {
	for _, s := range r.seguradoras {
		if s.Cnpj == cnpj {
			clone := *s
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSeguradoraRepo) List(_ context.Context, incluirInativas bool) ([]model.Seguradora, error) {
	var out []model.Seguradora
	for _, s := range r.seguradoras {
		if s.Ativa || incluirInativas {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (r *stubSeguradoraRepo) Update(_ context.Context, s *model.Seguradora) error {
	clone := *s
	r.seguradoras[s.ID] = &clone
	return nil
}

func (r *stubSeguradoraRepo) SoftDelete(_ context.Context, id uint) error {
	s, ok := r.seguradoras[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.Ativa = false
	return nil
}

// ── TipoSeguroRepository ─────────────────────────────────────────────────────

type stubTipoSeguroRepo struct{ *memStore }

var _ repository.TipoSeguroRepository = (*stubTipoSeguroRepo)(nil)

func (r *stubTipoSeguroRepo) Create(_ context.Context, t *model.TipoSeguro) error {
	if t.ID == 0 {
		t.ID = r.nextID()
	}
	clone := *t
	r.tipos[t.ID] = &clone
	return nil
}

func (r *stubTipoSeguroRepo) FindByID(_ context.Context, id uint) (*model.TipoSeguro, error) {
	t, ok := r.tipos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTipoSeguroRepo) List(_ context.Context) ([]model.TipoSeguro, error) {
	var out []model.TipoSeguro
	for _, t := range r.tipos {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (r *stubTipoSeguroRepo) Update(_ context.Context, t *model.TipoSeguro) error {
	clone := *t
	r.tipos[t.ID] = &clone
	return nil
}

func (r *stubTipoSeguroRepo) Delete(_ context.Context, id uint) error {
	delete(r.tipos, id)
	return nil
}

func (r *stubTipoSeguroRepo) CountApolices(_ context.Context, tipoID uint) (int64, error) {
	var n int64
	for _, a := range r.apolices {
		if a.TipoSeguroID == tipoID {
			n++
		}
	}
	return n, nil
}

// ── SinistroRepository ───────────────────────────────────────────────────────

type stubSinistroRepo struct {
	*memStore
	protocolo int
}

var _ repository.SinistroRepository = (*stubSinistroRepo)(nil)

func (r *stubSinistroRepo) Create(_ context.Context, s *model.Sinistro) error {
	if s.ID == 0 {
		s.ID = r.nextID()
	}
	clone := *s
	r.sinistros[s.ID] = &clone
	return nil
}

func (r *stubSinistroRepo) FindByID(_ context.Context, id uint) (*model.Sinistro, error) {
	s, ok := r.sinistros[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *s
	if a, ok := r.apolices[s.ApoliceID]; ok {
		apolice := *a
		clone.Apolice = &apolice
	}
	return &clone, nil
}

func (r *stubSinistroRepo) List(_ context.Context, sc scope.Scope, filter dto.SinistroFilter) ([]model.Sinistro, int64, error) {
	var out []model.Sinistro
	for _, s := range r.sinistros {
		a, ok := r.apolices[s.ApoliceID]
		if !ok || !sc.PodeAcessar(a.ColaboradorID) {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && s.Status != filter.Status {
			continue
		}
		if filter.ApoliceID != 0 && s.ApoliceID != filter.ApoliceID {
			continue
		}
		clone := *s
		apolice := *a
		clone.Apolice = &apolice
		out = append(out, clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, int64(len(out)), nil
}

func (r *stubSinistroRepo) Update(_ context.Context, s *model.Sinistro) error {
	clone := *s
	clone.Apolice = nil
	r.sinistros[s.ID] = &clone
	return nil
}

func (r *stubSinistroRepo) Delete(_ context.Context, id uint) error {
	delete(r.sinistros, id)
	return nil
}

func (r *stubSinistroRepo) NextProtocolo(_ context.Context) (int, error) {
	r.protocolo++
	return r.protocolo, nil
}
