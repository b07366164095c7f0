package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/ChristianALins/cliver-seguros/internal/domainerr"
	"github.com/ChristianALins/cliver-seguros/internal/dto"
	"github.com/ChristianALins/cliver-seguros/internal/repository"
	"github.com/ChristianALins/cliver-seguros/internal/scope"
)

// RelatorioService serves the management reports with a redis read-through
// cache. Reports aggregate the whole portfolio, so a short TTL keeps them
// cheap without the figures going stale enough to matter.
type RelatorioService interface {
	Dashboard(ctx context.Context, sc scope.Scope) (*dto.DashboardResponse, error)
	ProducaoPorColaborador(ctx context.Context, sc scope.Scope) ([]dto.ProducaoColaboradorItem, error)
	ProducaoPorSeguradora(ctx context.Context, sc scope.Scope) ([]dto.ProducaoSeguradoraItem, error)
}

type relatorioService struct {
	repo      repository.RelatorioRepository
	cache     *redis.Client
	ttl       time.Duration
	diasAviso int
	agora     func() time.Time
}

// NewRelatorioService accepts a nil cache client; reports then always hit the
// database.
func NewRelatorioService(repo repository.RelatorioRepository, cache *redis.Client, ttlSeconds, diasAviso int) RelatorioService {
	return &relatorioService{
		repo:      repo,
		cache:     cache,
		ttl:       time.Duration(ttlSeconds) * time.Second,
		diasAviso: diasAviso,
		agora:     time.Now,
	}
}

func (s *relatorioService) Dashboard(ctx context.Context, sc scope.Scope) (*dto.DashboardResponse, error) {
	key := s.chave("dashboard", sc)
	var cached dto.DashboardResponse
	if s.doCache(ctx, key, &cached) {
		return &cached, nil
	}

	d, err := s.repo.Dashboard(ctx, sc, hoje(s.agora()), s.diasAviso)
	if err != nil {
		return nil, domainerr.Storage(err)
	}
	s.guardarCache(ctx, key, d)
	return d, nil
}

func (s *relatorioService) ProducaoPorColaborador(ctx context.Context, sc scope.Scope) ([]dto.ProducaoColaboradorItem, error) {
	key := s.chave("producao:colaborador", sc)
	var cached []dto.ProducaoColaboradorItem
	if s.doCache(ctx, key, &cached) {
		return cached, nil
	}

	itens, err := s.repo.ProducaoPorColaborador(ctx, sc)
	if err != nil {
		return nil, domainerr.Storage(err)
	}
	s.guardarCache(ctx, key, itens)
	return itens, nil
}

func (s *relatorioService) ProducaoPorSeguradora(ctx context.Context, sc scope.Scope) ([]dto.ProducaoSeguradoraItem, error) {
	key := s.chave("producao:seguradora", sc)
	var cached []dto.ProducaoSeguradoraItem
	if s.doCache(ctx, key, &cached) {
		return cached, nil
	}

	itens, err := s.repo.ProducaoPorSeguradora(ctx, sc)
	if err != nil {
		return nil, domainerr.Storage(err)
	}
	for i := range itens {
		itens[i].TaxaRenovacao = taxaRenovacao(itens[i].TotalRenovacoes, itens[i].ApolicesEncerradas)
	}
	s.guardarCache(ctx, key, itens)
	return itens, nil
}

// taxaRenovacao is renovações / encerradas as a percentage with two decimal
// places, zero when no policy has closed yet.
func taxaRenovacao(renovacoes, encerradas int64) decimal.Decimal {
	if encerradas == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(renovacoes).
		Div(decimal.NewFromInt(encerradas)).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}

// chave embeds the scope in the key: a corretor's cached report must never be
// served to another scope.
func (s *relatorioService) chave(relatorio string, sc scope.Scope) string {
	if sc.Irrestrito() {
		return fmt.Sprintf("relatorio:%s:geral", relatorio)
	}
	return fmt.Sprintf("relatorio:%s:colab:%d", relatorio, sc.ColaboradorID)
}

func (s *relatorioService) doCache(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("descartando entrada de cache corrompida")
		return false
	}
	return true
}

// guardarCache is best-effort: a cache outage degrades to direct reads.
func (s *relatorioService) guardarCache(ctx context.Context, key string, v interface{}) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("falha ao gravar cache de relatório")
	}
}
