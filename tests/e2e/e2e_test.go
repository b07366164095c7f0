//go:build integration

package e2e

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// Covered flows:
//   - login → cadastros base → emissão de apólice com comissões calculadas
//   - renovação completa: sucessora ativa, antecessora RENOVADA, link e tarefa
//   - segunda renovação rejeitada
//   - varredura de vencimentos
//   - dashboard com cache Redis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"

	"github.com/ChristianALins/cliver-seguros/internal/config"
	"github.com/ChristianALins/cliver-seguros/internal/infra"
	"github.com/ChristianALins/cliver-seguros/internal/router"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // admin JWT
	engine *gin.Engine
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("cliver_test"),
		tcPostgres.WithUsername("cliver"),
		tcPostgres.WithPassword("cliver"),
		testcontainers.WithWaitStrategy(
			tcPostgres.BasicWaitStrategies()...,
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:                8000,
		Env:                 "test",
		JWTSecret:           "test-secret-key",
		JWTExpirationHours:  8,
		JWTRefreshHours:     24,
		DatabaseURL:         pgURL,
		RedisURL:            rdURL,
		DiasAvisoVencimento: 30,
		RelatorioCacheTTL:   60,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("cliver2026"), 12)
	require.NoError(t, err)
	require.NoError(t, db.Exec(`INSERT INTO colaboradores (nome, email, senha_hash, perfil, ativo, created_at, updated_at)
		VALUES ('Admin E2E', 'admin@e2e.test', ?, 'ADMINISTRADOR', true, NOW(), NOW())
		ON CONFLICT DO NOTHING`, string(hash)).Error)

	r := router.New(cfg, db, rdb)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/v1/auth/login",
		jsonBody(t, map[string]string{"email": "admin@e2e.test", "senha": "cliver2026"}),
		"",
	)
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.AccessToken)

	return &testEnv{server: srv, token: loginBody.AccessToken, engine: r}
}

// seedBase creates insurer, coverage type and client; returns their ids.
func seedBase(t *testing.T, env *testEnv) (seguradoraID, tipoID, clienteID uint) {
	t.Helper()

	segResp := do(t, env.server, "POST", "/v1/seguradoras",
		jsonBody(t, map[string]any{
			"nome":                     "Porto Forte Seguros",
			"cnpj":                     "11222333000144",
			"percentualComissaoPadrao": "15",
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, segResp.StatusCode)
	var seg struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, segResp, &seg)

	tipoResp := do(t, env.server, "POST", "/v1/tipos-seguro",
		jsonBody(t, map[string]any{
			"nome":                  "Auto",
			"percentualComissaoMin": "5",
			"percentualComissaoMax": "30",
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, tipoResp.StatusCode)
	var tipo struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, tipoResp, &tipo)

	cliResp := do(t, env.server, "POST", "/v1/clientes",
		jsonBody(t, map[string]any{
			"nome":    "Maria Souza",
			"cpfCnpj": "12345678901",
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, cliResp.StatusCode)
	var cli struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, cliResp, &cli)

	return seg.ID, tipo.ID, cli.ID
}

type apoliceJSON struct {
	ID                  uint   `json:"id"`
	NumeroApolice       string `json:"numeroApolice"`
	Status              string `json:"status"`
	StatusExibicao      string `json:"statusExibicao"`
	ComissaoSeguradora  string `json:"comissaoSeguradora"`
	ComissaoColaborador string `json:"comissaoColaborador"`
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_EmissaoDeApolice(t *testing.T) {
	env := setupTestEnv(t)
	segID, tipoID, cliID := seedBase(t, env)

	resp := do(t, env.server, "POST", "/v1/apolices",
		jsonBody(t, map[string]any{
			"numeroApolice":                 "AP-E2E-001",
			"clienteId":                     cliID,
			"seguradoraId":                  segID,
			"tipoSeguroId":                  tipoID,
			"valorPremio":                   "2500.00",
			"percentualComissaoSeguradora":  "15",
			"percentualComissaoColaborador": "10",
			"inicioVigencia":                "2026-01-01",
			"fimVigencia":                   "2027-01-01",
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var a apoliceJSON
	decodeJSON(t, resp, &a)
	assert.Equal(t, "ATIVA", a.Status)
	assert.True(t, decimal.RequireFromString(a.ComissaoSeguradora).Equal(decimal.RequireFromString("375.00")),
		"comissão seguradora: %s", a.ComissaoSeguradora)
	assert.True(t, decimal.RequireFromString(a.ComissaoColaborador).Equal(decimal.RequireFromString("250.00")),
		"comissão colaborador: %s", a.ComissaoColaborador)

	// Duplicate number is a conflict.
	dup := do(t, env.server, "POST", "/v1/apolices",
		jsonBody(t, map[string]any{
			"numeroApolice":                 "AP-E2E-001",
			"clienteId":                     cliID,
			"seguradoraId":                  segID,
			"tipoSeguroId":                  tipoID,
			"valorPremio":                   "1000.00",
			"percentualComissaoSeguradora":  "10",
			"percentualComissaoColaborador": "5",
			"inicioVigencia":                "2026-01-01",
			"fimVigencia":                   "2027-01-01",
		}),
		env.token,
	)
	defer dup.Body.Close()
	assert.Equal(t, http.StatusConflict, dup.StatusCode)
}

func TestE2E_RenovacaoCompleta(t *testing.T) {
	env := setupTestEnv(t)
	segID, tipoID, cliID := seedBase(t, env)

	criaResp := do(t, env.server, "POST", "/v1/apolices",
		jsonBody(t, map[string]any{
			"numeroApolice":                 "AP-E2E-100",
			"clienteId":                     cliID,
			"seguradoraId":                  segID,
			"tipoSeguroId":                  tipoID,
			"valorPremio":                   "2500.00",
			"percentualComissaoSeguradora":  "15",
			"percentualComissaoColaborador": "10",
			"inicioVigencia":                "2026-01-01",
			"fimVigencia":                   "2027-01-01",
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, criaResp.StatusCode)
	var antiga apoliceJSON
	decodeJSON(t, criaResp, &antiga)

	renResp := do(t, env.server, "POST", fmt.Sprintf("/v1/apolices/%d/renovar", antiga.ID),
		jsonBody(t, map[string]any{
			"numeroApolice":  "AP-E2E-101",
			"valorPremio":    "2600.00",
			"inicioVigencia": "2027-01-01",
			"fimVigencia":    "2028-01-01",
			"gerarTarefa":    true,
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, renResp.StatusCode)
	var ren struct {
		Renovacao struct {
			ApoliceAntigaID uint   `json:"apoliceAntigaId"`
			ApoliceNovaID   uint   `json:"apoliceNovaId"`
			NumeroAntiga    string `json:"numeroAntiga"`
		} `json:"renovacao"`
		ApoliceNova apoliceJSON `json:"apoliceNova"`
	}
	decodeJSON(t, renResp, &ren)
	assert.Equal(t, antiga.ID, ren.Renovacao.ApoliceAntigaID)
	assert.Equal(t, "AP-E2E-100", ren.Renovacao.NumeroAntiga)
	assert.Equal(t, "ATIVA", ren.ApoliceNova.Status)

	// Predecessor now reads RENOVADA.
	getResp := do(t, env.server, "GET", fmt.Sprintf("/v1/apolices/%d", antiga.ID), nil, env.token)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	var depois apoliceJSON
	decodeJSON(t, getResp, &depois)
	assert.Equal(t, "RENOVADA", depois.Status)

	// The follow-up task exists and is pending.
	tarefasResp := do(t, env.server, "GET", "/v1/tarefas/pendentes", nil, env.token)
	require.Equal(t, http.StatusOK, tarefasResp.StatusCode)
	var tarefas []struct {
		Titulo string `json:"titulo"`
		Status string `json:"status"`
	}
	decodeJSON(t, tarefasResp, &tarefas)
	require.Len(t, tarefas, 1)
	assert.Contains(t, tarefas[0].Titulo, "AP-E2E-101")

	// Renewing the retired policy again conflicts.
	segunda := do(t, env.server, "POST", fmt.Sprintf("/v1/apolices/%d/renovar", antiga.ID),
		jsonBody(t, map[string]any{
			"numeroApolice":  "AP-E2E-102",
			"valorPremio":    "2700.00",
			"inicioVigencia": "2027-01-01",
			"fimVigencia":    "2028-01-01",
		}),
		env.token,
	)
	defer segunda.Body.Close()
	assert.Equal(t, http.StatusConflict, segunda.StatusCode)
}

func TestE2E_VarreduraDeVencimentos(t *testing.T) {
	env := setupTestEnv(t)
	segID, tipoID, cliID := seedBase(t, env)

	hoje := time.Now().UTC()
	emite := func(numero string, fim time.Time) {
		resp := do(t, env.server, "POST", "/v1/apolices",
			jsonBody(t, map[string]any{
				"numeroApolice":                 numero,
				"clienteId":                     cliID,
				"seguradoraId":                  segID,
				"tipoSeguroId":                  tipoID,
				"valorPremio":                   "1000.00",
				"percentualComissaoSeguradora":  "10",
				"percentualComissaoColaborador": "5",
				"inicioVigencia":                hoje.AddDate(-1, 0, 0).Format("2006-01-02"),
				"fimVigencia":                   fim.Format("2006-01-02"),
			}),
			env.token,
		)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}
	emite("AP-E2E-V1", hoje.AddDate(0, 0, 5))
	emite("AP-E2E-V2", hoje.AddDate(0, 0, 25))
	emite("AP-E2E-V3", hoje.AddDate(0, 0, 90))

	resp := do(t, env.server, "GET", "/v1/apolices/vencimentos?dias=30", nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var vencendo []apoliceJSON
	decodeJSON(t, resp, &vencendo)
	require.Len(t, vencendo, 2)
	assert.Equal(t, "AP-E2E-V1", vencendo[0].NumeroApolice)
	assert.Equal(t, "AP-E2E-V2", vencendo[1].NumeroApolice)
	assert.Equal(t, "VENCENDO", vencendo[0].StatusExibicao)
}

func TestE2E_DashboardComCache(t *testing.T) {
	env := setupTestEnv(t)
	seedBase(t, env)

	primeira := do(t, env.server, "GET", "/v1/relatorios/dashboard", nil, env.token)
	require.Equal(t, http.StatusOK, primeira.StatusCode)
	var d1 map[string]any
	decodeJSON(t, primeira, &d1)

	// Second read comes from Redis and matches.
	segunda := do(t, env.server, "GET", "/v1/relatorios/dashboard", nil, env.token)
	require.Equal(t, http.StatusOK, segunda.StatusCode)
	var d2 map[string]any
	decodeJSON(t, segunda, &d2)
	assert.Equal(t, d1, d2)
}
