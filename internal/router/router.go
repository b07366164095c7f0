package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ChristianALins/cliver-seguros/internal/config"
	"github.com/ChristianALins/cliver-seguros/internal/handler"
	"github.com/ChristianALins/cliver-seguros/internal/middleware"
	"github.com/ChristianALins/cliver-seguros/internal/repository"
	"github.com/ChristianALins/cliver-seguros/internal/scope"
	"github.com/ChristianALins/cliver-seguros/internal/service"
)

const (
	perfilAdmin    = string(scope.PerfilAdministrador)
	perfilGerente  = string(scope.PerfilGerente)
	perfilCorretor = string(scope.PerfilCorretor)
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	colaboradorRepo := repository.NewColaboradorRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	seguradoraRepo := repository.NewSeguradoraRepository(db)
	tipoSeguroRepo := repository.NewTipoSeguroRepository(db)
	apoliceRepo := repository.NewApoliceRepository(db)
	renovacaoRepo := repository.NewRenovacaoRepository(db)
	sinistroRepo := repository.NewSinistroRepository(db)
	tarefaRepo := repository.NewTarefaRepository(db)
	relatorioRepo := repository.NewRelatorioRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(colaboradorRepo, cfg)
	clienteSvc := service.NewClienteService(clienteRepo, apoliceRepo, cfg.DiasAvisoVencimento)
	seguradoraSvc := service.NewSeguradoraService(seguradoraRepo)
	tipoSeguroSvc := service.NewTipoSeguroService(tipoSeguroRepo)
	apoliceSvc := service.NewApoliceService(apoliceRepo, clienteRepo, seguradoraRepo, tipoSeguroRepo, cfg.DiasAvisoVencimento)
	renovacaoSvc := service.NewRenovacaoService(apoliceRepo, renovacaoRepo, tarefaRepo, tipoSeguroRepo, cfg.DiasAvisoVencimento)
	sinistroSvc := service.NewSinistroService(sinistroRepo, apoliceRepo)
	tarefaSvc := service.NewTarefaService(tarefaRepo)
	relatorioSvc := service.NewRelatorioService(relatorioRepo, rdb, cfg.RelatorioCacheTTL, cfg.DiasAvisoVencimento)

	// ── Handlers ─────────────────────────────────────────────────────────────
	healthH := handler.NewHealthHandler(db)
	authH := handler.NewAuthHandler(authSvc)
	colaboradoresH := handler.NewColaboradoresHandler(authSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	seguradorasH := handler.NewSeguradorasHandler(seguradoraSvc)
	tiposSeguroH := handler.NewTiposSeguroHandler(tipoSeguroSvc)
	apolicesH := handler.NewApolicesHandler(apoliceSvc, renovacaoSvc)
	renovacoesH := handler.NewRenovacoesHandler(renovacaoSvc)
	sinistrosH := handler.NewSinistrosHandler(sinistroSvc)
	tarefasH := handler.NewTarefasHandler(tarefaSvc)
	relatoriosH := handler.NewRelatoriosHandler(relatorioSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", healthH.Check)

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	todos := middleware.RequirePerfil(perfilAdmin, perfilGerente, perfilCorretor)
	gestao := middleware.RequirePerfil(perfilAdmin, perfilGerente)

	v1 := r.Group("/v1", jwtMW)
	{
		// Colaboradores — administração de contas é exclusiva do ADMINISTRADOR
		colaboradores := v1.Group("/colaboradores", middleware.RequirePerfil(perfilAdmin))
		{
			colaboradores.POST("", colaboradoresH.Criar)
			colaboradores.GET("", colaboradoresH.Listar)
			colaboradores.PUT("/:id", colaboradoresH.Atualizar)
			colaboradores.DELETE("/:id", colaboradoresH.Desativar)
			colaboradores.POST("/:id/reativar", colaboradoresH.Reativar)
		}

		// Clientes — todos os perfis; o escopo restringe corretores à carteira
		clientes := v1.Group("/clientes", todos)
		{
			clientes.POST("", clientesH.Criar)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.Obter)
			clientes.GET("/:id/detalhe", clientesH.Detalhe)
			clientes.PUT("/:id", clientesH.Atualizar)
			clientes.DELETE("/:id", middleware.RequirePerfil(perfilAdmin, perfilGerente), clientesH.Excluir)
		}

		// Seguradoras — leitura para todos, escrita para a gestão
		v1.GET("/seguradoras", todos, seguradorasH.Listar)
		v1.GET("/seguradoras/:id", todos, seguradorasH.Obter)
		seguradoras := v1.Group("/seguradoras", gestao)
		{
			seguradoras.POST("", seguradorasH.Criar)
			seguradoras.PUT("/:id", seguradorasH.Atualizar)
			seguradoras.DELETE("/:id", seguradorasH.Desativar)
		}

		// Tipos de seguro — leitura para todos, escrita para a gestão
		v1.GET("/tipos-seguro", todos, tiposSeguroH.Listar)
		v1.GET("/tipos-seguro/:id", todos, tiposSeguroH.Obter)
		tipos := v1.Group("/tipos-seguro", gestao)
		{
			tipos.POST("", tiposSeguroH.Criar)
			tipos.PUT("/:id", tiposSeguroH.Atualizar)
			tipos.DELETE("/:id", tiposSeguroH.Excluir)
		}

		// Apólices — o núcleo do sistema; exclusão definitiva só para a gestão
		apolices := v1.Group("/apolices", todos)
		{
			apolices.POST("", apolicesH.Criar)
			apolices.GET("", apolicesH.Listar)
			apolices.GET("/vencimentos", apolicesH.Vencimentos)
			apolices.GET("/:id", apolicesH.Obter)
			apolices.PUT("/:id", apolicesH.Atualizar)
			apolices.POST("/:id/cancelar", apolicesH.Cancelar)
			apolices.POST("/:id/renovar", apolicesH.Renovar)
			apolices.DELETE("/:id", middleware.RequirePerfil(perfilAdmin, perfilGerente), apolicesH.Excluir)
		}

		v1.GET("/renovacoes", todos, renovacoesH.Listar)

		sinistros := v1.Group("/sinistros", todos)
		{
			sinistros.POST("", sinistrosH.Criar)
			sinistros.GET("", sinistrosH.Listar)
			sinistros.GET("/:id", sinistrosH.Obter)
			sinistros.PUT("/:id", sinistrosH.Atualizar)
			sinistros.DELETE("/:id", middleware.RequirePerfil(perfilAdmin, perfilGerente), sinistrosH.Excluir)
		}

		tarefas := v1.Group("/tarefas", todos)
		{
			tarefas.POST("", tarefasH.Criar)
			tarefas.GET("", tarefasH.Listar)
			tarefas.GET("/pendentes", tarefasH.Pendentes)
			tarefas.GET("/atrasadas", tarefasH.Atrasadas)
			tarefas.GET("/:id", tarefasH.Obter)
			tarefas.PUT("/:id", tarefasH.Atualizar)
			tarefas.POST("/:id/concluir", tarefasH.Concluir)
			tarefas.DELETE("/:id", tarefasH.Excluir)
		}

		relatorios := v1.Group("/relatorios", todos)
		{
			relatorios.GET("/dashboard", relatoriosH.Dashboard)
			relatorios.GET("/producao/colaboradores", relatoriosH.ProducaoColaboradores)
			relatorios.GET("/producao/seguradoras", relatoriosH.ProducaoSeguradoras)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
