package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChristianALins/cliver-seguros/internal/middleware"
	"github.com/ChristianALins/cliver-seguros/internal/service"
)

type RelatoriosHandler struct{ svc service.RelatorioService }

func NewRelatoriosHandler(svc service.RelatorioService) *RelatoriosHandler {
	return &RelatoriosHandler{svc: svc}
}

// Dashboard godoc
// @Summary      Painel geral
// @Description  Contadores da carteira, tarefas e sinistros; corretores veem apenas os próprios números.
// @Tags         relatorios
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.DashboardResponse
// @Router       /v1/relatorios/dashboard [get]
func (h *RelatoriosHandler) Dashboard(c *gin.Context) {
	resp, err := h.svc.Dashboard(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ProducaoColaboradores godoc
// @Summary      Produção por colaborador
// @Description  Carteira ativa, prêmios e comissão devida por colaborador, maiores produções primeiro.
// @Tags         relatorios
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ProducaoColaboradorItem
// @Router       /v1/relatorios/producao/colaboradores [get]
func (h *RelatoriosHandler) ProducaoColaboradores(c *gin.Context) {
	resp, err := h.svc.ProducaoPorColaborador(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ProducaoSeguradoras godoc
// @Summary      Produção por seguradora
// @Description  Carteira ativa, comissão da corretora e taxa de renovação por seguradora parceira.
// @Tags         relatorios
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ProducaoSeguradoraItem
// @Router       /v1/relatorios/producao/seguradoras [get]
func (h *RelatoriosHandler) ProducaoSeguradoras(c *gin.Context) {
	resp, err := h.svc.ProducaoPorSeguradora(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
