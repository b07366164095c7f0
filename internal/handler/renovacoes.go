package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChristianALins/cliver-seguros/internal/middleware"
	"github.com/ChristianALins/cliver-seguros/internal/service"
)

type RenovacoesHandler struct{ svc service.RenovacaoService }

func NewRenovacoesHandler(svc service.RenovacaoService) *RenovacoesHandler {
	return &RenovacoesHandler{svc: svc}
}

// Listar godoc
// @Summary      Histórico de renovações
// @Description  Vínculos da antecessora para a sucessora, mais recentes primeiro; corretores só veem a própria carteira.
// @Tags         renovacoes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.RenovacaoResponse
// @Router       /v1/renovacoes [get]
func (h *RenovacoesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
